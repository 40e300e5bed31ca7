package errs

import (
	"errors"
	"fmt"
)

// Recoverable conditions reported to the caller. Wrap them with fmt.Errorf("...: %w", ...)
// and test with errors.Is.
var (
	ErrNotAuthenticated       = errors.New("not authenticated")
	ErrNotFound               = errors.New("not found")
	ErrRoomFull               = errors.New("room is full")
	ErrDisbanded              = errors.New("room is disbanded")
	ErrPermissionDenied       = errors.New("permission denied")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrOther                  = errors.New("other error")
)

// StorageError is the only fatal class: the backing store failed or was unavailable.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err as a StorageError. A nil err stays nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// IsStorage reports whether err carries a StorageError anywhere in its chain.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
