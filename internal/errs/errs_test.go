package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("join room 7: %w", Storage("update room", cause))

	assert.True(t, IsStorage(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "storage: update room: connection refused")
}

func TestStorageNil(t *testing.T) {
	assert.NoError(t, Storage("noop", nil))
	assert.False(t, IsStorage(nil))
}

func TestSentinelsAreNotStorage(t *testing.T) {
	err := fmt.Errorf("room 3: %w", ErrRoomFull)
	assert.False(t, IsStorage(err))
	assert.ErrorIs(t, err, ErrRoomFull)
}
