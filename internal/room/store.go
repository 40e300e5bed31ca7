package room

import (
	"context"

	"liveroom/backend/internal/user"
)

// Store is the durable home of room state. UpdateRoom is the only mutation
// point for an existing room: implementations serialize calls per room, run fn
// on a private copy of the current state and persist the copy only when fn
// returns nil. Reads return copies that were valid at some point in that order.
type Store interface {
	CreateRoom(ctx context.Context, st *State) (int64, error)
	Room(ctx context.Context, id int64) (*State, error)
	ListWaiting(ctx context.Context, liveID int64) ([]Info, error)
	UpdateRoom(ctx context.Context, id int64, fn func(*State) error) error
}

// Users is what the room service needs from the user directory.
type Users interface {
	Authenticate(ctx context.Context, token string) (*user.User, error)
	Profiles(ctx context.Context, ids []int64) (map[int64]user.User, error)
}
