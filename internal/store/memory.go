package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"liveroom/backend/internal/errs"
	"liveroom/backend/internal/room"
	"liveroom/backend/internal/user"
)

// roomEntry holds one room. mu serializes mutations of this room only;
// state is swapped whole so readers never need mu.
type roomEntry struct {
	mu    sync.Mutex
	state atomic.Pointer[room.State]
}

type userRow struct {
	user   user.User
	digest string
}

// Memory keeps rooms and users in process memory. It is used for local runs
// and tests; data is lost on restart.
type Memory struct {
	mu       sync.RWMutex
	rooms    map[int64]*roomEntry
	users    map[int64]*userRow
	byDigest map[string]int64

	nextRoomID int64
	nextUserID int64
	nextSeq    atomic.Int64

	now func() time.Time
}

// NewMemory creates an empty Memory store.
func NewMemory() *Memory {
	return &Memory{
		rooms:    make(map[int64]*roomEntry),
		users:    make(map[int64]*userRow),
		byDigest: make(map[string]int64),
		now:      time.Now,
	}
}

// region --- Rooms ---

func (m *Memory) CreateRoom(_ context.Context, st *room.State) (int64, error) {
	st = st.Clone()
	now := m.now()
	st.Room.CreatedAt = now
	st.Room.UpdatedAt = now
	m.assignSeq(st)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextRoomID++
	st.Room.ID = m.nextRoomID
	e := &roomEntry{}
	e.state.Store(st)
	m.rooms[st.Room.ID] = e
	return st.Room.ID, nil
}

func (m *Memory) Room(_ context.Context, id int64) (*room.State, error) {
	e := m.entry(id)
	if e == nil {
		return nil, fmt.Errorf("room %d: %w", id, errs.ErrNotFound)
	}
	return e.state.Load().Clone(), nil
}

func (m *Memory) ListWaiting(_ context.Context, liveID int64) ([]room.Info, error) {
	m.mu.RLock()
	entries := make([]*roomEntry, 0, len(m.rooms))
	for _, e := range m.rooms {
		entries = append(entries, e)
	}
	m.mu.RUnlock()

	out := []room.Info{}
	for _, e := range entries {
		st := e.state.Load()
		if st.Room.Status != room.StatusWaiting {
			continue
		}
		if liveID != 0 && st.Room.LiveID != liveID {
			continue
		}
		out = append(out, st.Info())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomID < out[j].RoomID })
	return out, nil
}

func (m *Memory) UpdateRoom(_ context.Context, id int64, fn func(*room.State) error) error {
	e := m.entry(id)
	if e == nil {
		return fmt.Errorf("room %d: %w", id, errs.ErrNotFound)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.state.Load().Clone()
	if err := fn(next); err != nil {
		return err
	}
	next.Room.UpdatedAt = m.now()
	m.assignSeq(next)
	e.state.Store(next)
	return nil
}

// PurgeDissolved deletes rooms dissolved before the given time.
func (m *Memory) PurgeDissolved(_ context.Context, before time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, e := range m.rooms {
		st := e.state.Load()
		if st.Room.Status == room.StatusDissolved && st.Room.UpdatedAt.Before(before) {
			delete(m.rooms, id)
			n++
		}
	}
	return n, nil
}

func (m *Memory) entry(id int64) *roomEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rooms[id]
}

func (m *Memory) assignSeq(st *room.State) {
	for i := range st.Members {
		if st.Members[i].Seq == 0 {
			st.Members[i].Seq = m.nextSeq.Add(1)
		}
	}
}

// endregion

// region --- Users ---

func (m *Memory) CreateUser(_ context.Context, name string, leaderCardID int64, tokenDigest string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byDigest[tokenDigest]; ok {
		return 0, fmt.Errorf("token digest already registered: %w", errs.ErrOther)
	}
	m.nextUserID++
	id := m.nextUserID
	m.users[id] = &userRow{
		user:   user.User{ID: id, Name: name, LeaderCardID: leaderCardID},
		digest: tokenDigest,
	}
	m.byDigest[tokenDigest] = id
	return id, nil
}

func (m *Memory) UserByTokenDigest(_ context.Context, tokenDigest string) (*user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byDigest[tokenDigest]
	if !ok {
		return nil, fmt.Errorf("user by token: %w", errs.ErrNotFound)
	}
	u := m.users[id].user
	return &u, nil
}

func (m *Memory) UpdateUser(_ context.Context, tokenDigest, name string, leaderCardID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.byDigest[tokenDigest]
	if !ok {
		return fmt.Errorf("user by token: %w", errs.ErrNotFound)
	}
	row := m.users[id]
	row.user.Name = name
	row.user.LeaderCardID = leaderCardID
	return nil
}

func (m *Memory) UsersByIDs(_ context.Context, ids []int64) (map[int64]user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[int64]user.User, len(ids))
	for _, id := range ids {
		if row, ok := m.users[id]; ok {
			out[id] = row.user
		}
	}
	return out, nil
}

// endregion
