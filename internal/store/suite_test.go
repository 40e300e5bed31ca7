package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liveroom/backend/internal/errs"
	"liveroom/backend/internal/room"
	"liveroom/backend/internal/user"
)

// backend is implemented by every store in this package.
type backend interface {
	room.Store
	user.Store
	PurgeDissolved(ctx context.Context, before time.Time) (int64, error)
}

var (
	_ backend = (*Memory)(nil)
	_ backend = (*Gorm)(nil)
)

// runSuite checks the behaviour every store must share. newStore returns an
// empty store.
func runSuite(t *testing.T, newStore func(t *testing.T) backend) {
	tests := []struct {
		name string
		fn   func(t *testing.T, s backend)
	}{
		{"users", testUsers},
		{"create and read room", testCreateAndReadRoom},
		{"missing room", testMissingRoom},
		{"failed update changes nothing", testFailedUpdate},
		{"update persists membership", testUpdatePersists},
		{"concurrent joins respect capacity", testConcurrentJoins},
		{"list waiting", testListWaiting},
		{"purge dissolved", testPurgeDissolved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, newStore(t))
		})
	}
}

func createUsers(t *testing.T, s backend, n int) []int64 {
	t.Helper()
	ids := make([]int64, n)
	for i := range ids {
		id, err := s.CreateUser(context.Background(), fmt.Sprintf("player%d", i), int64(i), user.Digest(fmt.Sprintf("token-%d", i)))
		require.NoError(t, err)
		ids[i] = id
	}
	return ids
}

func memberIDs(st *room.State) []int64 {
	out := make([]int64, 0, len(st.Members))
	for _, m := range st.Members {
		out = append(out, m.UserID)
	}
	return out
}

func testUsers(t *testing.T, s backend) {
	ctx := context.Background()
	id, err := s.CreateUser(ctx, "alice", 5, "digest-a")
	require.NoError(t, err)

	u, err := s.UserByTokenDigest(ctx, "digest-a")
	require.NoError(t, err)
	assert.Equal(t, &user.User{ID: id, Name: "alice", LeaderCardID: 5}, u)

	_, err = s.UserByTokenDigest(ctx, "digest-x")
	assert.ErrorIs(t, err, errs.ErrNotFound)

	require.NoError(t, s.UpdateUser(ctx, "digest-a", "alicia", 6))
	assert.ErrorIs(t, s.UpdateUser(ctx, "digest-x", "x", 1), errs.ErrNotFound)

	profiles, err := s.UsersByIDs(ctx, []int64{id, id + 100})
	require.NoError(t, err)
	assert.Equal(t, map[int64]user.User{id: {ID: id, Name: "alicia", LeaderCardID: 6}}, profiles)
}

func testCreateAndReadRoom(t *testing.T, s backend) {
	ctx := context.Background()
	users := createUsers(t, s, 2)

	a, err := s.CreateRoom(ctx, room.NewState(users[0], 10, room.DifficultyHard, 4))
	require.NoError(t, err)
	b, err := s.CreateRoom(ctx, room.NewState(users[1], 10, room.DifficultyNormal, 4))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	st, err := s.Room(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, a, st.Room.ID)
	assert.Equal(t, int64(10), st.Room.LiveID)
	assert.Equal(t, room.DifficultyHard, st.Room.Difficulty)
	assert.Equal(t, room.StatusWaiting, st.Room.Status)
	assert.Equal(t, 4, st.Room.MaxMembers)
	assert.Equal(t, users[0], st.Room.HostUserID)
	require.Len(t, st.Members, 1)
	assert.True(t, st.Members[0].IsHost)
	assert.NotZero(t, st.Members[0].Seq)
	assert.False(t, st.Room.CreatedAt.IsZero())

	// Reads are copies.
	st.Members[0].IsHost = false
	again, err := s.Room(ctx, a)
	require.NoError(t, err)
	assert.True(t, again.Members[0].IsHost)
}

func testMissingRoom(t *testing.T, s backend) {
	ctx := context.Background()

	_, err := s.Room(ctx, 12345)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.False(t, errs.IsStorage(err))

	called := false
	err = s.UpdateRoom(ctx, 12345, func(*room.State) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.False(t, called)
}

func testFailedUpdate(t *testing.T, s backend) {
	ctx := context.Background()
	users := createUsers(t, s, 2)
	id, err := s.CreateRoom(ctx, room.NewState(users[0], 1, room.DifficultyNormal, 4))
	require.NoError(t, err)

	boom := errors.New("boom")
	err = s.UpdateRoom(ctx, id, func(st *room.State) error {
		require.NoError(t, st.Join(users[1], room.DifficultyNormal))
		st.Room.Status = room.StatusLiveStart
		return boom
	})
	assert.ErrorIs(t, err, boom)

	st, err := s.Room(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, room.StatusWaiting, st.Room.Status)
	assert.Equal(t, []int64{users[0]}, memberIDs(st))
}

func testUpdatePersists(t *testing.T, s backend) {
	ctx := context.Background()
	users := createUsers(t, s, 4)
	id, err := s.CreateRoom(ctx, room.NewState(users[0], 1, room.DifficultyNormal, 4))
	require.NoError(t, err)

	for _, u := range users[1:3] {
		require.NoError(t, s.UpdateRoom(ctx, id, func(st *room.State) error {
			return st.Join(u, room.DifficultyHard)
		}))
	}
	require.NoError(t, s.UpdateRoom(ctx, id, func(st *room.State) error { return st.Leave(users[0]) }))
	require.NoError(t, s.UpdateRoom(ctx, id, func(st *room.State) error {
		return st.Join(users[3], room.DifficultyNormal)
	}))

	st, err := s.Room(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []int64{users[1], users[2], users[3]}, memberIDs(st))
	assert.Equal(t, users[1], st.Room.HostUserID)
	assert.True(t, st.Members[0].IsHost)
	assert.Equal(t, room.DifficultyHard, st.Members[0].Difficulty)
	assert.Less(t, st.Members[0].Seq, st.Members[2].Seq)

	require.NoError(t, s.UpdateRoom(ctx, id, func(st *room.State) error { return st.Start(users[1]) }))
	require.NoError(t, s.UpdateRoom(ctx, id, func(st *room.State) error {
		return st.ReportLiveEnd(users[2], room.LiveEndReport{JudgeCounts: []int{5, 4, 3, 2, 1}, Score: 777})
	}))

	st, err = s.Room(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, room.StatusLiveStart, st.Room.Status)
	require.NotNil(t, st.Member(users[2]).Report)
	assert.Equal(t, []int{5, 4, 3, 2, 1}, st.Member(users[2]).Report.JudgeCounts)
	assert.Equal(t, 777, st.Member(users[2]).Report.Score)
	assert.Nil(t, st.Member(users[1]).Report)

	for _, u := range users[1:] {
		require.NoError(t, s.UpdateRoom(ctx, id, func(st *room.State) error { return st.Leave(u) }))
	}
	st, err = s.Room(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, room.StatusDissolved, st.Room.Status)
	assert.Zero(t, st.Room.HostUserID)
	assert.Empty(t, st.Members)
}

func testConcurrentJoins(t *testing.T, s backend) {
	ctx := context.Background()
	users := createUsers(t, s, 12)
	id, err := s.CreateRoom(ctx, room.NewState(users[0], 1, room.DifficultyNormal, 4))
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var ok, full int
	for _, u := range users[1:] {
		wg.Add(1)
		go func(u int64) {
			defer wg.Done()
			err := s.UpdateRoom(ctx, id, func(st *room.State) error {
				return st.Join(u, room.DifficultyNormal)
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, errs.ErrRoomFull):
				full++
			default:
				t.Errorf("unexpected join error: %v", err)
			}
		}(u)
	}
	wg.Wait()

	assert.Equal(t, 3, ok)
	assert.Equal(t, len(users)-4, full)
	st, err := s.Room(ctx, id)
	require.NoError(t, err)
	assert.Len(t, st.Members, 4)
}

func testListWaiting(t *testing.T, s backend) {
	ctx := context.Background()
	users := createUsers(t, s, 2)

	empty, err := s.ListWaiting(ctx, 0)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	a, err := s.CreateRoom(ctx, room.NewState(users[0], 10, room.DifficultyNormal, 4))
	require.NoError(t, err)
	require.NoError(t, s.UpdateRoom(ctx, a, func(st *room.State) error { return st.Join(users[1], room.DifficultyNormal) }))
	b, err := s.CreateRoom(ctx, room.NewState(users[0], 20, room.DifficultyNormal, 2))
	require.NoError(t, err)
	started, err := s.CreateRoom(ctx, room.NewState(users[0], 10, room.DifficultyNormal, 4))
	require.NoError(t, err)
	require.NoError(t, s.UpdateRoom(ctx, started, func(st *room.State) error { return st.Start(users[0]) }))

	rooms, err := s.ListWaiting(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []room.Info{{RoomID: a, LiveID: 10, JoinedUserCount: 2, MaxUserCount: 4}}, rooms)

	rooms, err = s.ListWaiting(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []room.Info{
		{RoomID: a, LiveID: 10, JoinedUserCount: 2, MaxUserCount: 4},
		{RoomID: b, LiveID: 20, JoinedUserCount: 1, MaxUserCount: 2},
	}, rooms)
}

func testPurgeDissolved(t *testing.T, s backend) {
	ctx := context.Background()
	users := createUsers(t, s, 1)

	gone, err := s.CreateRoom(ctx, room.NewState(users[0], 1, room.DifficultyNormal, 4))
	require.NoError(t, err)
	require.NoError(t, s.UpdateRoom(ctx, gone, func(st *room.State) error { return st.Leave(users[0]) }))
	live, err := s.CreateRoom(ctx, room.NewState(users[0], 1, room.DifficultyNormal, 4))
	require.NoError(t, err)

	n, err := s.PurgeDissolved(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = s.PurgeDissolved(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = s.Room(ctx, gone)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	_, err = s.Room(ctx, live)
	assert.NoError(t, err)
}
