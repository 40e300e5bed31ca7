package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liveroom/backend/internal/errs"
)

func newRoom(t *testing.T, members ...int64) *State {
	t.Helper()
	st := NewState(members[0], 1001, DifficultyNormal, DefaultMaxMembers)
	st.Room.ID = 1
	for _, id := range members[1:] {
		require.NoError(t, st.Join(id, DifficultyHard))
	}
	return st
}

func TestNewState(t *testing.T) {
	st := NewState(7, 1001, DifficultyHard, 4)

	assert.Equal(t, StatusWaiting, st.Room.Status)
	assert.Equal(t, int64(7), st.Room.HostUserID)
	require.Len(t, st.Members, 1)
	assert.True(t, st.Members[0].IsHost)
	assert.Equal(t, DifficultyHard, st.Members[0].Difficulty)
	assert.Equal(t, Info{LiveID: 1001, JoinedUserCount: 1, MaxUserCount: 4}, st.Info())
}

func TestJoin(t *testing.T) {
	t.Run("adds a non-host member", func(t *testing.T) {
		st := newRoom(t, 1)
		require.NoError(t, st.Join(2, DifficultyHard))

		m := st.Member(2)
		require.NotNil(t, m)
		assert.False(t, m.IsHost)
		assert.Equal(t, DifficultyHard, m.Difficulty)
		assert.Equal(t, int64(1), st.Room.HostUserID)
	})

	t.Run("full room", func(t *testing.T) {
		st := newRoom(t, 1, 2, 3, 4)
		assert.ErrorIs(t, st.Join(5, DifficultyNormal), errs.ErrRoomFull)
		assert.Len(t, st.Members, 4)
	})

	t.Run("dissolved room", func(t *testing.T) {
		st := newRoom(t, 1)
		require.NoError(t, st.Leave(1))
		assert.ErrorIs(t, st.Join(2, DifficultyNormal), errs.ErrDisbanded)
	})

	t.Run("started room", func(t *testing.T) {
		st := newRoom(t, 1)
		require.NoError(t, st.Start(1))
		assert.ErrorIs(t, st.Join(2, DifficultyNormal), errs.ErrInvalidStateTransition)
	})

	t.Run("full started room reports full", func(t *testing.T) {
		st := newRoom(t, 1, 2, 3, 4)
		require.NoError(t, st.Start(1))
		assert.ErrorIs(t, st.Join(5, DifficultyNormal), errs.ErrRoomFull)
	})

	t.Run("member of started room", func(t *testing.T) {
		st := newRoom(t, 1, 2)
		require.NoError(t, st.Start(1))
		assert.ErrorIs(t, st.Join(2, DifficultyNormal), errs.ErrOther)
	})

	t.Run("already a member", func(t *testing.T) {
		st := newRoom(t, 1, 2)
		assert.ErrorIs(t, st.Join(2, DifficultyNormal), errs.ErrOther)
		assert.Len(t, st.Members, 2)
	})
}

func TestStart(t *testing.T) {
	st := newRoom(t, 1, 2)

	assert.ErrorIs(t, st.Start(2), errs.ErrPermissionDenied)
	assert.ErrorIs(t, st.Start(99), errs.ErrPermissionDenied)
	assert.Equal(t, StatusWaiting, st.Room.Status)

	require.NoError(t, st.Start(1))
	assert.Equal(t, StatusLiveStart, st.Room.Status)
	assert.Equal(t, WaitLiveStart, st.WaitStatus())

	assert.ErrorIs(t, st.Start(1), errs.ErrInvalidStateTransition)
}

func TestLeave(t *testing.T) {
	t.Run("host passes to earliest remaining member", func(t *testing.T) {
		st := newRoom(t, 1, 2, 3)
		require.NoError(t, st.Leave(1))

		assert.Equal(t, int64(2), st.Room.HostUserID)
		assert.True(t, st.Member(2).IsHost)
		assert.False(t, st.Member(3).IsHost)
		assert.Equal(t, StatusWaiting, st.Room.Status)
	})

	t.Run("non-host leaves", func(t *testing.T) {
		st := newRoom(t, 1, 2, 3)
		require.NoError(t, st.Leave(2))

		assert.Equal(t, int64(1), st.Room.HostUserID)
		assert.Nil(t, st.Member(2))
		assert.Len(t, st.Members, 2)
	})

	t.Run("last member dissolves", func(t *testing.T) {
		st := newRoom(t, 1)
		require.NoError(t, st.Start(1))
		require.NoError(t, st.Leave(1))

		assert.Equal(t, StatusDissolved, st.Room.Status)
		assert.Equal(t, WaitDissolution, st.WaitStatus())
		assert.Zero(t, st.Room.HostUserID)
		assert.Empty(t, st.Members)
	})

	t.Run("not a member", func(t *testing.T) {
		st := newRoom(t, 1)
		assert.ErrorIs(t, st.Leave(2), errs.ErrNotFound)
	})

	t.Run("exactly one host at all times", func(t *testing.T) {
		st := newRoom(t, 1, 2, 3, 4)
		for _, id := range []int64{1, 3, 2} {
			require.NoError(t, st.Leave(id))
			hosts := 0
			for _, m := range st.Members {
				if m.IsHost {
					hosts++
					assert.Equal(t, st.Room.HostUserID, m.UserID)
				}
			}
			assert.Equal(t, 1, hosts)
		}
	})
}

func TestReportLiveEnd(t *testing.T) {
	st := newRoom(t, 1, 2)
	report := LiveEndReport{JudgeCounts: []int{10, 2, 0, 0, 1}, Score: 9000}

	assert.ErrorIs(t, st.ReportLiveEnd(1, report), errs.ErrInvalidStateTransition)

	require.NoError(t, st.Start(1))
	assert.ErrorIs(t, st.ReportLiveEnd(99, report), errs.ErrNotFound)

	require.NoError(t, st.ReportLiveEnd(1, report))
	report.JudgeCounts[0] = 0
	assert.Equal(t, []int{10, 2, 0, 0, 1}, st.Member(1).Report.JudgeCounts)

	require.NoError(t, st.ReportLiveEnd(1, LiveEndReport{JudgeCounts: []int{1}, Score: 1}))
	assert.Equal(t, 1, st.Member(1).Report.Score)
}

func TestClone(t *testing.T) {
	st := newRoom(t, 1, 2)
	require.NoError(t, st.Start(1))
	require.NoError(t, st.ReportLiveEnd(1, LiveEndReport{JudgeCounts: []int{1, 2}, Score: 3}))

	c := st.Clone()
	c.Members[0].Report.JudgeCounts[0] = 100
	c.Members[1].IsHost = true
	require.NoError(t, c.Leave(2))

	assert.Equal(t, []int{1, 2}, st.Member(1).Report.JudgeCounts)
	assert.False(t, st.Member(2).IsHost)
	assert.Len(t, st.Members, 2)
}

func TestResults(t *testing.T) {
	st := newRoom(t, 1, 2, 3)
	assert.Empty(t, st.Results())
	assert.NotNil(t, st.Results())

	require.NoError(t, st.Start(1))
	require.NoError(t, st.ReportLiveEnd(3, LiveEndReport{JudgeCounts: []int{3}, Score: 30}))
	require.NoError(t, st.ReportLiveEnd(1, LiveEndReport{JudgeCounts: []int{1}, Score: 10}))
	assert.False(t, st.BarrierMet())
	assert.Empty(t, st.Results())

	// The missing reporter leaves; the barrier now covers only 1 and 3.
	require.NoError(t, st.Leave(2))
	assert.True(t, st.BarrierMet())
	assert.Equal(t, []ResultUser{
		{UserID: 1, JudgeCountList: []int{1}, Score: 10},
		{UserID: 3, JudgeCountList: []int{3}, Score: 30},
	}, st.Results())
}

func TestResultsEmptyJudgeCounts(t *testing.T) {
	st := newRoom(t, 1)
	require.NoError(t, st.Start(1))
	require.NoError(t, st.ReportLiveEnd(1, LiveEndReport{Score: 5}))

	results := st.Results()
	require.Len(t, results, 1)
	assert.NotNil(t, results[0].JudgeCountList)
	assert.Empty(t, results[0].JudgeCountList)
}

func TestDissolvedRoomHasNoResults(t *testing.T) {
	st := newRoom(t, 1)
	require.NoError(t, st.Start(1))
	require.NoError(t, st.ReportLiveEnd(1, LiveEndReport{JudgeCounts: []int{1}, Score: 1}))
	require.NoError(t, st.Leave(1))

	assert.False(t, st.BarrierMet())
	assert.Empty(t, st.Results())
}
