package room

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// BarrierMet reports whether every current member has a live-end report.
// The expected reporters are the members present now, so a member who left
// without reporting no longer holds the barrier. A room without members never
// satisfies it.
func (s *State) BarrierMet() bool {
	if s.Room.Status != StatusLiveStart || len(s.Members) == 0 {
		return false
	}
	for _, m := range s.Members {
		if m.Report == nil {
			return false
		}
	}
	return true
}

// Results returns the result rows in join order, or an empty slice while the
// barrier is not met.
func (s *State) Results() []ResultUser {
	if !s.BarrierMet() {
		return []ResultUser{}
	}
	out := make([]ResultUser, 0, len(s.Members))
	for _, m := range s.Members {
		out = append(out, ResultUser{
			UserID:         m.UserID,
			JudgeCountList: append(make([]int, 0, len(m.Report.JudgeCounts)), m.Report.JudgeCounts...),
			Score:          m.Report.Score,
		})
	}
	return out
}

// ReportLiveEnd records the caller's judge counts and score. Submitting again
// overwrites the earlier report.
func (s *Service) ReportLiveEnd(ctx context.Context, token string, roomID int64, judgeCounts []int, score int) error {
	u, err := s.users.Authenticate(ctx, token)
	if err != nil {
		return err
	}

	var complete bool
	if err := s.store.UpdateRoom(ctx, roomID, func(st *State) error {
		if err := st.ReportLiveEnd(u.ID, LiveEndReport{JudgeCounts: judgeCounts, Score: score}); err != nil {
			return err
		}
		complete = st.BarrierMet()
		return nil
	}); err != nil {
		return fmt.Errorf("report live end in room %d: %w", roomID, err)
	}

	s.logger.Info("live end reported",
		zap.Int64("room_id", roomID),
		zap.Int64("user_id", u.ID),
		zap.Int("score", score),
	)
	if complete {
		s.logger.Info("result published", zap.Int64("room_id", roomID))
	}
	return nil
}

// Result polls for the room result. It stays empty until every member present
// at the time of the call has reported.
func (s *Service) Result(ctx context.Context, token string, roomID int64) ([]ResultUser, error) {
	if _, err := s.users.Authenticate(ctx, token); err != nil {
		return nil, err
	}

	st, err := s.store.Room(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("result of room %d: %w", roomID, err)
	}
	return st.Results(), nil
}
