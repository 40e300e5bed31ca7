package room

import (
	"fmt"

	"liveroom/backend/internal/errs"
)

// State is a room together with its members in join order. Stores hand out
// copies; a mutation is applied to a clone and published only if it succeeds.
type State struct {
	Room    Room
	Members []Member
}

// NewState builds a Waiting room whose only member is the host.
func NewState(hostUserID, liveID int64, difficulty LiveDifficulty, maxMembers int) *State {
	return &State{
		Room: Room{
			LiveID:     liveID,
			Difficulty: difficulty,
			Status:     StatusWaiting,
			MaxMembers: maxMembers,
			HostUserID: hostUserID,
		},
		Members: []Member{{
			UserID:     hostUserID,
			Difficulty: difficulty,
			IsHost:     true,
		}},
	}
}

// Clone returns a deep copy.
func (s *State) Clone() *State {
	c := &State{Room: s.Room, Members: make([]Member, len(s.Members))}
	for i, m := range s.Members {
		c.Members[i] = m
		if m.Report != nil {
			r := *m.Report
			r.JudgeCounts = append([]int(nil), m.Report.JudgeCounts...)
			c.Members[i].Report = &r
		}
	}
	return c
}

// Member returns the membership of userID, or nil.
func (s *State) Member(userID int64) *Member {
	for i := range s.Members {
		if s.Members[i].UserID == userID {
			return &s.Members[i]
		}
	}
	return nil
}

// Info returns the listing entry for the room.
func (s *State) Info() Info {
	return Info{
		RoomID:          s.Room.ID,
		LiveID:          s.Room.LiveID,
		JoinedUserCount: len(s.Members),
		MaxUserCount:    s.Room.MaxMembers,
	}
}

// WaitStatus maps the room status for polling clients.
func (s *State) WaitStatus() WaitStatus {
	switch s.Room.Status {
	case StatusLiveStart:
		return WaitLiveStart
	case StatusDissolved:
		return WaitDissolution
	default:
		return WaitWaiting
	}
}

// Join adds userID as a non-host member. Checks run in order: dissolved,
// full, duplicate, not waiting.
func (s *State) Join(userID int64, difficulty LiveDifficulty) error {
	if s.Room.Status == StatusDissolved {
		return errs.ErrDisbanded
	}
	if len(s.Members) >= s.Room.MaxMembers {
		return errs.ErrRoomFull
	}
	if s.Member(userID) != nil {
		return fmt.Errorf("user %d already in room %d: %w", userID, s.Room.ID, errs.ErrOther)
	}
	if s.Room.Status != StatusWaiting {
		return fmt.Errorf("room %d is %s: %w", s.Room.ID, s.Room.Status, errs.ErrInvalidStateTransition)
	}
	s.Members = append(s.Members, Member{UserID: userID, Difficulty: difficulty})
	return nil
}

// Start moves the room from Waiting to LiveStart. Only the host may start it.
func (s *State) Start(userID int64) error {
	m := s.Member(userID)
	if m == nil || !m.IsHost || s.Room.HostUserID != userID {
		return fmt.Errorf("user %d is not host of room %d: %w", userID, s.Room.ID, errs.ErrPermissionDenied)
	}
	if s.Room.Status != StatusWaiting {
		return fmt.Errorf("start room %d in status %s: %w", s.Room.ID, s.Room.Status, errs.ErrInvalidStateTransition)
	}
	s.Room.Status = StatusLiveStart
	return nil
}

// Leave removes userID. The host role passes to the earliest remaining member;
// an empty room is dissolved whatever its status was.
func (s *State) Leave(userID int64) error {
	idx := -1
	for i := range s.Members {
		if s.Members[i].UserID == userID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("user %d not in room %d: %w", userID, s.Room.ID, errs.ErrNotFound)
	}
	wasHost := s.Members[idx].IsHost
	s.Members = append(s.Members[:idx], s.Members[idx+1:]...)

	if len(s.Members) == 0 {
		s.Room.Status = StatusDissolved
		s.Room.HostUserID = 0
		return nil
	}
	if wasHost {
		s.Members[0].IsHost = true
		s.Room.HostUserID = s.Members[0].UserID
	}
	return nil
}

// ReportLiveEnd records the member's report, replacing any earlier one.
func (s *State) ReportLiveEnd(userID int64, report LiveEndReport) error {
	if s.Room.Status != StatusLiveStart {
		return fmt.Errorf("report in status %s: %w", s.Room.Status, errs.ErrInvalidStateTransition)
	}
	m := s.Member(userID)
	if m == nil {
		return fmt.Errorf("user %d not in room %d: %w", userID, s.Room.ID, errs.ErrNotFound)
	}
	report.JudgeCounts = append([]int(nil), report.JudgeCounts...)
	m.Report = &report
	return nil
}
