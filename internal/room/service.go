package room

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"liveroom/backend/internal/errs"
)

// Service runs the room lifecycle. Every call authenticates its token first;
// polling calls never block on other clients.
type Service struct {
	store      Store
	users      Users
	maxMembers int
	logger     *zap.Logger
}

// NewService creates a Service. A non-positive maxMembers uses DefaultMaxMembers.
func NewService(store Store, users Users, maxMembers int, logger *zap.Logger) *Service {
	if maxMembers <= 0 {
		maxMembers = DefaultMaxMembers
	}
	return &Service{store: store, users: users, maxMembers: maxMembers, logger: logger}
}

// CreateRoom opens a Waiting room with the caller as host and sole member.
func (s *Service) CreateRoom(ctx context.Context, token string, liveID int64, difficulty LiveDifficulty) (int64, error) {
	u, err := s.users.Authenticate(ctx, token)
	if err != nil {
		return 0, err
	}
	if !difficulty.Valid() {
		return 0, fmt.Errorf("difficulty %d: %w", difficulty, errs.ErrOther)
	}

	id, err := s.store.CreateRoom(ctx, NewState(u.ID, liveID, difficulty, s.maxMembers))
	if err != nil {
		return 0, fmt.Errorf("create room: %w", err)
	}

	s.logger.Info("room created",
		zap.Int64("room_id", id),
		zap.Int64("live_id", liveID),
		zap.Int64("host_user_id", u.ID),
	)
	return id, nil
}

// ListRooms returns the Waiting rooms for liveID, or for every live when liveID is 0.
func (s *Service) ListRooms(ctx context.Context, liveID int64) ([]Info, error) {
	rooms, err := s.store.ListWaiting(ctx, liveID)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

// JoinRoom adds the caller to a room. Domain refusals come back as a JoinResult;
// only authentication and storage failures are returned as errors.
func (s *Service) JoinRoom(ctx context.Context, token string, roomID int64, difficulty LiveDifficulty) (JoinResult, error) {
	u, err := s.users.Authenticate(ctx, token)
	if err != nil {
		return JoinOtherError, err
	}
	if !difficulty.Valid() {
		return JoinOtherError, nil
	}

	err = s.store.UpdateRoom(ctx, roomID, func(st *State) error {
		return st.Join(u.ID, difficulty)
	})
	switch {
	case err == nil:
		s.logger.Info("room joined", zap.Int64("room_id", roomID), zap.Int64("user_id", u.ID))
		return JoinOk, nil
	case errs.IsStorage(err):
		return JoinOtherError, fmt.Errorf("join room %d: %w", roomID, err)
	case errors.Is(err, errs.ErrDisbanded):
		return JoinDisbanded, nil
	case errors.Is(err, errs.ErrRoomFull):
		return JoinRoomFull, nil
	default:
		s.logger.Debug("join refused", zap.Int64("room_id", roomID), zap.Error(err))
		return JoinOtherError, nil
	}
}

// WaitRoom is the lobby poll: the room status and its current members.
// A dissolved room still answers, with WaitDissolution and no members.
func (s *Service) WaitRoom(ctx context.Context, token string, roomID int64) (WaitStatus, []RoomUser, error) {
	u, err := s.users.Authenticate(ctx, token)
	if err != nil {
		return 0, nil, err
	}

	st, err := s.store.Room(ctx, roomID)
	if err != nil {
		return 0, nil, fmt.Errorf("wait room %d: %w", roomID, err)
	}

	ids := make([]int64, 0, len(st.Members))
	for _, m := range st.Members {
		ids = append(ids, m.UserID)
	}
	profiles, err := s.users.Profiles(ctx, ids)
	if err != nil {
		return 0, nil, fmt.Errorf("wait room %d: %w", roomID, err)
	}

	members := make([]RoomUser, 0, len(st.Members))
	for _, m := range st.Members {
		p := profiles[m.UserID]
		members = append(members, RoomUser{
			UserID:           m.UserID,
			Name:             p.Name,
			LeaderCardID:     p.LeaderCardID,
			SelectDifficulty: m.Difficulty,
			IsMe:             m.UserID == u.ID,
			IsHost:           m.IsHost,
		})
	}
	return st.WaitStatus(), members, nil
}

// StartRoom moves the room to LiveStart. Only the host may call it, and only once.
func (s *Service) StartRoom(ctx context.Context, token string, roomID int64) error {
	u, err := s.users.Authenticate(ctx, token)
	if err != nil {
		return err
	}

	if err := s.store.UpdateRoom(ctx, roomID, func(st *State) error {
		return st.Start(u.ID)
	}); err != nil {
		return fmt.Errorf("start room %d: %w", roomID, err)
	}

	s.logger.Info("room started", zap.Int64("room_id", roomID), zap.Int64("user_id", u.ID))
	return nil
}

// LeaveRoom removes the caller from the room in any status.
func (s *Service) LeaveRoom(ctx context.Context, token string, roomID int64) error {
	u, err := s.users.Authenticate(ctx, token)
	if err != nil {
		return err
	}

	var dissolved bool
	var newHost int64
	if err := s.store.UpdateRoom(ctx, roomID, func(st *State) error {
		prevHost := st.Room.HostUserID
		if err := st.Leave(u.ID); err != nil {
			return err
		}
		dissolved = st.Room.Status == StatusDissolved
		if st.Room.HostUserID != prevHost {
			newHost = st.Room.HostUserID
		}
		return nil
	}); err != nil {
		return fmt.Errorf("leave room %d: %w", roomID, err)
	}

	s.logger.Info("room left", zap.Int64("room_id", roomID), zap.Int64("user_id", u.ID))
	if dissolved {
		s.logger.Info("room dissolved", zap.Int64("room_id", roomID))
	} else if newHost != 0 {
		s.logger.Info("host transferred", zap.Int64("room_id", roomID), zap.Int64("host_user_id", newHost))
	}
	return nil
}
