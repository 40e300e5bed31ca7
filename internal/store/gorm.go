package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"liveroom/backend/internal/errs"
	"liveroom/backend/internal/models"
	"liveroom/backend/internal/room"
	"liveroom/backend/internal/user"
)

// Gorm stores rooms and users in PostgreSQL. Room mutations lock the room row
// for the length of a transaction, so concurrent writers on one room queue up
// behind each other while other rooms proceed.
type Gorm struct {
	db *gorm.DB
}

// NewGorm wraps an opened and migrated connection.
func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// region --- Rooms ---

func (g *Gorm) CreateRoom(ctx context.Context, st *room.State) (int64, error) {
	row := models.Room{
		LiveID:     st.Room.LiveID,
		Difficulty: int(st.Room.Difficulty),
		Status:     int(st.Room.Status),
		MaxMembers: st.Room.MaxMembers,
		HostUserID: uint(st.Room.HostUserID),
	}

	// Room and its first members are created together or not at all
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		for _, m := range st.Members {
			member := newMemberRow(row.ID, m)
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, errs.Storage("create room", err)
	}
	return int64(row.ID), nil
}

func (g *Gorm) Room(ctx context.Context, id int64) (*room.State, error) {
	// Room and members must come from the same snapshot
	var st *room.State
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		st, err = loadState(tx, id, false)
		return err
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, asStorage("read room", err)
	}
	return st, nil
}

func (g *Gorm) ListWaiting(ctx context.Context, liveID int64) ([]room.Info, error) {
	type infoRow struct {
		ID          uint
		LiveID      int64
		MaxMembers  int
		MemberCount int
	}

	query := g.db.WithContext(ctx).Model(&models.Room{}).
		Select("rooms.id, rooms.live_id, rooms.max_members, COUNT(room_members.id) AS member_count").
		Joins("LEFT JOIN room_members ON room_members.room_id = rooms.id").
		Where("rooms.status = ?", int(room.StatusWaiting)).
		Group("rooms.id").
		Order("rooms.id")

	if liveID != 0 {
		query = query.Where("rooms.live_id = ?", liveID)
	}

	var rows []infoRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, errs.Storage("list rooms", err)
	}

	out := make([]room.Info, 0, len(rows))
	for _, r := range rows {
		out = append(out, room.Info{
			RoomID:          int64(r.ID),
			LiveID:          r.LiveID,
			JoinedUserCount: r.MemberCount,
			MaxUserCount:    r.MaxMembers,
		})
	}
	return out, nil
}

func (g *Gorm) UpdateRoom(ctx context.Context, id int64, fn func(*room.State) error) error {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cur, err := loadState(tx, id, true)
		if err != nil {
			return err
		}

		next := cur.Clone()
		if err := fn(next); err != nil {
			return err
		}

		return errs.Storage("update room", persist(tx, cur, next))
	})
	return asStorage("commit room", err)
}

// PurgeDissolved hard-deletes rooms dissolved before the given time.
func (g *Gorm) PurgeDissolved(ctx context.Context, before time.Time) (int64, error) {
	result := g.db.WithContext(ctx).Unscoped().
		Where("status = ? AND updated_at < ?", int(room.StatusDissolved), before).
		Delete(&models.Room{})
	if result.Error != nil {
		return 0, errs.Storage("purge rooms", result.Error)
	}
	return result.RowsAffected, nil
}

// endregion

// region --- Users ---

func (g *Gorm) CreateUser(ctx context.Context, name string, leaderCardID int64, tokenDigest string) (int64, error) {
	row := models.User{Name: name, LeaderCardID: leaderCardID, TokenDigest: tokenDigest}
	if err := g.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, errs.Storage("create user", err)
	}
	return int64(row.ID), nil
}

func (g *Gorm) UserByTokenDigest(ctx context.Context, tokenDigest string) (*user.User, error) {
	var row models.User
	err := g.db.WithContext(ctx).Where("token_digest = ?", tokenDigest).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user by token: %w", errs.ErrNotFound)
	}
	if err != nil {
		return nil, errs.Storage("user by token", err)
	}
	return toUser(row), nil
}

func (g *Gorm) UpdateUser(ctx context.Context, tokenDigest, name string, leaderCardID int64) error {
	result := g.db.WithContext(ctx).Model(&models.User{}).
		Where("token_digest = ?", tokenDigest).
		Updates(map[string]interface{}{"name": name, "leader_card_id": leaderCardID})
	if result.Error != nil {
		return errs.Storage("update user", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user by token: %w", errs.ErrNotFound)
	}
	return nil
}

func (g *Gorm) UsersByIDs(ctx context.Context, ids []int64) (map[int64]user.User, error) {
	var rows []models.User
	if err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, errs.Storage("users by ids", err)
	}
	out := make(map[int64]user.User, len(rows))
	for _, row := range rows {
		out[int64(row.ID)] = *toUser(row)
	}
	return out, nil
}

// endregion

// region --- Helpers ---

// loadState reads a room and its members inside tx, optionally locking the room row.
func loadState(tx *gorm.DB, id int64, lock bool) (*room.State, error) {
	q := tx
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var row models.Room
	err := q.First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("room %d: %w", id, errs.ErrNotFound)
	}
	if err != nil {
		return nil, errs.Storage("load room", err)
	}

	var members []models.RoomMember
	if err := tx.Where("room_id = ?", row.ID).Order("id").Find(&members).Error; err != nil {
		return nil, errs.Storage("load members", err)
	}

	st := &room.State{
		Room: room.Room{
			ID:         int64(row.ID),
			LiveID:     row.LiveID,
			Difficulty: room.LiveDifficulty(row.Difficulty),
			Status:     room.Status(row.Status),
			MaxMembers: row.MaxMembers,
			HostUserID: int64(row.HostUserID),
			CreatedAt:  row.CreatedAt,
			UpdatedAt:  row.UpdatedAt,
		},
		Members: make([]room.Member, 0, len(members)),
	}
	for _, m := range members {
		member := room.Member{
			Seq:        int64(m.ID),
			UserID:     int64(m.UserID),
			Difficulty: room.LiveDifficulty(m.Difficulty),
			IsHost:     m.IsHost,
		}
		if m.Reported {
			member.Report = &room.LiveEndReport{JudgeCounts: m.JudgeCounts, Score: m.Score}
		}
		st.Members = append(st.Members, member)
	}
	return st, nil
}

// persist writes the difference between cur and next.
func persist(tx *gorm.DB, cur, next *room.State) error {
	if cur.Room.Status != next.Room.Status || cur.Room.HostUserID != next.Room.HostUserID {
		err := tx.Model(&models.Room{Model: gorm.Model{ID: uint(cur.Room.ID)}}).
			Select("Status", "HostUserID", "UpdatedAt").
			Updates(models.Room{
				Model:      gorm.Model{UpdatedAt: time.Now()},
				Status:     int(next.Room.Status),
				HostUserID: uint(next.Room.HostUserID),
			}).Error
		if err != nil {
			return err
		}
	}

	kept := make(map[int64]room.Member, len(next.Members))
	for _, m := range next.Members {
		kept[m.UserID] = m
	}

	var removed []uint
	for _, m := range cur.Members {
		if _, ok := kept[m.UserID]; !ok {
			removed = append(removed, uint(m.UserID))
		}
	}
	if len(removed) > 0 {
		if err := tx.Where("room_id = ? AND user_id IN ?", cur.Room.ID, removed).
			Delete(&models.RoomMember{}).Error; err != nil {
			return err
		}
	}

	for _, m := range next.Members {
		old := cur.Member(m.UserID)
		if old == nil {
			row := newMemberRow(uint(cur.Room.ID), m)
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			continue
		}
		if memberEqual(*old, m) {
			continue
		}
		row := newMemberRow(uint(cur.Room.ID), m)
		if err := tx.Model(&models.RoomMember{ID: uint(old.Seq)}).
			Select("IsHost", "Reported", "JudgeCounts", "Score").
			Updates(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// asStorage passes domain and storage errors through and wraps anything else,
// such as a failed commit, as a storage error.
func asStorage(op string, err error) error {
	if err == nil || errs.IsStorage(err) {
		return err
	}
	for _, sentinel := range []error{
		errs.ErrNotFound, errs.ErrRoomFull, errs.ErrDisbanded, errs.ErrPermissionDenied,
		errs.ErrInvalidStateTransition, errs.ErrOther, errs.ErrNotAuthenticated,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	return errs.Storage(op, err)
}

func newMemberRow(roomID uint, m room.Member) models.RoomMember {
	row := models.RoomMember{
		RoomID:     roomID,
		UserID:     uint(m.UserID),
		Difficulty: int(m.Difficulty),
		IsHost:     m.IsHost,
	}
	if m.Report != nil {
		row.Reported = true
		row.JudgeCounts = m.Report.JudgeCounts
		row.Score = m.Report.Score
	}
	return row
}

func memberEqual(a, b room.Member) bool {
	if a.IsHost != b.IsHost || (a.Report == nil) != (b.Report == nil) {
		return false
	}
	if a.Report == nil {
		return true
	}
	return a.Report.Score == b.Report.Score && slices.Equal(a.Report.JudgeCounts, b.Report.JudgeCounts)
}

func toUser(row models.User) *user.User {
	return &user.User{ID: int64(row.ID), Name: row.Name, LeaderCardID: row.LeaderCardID}
}

// endregion
