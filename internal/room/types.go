package room

import "time"

// LiveDifficulty is the difficulty a member plays the song at.
type LiveDifficulty int

const (
	DifficultyNormal LiveDifficulty = 1
	DifficultyHard   LiveDifficulty = 2
)

// Valid reports whether d is one of the known difficulties.
func (d LiveDifficulty) Valid() bool {
	return d == DifficultyNormal || d == DifficultyHard
}

// Status is the lifecycle state of a room. It only moves forward:
// Waiting -> LiveStart -> Dissolved, or Waiting -> Dissolved.
type Status int

const (
	StatusWaiting   Status = 1
	StatusLiveStart Status = 2
	StatusDissolved Status = 3
)

func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "waiting"
	case StatusLiveStart:
		return "live_start"
	case StatusDissolved:
		return "dissolved"
	default:
		return "unknown"
	}
}

// JoinResult is the outcome of a join attempt.
type JoinResult int

const (
	JoinOk         JoinResult = 1
	JoinRoomFull   JoinResult = 2
	JoinDisbanded  JoinResult = 3
	JoinOtherError JoinResult = 4
)

// WaitStatus mirrors Status for polling clients.
type WaitStatus int

const (
	WaitWaiting     WaitStatus = 1
	WaitLiveStart   WaitStatus = 2
	WaitDissolution WaitStatus = 3
)

// DefaultMaxMembers is the capacity used when none is configured.
const DefaultMaxMembers = 4

// Room is the room row.
type Room struct {
	ID         int64
	LiveID     int64
	Difficulty LiveDifficulty
	Status     Status
	MaxMembers int
	HostUserID int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LiveEndReport is what a member submits after playing.
type LiveEndReport struct {
	JudgeCounts []int
	Score       int
}

// Member is one membership row. Seq orders members by join time; zero means
// the row has not been stored yet.
type Member struct {
	Seq        int64
	UserID     int64
	Difficulty LiveDifficulty
	IsHost     bool
	Report     *LiveEndReport
}

// Info is a room listing entry.
type Info struct {
	RoomID          int64 `json:"room_id"`
	LiveID          int64 `json:"live_id"`
	JoinedUserCount int   `json:"joined_user_count"`
	MaxUserCount    int   `json:"max_user_count"`
}

// RoomUser is a wait-room entry as seen by one caller.
type RoomUser struct {
	UserID           int64          `json:"user_id"`
	Name             string         `json:"name"`
	LeaderCardID     int64          `json:"leader_card_id"`
	SelectDifficulty LiveDifficulty `json:"select_difficulty"`
	IsMe             bool           `json:"is_me"`
	IsHost           bool           `json:"is_host"`
}

// ResultUser is one row of a published result.
type ResultUser struct {
	UserID         int64 `json:"user_id"`
	JudgeCountList []int `json:"judge_count_list"`
	Score          int   `json:"score"`
}
