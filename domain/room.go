package domain

import "strings"

type RoomState string

const (
	RoomWaiting  RoomState = "WAITING"
	RoomStarting RoomState = "STARTING"
	RoomPlaying  RoomState = "PLAYING"
)

// ParseRoomState accepts the state names case-insensitively.
func ParseRoomState(s string) (RoomState, bool) {
	switch RoomState(strings.ToUpper(strings.TrimSpace(s))) {
	case RoomWaiting:
		return RoomWaiting, true
	case RoomStarting:
		return RoomStarting, true
	case RoomPlaying:
		return RoomPlaying, true
	}
	return "", false
}

type PlayerRole string

const (
	RoleHost        PlayerRole = "HOST"
	RoleQuestioner  PlayerRole = "QUESTIONER"
	RoleParticipant PlayerRole = "PARTICIPANT"
)

type PlayerState string

const (
	PlayerReady        PlayerState = "READY"
	PlayerPlaying      PlayerState = "PLAYING"
	PlayerDisconnected PlayerState = "DISCONNECTED"
)

type PuzzleSource string

const (
	SourceOriginal PuzzleSource = "ORIGINAL"
	SourceCustom   PuzzleSource = "CUSTOM"
)

// Puzzle is the riddle a room plays with. Answer is only shown to the host
// until the round ends.
type Puzzle struct {
	ID      string       `json:"puzzleId"`
	Source  PuzzleSource `json:"source"`
	Title   string       `json:"title"`
	Content string       `json:"content"`
	Answer  string       `json:"answer,omitempty"`
}

type User struct {
	ID       int64  `json:"userId"`
	Nickname string `json:"nickname"`
}

type PlayerResponse struct {
	UserID   int64       `json:"userId"`
	Nickname string      `json:"nickname"`
	Role     PlayerRole  `json:"role"`
	State    PlayerState `json:"state"`
	Attempts int         `json:"answerAttempts"`
}

type RoomResponse struct {
	RoomID         int64            `json:"roomId"`
	Title          string           `json:"title"`
	MaxPlayers     int              `json:"maxPlayers"`
	CurrentPlayers int              `json:"currentPlayers"`
	TimeLimit      int              `json:"timeLimit"`
	State          RoomState        `json:"state"`
	HostID         int64            `json:"hostId"`
	Puzzle         *Puzzle          `json:"puzzle,omitempty"`
	Players        []PlayerResponse `json:"players"`
}

type RoomListResponse struct {
	Rooms      []RoomResponse `json:"rooms"`
	TotalCount int            `json:"totalCount"`
	State      string         `json:"state,omitempty"`
}

// RoomSettings is what a host picks when opening a room.
type RoomSettings struct {
	MaxPlayers   int
	TimeLimit    int
	Title        string
	PuzzleID     string
	PuzzleSource PuzzleSource
}
