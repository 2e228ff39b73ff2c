package domain

// Outbound event names.
const (
	EventRoomCreated     = "ROOM_CREATED"
	EventRoomJoined      = "ROOM_JOINED"
	EventPlayerJoined    = "PLAYER_JOINED"
	EventPlayerLeaving   = "PLAYER_LEAVING"
	EventRoomLeft        = "ROOM_LEFT"
	EventHostChanged     = "HOST_CHANGED"
	EventRoomUpdated     = "ROOM_UPDATED"
	EventRoomDeleted     = "ROOM_DELETED"
	EventRoomList        = "ROOM_LIST"
	EventGameStarted     = "GAME_STARTED"
	EventQuestionSend    = "QUESTION_SEND"
	EventQuestion        = "QUESTION"
	EventRespondQuestion = "RESPOND_QUESTION"
	EventRespondGuess    = "RESPOND_GUESS"
	EventGuessSend       = "GUESS_SEND"
	EventGuess           = "GUESS"
	EventNextTurn        = "NEXT_TURN"
	EventEndGame         = "END_GAME"
	EventChat            = "CHAT"
	EventError           = "ERROR"
)

// Inbound command names, the "type" of a client websocket message.
const (
	CommandRoomCreate      = "room_create"
	CommandRoomJoin        = "room_join"
	CommandRoomLeave       = "room_leave"
	CommandRoomList        = "room_list"
	CommandGameStart       = "game_start"
	CommandQuestion        = "question"
	CommandRespondQuestion = "respond_question"
	CommandGuess           = "guess"
	CommandRespondGuess    = "respond_guess"
	CommandPassTurn        = "pass_turn"
	CommandChat            = "chat"
)

// RoomRef identifies a room in ROOM_LEFT and ROOM_DELETED.
type RoomRef struct {
	RoomID int64 `json:"roomId"`
}

type PlayerLeaving struct {
	RoomID   int64  `json:"roomId"`
	UserID   int64  `json:"userId"`
	Nickname string `json:"nickname"`
}

// GuessReceipt confirms a queued guess to its sender.
type GuessReceipt struct {
	SenderID          int64  `json:"senderId"`
	Guess             string `json:"guess"`
	RemainingAttempts int    `json:"remainingAttempts"`
}
