package domain

import "time"

type AnswerStatus string

const (
	AnswerPending    AnswerStatus = "PENDING"
	AnswerYes        AnswerStatus = "YES"
	AnswerNo         AnswerStatus = "NO"
	AnswerIrrelevant AnswerStatus = "IRRELEVANT"
	AnswerCorrect    AnswerStatus = "CORRECT"
	AnswerIncorrect  AnswerStatus = "INCORRECT"
)

type HistoryType string

const (
	HistoryQuestion HistoryType = "QUESTION"
	HistoryGuess    HistoryType = "GUESS"
)

type EndReason string

const (
	EndCorrectAnswer     EndReason = "CORRECT_ANSWER"
	EndExhaustedAttempts EndReason = "EXHAUSTED_ATTEMPTS"
	EndTimeout           EndReason = "TIMEOUT"
)

// QnA is one transcript entry, a question with its answer or a guess with
// its verdict.
type QnA struct {
	Type    HistoryType  `json:"type"`
	ActorID int64        `json:"questionerId"`
	Text    string       `json:"question"`
	Status  AnswerStatus `json:"answer"`
}

type GuessPayload struct {
	SenderID int64  `json:"senderId"`
	Guess    string `json:"guess"`
}

type GameStatus struct {
	RemainingQuestions int `json:"remainingQuestions"`
	TotalQuestions     int `json:"totalQuestions"`
}

type CurrentTurn struct {
	QuestionerID int64  `json:"questionerId"`
	Nickname     string `json:"nickname"`
	TurnIndex    int    `json:"turnIndex"`
}

type GameInfo struct {
	RoomID      int64            `json:"roomId"`
	RoomState   RoomState        `json:"roomState"`
	GameStatus  GameStatus       `json:"gameStatus"`
	CurrentTurn CurrentTurn      `json:"currentTurn"`
	TurnOrder   []int64          `json:"turnOrder"`
	Players     []PlayerResponse `json:"players"`
}

type QuestionPayload struct {
	HostID   int64  `json:"hostId"`
	SenderID int64  `json:"senderId"`
	Nickname string `json:"nickname"`
	Question string `json:"question"`
}

type AnswerPayload struct {
	QnA       QnA           `json:"qnA"`
	NextGuess *GuessPayload `json:"nextGuessDto"`
}

type NextTurn struct {
	NextPlayerID       int64  `json:"nextPlayerId"`
	NextPlayerNickname string `json:"nextPlayerNickname"`
	RemainingQuestions int    `json:"remainingQuestions"`
}

type ChatMessage struct {
	SenderID  int64     `json:"senderId"`
	Nickname  string    `json:"nickname"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type WinnerInfo struct {
	WinnerID int64  `json:"winnerId"`
	Nickname string `json:"nickname"`
}

type EndPuzzle struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Guess   string `json:"guess,omitempty"`
	Answer  string `json:"answer"`
}

// EndSummary is the END_GAME payload.
type EndSummary struct {
	Reason             EndReason   `json:"endReason"`
	Winner             *WinnerInfo `json:"winnerInfo"`
	Puzzle             EndPuzzle   `json:"problem"`
	TotalQuestionCount int         `json:"totalQuestionCount"`
	PlayTime           string      `json:"playTime"`
	History            []QnA       `json:"history"`
}

// RoundResult is what gets recorded once a round is over.
type RoundResult struct {
	RoomID        int64        `json:"roomId"`
	PuzzleID      string       `json:"puzzleId"`
	PuzzleSource  PuzzleSource `json:"puzzleSource"`
	Reason        EndReason    `json:"endReason"`
	WinnerID      int64        `json:"winnerId,omitempty"`
	QuestionCount int          `json:"questionCount"`
	PlayTime      string       `json:"playTime"`
	PlayerIDs     []int64      `json:"playerIds"`
	EndedAt       time.Time    `json:"endedAt"`
}

type RankingEntry struct {
	UserID int64 `json:"userId"`
	Wins   int64 `json:"wins"`
}
