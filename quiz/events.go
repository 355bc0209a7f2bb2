package quiz

import "encoding/json"

// Inbound event names.
const (
	EventCreateRoom          = "createRoom"
	EventUpdateRoomLimit     = "updateRoomLimit"
	EventJoinRoom            = "joinRoom"
	EventStartGame           = "startGame"
	EventSelectQuestion      = "selectQuestion"
	EventCellClicked         = "cellClicked"
	EventUpdateScores        = "updateScores"
	EventOpenQuestionModal   = "openQuestionModal"
	EventRevealAnswer        = "revealAnswer"
	EventAllocatePoints      = "allocatePoints"
	EventDailyDouble         = "dailyDouble"
	EventCloseQuestionModal  = "closeQuestionModal"
	EventAdvanceStage        = "advanceStage"
	EventRevealFinalCategory = "revealFinalCategory"
	EventStartFinalJeopardy  = "startFinalJeopardy"
	EventSubmitFinalWager    = "submitFinalWager"
	EventSubmitFinalAnswer   = "submitFinalAnswer"
	EventRevealFinalResults  = "revealFinalResults"
	EventSendMessage         = "sendMessage"
)

// Broadcast event names. dailyDouble is relayed under its inbound name.
const (
	EventRoomUpdated           = "roomUpdated"
	EventRoomClosed            = "roomClosed"
	EventPlayersUpdated        = "playersUpdated"
	EventGameStarted           = "gameStarted"
	EventQuestionSelected      = "questionSelected"
	EventCellRevealed          = "cellRevealed"
	EventScoresUpdated         = "scoresUpdated"
	EventModalUpdated          = "modalUpdated"
	EventStageAdvanced         = "stageAdvanced"
	EventChatUpdated           = "chatUpdated"
	EventFinalCategoryRevealed = "finalCategoryRevealed"
	EventFinalRoundStarted     = "finalRoundStarted"
	EventFinalWagersUpdated    = "finalWagersUpdated"
	EventFinalAnswersUpdated   = "finalAnswersUpdated"
	EventFinalRevealEnabled    = "finalRevealEnabled"
	EventFinalResults          = "finalResults"
)

// Acknowledgements, sent to the requesting session only.

type CreateRoomAck struct {
	Code string `json:"code"`
}

type JoinRoomAck struct {
	Code        string   `json:"code"`
	Player      Player   `json:"player"`
	RoomPlayers []Player `json:"roomPlayers"`
}

type ErrorAck struct {
	Error string `json:"error"`
}

// Broadcast payloads.

type RoomState struct {
	Code            string         `json:"code"`
	Limit           int            `json:"limit"`
	Players         []Player       `json:"players"`
	Chat            []ChatMessage  `json:"chat"`
	Board           Board          `json:"board"`
	CurrentQuestion *ModalQuestion `json:"currentQuestion"`
}

type RoomClosed struct {
	Code string `json:"code"`
}

type PlayersUpdate struct {
	Players []Player `json:"players"`
}

type GameStarted struct {
	Board  Board             `json:"board"`
	Scores map[string]Number `json:"scores"`
}

type ScoresUpdate struct {
	Scores map[string]Number `json:"scores"`
}

type CellRevealed struct {
	Col      int      `json:"col"`
	Row      int      `json:"row"`
	Question Question `json:"question"`
}

type StageAdvanced struct {
	Stage any   `json:"stage"`
	Board Board `json:"board"`
}

type ChatUpdate struct {
	Chat []ChatMessage `json:"chat"`
}

type FinalCategory struct {
	Category string `json:"category"`
}

// FinalRoundStarted includes the answer; every client gets it up front.
type FinalRoundStarted struct {
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Media    string `json:"media,omitempty"`
}

type WagersUpdate struct {
	Wagers       map[SessionID]int `json:"wagers"`
	AllSubmitted bool              `json:"allSubmitted"`
}

type AnswersUpdate struct {
	Submitted    map[SessionID]bool `json:"submitted"`
	AllSubmitted bool               `json:"allSubmitted"`
}

type FinalResult struct {
	ID      SessionID `json:"id"`
	Name    string    `json:"name"`
	Wager   int       `json:"wager"`
	Answer  string    `json:"answer"`
	Correct bool      `json:"correct"`
	Score   int       `json:"score"`
}

type FinalResults struct {
	Results       []FinalResult `json:"results"`
	CorrectAnswer string        `json:"correctAnswer"`
}

// request is the union of every inbound payload's fields.
type request struct {
	Code     string            `json:"code"`
	Limit    Number            `json:"limit"`
	Name     string            `json:"name"`
	Board    Board             `json:"board"`
	Scores   map[string]Number `json:"scores"`
	Question *Question         `json:"question"`
	Col      Number            `json:"col"`
	Row      Number            `json:"row"`
	PlayerID SessionID         `json:"playerId"`
	Points   Number            `json:"points"`
	Wager    Number            `json:"wager"`
	Answer   string            `json:"answer"`
	Category string            `json:"category"`
	Stage    any               `json:"stage"`
	Message  string            `json:"message"`

	raw json.RawMessage
}
