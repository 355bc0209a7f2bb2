package quiz

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dispatch(t *testing.T, g *Game, id SessionID, event, data string) (any, bool) {
	t.Helper()

	var raw json.RawMessage
	if data != "" {
		raw = json.RawMessage(data)
	}
	return g.Dispatch(id, event, raw)
}

func TestDispatchCreateAndJoin(t *testing.T) {
	g, _, _ := newTestGame("ABC123")

	ack, ok := dispatch(t, g, "host", EventCreateRoom, `{"limit":"1"}`)
	require.True(t, ok)
	assert.Equal(t, CreateRoomAck{Code: "ABC123"}, ack)

	room, _ := g.Rooms().Room("ABC123")
	assert.Equal(t, 1, room.Limit)

	ack, ok = dispatch(t, g, "a", EventJoinRoom, `{"code":"ABC123","name":"Alice"}`)
	require.True(t, ok)
	joined := ack.(JoinRoomAck)
	assert.Equal(t, "ABC123", joined.Code)
	assert.Equal(t, Player{ID: "a", Name: "Alice"}, joined.Player)
	assert.Len(t, joined.RoomPlayers, 1)

	ack, ok = dispatch(t, g, "b", EventJoinRoom, `{"code":"ABC123","name":"Bob"}`)
	require.True(t, ok)
	assert.Equal(t, ErrorAck{Error: ErrRoomFull.Error()}, ack)

	ack, ok = dispatch(t, g, "b", EventJoinRoom, `{"code":"ZZZ999","name":"Bob"}`)
	require.True(t, ok)
	assert.Equal(t, ErrorAck{Error: ErrRoomNotFound.Error()}, ack)
}

func TestDispatchCreateRoomWithoutPayload(t *testing.T) {
	g, _, _ := newTestGame("ABC123")

	ack, ok := dispatch(t, g, "host", EventCreateRoom, "")
	require.True(t, ok)
	assert.Equal(t, CreateRoomAck{Code: "ABC123"}, ack)

	room, _ := g.Rooms().Room("ABC123")
	assert.Equal(t, DefaultLimit, room.Limit)
}

func TestDispatchIgnoresUnknownAndMalformed(t *testing.T) {
	g, rec, _ := newTestGame("ABC123")
	dispatch(t, g, "host", EventCreateRoom, `{}`)
	rec.reset()

	_, ok := dispatch(t, g, "host", "selfDestruct", `{"code":"ABC123"}`)
	assert.False(t, ok)

	_, ok = dispatch(t, g, "host", EventJoinRoom, `{"code":`)
	assert.False(t, ok)

	assert.Empty(t, rec.emits)
}

func TestDispatchBoardFlow(t *testing.T) {
	g, rec, _ := newTestGame("ABC123")
	dispatch(t, g, "host", EventCreateRoom, `{"limit":2}`)
	dispatch(t, g, "a", EventJoinRoom, `{"code":"ABC123","name":"Alice"}`)

	dispatch(t, g, "host", EventStartGame, `{
		"code": "ABC123",
		"board": [{"category": "Capitals", "questions": [
			{"category": "Capitals", "question": "Capital of France", "answer": "Paris", "value": "200"}
		]}],
		"scores": {"a": 0}
	}`)

	room, _ := g.Rooms().Room("ABC123")
	require.Len(t, room.Board, 1)
	assert.Equal(t, Int(200), room.Board[0].Questions[0].Value)

	dispatch(t, g, "host", EventCellClicked, `{"code":"ABC123","col":0,"row":"0"}`)
	assert.True(t, room.Board[0].Questions[0].Asked)

	dispatch(t, g, "host", EventAllocatePoints, `{"code":"ABC123","playerId":"a","points":"200"}`)
	dispatch(t, g, "host", EventAllocatePoints, `{"code":"ABC123","playerId":"a","points":"lots"}`)
	p, _ := room.Player("a")
	assert.Equal(t, 200, p.Score)

	dispatch(t, g, "host", EventUpdateScores, `{"code":"ABC123","scores":{"a":200}}`)
	assert.Equal(t, ScoresUpdate{Scores: map[string]Number{"a": Int(200)}}, rec.last(t, "ABC123", EventScoresUpdated))

	dispatch(t, g, "host", EventOpenQuestionModal, `{"code":"ABC123","question":{"question":"q","answer":"a"}}`)
	dispatch(t, g, "host", EventRevealAnswer, `{"code":"ABC123"}`)
	require.NotNil(t, room.Modal)
	assert.True(t, room.Modal.AnswerRevealed)

	dispatch(t, g, "host", EventCloseQuestionModal, `{"code":"ABC123"}`)
	assert.Nil(t, room.Modal)

	dispatch(t, g, "host", EventUpdateRoomLimit, `{"code":"ABC123","limit":5}`)
	assert.Equal(t, 5, room.Limit)

	dispatch(t, g, "a", EventSendMessage, `{"code":"ABC123","message":"hi"}`)
	assert.Equal(t, []ChatMessage{{Sender: "Alice", Message: "hi"}}, room.Chat)

	dispatch(t, g, "host", EventAdvanceStage, `{"code":"ABC123","stage":2}`)
	advanced := rec.last(t, "ABC123", EventStageAdvanced).(StageAdvanced)
	assert.Equal(t, float64(2), advanced.Stage)
}

func TestDispatchFinalRound(t *testing.T) {
	g, rec, _ := newTestGame("ABC123")
	dispatch(t, g, "host", EventCreateRoom, `{"limit":2}`)
	dispatch(t, g, "a", EventJoinRoom, `{"code":"ABC123","name":"Alice"}`)
	dispatch(t, g, "b", EventJoinRoom, `{"code":"ABC123","name":"Bob"}`)
	dispatch(t, g, "host", EventAllocatePoints, `{"code":"ABC123","playerId":"a","points":500}`)
	dispatch(t, g, "host", EventAllocatePoints, `{"code":"ABC123","playerId":"b","points":500}`)

	dispatch(t, g, "host", EventRevealFinalCategory, `{"code":"ABC123","category":"Capitals"}`)
	dispatch(t, g, "host", EventStartFinalJeopardy, `{"code":"ABC123","question":{"question":"Louvre city","answer":"Paris"}}`)

	// playerId falls back to the sending session.
	dispatch(t, g, "a", EventSubmitFinalWager, `{"code":"ABC123","wager":"200"}`)
	dispatch(t, g, "host", EventSubmitFinalWager, `{"code":"ABC123","playerId":"b","wager":"everything"}`)

	wagers := rec.last(t, "ABC123", EventFinalWagersUpdated).(WagersUpdate)
	assert.Equal(t, map[SessionID]int{"a": 200, "b": 0}, wagers.Wagers)
	assert.True(t, wagers.AllSubmitted)

	dispatch(t, g, "a", EventSubmitFinalAnswer, `{"code":"ABC123","answer":" paris"}`)
	dispatch(t, g, "b", EventSubmitFinalAnswer, `{"code":"ABC123","answer":"Nice"}`)
	assert.Len(t, rec.sent("ABC123", EventFinalRevealEnabled), 1)

	dispatch(t, g, "host", EventRevealFinalResults, `{"code":"ABC123"}`)

	results := rec.last(t, "ABC123", EventFinalResults).(FinalResults)
	assert.Equal(t, "Paris", results.CorrectAnswer)
	require.Len(t, results.Results, 2)
	assert.Equal(t, 700, results.Results[0].Score)
	assert.Equal(t, 500, results.Results[1].Score)
}
