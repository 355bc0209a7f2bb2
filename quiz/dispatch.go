/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package quiz

import (
	"encoding/json"
)

// Dispatch applies one inbound event from session id. If the event carries an
// acknowledgement, it is returned with ok set; the caller delivers it to the
// requesting session alone. Unknown events and undecodable payloads are
// ignored.
func (g *Game) Dispatch(id SessionID, event string, data json.RawMessage) (ack any, ok bool) {
	var req request
	if len(data) > 0 {
		if err := json.Unmarshal(data, &req); err != nil {
			g.logf("ROOMS: Ignoring %s from %s: %v", event, id, err)
			return nil, false
		}
	}
	req.raw = data

	if req.PlayerID == "" {
		req.PlayerID = id
	}

	switch event {
	case EventCreateRoom:
		return CreateRoomAck{Code: g.CreateRoom(id, req.Limit)}, true

	case EventUpdateRoomLimit:
		g.SetCapacity(req.Code, req.Limit)

	case EventJoinRoom:
		player, roster, err := g.JoinRoom(id, req.Code, req.Name)
		if err != nil {
			return ErrorAck{Error: err.Error()}, true
		}
		return JoinRoomAck{
			Code:        req.Code,
			Player:      player,
			RoomPlayers: roster,
		}, true

	case EventStartGame:
		g.StartGame(req.Code, req.Board, req.Scores)

	case EventSelectQuestion:
		if req.Question != nil {
			g.SelectQuestion(req.Code, *req.Question)
		}

	case EventCellClicked:
		if req.Col.Valid && req.Row.Valid {
			g.RevealCell(req.Code, req.Col.Value, req.Row.Value)
		}

	case EventUpdateScores:
		g.UpdateScores(req.Code, req.Scores)

	case EventOpenQuestionModal:
		if req.Question != nil {
			g.OpenModal(req.Code, *req.Question)
		}

	case EventRevealAnswer:
		g.RevealModalAnswer(req.Code)

	case EventCloseQuestionModal:
		g.CloseModal(req.Code)

	case EventAllocatePoints:
		g.AllocatePoints(req.Code, req.PlayerID, req.Points)

	case EventDailyDouble:
		g.DailyDouble(req.Code, req.raw)

	case EventAdvanceStage:
		g.AdvanceStage(req.Code, req.Stage, req.Board)

	case EventSendMessage:
		g.SendChat(id, req.Code, req.Message)

	case EventRevealFinalCategory:
		g.RevealCategory(req.Code, req.Category)

	case EventStartFinalJeopardy:
		if req.Question != nil {
			g.StartFinalRound(req.Code, *req.Question)
		}

	case EventSubmitFinalWager:
		g.SubmitWager(req.Code, req.PlayerID, req.Wager)

	case EventSubmitFinalAnswer:
		g.SubmitAnswer(req.Code, req.PlayerID, req.Answer)

	case EventRevealFinalResults:
		g.Resolve(req.Code)
	}

	return nil, false
}
