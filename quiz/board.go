/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package quiz

import "encoding/json"

// StartGame replaces the board and score table wholesale.
func (g *Game) StartGame(code string, board Board, scores map[string]Number) {
	room, ok := g.room(code)
	if !ok {
		return
	}

	if board == nil {
		board = Board{}
	}
	if scores == nil {
		scores = map[string]Number{}
	}

	room.Board = board
	room.Scores = scores

	g.broadcast(code, EventGameStarted, GameStarted{
		Board:  room.Board,
		Scores: room.Scores,
	})
}

// SelectQuestion previews a question to the room without storing it.
func (g *Game) SelectQuestion(code string, q Question) {
	if _, ok := g.room(code); !ok {
		return
	}

	g.broadcast(code, EventQuestionSelected, q)
}

// RevealCell marks board[col].questions[row] as asked. Indices that miss the
// board are ignored.
func (g *Game) RevealCell(code string, col, row int) {
	room, ok := g.room(code)
	if !ok {
		return
	}

	q, ok := room.Board.Cell(col, row)
	if !ok {
		return
	}
	q.Asked = true

	g.broadcast(code, EventCellRevealed, CellRevealed{
		Col:      col,
		Row:      row,
		Question: *q,
	})
}

// UpdateScores replaces the score table.
func (g *Game) UpdateScores(code string, scores map[string]Number) {
	room, ok := g.room(code)
	if !ok {
		return
	}

	if scores == nil {
		scores = map[string]Number{}
	}
	room.Scores = scores

	g.broadcast(code, EventScoresUpdated, ScoresUpdate{Scores: room.Scores})
}

// OpenModal replaces the current modal question.
func (g *Game) OpenModal(code string, q Question) {
	room, ok := g.room(code)
	if !ok {
		return
	}

	room.Modal = &ModalQuestion{Question: q}

	g.broadcast(code, EventModalUpdated, room.Modal)
}

func (g *Game) RevealModalAnswer(code string) {
	room, ok := g.room(code)
	if !ok || room.Modal == nil {
		return
	}

	room.Modal.AnswerRevealed = true

	g.broadcast(code, EventModalUpdated, room.Modal)
}

func (g *Game) CloseModal(code string) {
	room, ok := g.room(code)
	if !ok {
		return
	}

	room.Modal = nil

	g.broadcast(code, EventModalUpdated, nil)
}

// AllocatePoints adds points to a player's score. The roster is broadcast
// even when no player matches.
func (g *Game) AllocatePoints(code string, id SessionID, points Number) {
	room, ok := g.room(code)
	if !ok {
		return
	}

	if p, ok := room.Player(id); ok {
		p.Score += points.Or(0)
	}

	g.broadcastPlayers(room)
}

// DailyDouble relays the host's payload to the room untouched.
func (g *Game) DailyDouble(code string, payload json.RawMessage) {
	if _, ok := g.room(code); !ok {
		return
	}

	if len(payload) == 0 {
		payload = json.RawMessage("null")
	}

	g.broadcast(code, EventDailyDouble, payload)
}

// AdvanceStage signals a stage transition. Only the code is required; the
// room does not have to be live.
func (g *Game) AdvanceStage(code string, stage any, board Board) {
	if code == "" {
		return
	}

	g.room(code)

	g.broadcast(code, EventStageAdvanced, StageAdvanced{
		Stage: stage,
		Board: board,
	})
}
