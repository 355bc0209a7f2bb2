/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package quiz

import "time"

// Player is one member of a room's roster.
type Player struct {
	ID    SessionID `json:"id"`
	Name  string    `json:"name"`
	Score int       `json:"score"`

	// Set when a Final Round starts, cleared once it resolves.
	ScoreBeforeFinalRound *int `json:"scoreBeforeFinalRound,omitempty"`
}

// Question is a single board cell, also used for modal and final questions.
type Question struct {
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Media    string `json:"media,omitempty"`
	Value    Number `json:"value"`
	Asked    bool   `json:"asked"`
}

type Category struct {
	Name      string     `json:"category"`
	Questions []Question `json:"questions"`
}

// Board is the ordered grid of categories for the main game phase.
type Board []Category

// Cell returns the question at board[col].questions[row], if there is one.
func (b Board) Cell(col, row int) (*Question, bool) {
	if col < 0 || col >= len(b) {
		return nil, false
	}
	questions := b[col].Questions
	if row < 0 || row >= len(questions) {
		return nil, false
	}
	return &questions[row], true
}

// ModalQuestion is the question currently shown to the whole room.
type ModalQuestion struct {
	Question
	AnswerRevealed bool `json:"answerRevealed"`
}

type ChatMessage struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// FinalRound holds wagers and answers for the room's Final Round.
// A nil *FinalRound on the room means no round is in progress.
type FinalRound struct {
	Category string
	Question *Question
	Wagers   map[SessionID]int
	Answers  map[SessionID]string
}

type Room struct {
	Code    string
	Limit   int
	Players []*Player
	Chat    []ChatMessage
	Board   Board
	Scores  map[string]Number
	Modal   *ModalQuestion
	Final   *FinalRound

	CreatedAt  time.Time
	LastActive time.Time
}

// Player looks up a rostered player by session.
func (r *Room) Player(id SessionID) (*Player, bool) {
	for _, p := range r.Players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Full reports whether the roster has reached the room's capacity.
func (r *Room) Full() bool {
	return len(r.Players) >= r.Limit
}

func (r *Room) removePlayer(id SessionID) bool {
	dst := r.Players[:0]
	changed := false

	for _, p := range r.Players {
		if p.ID == id {
			changed = true
			continue
		}
		dst = append(dst, p)
	}

	for i := len(dst); i < len(r.Players); i++ {
		r.Players[i] = nil
	}
	r.Players = dst

	return changed
}

// Roster returns a copy of the players, safe to hand to a transport.
func (r *Room) Roster() []Player {
	out := make([]Player, 0, len(r.Players))
	for _, p := range r.Players {
		out = append(out, *p)
	}
	return out
}

// State is the full room view sent when room settings change.
func (r *Room) State() RoomState {
	return RoomState{
		Code:            r.Code,
		Limit:           r.Limit,
		Players:         r.Roster(),
		Chat:            append([]ChatMessage(nil), r.Chat...),
		Board:           r.Board,
		CurrentQuestion: r.Modal,
	}
}
