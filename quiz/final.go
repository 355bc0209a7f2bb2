/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package quiz

import (
	"maps"
	"strings"
)

// allSubmitted reports whether every currently rostered player has an entry
// in m. Entries for players who have since left are not counted.
func allSubmitted[V any](players []*Player, m map[SessionID]V) bool {
	for _, p := range players {
		if _, ok := m[p.ID]; !ok {
			return false
		}
	}
	return true
}

func sameAnswer(given, expected string) bool {
	return strings.EqualFold(strings.TrimSpace(given), strings.TrimSpace(expected))
}

func (f *FinalRound) reset() {
	f.Wagers = make(map[SessionID]int)
	f.Answers = make(map[SessionID]string)
}

// final returns the room's Final Round, creating an empty one if needed.
func (r *Room) final() *FinalRound {
	if r.Final == nil {
		r.Final = &FinalRound{}
		r.Final.reset()
	}
	return r.Final
}

// RevealCategory announces the Final Round category without the question.
func (g *Game) RevealCategory(code, category string) {
	room, ok := g.room(code)
	if !ok {
		return
	}

	room.final().Category = category

	g.broadcast(code, EventFinalCategoryRevealed, FinalCategory{Category: category})
}

// StartFinalRound stores the target question, clears any wagers and
// answers, and snapshots each player's score. The answer is sent to every
// client along with the question.
func (g *Game) StartFinalRound(code string, q Question) {
	room, ok := g.room(code)
	if !ok {
		return
	}

	f := room.final()
	if q.Category == "" {
		q.Category = f.Category
	}
	f.Category = q.Category
	f.Question = &q
	f.reset()

	for _, p := range room.Players {
		if p.ScoreBeforeFinalRound != nil {
			continue
		}
		score := p.Score
		p.ScoreBeforeFinalRound = &score
	}

	g.broadcast(code, EventFinalRoundStarted, FinalRoundStarted{
		Category: q.Category,
		Question: q.Question,
		Answer:   q.Answer,
		Media:    q.Media,
	})
}

// SubmitWager records or replaces a player's wager. Sessions that are not
// on the roster are ignored.
func (g *Game) SubmitWager(code string, id SessionID, wager Number) {
	room, ok := g.room(code)
	if !ok || room.Final == nil {
		return
	}
	if _, ok := room.Player(id); !ok {
		return
	}

	f := room.Final
	f.Wagers[id] = wager.Or(0)

	g.broadcast(code, EventFinalWagersUpdated, WagersUpdate{
		Wagers:       maps.Clone(f.Wagers),
		AllSubmitted: allSubmitted(room.Players, f.Wagers),
	})
}

// SubmitAnswer records or replaces a player's answer. Once every rostered
// player has answered, the room is told results may be revealed.
func (g *Game) SubmitAnswer(code string, id SessionID, answer string) {
	room, ok := g.room(code)
	if !ok || room.Final == nil {
		return
	}
	if _, ok := room.Player(id); !ok {
		return
	}

	f := room.Final
	f.Answers[id] = answer

	submitted := make(map[SessionID]bool, len(f.Answers))
	for pid := range f.Answers {
		submitted[pid] = true
	}
	complete := allSubmitted(room.Players, f.Answers)

	g.broadcast(code, EventFinalAnswersUpdated, AnswersUpdate{
		Submitted:    submitted,
		AllSubmitted: complete,
	})

	if complete {
		g.broadcast(code, EventFinalRevealEnabled, struct{}{})
	}
}

// Resolve scores the Final Round against each player's snapshot, broadcasts
// the results once and returns the room to having no Final Round. It does
// nothing if no question has been started.
func (g *Game) Resolve(code string) {
	room, ok := g.room(code)
	if !ok || room.Final == nil || room.Final.Question == nil {
		return
	}

	f := room.Final
	expected := f.Question.Answer

	results := make([]FinalResult, 0, len(room.Players))
	for _, p := range room.Players {
		wager := f.Wagers[p.ID]
		answer := f.Answers[p.ID]

		base := p.Score
		if p.ScoreBeforeFinalRound != nil {
			base = *p.ScoreBeforeFinalRound
		}

		correct := sameAnswer(answer, expected)
		if correct {
			p.Score = base + wager
		} else {
			p.Score = base - wager
		}
		p.ScoreBeforeFinalRound = nil

		results = append(results, FinalResult{
			ID:      p.ID,
			Name:    p.Name,
			Wager:   wager,
			Answer:  answer,
			Correct: correct,
			Score:   p.Score,
		})
	}

	g.broadcast(code, EventFinalResults, FinalResults{
		Results:       results,
		CorrectAnswer: expected,
	})

	room.Final = nil

	g.logf("ROOMS: Resolved final round in %s for %d player(s)", code, len(results))
}
