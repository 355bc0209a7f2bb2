package quiz

import (
	"testing"
	"time"
)

type emitted struct {
	session SessionID
	channel string
	event   string
	payload any
}

// recorder is a Transport that keeps everything it was asked to do.
type recorder struct {
	emits        []emitted
	subs         map[SessionID][]string
	unsubscribed []string
}

func newRecorder() *recorder {
	return &recorder{subs: make(map[SessionID][]string)}
}

func (r *recorder) EmitToSession(id SessionID, event string, payload any) {
	r.emits = append(r.emits, emitted{session: id, event: event, payload: payload})
}

func (r *recorder) EmitToChannel(channel, event string, payload any) {
	r.emits = append(r.emits, emitted{channel: channel, event: event, payload: payload})
}

func (r *recorder) Subscribe(id SessionID, channel string) {
	r.subs[id] = append(r.subs[id], channel)
}

func (r *recorder) Unsubscribe(channel string) {
	r.unsubscribed = append(r.unsubscribed, channel)
}

func (r *recorder) reset() {
	r.emits = nil
}

// sent returns the payloads broadcast to channel under event, oldest first.
func (r *recorder) sent(channel, event string) []any {
	var out []any
	for _, e := range r.emits {
		if e.channel == channel && e.event == event {
			out = append(out, e.payload)
		}
	}
	return out
}

// last returns the newest payload broadcast to channel under event.
func (r *recorder) last(t *testing.T, channel, event string) any {
	t.Helper()

	all := r.sent(channel, event)
	if len(all) == 0 {
		t.Fatalf("no %s broadcast to %s", event, channel)
	}
	return all[len(all)-1]
}

// newTestGame returns a game whose rooms get predictable codes and a clock
// that only moves when told to.
func newTestGame(codes ...string) (*Game, *recorder, *time.Time) {
	rec := newRecorder()
	g := New(rec, nil)

	now := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	g.rooms.now = func() time.Time { return now }

	if len(codes) > 0 {
		next := 0
		g.rooms.newCode = func() string {
			code := codes[next%len(codes)]
			next++
			return code
		}
	}

	return g, rec, &now
}

// mustJoin joins a room and fails the test on error.
func mustJoin(t *testing.T, g *Game, id SessionID, code, name string) Player {
	t.Helper()

	p, _, err := g.JoinRoom(id, code, name)
	if err != nil {
		t.Fatalf("join %s as %q: %v", code, name, err)
	}
	return p
}
