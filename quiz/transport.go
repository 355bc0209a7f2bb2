package quiz

// SessionID identifies one connection. It doubles as the player identity
// inside a room; there is no separate account.
type SessionID string

// Transport delivers events on behalf of the game. Channel keys are room codes.
type Transport interface {
	EmitToSession(id SessionID, event string, payload any)
	EmitToChannel(channel, event string, payload any)
	Subscribe(id SessionID, channel string)
	Unsubscribe(channel string)
}

// Logf receives verbose log lines, already tagged.
type Logf func(format string, args ...any)
