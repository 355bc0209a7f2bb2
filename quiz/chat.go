package quiz

import "strings"

// SendChat appends a message to the room's chat log. Players are named by
// their display name; anyone else, such as the host, by session id.
func (g *Game) SendChat(id SessionID, code, message string) {
	room, ok := g.room(code)
	if !ok {
		return
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return
	}

	sender := string(id)
	if p, ok := room.Player(id); ok {
		sender = p.Name
	}

	room.Chat = append(room.Chat, ChatMessage{
		Sender:  sender,
		Message: message,
	})

	g.broadcast(code, EventChatUpdated, ChatUpdate{
		Chat: append([]ChatMessage(nil), room.Chat...),
	})
}
