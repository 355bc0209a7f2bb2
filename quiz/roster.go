package quiz

// JoinRoom adds a new player named name to the room. On success the session
// is subscribed to the room and the updated roster is broadcast.
func (g *Game) JoinRoom(id SessionID, code, name string) (Player, []Player, error) {
	room, ok := g.room(code)
	if !ok {
		return Player{}, nil, ErrRoomNotFound
	}

	if room.Full() {
		return Player{}, nil, ErrRoomFull
	}

	player := &Player{
		ID:   id,
		Name: name,
	}
	room.Players = append(room.Players, player)

	g.transport.Subscribe(id, code)
	g.broadcastPlayers(room)

	g.logf("ROOMS: Player %q joined %s", name, code)

	return *player, room.Roster(), nil
}

// HandleDisconnect removes the session from every roster it appears in.
// Rooms without a match are left untouched.
func (g *Game) HandleDisconnect(id SessionID) {
	for _, room := range g.rooms.rooms {
		if !room.removePlayer(id) {
			continue
		}

		room.LastActive = g.rooms.now()
		g.broadcastPlayers(room)

		g.logf("ROOMS: Session %s left %s", id, room.Code)
	}
}
