/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// Package quiz is the authoritative state for quiz rooms: rosters, the shared
// board, the modal question and the Final Round. Every mutation is fanned out
// to the room's broadcast channel through a Transport.
//
// A Game is not safe for concurrent use. The transport is expected to feed it
// events one at a time.
package quiz

import (
	"time"
)

type Game struct {
	rooms     *Registry
	transport Transport
	logf      Logf
}

// New returns a Game that emits through t. logf may be nil.
func New(t Transport, logf Logf) *Game {
	if logf == nil {
		logf = func(string, ...any) {}
	}

	return &Game{
		rooms:     NewRegistry(),
		transport: t,
		logf:      logf,
	}
}

// Rooms exposes the registry for read access.
func (g *Game) Rooms() *Registry {
	return g.rooms
}

// room looks up a live room and marks it active.
func (g *Game) room(code string) (*Room, bool) {
	room, ok := g.rooms.Room(code)
	if !ok {
		return nil, false
	}
	room.LastActive = g.rooms.now()
	return room, true
}

func (g *Game) broadcast(code, event string, payload any) {
	g.transport.EmitToChannel(code, event, payload)
}

func (g *Game) broadcastPlayers(room *Room) {
	g.broadcast(room.Code, EventPlayersUpdated, PlayersUpdate{Players: room.Roster()})
}

// CreateRoom opens a new room and subscribes the requesting session to it.
// Capacities below one fall back to DefaultLimit.
func (g *Game) CreateRoom(id SessionID, limit Number) string {
	room := g.rooms.create(limit.Or(DefaultLimit))
	g.transport.Subscribe(id, room.Code)

	g.logf("ROOMS: Created room %s (limit %d)", room.Code, room.Limit)

	return room.Code
}

// SetCapacity overwrites the room's player limit. A limit below the current
// roster size is accepted and only blocks further joins.
func (g *Game) SetCapacity(code string, limit Number) {
	room, ok := g.room(code)
	if !ok {
		return
	}

	room.Limit = limit.Or(DefaultLimit)
	if room.Limit < 1 {
		room.Limit = DefaultLimit
	}

	g.broadcast(code, EventRoomUpdated, room.State())
}

// CloseRoom tells the room it is gone, drops its channel and forgets it.
func (g *Game) CloseRoom(code string) {
	if _, ok := g.rooms.Room(code); !ok {
		return
	}

	g.broadcast(code, EventRoomClosed, RoomClosed{Code: code})
	g.transport.Unsubscribe(code)
	g.rooms.remove(code)

	g.logf("ROOMS: Closed room %s", code)
}

// ReapIdle closes every room with no activity since cutoff and returns how
// many were closed.
func (g *Game) ReapIdle(cutoff time.Time) int {
	codes := g.rooms.idleSince(cutoff)
	for _, code := range codes {
		g.CloseRoom(code)
	}
	return len(codes)
}
