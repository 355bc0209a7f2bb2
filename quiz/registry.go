/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package quiz

import (
	"crypto/rand"
	"math/big"
	"time"
)

const (
	codeLength   = 6
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// DefaultLimit is used when a room is created or resized without a
	// positive capacity.
	DefaultLimit = 2
)

// Registry owns every live room, keyed by room code. It is not safe for
// concurrent use; callers serialize access.
type Registry struct {
	rooms   map[string]*Room
	newCode func() string
	now     func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		rooms:   make(map[string]*Room),
		newCode: randomCode,
		now:     time.Now,
	}
}

// randomCode draws codeLength independent characters from codeAlphabet.
func randomCode() string {
	size := big.NewInt(int64(len(codeAlphabet)))

	out := make([]byte, codeLength)
	for i := range out {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			panic("crypto/rand failure: " + err.Error())
		}
		out[i] = codeAlphabet[n.Int64()]
	}
	return string(out)
}

// create adds an empty room under a code that is not currently live.
func (r *Registry) create(limit int) *Room {
	if limit < 1 {
		limit = DefaultLimit
	}

	code := r.newCode()
	for {
		if _, exists := r.rooms[code]; !exists {
			break
		}
		code = r.newCode()
	}

	now := r.now()
	room := &Room{
		Code:       code,
		Limit:      limit,
		Players:    []*Player{},
		Chat:       []ChatMessage{},
		Board:      Board{},
		Scores:     map[string]Number{},
		CreatedAt:  now,
		LastActive: now,
	}
	r.rooms[code] = room

	return room
}

// Room returns the live room with the given code.
func (r *Registry) Room(code string) (*Room, bool) {
	room, ok := r.rooms[code]
	return room, ok
}

// Len returns the number of live rooms.
func (r *Registry) Len() int {
	return len(r.rooms)
}

func (r *Registry) remove(code string) {
	delete(r.rooms, code)
}

// idleSince lists rooms with no activity since cutoff.
func (r *Registry) idleSince(cutoff time.Time) []string {
	var codes []string
	for code, room := range r.rooms {
		if room.LastActive.Before(cutoff) {
			codes = append(codes, code)
		}
	}
	return codes
}
