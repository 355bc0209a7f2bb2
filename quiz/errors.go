/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package quiz

import "errors"

// Returned to the requesting connection only, never broadcast.
var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomFull     = errors.New("room is full")
)
