// Package room relays live and final scores between players that share a
// room code. It is a side channel: each game session stays authoritative
// for its own run.
package room

import "github.com/google/uuid"

// SessionID uniquely identifies a player's session (e.g., SSH connection).
type SessionID string

// NewSessionID returns a random session identifier.
func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

// DefaultRoom is used when no room code is given.
const DefaultRoom = "lobby"

// Member describes a session in a room.
type Member struct {
	Session SessionID
	Player  string
}
