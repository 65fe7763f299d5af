// Package domain contains core concepts of the relay.
// Messages are immutable chat events; the session state machine in session.go
// decides when the assistant speaks.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role tags the author side of a message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether the role is one of the three known values.
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

// Message represents an immutable chat event within a room.
// ParticipantID is empty for system and assistant messages.
type Message struct {
	ID            uuid.UUID
	ParticipantID string
	Role          Role
	Content       string
	At            time.Time
}
