// Package event defines the outbound events fanned out to room members.
package event

import "framed-chat/domain"

type Outbound interface {
	Event() string
}

// NewMessage is the generic chat event delivered on every relayed message.
type NewMessage struct {
	Sender        domain.Role
	Content       string
	ParticipantID string
}

func (NewMessage) Event() string { return "newMessage" }

// DeathNarrative announces a player's elimination with a generated story.
// It is a distinct event, not a NewMessage, so clients can render it apart
// from ordinary chat.
type DeathNarrative struct {
	ParticipantIndex int
	Narrative        string
}

func (DeathNarrative) Event() string { return "playerDeathNarrative" }
