package ws

import (
	"encoding/json"

	"github.com/samber/lo"

	"framed-chat/domain"
	"framed-chat/domain/event"
)

// Event names shared with the browser client.
const (
	EventJoinRoom              = "joinRoom"
	EventRequestInitialMessage = "requestInitialMessage"
	EventSendMessage           = "sendMessage"
	EventRequestChatHistory    = "requestChatHistory"
	EventPlayerDeath           = "playerDeath"

	EventAck                  = "ack"
	EventNewMessage           = "newMessage"
	EventPlayerDeathNarrative = "playerDeathNarrative"
)

// InboundFrame is one client request: an event name, an optional client-chosen
// acknowledgment id, and an event-specific payload.
type InboundFrame struct {
	Event string          `json:"event"`
	AckID int64           `json:"ackId,omitempty"`
	Data  json.RawMessage `json:"data"`
}

// OutboundFrame is one server push or acknowledgment.
type OutboundFrame struct {
	Event string `json:"event"`
	AckID int64  `json:"ackId,omitempty"`
	Data  any    `json:"data,omitempty"`
}

type JoinPayload struct {
	RoomID        string `json:"roomId"`
	ParticipantID string `json:"player_id"`
}

type MessagePayload struct {
	Sender        string `json:"sender"`
	Content       string `json:"content"`
	ParticipantID string `json:"player_id,omitempty"`
}

type SendMessagePayload struct {
	RoomID  string         `json:"roomId"`
	Message MessagePayload `json:"message"`
}

type HistoryPayload struct {
	RoomID string `json:"roomId"`
}

type EliminationPayload struct {
	RoomID           string `json:"roomId"`
	ParticipantIndex int    `json:"player_id"`
}

type DeathNarrativePayload struct {
	ParticipantIndex int    `json:"player_id"`
	Narrative        string `json:"deathNarrative"`
}

func toFrame(e event.Outbound) OutboundFrame {
	switch evt := e.(type) {
	case event.NewMessage:
		return OutboundFrame{Event: EventNewMessage, Data: MessagePayload{
			Sender:        string(evt.Sender),
			Content:       evt.Content,
			ParticipantID: evt.ParticipantID,
		}}
	case event.DeathNarrative:
		return OutboundFrame{Event: EventPlayerDeathNarrative, Data: DeathNarrativePayload{
			ParticipantIndex: evt.ParticipantIndex,
			Narrative:        evt.Narrative,
		}}
	default:
		return OutboundFrame{Event: e.Event()}
	}
}

func toMessagePayloads(messages []domain.Message) []MessagePayload {
	return lo.Map(messages, func(m domain.Message, _ int) MessagePayload {
		return MessagePayload{
			Sender:        string(m.Role),
			Content:       m.Content,
			ParticipantID: m.ParticipantID,
		}
	})
}
