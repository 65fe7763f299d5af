//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../mocks/mock_store.go -package=mocks
package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"framed-chat/domain"
)

// StoredMessage is a message as it lives in durable history, pinned to a room.
type StoredMessage struct {
	ID            uuid.UUID
	Room          string
	ParticipantID string
	Role          domain.Role
	Content       string
	At            time.Time
}

// IMessageStore is the durable append-only history per room.
//
// History returns messages in chronological order; LastN returns the n most
// recent messages newest first, matching the SQL DESC LIMIT shape callers
// reverse when they need a chronological tail.
type IMessageStore interface {
	Store(ctx context.Context, msg StoredMessage) error
	History(ctx context.Context, room string) ([]StoredMessage, error)
	LastN(ctx context.Context, room string, n int) ([]StoredMessage, error)
	PurgeOlderThan(ctx context.Context, maxAge time.Duration) (int64, error)
}

// FromDomain pins a domain message to a room for storage.
func FromDomain(room string, m domain.Message) StoredMessage {
	return StoredMessage{
		ID:            m.ID,
		Room:          room,
		ParticipantID: m.ParticipantID,
		Role:          m.Role,
		Content:       m.Content,
		At:            m.At,
	}
}

// ToDomain strips the room partition key back off.
func ToDomain(m StoredMessage) domain.Message {
	return domain.Message{
		ID:            m.ID,
		ParticipantID: m.ParticipantID,
		Role:          m.Role,
		Content:       m.Content,
		At:            m.At,
	}
}
