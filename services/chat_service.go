//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"framed-chat/ai"
	"framed-chat/contract"
	"framed-chat/domain"
	"framed-chat/domain/event"
	"framed-chat/repositories"
	"framed-chat/runtime"
)

var validate = validator.New()

// InboundMessage is the canonical wire shape for sendMessage payloads.
// Sender carries the role; ParticipantID is an opaque pass-through string
// (raw id or display name, the relay does not interpret it).
type InboundMessage struct {
	Sender        string `validate:"required,oneof=system user assistant"`
	Content       string
	ParticipantID string
}

type IChatService interface {
	Join(roomID, participantID string)
	RequestInitialMessage(ctx context.Context, roomID, participantID string) bool
	SendMessage(ctx context.Context, roomID string, msg InboundMessage)
	ChatHistory(ctx context.Context, roomID string) []domain.Message
	PlayerEliminated(ctx context.Context, roomID string, participantIndex int)
	Disconnect(participantID string)
}

// ChatService orchestrates the room state machine, the store, the responder
// and the broadcaster. Persistence is best effort: a store failure is logged
// and never suppresses delivery of the in-memory relay.
type ChatService struct {
	log         *slog.Logger
	registry    *runtime.Registry
	store       repositories.IMessageStore
	responder   ai.IResponder
	broadcaster contract.IBroadcaster
}

func NewChatService(
	log *slog.Logger,
	registry *runtime.Registry,
	store repositories.IMessageStore,
	responder ai.IResponder,
	broadcaster contract.IBroadcaster,
) *ChatService {
	return &ChatService{
		log:         log,
		registry:    registry,
		store:       store,
		responder:   responder,
		broadcaster: broadcaster,
	}
}

// Join creates the room session lazily. No broadcast, no persistence.
func (s *ChatService) Join(roomID, participantID string) {
	if roomID == "" {
		s.log.Error("Join rejected: empty room id", "participant_id", participantID)
		return
	}
	s.registry.GetOrCreate(roomID).Touch()
	s.log.Debug("Participant joined room", "room_id", roomID, "participant_id", participantID)
}

// RequestInitialMessage emits the system "joined" message on every call, then
// lets exactly one caller per room produce the generated opening line.
// The returned bool is the caller acknowledgment.
func (s *ChatService) RequestInitialMessage(ctx context.Context, roomID, participantID string) bool {
	if roomID == "" {
		s.log.Error("Initial message rejected: empty room id", "participant_id", participantID)
		return false
	}
	session := s.registry.GetOrCreate(roomID)

	joined := domain.Message{
		ID:      uuid.New(),
		Role:    domain.RoleSystem,
		Content: fmt.Sprintf("%s joined", participantID),
		At:      time.Now().UTC(),
	}
	s.persist(ctx, roomID, joined)
	s.broadcaster.Broadcast(roomID, event.NewMessage{Sender: domain.RoleSystem, Content: joined.Content})

	if !session.MarkInitialMessageSent() {
		s.log.Info("Initial message already sent", "room_id", roomID)
		return true
	}

	opening, err := s.responder.Complete(ctx, []ai.Turn{{Role: domain.RoleUser, Content: ai.OpeningPrompt}})
	if err != nil {
		// The guard stays consumed: the opening line is a one-shot, not retried.
		s.log.Error("Opening line generation failed", "room_id", roomID, "error", err)
		return false
	}

	msg := domain.Message{ID: uuid.New(), Role: domain.RoleAssistant, Content: opening, At: time.Now().UTC()}
	s.persist(ctx, roomID, msg)
	s.broadcaster.Broadcast(roomID, event.NewMessage{Sender: domain.RoleAssistant, Content: opening})
	s.log.Info("Opening line sent", "room_id", roomID)
	return true
}

// SendMessage validates, persists and relays one participant message, then
// advances the room cadence when the sender is a user.
func (s *ChatService) SendMessage(ctx context.Context, roomID string, msg InboundMessage) {
	if roomID == "" {
		s.log.Error("Missing required parameters", "room_id", roomID)
		return
	}
	if err := validate.Struct(msg); err != nil {
		s.log.Error("Invalid sender role", "sender", msg.Sender, "error", err)
		return
	}

	role := domain.Role(msg.Sender)
	relayed := domain.Message{
		ID:            uuid.New(),
		ParticipantID: msg.ParticipantID,
		Role:          role,
		Content:       msg.Content,
		At:            time.Now().UTC(),
	}
	s.persist(ctx, roomID, relayed)
	s.broadcaster.BroadcastExcept(roomID, msg.ParticipantID, event.NewMessage{
		Sender:        role,
		Content:       msg.Content,
		ParticipantID: msg.ParticipantID,
	})

	if role != domain.RoleUser {
		return
	}
	session := s.registry.GetOrCreate(roomID)
	if !session.RecordUserMessage() {
		return
	}
	s.inject(ctx, roomID, session)
}

// inject runs the cadence-triggered injection sequence: recent history in
// chronological order behind the scenario prompt, one completion, persist,
// broadcast to the whole room, then the atomic counter reset. On generation
// failure the counters are left untouched so the next user message retries.
func (s *ChatService) inject(ctx context.Context, roomID string, session *domain.RoomSession) {
	window := session.Threshold()
	recent, err := s.store.LastN(ctx, roomID, window)
	if err != nil {
		s.log.Error("Error fetching last messages", "room_id", roomID, "error", err)
		recent = nil
	}

	turns := make([]ai.Turn, 0, len(recent)+1)
	turns = append(turns, ai.Turn{Role: domain.RoleSystem, Content: ai.ScenarioPrompt})
	for i := len(recent) - 1; i >= 0; i-- {
		turns = append(turns, ai.Turn{Role: recent[i].Role, Content: recent[i].Content})
	}

	reply, err := s.responder.Complete(ctx, turns)
	if err != nil {
		s.log.Warn("Injection abandoned", "room_id", roomID, "error", err)
		return
	}

	assistant := domain.Message{ID: uuid.New(), Role: domain.RoleAssistant, Content: reply, At: time.Now().UTC()}
	s.persist(ctx, roomID, assistant)
	s.broadcaster.Broadcast(roomID, event.NewMessage{Sender: domain.RoleAssistant, Content: reply})
	session.ResetAfterInjection()
	s.log.Info("Assistant interjection sent", "room_id", roomID)
}

// ChatHistory returns the full ordered history. Store failures degrade to an
// empty sequence; an empty room is not an error.
func (s *ChatService) ChatHistory(ctx context.Context, roomID string) []domain.Message {
	stored, err := s.store.History(ctx, roomID)
	if err != nil {
		s.log.Error("Error fetching chat history", "room_id", roomID, "error", err)
		return []domain.Message{}
	}
	return lo.Map(stored, func(m repositories.StoredMessage, _ int) domain.Message {
		return repositories.ToDomain(m)
	})
}

// PlayerEliminated generates and relays the elimination narrative as a
// distinct event. Out-of-range roster indexes are rejected; provider failure
// drops the narrative with no retry.
func (s *ChatService) PlayerEliminated(ctx context.Context, roomID string, participantIndex int) {
	if roomID == "" {
		s.log.Error("Missing required parameters", "room_id", roomID, "participant_index", participantIndex)
		return
	}
	name, err := domain.PlayerName(participantIndex)
	if err != nil {
		s.log.Error("Rejected elimination", "participant_index", participantIndex, "error", err)
		return
	}

	narrative, err := s.responder.Complete(ctx, []ai.Turn{{Role: domain.RoleSystem, Content: ai.DeathPrompt(name)}})
	if err != nil {
		s.log.Error("Error handling player death", "room_id", roomID, "player", name, "error", err)
		return
	}

	s.persist(ctx, roomID, domain.Message{ID: uuid.New(), Role: domain.RoleAssistant, Content: narrative, At: time.Now().UTC()})
	s.broadcaster.Broadcast(roomID, event.DeathNarrative{ParticipantIndex: participantIndex, Narrative: narrative})
	s.log.Info("Death narrative sent", "room_id", roomID, "player", name)
}

// Disconnect is logging only: membership accounting lives on the
// broadcaster, and room sessions outlive connections.
func (s *ChatService) Disconnect(participantID string) {
	s.log.Info("Participant disconnected", "participant_id", participantID)
}

func (s *ChatService) persist(ctx context.Context, roomID string, m domain.Message) {
	if err := s.store.Store(ctx, repositories.FromDomain(roomID, m)); err != nil {
		s.log.Error("Error storing message", "room_id", roomID, "error", err)
	}
}
