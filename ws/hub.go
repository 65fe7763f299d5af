package ws

import (
	"log/slog"
	"sync"

	"framed-chat/domain/event"
)

type Set map[string]struct{}

// Hub tracks which participants are connected to which rooms and fans
// outbound events into their sinks. It is the transport's membership
// authority: the chat service never sees connections.
//
// It performs a two-step lookup on delivery: room -> participant ids via
// roomMembers, then ids -> sinks via sinks, so a participant sitting in
// several rooms still has a single connection entry.
type Hub struct {
	mu          sync.RWMutex
	log         *slog.Logger
	sinks       map[string]*Sink
	roomMembers map[string]Set
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		log:         log,
		sinks:       make(map[string]*Sink),
		roomMembers: make(map[string]Set),
	}
}

// Subscribe registers a participant's connection and adds them to a room.
func (h *Hub) Subscribe(participantID, roomID string, sink *Sink) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.sinks[participantID] = sink
	if _, ok := h.roomMembers[roomID]; !ok {
		h.roomMembers[roomID] = make(Set)
	}
	h.roomMembers[roomID][participantID] = struct{}{}
}

// Unsubscribe removes a participant from a room and drops their sink once no
// room references them. No empty sets are left behind.
func (h *Hub) Unsubscribe(participantID, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if members, ok := h.roomMembers[roomID]; ok {
		delete(members, participantID)
		if len(members) == 0 {
			delete(h.roomMembers, roomID)
		}
	}
	for _, members := range h.roomMembers {
		if _, still := members[participantID]; still {
			return
		}
	}
	delete(h.sinks, participantID)
}

// Broadcast delivers an event to every member of the room.
func (h *Hub) Broadcast(roomID string, e event.Outbound) {
	h.send(roomID, "", e)
}

// BroadcastExcept delivers an event to every member except one participant,
// typically the original sender.
func (h *Hub) BroadcastExcept(roomID, participantID string, e event.Outbound) {
	h.send(roomID, participantID, e)
}

func (h *Hub) send(roomID, except string, e event.Outbound) {
	frame := toFrame(e)

	h.mu.RLock()
	defer h.mu.RUnlock()
	for participantID := range h.roomMembers[roomID] {
		if except != "" && participantID == except {
			continue
		}
		sink, ok := h.sinks[participantID]
		if !ok {
			continue
		}
		if !sink.Offer(frame) {
			h.log.Warn("Dropping frame for slow consumer",
				"room_id", roomID,
				"participant_id", participantID,
				"event", frame.Event)
		}
	}
}
