package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"framed-chat/services"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 << 10
)

// connection pumps frames between one websocket and the chat service.
// The participant identity is whatever the client declares on joinRoom;
// until then the connection id stands in. rooms records the exact
// roomID -> participantID pair each subscription was made under, so that
// cleanup removes the same keys even if the client changes identity on a
// later joinRoom.
type connection struct {
	id     string
	sock   *websocket.Conn
	sink   *Sink
	hub    *Hub
	chat   services.IChatService
	log    *slog.Logger
	member string
	rooms  map[string]string
}

func newConnection(log *slog.Logger, sock *websocket.Conn, hub *Hub, chat services.IChatService, bufferSize int) *connection {
	id := uuid.NewString()
	return &connection{
		id:    id,
		sock:  sock,
		sink:  NewSink(bufferSize),
		hub:   hub,
		chat:  chat,
		log:   log.With("conn_id", id),
		rooms: make(map[string]string),
	}
}

// run blocks until the client disconnects or a network error occurs.
func (c *connection) run(ctx context.Context) {
	c.log.Info("A user connected")
	go c.writePump()
	c.readLoop(ctx)

	// Membership first, then the sink: once the hub forgot us nothing can
	// offer into the closed channel. Each room is unsubscribed under the
	// identity it was joined with, not the connection's final one.
	for roomID, member := range c.rooms {
		c.hub.Unsubscribe(member, roomID)
	}
	c.sink.Close()
	c.chat.Disconnect(c.participant())
	c.log.Info("A user disconnected")
}

func (c *connection) participant() string {
	if c.member != "" {
		return c.member
	}
	return c.id
}

func (c *connection) readLoop(ctx context.Context) {
	c.sock.SetReadLimit(maxMessageSize)
	_ = c.sock.SetReadDeadline(time.Now().Add(pongWait))
	c.sock.SetPongHandler(func(string) error {
		return c.sock.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.sock.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("Unexpected close", "error", err)
			}
			return
		}
		var frame InboundFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			c.log.Warn("Malformed frame", "error", err)
			continue
		}
		c.dispatch(ctx, frame)
	}
}

func (c *connection) dispatch(ctx context.Context, frame InboundFrame) {
	switch frame.Event {
	case EventJoinRoom:
		var p JoinPayload
		if !c.decode(frame.Data, &p) {
			return
		}
		if p.ParticipantID != "" {
			c.member = p.ParticipantID
		}
		c.chat.Join(p.RoomID, c.participant())
		if p.RoomID != "" {
			// A rejoin under a new identity replaces the old membership,
			// otherwise a stale entry would keep pointing at this sink.
			if prev, ok := c.rooms[p.RoomID]; ok && prev != c.participant() {
				c.hub.Unsubscribe(prev, p.RoomID)
			}
			c.hub.Subscribe(c.participant(), p.RoomID, c.sink)
			c.rooms[p.RoomID] = c.participant()
		}

	case EventRequestInitialMessage:
		var p JoinPayload
		if !c.decode(frame.Data, &p) {
			return
		}
		ok := c.chat.RequestInitialMessage(ctx, p.RoomID, orDefault(p.ParticipantID, c.participant()))
		c.ack(frame.AckID, ok)

	case EventSendMessage:
		var p SendMessagePayload
		if !c.decode(frame.Data, &p) {
			return
		}
		c.chat.SendMessage(ctx, p.RoomID, services.InboundMessage{
			Sender:        p.Message.Sender,
			Content:       p.Message.Content,
			ParticipantID: orDefault(p.Message.ParticipantID, c.participant()),
		})

	case EventRequestChatHistory:
		var p HistoryPayload
		if !c.decode(frame.Data, &p) {
			return
		}
		history := c.chat.ChatHistory(ctx, p.RoomID)
		c.ack(frame.AckID, toMessagePayloads(history))

	case EventPlayerDeath:
		var p EliminationPayload
		if !c.decode(frame.Data, &p) {
			return
		}
		c.chat.PlayerEliminated(ctx, p.RoomID, p.ParticipantIndex)

	default:
		c.log.Warn("Unknown inbound event", "event", frame.Event)
	}
}

func (c *connection) decode(raw json.RawMessage, out any) bool {
	if err := json.Unmarshal(raw, out); err != nil {
		c.log.Warn("Malformed payload", "error", err)
		return false
	}
	return true
}

func (c *connection) ack(ackID int64, data any) {
	if !c.sink.Offer(OutboundFrame{Event: EventAck, AckID: ackID, Data: data}) {
		c.log.Warn("Dropping acknowledgment for slow consumer", "ack_id", ackID)
	}
}

func (c *connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.sock.Close()
	}()

	for {
		select {
		case frame, ok := <-c.sink.frames:
			_ = c.sock.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.sock.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := c.sock.WriteJSON(frame); err != nil {
				c.log.Warn("Failed to push frame", "error", err)
				return
			}
		case <-ticker.C:
			_ = c.sock.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.sock.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
