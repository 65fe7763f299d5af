package ws

// Sink is the per-connection outbound buffer. The hub fans frames into it;
// the connection's write pump drains it.
type Sink struct {
	frames chan OutboundFrame
}

func NewSink(bufferSize int) *Sink {
	return &Sink{frames: make(chan OutboundFrame, bufferSize)}
}

// Offer hands a frame to the connection without blocking the room fanout.
// Reports false when the client's buffer is full and the frame was dropped.
func (s *Sink) Offer(f OutboundFrame) bool {
	select {
	case s.frames <- f:
		return true
	default:
		return false
	}
}

// Close releases the write pump. Only the owning connection calls it,
// after the hub can no longer reach the sink.
func (s *Sink) Close() {
	close(s.frames)
}
