package domain

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Cadence bounds for assistant interjections: a fresh threshold is drawn
// uniformly from [MinThreshold, MaxThreshold] after every injection.
const (
	MinThreshold = 3
	MaxThreshold = 7
)

func defaultRoll() int {
	return rand.IntN(MaxThreshold-MinThreshold+1) + MinThreshold
}

// RoomSession is the per-room state machine. It tracks how many user messages
// arrived since the last assistant injection, the randomized threshold that
// triggers the next one, and the one-shot opening-line guard.
//
// All methods are safe for concurrent use; the internal mutex is the
// serialization point for a single room.
type RoomSession struct {
	mu          sync.Mutex
	count       int
	threshold   int
	initialSent bool
	lastActive  time.Time
	roll        func() int
}

func NewRoomSession() *RoomSession {
	return NewRoomSessionWithRoll(defaultRoll)
}

// NewRoomSessionWithRoll builds a session with a custom threshold roll.
// Production code uses NewRoomSession; tests pin the cadence here.
func NewRoomSessionWithRoll(roll func() int) *RoomSession {
	return &RoomSession{
		threshold:  roll(),
		lastActive: time.Now().UTC(),
		roll:       roll,
	}
}

// RecordUserMessage counts one user message and reports whether an assistant
// injection is due. The count clamps at the threshold, so a failed injection
// leaves the session due and the very next user message retries.
func (s *RoomSession) RecordUserMessage() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now().UTC()
	if s.count < s.threshold {
		s.count++
	}
	return s.count >= s.threshold
}

// ResetAfterInjection zeroes the counter and draws a fresh threshold in one
// critical section. Callers invoke it only after the synthetic message has
// been produced, never before.
func (s *RoomSession) ResetAfterInjection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count = 0
	s.threshold = s.roll()
}

// MarkInitialMessageSent returns true exactly once, on the first call.
// The caller that wins performs the one-time opening-line flow; everyone
// else treats initialization as already handled.
func (s *RoomSession) MarkInitialMessageSent() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialSent {
		return false
	}
	s.initialSent = true
	return true
}

// Threshold returns the current injection threshold. It doubles as the
// history window size when building the injection prompt.
func (s *RoomSession) Threshold() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.threshold
}

// Touch refreshes the idle clock without counting a message.
func (s *RoomSession) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now().UTC()
}

// IdleSince reports the last time the room saw any activity.
func (s *RoomSession) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}
