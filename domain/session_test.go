package domain

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func fixedRoll(n int) func() int {
	return func() int { return n }
}

func TestRoomSession_Cadence_Fires_On_Threshold(t *testing.T) {
	req := require.New(t)
	session := NewRoomSessionWithRoll(fixedRoll(3))

	// Given a threshold of 3, the first two user messages stay silent
	req.False(session.RecordUserMessage())
	req.False(session.RecordUserMessage())

	// The third one is due
	req.True(session.RecordUserMessage())
}

func TestRoomSession_Cadence_Resets_After_Injection(t *testing.T) {
	req := require.New(t)
	session := NewRoomSessionWithRoll(fixedRoll(3))

	session.RecordUserMessage()
	session.RecordUserMessage()
	req.True(session.RecordUserMessage())

	// When the injection completed
	session.ResetAfterInjection()

	// Then a whole new cycle is needed before the next one
	req.False(session.RecordUserMessage())
	req.False(session.RecordUserMessage())
	req.True(session.RecordUserMessage())
}

func TestRoomSession_Failed_Injection_Stays_Due(t *testing.T) {
	req := require.New(t)
	session := NewRoomSessionWithRoll(fixedRoll(3))

	session.RecordUserMessage()
	session.RecordUserMessage()
	req.True(session.RecordUserMessage())

	// Given no reset happened (generation failed), every following user
	// message reports due again until a reset lands
	req.True(session.RecordUserMessage())
	req.True(session.RecordUserMessage())
}

func TestRoomSession_Reroll_Changes_Threshold(t *testing.T) {
	req := require.New(t)
	rolls := []int{3, 7}
	i := 0
	session := NewRoomSessionWithRoll(func() int {
		n := rolls[i%len(rolls)]
		i++
		return n
	})

	req.Equal(3, session.Threshold())
	session.ResetAfterInjection()
	req.Equal(7, session.Threshold())
}

func TestRoomSession_Default_Roll_Stays_In_Bounds(t *testing.T) {
	req := require.New(t)

	seen := map[int]bool{}
	for range 1000 {
		n := defaultRoll()
		req.GreaterOrEqual(n, MinThreshold)
		req.LessOrEqual(n, MaxThreshold)
		seen[n] = true
	}

	// Both bounds are inclusive and reachable
	req.True(seen[MinThreshold])
	req.True(seen[MaxThreshold])
}

func TestRoomSession_MarkInitialMessageSent_Single_Winner(t *testing.T) {
	req := require.New(t)
	session := NewRoomSession()

	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if session.MarkInitialMessageSent() {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	req.Equal(1, winners)
	req.False(session.MarkInitialMessageSent())
}

func TestRoomSession_Touch_Refreshes_Idle_Clock(t *testing.T) {
	req := require.New(t)
	session := NewRoomSession()
	before := session.IdleSince()

	session.Touch()

	req.False(session.IdleSince().Before(before))
}
