package runtime

import (
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"framed-chat/domain"
)

func TestRegistry_GetOrCreate_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(slog.Default())

	first := registry.GetOrCreate("room-1")
	second := registry.GetOrCreate("room-1")

	req.Same(first, second)
	req.Equal(1, registry.Len())
}

func TestRegistry_GetOrCreate_Concurrent_First_Join(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(slog.Default())

	sessions := make([]*domain.RoomSession, 32)
	var wg sync.WaitGroup
	for i := range sessions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sessions[i] = registry.GetOrCreate("room-1")
		}()
	}
	wg.Wait()

	// Every caller got the exact same session
	for _, s := range sessions {
		req.Same(sessions[0], s)
	}
	req.Equal(1, registry.Len())
}

func TestRegistry_Distinct_Rooms_Distinct_Sessions(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(slog.Default())

	a := registry.GetOrCreate("room-a")
	b := registry.GetOrCreate("room-b")

	req.NotSame(a, b)
	req.Equal(2, registry.Len())
}

func TestRegistry_EvictIdle(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(slog.Default())

	idle := registry.GetOrCreate("idle-room")
	registry.GetOrCreate("active-room")

	// Nothing is idle yet
	req.Equal(0, registry.EvictIdle(time.Hour))

	// With a zero TTL every session created in the past is stale; keep the
	// active one fresh right before the sweep
	time.Sleep(10 * time.Millisecond)
	registry.GetOrCreate("active-room").Touch()

	evicted := registry.EvictIdle(5 * time.Millisecond)
	req.Equal(1, evicted)
	req.Equal(1, registry.Len())

	// The evicted room comes back as a brand new session
	fresh := registry.GetOrCreate("idle-room")
	req.NotSame(idle, fresh)
}
