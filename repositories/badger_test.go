package repositories

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"framed-chat/domain"
)

func openTestBadger(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func storedAt(room string, role domain.Role, content string, at time.Time) StoredMessage {
	return StoredMessage{
		ID:      uuid.New(),
		Room:    room,
		Role:    role,
		Content: content,
		At:      at,
	}
}

func TestBadgerStore_History_Is_Chronological(t *testing.T) {
	req := require.New(t)
	store := NewBadgerStore(openTestBadger(t), slog.Default())
	ctx := context.Background()
	room := "room-1"
	at := time.Now().UTC()

	messages := []StoredMessage{
		storedAt(room, domain.RoleSystem, "Alice joined", at),
		storedAt(room, domain.RoleUser, "hello", at.Add(1*time.Minute)),
		storedAt(room, domain.RoleAssistant, "welcome", at.Add(2*time.Minute)),
	}
	// Stored out of order on purpose; keys must still sort by timestamp
	for _, i := range []int{2, 0, 1} {
		req.NoError(store.Store(ctx, messages[i]))
	}

	fetched, err := store.History(ctx, room)
	req.NoError(err)
	req.Len(fetched, len(messages))
	for i, m := range messages {
		req.Equal(m.ID, fetched[i].ID)
		req.Equal(m.Content, fetched[i].Content)
		req.Equal(m.Role, fetched[i].Role)
		req.True(m.At.Equal(fetched[i].At))
	}
}

func TestBadgerStore_History_Scoped_To_Room(t *testing.T) {
	req := require.New(t)
	store := NewBadgerStore(openTestBadger(t), slog.Default())
	ctx := context.Background()
	at := time.Now().UTC()

	req.NoError(store.Store(ctx, storedAt("room-a", domain.RoleUser, "in a", at)))
	req.NoError(store.Store(ctx, storedAt("room-b", domain.RoleUser, "in b", at)))

	fetched, err := store.History(ctx, "room-a")
	req.NoError(err)
	req.Len(fetched, 1)
	req.Equal("in a", fetched[0].Content)
}

func TestBadgerStore_LastN_Newest_First(t *testing.T) {
	req := require.New(t)
	store := NewBadgerStore(openTestBadger(t), slog.Default())
	ctx := context.Background()
	room := "room-1"
	at := time.Now().UTC()

	for i, content := range []string{"first", "second", "third", "fourth"} {
		req.NoError(store.Store(ctx, storedAt(room, domain.RoleUser, content, at.Add(time.Duration(i)*time.Minute))))
	}

	fetched, err := store.LastN(ctx, room, 2)
	req.NoError(err)
	req.Len(fetched, 2)
	req.Equal("fourth", fetched[0].Content)
	req.Equal("third", fetched[1].Content)
}

func TestBadgerStore_LastN_Shorter_Than_N(t *testing.T) {
	req := require.New(t)
	store := NewBadgerStore(openTestBadger(t), slog.Default())
	ctx := context.Background()
	room := "room-1"

	req.NoError(store.Store(ctx, storedAt(room, domain.RoleUser, "only one", time.Now().UTC())))

	fetched, err := store.LastN(ctx, room, 5)
	req.NoError(err)
	req.Len(fetched, 1)
}

func TestBadgerStore_PurgeOlderThan(t *testing.T) {
	req := require.New(t)
	store := NewBadgerStore(openTestBadger(t), slog.Default())
	ctx := context.Background()
	now := time.Now().UTC()

	req.NoError(store.Store(ctx, storedAt("room-1", domain.RoleUser, "stale", now.Add(-48*time.Hour))))
	req.NoError(store.Store(ctx, storedAt("room-2", domain.RoleUser, "also stale", now.Add(-25*time.Hour))))
	req.NoError(store.Store(ctx, storedAt("room-1", domain.RoleUser, "fresh", now)))

	purged, err := store.PurgeOlderThan(ctx, 24*time.Hour)
	req.NoError(err)
	req.Equal(int64(2), purged)

	fetched, err := store.History(ctx, "room-1")
	req.NoError(err)
	req.Len(fetched, 1)
	req.Equal("fresh", fetched[0].Content)

	fetched, err = store.History(ctx, "room-2")
	req.NoError(err)
	req.Empty(fetched)
}

func TestBadgerStore_Roundtrip_Keeps_Participant(t *testing.T) {
	req := require.New(t)
	store := NewBadgerStore(openTestBadger(t), slog.Default())
	ctx := context.Background()

	msg := StoredMessage{
		ID:            uuid.New(),
		Room:          "room-1",
		ParticipantID: "Soup Enjoyer",
		Role:          domain.RoleUser,
		Content:       "it wasn't me",
		At:            time.Now().UTC(),
	}
	req.NoError(store.Store(ctx, msg))

	fetched, err := store.History(ctx, "room-1")
	req.NoError(err)
	req.Len(fetched, 1)
	req.Equal(msg.ParticipantID, fetched[0].ParticipantID)
}
