package repositories

import (
	"context"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"framed-chat/domain"
)

func TestPostgresStore_Store(t *testing.T) {
	req := require.New(t)
	db, mock, err := sqlmock.New()
	req.NoError(err)
	defer db.Close()
	store := NewPostgresStoreWithDB(slog.Default(), db)

	msg := StoredMessage{
		ID:            uuid.New(),
		Room:          "room-1",
		ParticipantID: "Zippy",
		Role:          domain.RoleUser,
		Content:       "hello",
		At:            time.Now().UTC(),
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO chat_messages(message_id, room_id, player_id, role, content, at) VALUES($1, $2, $3, $4, $5, $6)`)).
		WithArgs(msg.ID, msg.Room, msg.ParticipantID, "user", msg.Content, msg.At).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req.NoError(store.Store(context.Background(), msg))
	req.NoError(mock.ExpectationsWereMet())
}

func TestPostgresStore_Store_Without_Participant_Is_Null(t *testing.T) {
	req := require.New(t)
	db, mock, err := sqlmock.New()
	req.NoError(err)
	defer db.Close()
	store := NewPostgresStoreWithDB(slog.Default(), db)

	msg := StoredMessage{
		ID:      uuid.New(),
		Room:    "room-1",
		Role:    domain.RoleSystem,
		Content: "Alice joined",
		At:      time.Now().UTC(),
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO chat_messages`)).
		WithArgs(msg.ID, msg.Room, nil, "system", msg.Content, msg.At).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req.NoError(store.Store(context.Background(), msg))
	req.NoError(mock.ExpectationsWereMet())
}

func TestPostgresStore_History(t *testing.T) {
	req := require.New(t)
	db, mock, err := sqlmock.New()
	req.NoError(err)
	defer db.Close()
	store := NewPostgresStoreWithDB(slog.Default(), db)

	id1, id2 := uuid.New(), uuid.New()
	at := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"message_id", "player_id", "role", "content", "at"}).
		AddRow(id1.String(), nil, "system", "Alice joined", at).
		AddRow(id2.String(), "Alice", "user", "hello", at.Add(time.Minute))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT message_id, player_id, role, content, at FROM chat_messages WHERE room_id = $1 ORDER BY at ASC`)).
		WithArgs("room-1").
		WillReturnRows(rows)

	fetched, err := store.History(context.Background(), "room-1")
	req.NoError(err)
	req.Len(fetched, 2)
	req.Equal(id1, fetched[0].ID)
	req.Empty(fetched[0].ParticipantID)
	req.Equal(domain.RoleSystem, fetched[0].Role)
	req.Equal("Alice", fetched[1].ParticipantID)
	req.Equal("room-1", fetched[1].Room)
	req.NoError(mock.ExpectationsWereMet())
}

func TestPostgresStore_LastN(t *testing.T) {
	req := require.New(t)
	db, mock, err := sqlmock.New()
	req.NoError(err)
	defer db.Close()
	store := NewPostgresStoreWithDB(slog.Default(), db)

	at := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"message_id", "player_id", "role", "content", "at"}).
		AddRow(uuid.NewString(), "Bob", "user", "newest", at).
		AddRow(uuid.NewString(), "Alice", "user", "older", at.Add(-time.Minute))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT message_id, player_id, role, content, at FROM chat_messages WHERE room_id = $1 ORDER BY at DESC LIMIT $2`)).
		WithArgs("room-1", 3).
		WillReturnRows(rows)

	fetched, err := store.LastN(context.Background(), "room-1", 3)
	req.NoError(err)
	req.Len(fetched, 2)
	req.Equal("newest", fetched[0].Content)
	req.NoError(mock.ExpectationsWereMet())
}

func TestPostgresStore_PurgeOlderThan(t *testing.T) {
	req := require.New(t)
	db, mock, err := sqlmock.New()
	req.NoError(err)
	defer db.Close()
	store := NewPostgresStoreWithDB(slog.Default(), db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM chat_messages WHERE at < NOW() - $1::interval`)).
		WithArgs("86400 seconds").
		WillReturnResult(sqlmock.NewResult(0, 7))

	deleted, err := store.PurgeOlderThan(context.Background(), 24*time.Hour)
	req.NoError(err)
	req.Equal(int64(7), deleted)
	req.NoError(mock.ExpectationsWereMet())
}
