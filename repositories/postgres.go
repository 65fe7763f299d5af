package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"framed-chat/domain"
)

const createTable = `
CREATE TABLE IF NOT EXISTS chat_messages (
	message_id UUID PRIMARY KEY,
	room_id    VARCHAR(255) NOT NULL,
	player_id  VARCHAR(255),
	role       VARCHAR(50) NOT NULL,
	content    TEXT NOT NULL,
	at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS chat_messages_room_at ON chat_messages (room_id, at);
`

// PostgresStore persists room history in a chat_messages table.
type PostgresStore struct {
	db  *sql.DB
	log *slog.Logger
}

// PostgresParams are the connection parameters, passed through from the
// environment unchanged.
type PostgresParams struct {
	Host     string
	User     string
	Password string
	Database string
	Port     int
}

func (p PostgresParams) dsn() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Database)
}

func NewPostgresStore(log *slog.Logger, params PostgresParams) (*PostgresStore, error) {
	db, err := sql.Open("postgres", params.dsn())
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return &PostgresStore{db: db, log: log}, nil
}

// NewPostgresStoreWithDB wraps an existing handle. Used by tests.
func NewPostgresStoreWithDB(log *slog.Logger, db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db, log: log}
}

// EnsureSchema creates the chat_messages table if missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, createTable)
	return err
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) Store(ctx context.Context, msg StoredMessage) error {
	var playerID sql.NullString
	if msg.ParticipantID != "" {
		playerID = sql.NullString{String: msg.ParticipantID, Valid: true}
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_messages(message_id, room_id, player_id, role, content, at) VALUES($1, $2, $3, $4, $5, $6)`,
		msg.ID, msg.Room, playerID, string(msg.Role), msg.Content, msg.At)
	if err != nil {
		return fmt.Errorf("store message: %w", err)
	}
	return nil
}

func (s *PostgresStore) History(ctx context.Context, room string) ([]StoredMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT message_id, player_id, role, content, at FROM chat_messages WHERE room_id = $1 ORDER BY at ASC`,
		room)
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}
	defer rows.Close()
	return s.scan(rows, room)
}

func (s *PostgresStore) LastN(ctx context.Context, room string, n int) ([]StoredMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT message_id, player_id, role, content, at FROM chat_messages WHERE room_id = $1 ORDER BY at DESC LIMIT $2`,
		room, n)
	if err != nil {
		return nil, fmt.Errorf("fetch last messages: %w", err)
	}
	defer rows.Close()
	return s.scan(rows, room)
}

func (s *PostgresStore) PurgeOlderThan(ctx context.Context, maxAge time.Duration) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM chat_messages WHERE at < NOW() - $1::interval`,
		fmt.Sprintf("%d seconds", int(maxAge.Seconds())))
	if err != nil {
		return 0, fmt.Errorf("purge history: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func (s *PostgresStore) scan(rows *sql.Rows, room string) ([]StoredMessage, error) {
	var messages []StoredMessage
	for rows.Next() {
		var (
			id       uuid.UUID
			playerID sql.NullString
			role     string
			content  string
			at       time.Time
		)
		if err := rows.Scan(&id, &playerID, &role, &content, &at); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, StoredMessage{
			ID:            id,
			Room:          room,
			ParticipantID: playerID.String,
			Role:          domain.Role(role),
			Content:       content,
			At:            at.UTC(),
		})
	}
	return messages, rows.Err()
}
