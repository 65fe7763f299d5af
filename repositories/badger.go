package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"framed-chat/domain"
)

const (
	keyPrefix  = "msg:"
	tsWidth    = 19
	uuidWidth  = 36
	maxPadding = "9999999999999999999"
)

// BadgerStore is the embedded history store, used when no Postgres
// connection is configured (dev setups, tests).
//
// The key is formatted as "msg:{room}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding
//     (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two
//     messages arrive at the same nanosecond.
type BadgerStore struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBadgerStore(db *badger.DB, log *slog.Logger) *BadgerStore {
	return &BadgerStore{db: db, log: log}
}

type badgerRecord struct {
	ID            string `json:"id"`
	ParticipantID string `json:"player_id,omitempty"`
	Role          string `json:"role"`
	Content       string `json:"content"`
	At            int64  `json:"at"`
}

func messageKey(room string, at time.Time, id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("%s%s:%019d:%s", keyPrefix, room, at.UnixNano(), id))
}

func (s *BadgerStore) Store(_ context.Context, msg StoredMessage) error {
	value, err := json.Marshal(badgerRecord{
		ID:            msg.ID.String(),
		ParticipantID: msg.ParticipantID,
		Role:          string(msg.Role),
		Content:       msg.Content,
		At:            msg.At.UnixNano(),
	})
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(messageKey(msg.Room, msg.At, msg.ID), value)
	})
}

// History scans the room prefix forward; the padded timestamp in the key
// keeps messages naturally sorted by time.
func (s *BadgerStore) History(_ context.Context, room string) ([]StoredMessage, error) {
	var values [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := []byte(keyPrefix + room + ":")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := it.Item().Value(func(v []byte) error {
				values = append(values, append([]byte(nil), v...))
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return decodeRecords(room, values)
}

// LastN walks the room prefix in reverse and stops after n entries, so the
// result is newest first like the SQL variant.
func (s *BadgerStore) LastN(_ context.Context, room string, n int) ([]StoredMessage, error) {
	var values [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := []byte(keyPrefix + room + ":")
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		seekKey := append(append([]byte(nil), prefix...), []byte(maxPadding)...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix) && len(values) < n; it.Next() {
			if err := it.Item().Value(func(v []byte) error {
				values = append(values, append([]byte(nil), v...))
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return decodeRecords(room, values)
}

// PurgeOlderThan scans every room and drops keys whose embedded timestamp
// is past the cutoff. The timestamp sits at a fixed offset from the key end,
// so room identifiers containing separators stay unambiguous.
func (s *BadgerStore) PurgeOlderThan(_ context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-maxAge).UnixNano()
	var stale [][]byte

	err := s.db.View(func(txn *badger.Txn) error {
		prefix := []byte(keyPrefix)
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().KeyCopy(nil)
			ts, ok := keyTimestamp(key)
			if !ok {
				s.log.Warn("Skipping malformed history key", "key", string(key))
				continue
			}
			if ts < cutoff {
				stale = append(stale, key)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	batch := s.db.NewWriteBatch()
	defer batch.Cancel()
	for _, key := range stale {
		if err := batch.Delete(key); err != nil {
			return 0, err
		}
	}
	if err := batch.Flush(); err != nil {
		return 0, err
	}
	return int64(len(stale)), nil
}

func keyTimestamp(key []byte) (int64, bool) {
	if len(key) < uuidWidth+1+tsWidth {
		return 0, false
	}
	start := len(key) - uuidWidth - 1 - tsWidth
	ts, err := strconv.ParseInt(string(key[start:start+tsWidth]), 10, 64)
	if err != nil {
		return 0, false
	}
	return ts, true
}

func decodeRecords(room string, values [][]byte) ([]StoredMessage, error) {
	var messages []StoredMessage
	for _, v := range values {
		var rec badgerRecord
		if err := json.Unmarshal(v, &rec); err != nil {
			return nil, err
		}
		id, err := uuid.Parse(rec.ID)
		if err != nil {
			return nil, err
		}
		messages = append(messages, StoredMessage{
			ID:            id,
			Room:          room,
			ParticipantID: rec.ParticipantID,
			Role:          domain.Role(rec.Role),
			Content:       rec.Content,
			At:            time.Unix(0, rec.At).UTC(),
		})
	}
	return messages, nil
}
