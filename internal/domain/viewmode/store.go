// internal/domain/viewmode/store.go
package viewmode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const maxUpdateRetries = 5

// ErrConcurrentUpdate is returned when a view kept changing underneath an update
var ErrConcurrentUpdate = errors.New("view state changed concurrently, retry limit reached")

// Record is the persisted view state plus probe telemetry
type Record struct {
	State
	Renderer string `json:"renderer,omitempty"`
	LowEnd   bool   `json:"low_end,omitempty"`
}

// Store keeps view state per session and product in Redis
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

// Load returns the stored record or a fresh one
func (s *Store) Load(ctx context.Context, sessionID, productID string) (Record, error) {
	return readRecord(ctx, s.client, viewKey(sessionID, productID))
}

// Update applies fn to the stored record inside an optimistic transaction
func (s *Store) Update(ctx context.Context, sessionID, productID string, fn func(*Record)) (Record, error) {
	key := viewKey(sessionID, productID)
	var result Record

	txf := func(tx *redis.Tx) error {
		rec, err := readRecord(ctx, tx, key)
		if err != nil {
			return err
		}
		fn(&rec)

		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal view state failed: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, s.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		result = rec
		return nil
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return Record{}, err
	}
	return Record{}, ErrConcurrentUpdate
}

func readRecord(ctx context.Context, client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}, key string) (Record, error) {
	data, err := client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Record{}, nil
	}
	if err != nil {
		return Record{}, fmt.Errorf("redis get failed: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("unmarshal view state failed: %w", err)
	}
	return rec, nil
}

func viewKey(sessionID, productID string) string {
	return fmt.Sprintf("viewmode:%s:%s", sessionID, productID)
}
