// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const maxUpdateRetries = 5

// ErrConcurrentUpdate is returned when a session kept changing underneath an update
var ErrConcurrentUpdate = errors.New("cart changed concurrently, retry limit reached")

// Store persists cart snapshots per session in Redis
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a new Redis cart store
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

// Load returns the session's snapshot, or an empty one if none is stored
func (s *Store) Load(ctx context.Context, sessionID string) (Snapshot, error) {
	return readSnapshot(ctx, s.client, cartKey(sessionID))
}

// Update runs fn against the stored snapshot inside an optimistic
// transaction and writes the result back. fn may run more than once.
func (s *Store) Update(ctx context.Context, sessionID string, fn func(*Snapshot) error) (Snapshot, error) {
	key := cartKey(sessionID)
	var result Snapshot

	txf := func(tx *redis.Tx) error {
		snap, err := readSnapshot(ctx, tx, key)
		if err != nil {
			return err
		}
		if err := fn(&snap); err != nil {
			return err
		}

		data, err := json.Marshal(snap)
		if err != nil {
			return fmt.Errorf("marshal cart failed: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if len(snap.Lines) == 0 && !snap.IsOpen {
				pipe.Del(ctx, key)
				return nil
			}
			pipe.Set(ctx, key, data, s.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		result = snap
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
		return Snapshot{}, err
	}
	return Snapshot{}, ErrConcurrentUpdate
}

func readSnapshot(ctx context.Context, client getter, key string) (Snapshot, error) {
	data, err := client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Snapshot{Lines: []SnapshotLine{}}, nil
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("redis get failed: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("unmarshal cart failed: %w", err)
	}
	return snap, nil
}

// getter is satisfied by both *redis.Client and *redis.Tx
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}
