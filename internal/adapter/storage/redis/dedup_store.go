package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// forgetScript deletes the record only if it still holds the given state, so
// a failed apply never erases a newer state recorded by another callback.
var forgetScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// CallbackDedupStore implements ports.CallbackDeduper. Each provider message
// has one key holding the last applied delivery state.
type CallbackDedupStore struct {
	client goredis.UniversalClient
	prefix string
}

// NewCallbackDedupStore creates a new Redis-backed callback dedup store.
func NewCallbackDedupStore(client goredis.UniversalClient) *CallbackDedupStore {
	return &CallbackDedupStore{
		client: client,
		prefix: "callback:",
	}
}

// Seen reports whether state is the last state recorded for messageID.
func (s *CallbackDedupStore) Seen(ctx context.Context, messageID, state string) (bool, error) {
	current, err := s.client.Get(ctx, s.prefix+messageID).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis callback dedup check: %w", err)
	}
	return current == state, nil
}

// Record stores state as the last applied state of messageID, replacing
// whatever was recorded before.
func (s *CallbackDedupStore) Record(ctx context.Context, messageID, state string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.prefix+messageID, state, ttl).Err(); err != nil {
		return fmt.Errorf("redis callback dedup record: %w", err)
	}
	return nil
}

// Forget clears the record of messageID if it still holds state.
func (s *CallbackDedupStore) Forget(ctx context.Context, messageID, state string) error {
	if err := forgetScript.Run(ctx, s.client, []string{s.prefix + messageID}, state).Err(); err != nil {
		return fmt.Errorf("redis callback dedup forget: %w", err)
	}
	return nil
}
