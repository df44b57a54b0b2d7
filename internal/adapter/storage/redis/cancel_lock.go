package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock only if it is still held by the caller's token.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// CancelLock implements ports.CampaignLock with a token-owned Redis key.
type CancelLock struct {
	client goredis.UniversalClient
	prefix string
}

// NewCancelLock creates a new Redis-backed campaign cancellation lock.
func NewCancelLock(client goredis.UniversalClient) *CancelLock {
	return &CancelLock{
		client: client,
		prefix: "campaign-cancel:",
	}
}

// Acquire takes the lock for campaignID. The TTL bounds how long a crashed
// holder can block later attempts.
func (l *CancelLock) Acquire(ctx context.Context, campaignID uuid.UUID, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	result, err := l.client.SetArgs(ctx, l.prefix+campaignID.String(), token, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis cancel lock acquire: %w", err)
	}
	return token, result == "OK", nil
}

// Release drops the lock if token still owns it. A lock that expired and was
// taken by someone else is left alone.
func (l *CancelLock) Release(ctx context.Context, campaignID uuid.UUID, token string) error {
	err := releaseScript.Run(ctx, l.client, []string{l.prefix + campaignID.String()}, token).Err()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return fmt.Errorf("redis cancel lock release: %w", err)
	}
	return nil
}
