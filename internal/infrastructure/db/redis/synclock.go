package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	syncLockKey = "smoobu:sync:lock"
	syncLockTTL = 10 * time.Minute
)

// SyncLock is a single-flight lock backed by Redis. The TTL bounds how
// long a crashed run can keep the lock held.
type SyncLock struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSyncLock creates a SyncLock wrapping the given Redis client.
func NewSyncLock(client *redis.Client) *SyncLock {
	return &SyncLock{client: client, ttl: syncLockTTL}
}

// TryAcquire attempts to take the lock without blocking. It reports
// false when another run already holds it.
func (l *SyncLock) TryAcquire(ctx context.Context) (bool, error) {
	ok, err := l.client.SetNX(ctx, syncLockKey, "1", l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("sync lock acquire: %w", err)
	}
	return ok, nil
}

// Release frees the lock.
func (l *SyncLock) Release(ctx context.Context) error {
	if err := l.client.Del(ctx, syncLockKey).Err(); err != nil {
		return fmt.Errorf("sync lock release: %w", err)
	}
	return nil
}
