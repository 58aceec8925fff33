package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrLockHeld is returned when another holder owns the lock
var ErrLockHeld = errors.New("lock is held by another client")

const unlockScript = `
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	else
		return 0
	end
`

// Lock represents a distributed lock
type Lock struct {
	client *Client
	key    string
	value  string
	ttl    time.Duration
}

// NewLock creates a new distributed lock under the client namespace
func NewLock(client *Client, key string, ttl time.Duration) *Lock {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Lock{
		client: client,
		key:    client.Key("lock", key),
		value:  uuid.NewString(),
		ttl:    ttl,
	}
}

// TryLock makes a single attempt to acquire the lock
func (l *Lock) TryLock(ctx context.Context) error {
	acquired, err := l.client.GetClient().SetNX(ctx, l.key, l.value, l.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !acquired {
		return ErrLockHeld
	}
	return nil
}

// Unlock releases the lock if this holder still owns it
func (l *Lock) Unlock(ctx context.Context) error {
	result, err := l.client.GetClient().Eval(ctx, unlockScript, []string{l.key}, l.value).Int64()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if result == 0 {
		return ErrLockHeld
	}
	return nil
}

// LockWithFunc executes fn while holding the lock named key
func LockWithFunc(ctx context.Context, client *Client, key string, ttl time.Duration, fn func() error) error {
	lock := NewLock(client, key, ttl)
	if err := lock.TryLock(ctx); err != nil {
		return err
	}
	defer func() { _ = lock.Unlock(context.WithoutCancel(ctx)) }()

	return fn()
}
