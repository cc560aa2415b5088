package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only while it still carries our token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker holds keys with SET NX PX. The TTL bounds how long a crashed
// holder can keep a key.
type RedisLocker struct {
	client   redis.UniversalClient
	prefix   string
	ttl      time.Duration
	newToken func() string

	mu     sync.Mutex
	tokens map[int64]string
}

// NewRedisLocker creates a locker storing keys under prefix with the given TTL
func NewRedisLocker(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisLocker {
	return &RedisLocker{
		client:   client,
		prefix:   prefix,
		ttl:      ttl,
		newToken: uuid.NewString,
		tokens:   make(map[int64]string),
	}
}

var _ Locker = (*RedisLocker)(nil)

func (l *RedisLocker) name(key Key) string {
	return l.prefix + key.StoreName()
}

// TryAcquire sets the key if absent
func (l *RedisLocker) TryAcquire(ctx context.Context, key Key) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.tokens[key.ID]; ok {
		return false, nil
	}

	token := l.newToken()
	acquired, err := l.client.SetNX(ctx, l.name(key), token, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis SETNX %s: %w", key, err)
	}
	if !acquired {
		return false, nil
	}

	l.tokens[key.ID] = token
	return true, nil
}

// Release deletes the key if this holder still owns it
func (l *RedisLocker) Release(ctx context.Context, key Key) error {
	l.mu.Lock()
	token, ok := l.tokens[key.ID]
	delete(l.tokens, key.ID)
	l.mu.Unlock()

	if !ok {
		return nil
	}

	if err := releaseScript.Run(ctx, l.client, []string{l.name(key)}, token).Err(); err != nil {
		return fmt.Errorf("redis release %s: %w", key, err)
	}
	return nil
}
