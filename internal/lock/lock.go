// Package lock provides non-blocking, non-reentrant named locks shared by
// every instance of the service.
package lock

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"time"
)

// Key identifies one lock. ID is a one-way digest usable as a Postgres
// advisory lock id; Label is the readable form used in logs.
type Key struct {
	ID    int64
	Label string
}

// StoreName returns the key's name in string-keyed stores
func (k Key) StoreName() string {
	return fmt.Sprintf("lock:%016x", uint64(k.ID))
}

func (k Key) String() string {
	return k.Label
}

// DailyKey derives the lock key for namespace on t's UTC calendar day.
// Different days or namespaces never share a key.
func DailyKey(namespace string, t time.Time) Key {
	label := namespace + ":" + t.UTC().Format("2006-01-02")
	sum := sha256.Sum256([]byte(label))
	return Key{
		ID:    int64(binary.BigEndian.Uint64(sum[:8])),
		Label: label,
	}
}

//go:generate mockgen -source=lock.go -destination=../mocks/lock_mocks.go -package=mocks

// Locker grants exclusive named locks across processes.
//
// TryAcquire never waits: it returns false at once when the key is held
// anywhere, including by the caller. Release is idempotent and returns nil for
// keys the caller does not hold.
type Locker interface {
	TryAcquire(ctx context.Context, key Key) (bool, error)
	Release(ctx context.Context, key Key) error
}
