package lock

import (
	"context"
	"sync"
)

// MemoryLocker is a single-process Locker for development and tests
type MemoryLocker struct {
	mu   sync.Mutex
	held map[int64]struct{}
}

// NewMemoryLocker creates an empty in-process locker
func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{held: make(map[int64]struct{})}
}

var _ Locker = (*MemoryLocker)(nil)

// TryAcquire takes the key if nobody holds it
func (l *MemoryLocker) TryAcquire(_ context.Context, key Key) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.held[key.ID]; ok {
		return false, nil
	}
	l.held[key.ID] = struct{}{}
	return true, nil
}

// Release frees the key
func (l *MemoryLocker) Release(_ context.Context, key Key) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.held, key.ID)
	return nil
}
