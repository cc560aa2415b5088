package lock

import (
	"context"
	"fmt"
	"sync"

	"leave-tracker-backend/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresLocker uses session-level advisory locks. Each held key pins one
// pooled connection until release, so unlock runs on the session that
// locked; if that session dies the server drops the lock.
type PostgresLocker struct {
	pool *pgxpool.Pool

	mu   sync.Mutex
	held map[int64]*pgxpool.Conn
}

// NewPostgresLocker creates a locker backed by pool
func NewPostgresLocker(pool *pgxpool.Pool) *PostgresLocker {
	return &PostgresLocker{
		pool: pool,
		held: make(map[int64]*pgxpool.Conn),
	}
}

var _ Locker = (*PostgresLocker)(nil)

// TryAcquire runs pg_try_advisory_lock on a dedicated connection
func (l *PostgresLocker) TryAcquire(ctx context.Context, key Key) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// advisory locks are reentrant per session; refuse locally instead
	if _, ok := l.held[key.ID]; ok {
		return false, nil
	}

	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return false, fmt.Errorf("acquire lock connection: %w", err)
	}

	var acquired bool
	if err := conn.QueryRow(ctx, "SELECT pg_try_advisory_lock($1)", key.ID).Scan(&acquired); err != nil {
		conn.Release()
		return false, fmt.Errorf("pg_try_advisory_lock %s: %w", key, err)
	}
	if !acquired {
		conn.Release()
		return false, nil
	}

	l.held[key.ID] = conn
	return true, nil
}

// Release unlocks the key and returns its connection to the pool
func (l *PostgresLocker) Release(ctx context.Context, key Key) error {
	l.mu.Lock()
	conn, ok := l.held[key.ID]
	delete(l.held, key.ID)
	l.mu.Unlock()

	if !ok {
		return nil
	}

	var unlocked bool
	if err := conn.QueryRow(ctx, "SELECT pg_advisory_unlock($1)", key.ID).Scan(&unlocked); err != nil {
		// close the session so the server releases the lock
		raw := conn.Hijack()
		if closeErr := raw.Close(context.Background()); closeErr != nil {
			logger.New().WithError(closeErr).Warnf("failed to close lock session for %s", key)
		}
		return fmt.Errorf("pg_advisory_unlock %s: %w", key, err)
	}
	conn.Release()

	if !unlocked {
		logger.New().Warnf("advisory lock %s was not held by its session", key)
	}
	return nil
}

// Close releases every held key. Used on shutdown.
func (l *PostgresLocker) Close(ctx context.Context) {
	l.mu.Lock()
	keys := make([]int64, 0, len(l.held))
	for id := range l.held {
		keys = append(keys, id)
	}
	l.mu.Unlock()

	for _, id := range keys {
		if err := l.Release(ctx, Key{ID: id, Label: fmt.Sprintf("%d", id)}); err != nil {
			logger.New().WithError(err).Warnf("failed to release advisory lock %d on shutdown", id)
		}
	}
}
