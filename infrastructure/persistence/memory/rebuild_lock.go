package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"accessengine-backend/application/ports"
	"accessengine-backend/domain/core/valueobjects"
	pkgerrors "accessengine-backend/pkg/errors"
)

// RebuildLock serializes rebuilds within a single process. Expired
// leases are taken over on the next Acquire, so a crashed rebuild never
// wedges its celebrity permanently.
type RebuildLock struct {
	mu     sync.Mutex
	leases map[string]*localLease
	logger *zap.Logger
}

// NewRebuildLock creates an in-process rebuild lock
func NewRebuildLock(logger *zap.Logger) *RebuildLock {
	return &RebuildLock{
		leases: make(map[string]*localLease),
		logger: logger,
	}
}

// Acquire takes the rebuild lock for a celebrity, failing fast when an
// unexpired lease is already held
func (l *RebuildLock) Acquire(ctx context.Context, celebrityID valueobjects.CelebrityID, ttl time.Duration) (ports.LockLease, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := celebrityID.String()
	now := time.Now()
	if existing, held := l.leases[key]; held && existing.expiresAt.After(now) {
		return nil, pkgerrors.ErrRebuildInFlight.Clone().WithDetail("celebrity_id", key)
	}

	lease := &localLease{
		lock:      l,
		key:       key,
		token:     uuid.New().String(),
		expiresAt: now.Add(ttl),
	}
	l.leases[key] = lease

	l.logger.Debug("Rebuild lock acquired",
		zap.String("celebrityId", key),
		zap.Duration("ttl", ttl))
	return lease, nil
}

// localLease is a held in-process rebuild lock. The token guards
// against releasing a lease that expired and was taken over.
type localLease struct {
	lock      *RebuildLock
	key       string
	token     string
	expiresAt time.Time
}

// Release frees the lock if this lease still owns it
func (le *localLease) Release(ctx context.Context) error {
	le.lock.mu.Lock()
	defer le.lock.mu.Unlock()

	if current, held := le.lock.leases[le.key]; held && current.token == le.token {
		delete(le.lock.leases, le.key)
	}
	return nil
}

// Extend pushes the expiry out for long rebuilds
func (le *localLease) Extend(ctx context.Context, additional time.Duration) error {
	le.lock.mu.Lock()
	defer le.lock.mu.Unlock()

	current, held := le.lock.leases[le.key]
	if !held || current.token != le.token {
		return pkgerrors.ErrRebuildInFlight.Clone().WithDetail("celebrity_id", le.key)
	}
	current.expiresAt = current.expiresAt.Add(additional)
	return nil
}
