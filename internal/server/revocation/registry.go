// Package revocation holds the in-process set of revoked session tokens.
//
// A token in the registry is rejected even though its signature and expiry
// are still good. Entries remember the token's signed expiry and are evicted
// once it passes, since an expired token is refused by the expiry check
// anyway. The registry is process-local; callers rebuild it from the durable
// token record store at startup.
package revocation

import (
	"context"
	"hash/maphash"
	"sync"
	"time"
)

// ShardCount is the number of independently locked shards.
const ShardCount = 16

type shard struct {
	mu    sync.RWMutex
	items map[string]time.Time
}

// Registry is a concurrent set of revoked token strings. Revoke and
// IsRevoked are linearizable per token: once Revoke returns, every
// subsequent IsRevoked for that token reports true until the entry expires.
type Registry struct {
	shards [ShardCount]*shard
	seed   maphash.Seed
	now    func() time.Time
}

// New returns an empty Registry.
func New() *Registry {
	r := &Registry{seed: maphash.MakeSeed(), now: time.Now}
	for i := range r.shards {
		r.shards[i] = &shard{items: make(map[string]time.Time)}
	}
	return r
}

// WithClock replaces the time source used by Run.
func (r *Registry) WithClock(now func() time.Time) *Registry {
	r.now = now
	return r
}

func (r *Registry) shardFor(token string) *shard {
	return r.shards[maphash.String(r.seed, token)%ShardCount]
}

// Revoke adds token. Revoking a token twice is a no-op, except that the
// later of the two expiries is kept.
func (r *Registry) Revoke(token string, expiresAt time.Time) {
	s := r.shardFor(token)
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.items[token]; ok && cur.After(expiresAt) {
		return
	}
	s.items[token] = expiresAt
}

// IsRevoked reports whether token is in the registry.
func (r *Registry) IsRevoked(token string) bool {
	s := r.shardFor(token)
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[token]
	return ok
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	n := 0
	for _, s := range r.shards {
		s.mu.RLock()
		n += len(s.items)
		s.mu.RUnlock()
	}
	return n
}

// Sweep evicts entries whose expiry is not after now and returns how many
// were removed.
func (r *Registry) Sweep(now time.Time) int {
	removed := 0
	for _, s := range r.shards {
		s.mu.Lock()
		for token, exp := range s.items {
			if !exp.After(now) {
				delete(s.items, token)
				removed++
			}
		}
		s.mu.Unlock()
	}
	return removed
}

// Run sweeps every interval until ctx is done. onSweep, if non-nil, is
// called with the number of evicted entries after each pass.
func (r *Registry) Run(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n := r.Sweep(r.now())
			if onSweep != nil {
				onSweep(n)
			}
		}
	}
}
