package cart

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Registry holds the carts of all visitors in memory, keyed by a random id.
type Registry struct {
	mu    sync.Mutex
	carts map[string]*Cart
	ttl   time.Duration
	now   func() time.Time
}

// NewRegistry keeps carts until they have been idle for ttl. A zero ttl keeps them forever.
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{carts: make(map[string]*Cart), ttl: ttl, now: time.Now}
}

func (r *Registry) Create() *Cart {
	c := newCart(uuid.NewString(), r.now)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[c.id] = c
	return c
}

func (r *Registry) Get(id string) (*Cart, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[id]
	return c, ok
}

func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.carts[id]
	delete(r.carts, id)
	return ok
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.carts)
}

// Sweep removes carts idle since before now minus the ttl and returns how many went.
func (r *Registry) Sweep(now time.Time) int {
	if r.ttl <= 0 {
		return 0
	}
	cutoff := now.Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, c := range r.carts {
		if c.lastUpdate().Before(cutoff) {
			delete(r.carts, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration, log *zap.Logger) {
	if r.ttl <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			if n := r.Sweep(t); n > 0 {
				log.Debug("idle carts removed", zap.Int("count", n))
			}
		}
	}
}
