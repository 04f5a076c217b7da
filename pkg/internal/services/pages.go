package services

import (
	"context"
	"fmt"
	"time"

	localCache "github.com/emberlight/chronicle/pkg/internal/cache"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
)

// PageCache memoizes fully rendered page bodies under their route key for a
// fixed interval. Writes do NOT invalidate entries: a fresh post shows up on
// the homepage only once the entry expires. That staleness is a deliberate
// throughput tradeoff carried over from the original deployment.
type PageCache struct {
	manager *cache.Cache[[]byte]
	sync    func()
	ttl     time.Duration
}

func NewPageCache(store *localCache.Store, ttl time.Duration) *PageCache {
	return &PageCache{
		manager: cache.New[[]byte](store.S),
		sync:    store.Wait,
		ttl:     ttl,
	}
}

func (v *PageCache) key(route string) string {
	return fmt.Sprintf("pages#%s", route)
}

func (v *PageCache) Get(ctx context.Context, route string) ([]byte, bool) {
	body, err := v.manager.Get(ctx, v.key(route))
	if err != nil {
		return nil, false
	}
	return body, true
}

func (v *PageCache) Set(ctx context.Context, route string, body []byte) error {
	if err := v.manager.Set(ctx, v.key(route), body, store.WithExpiration(v.ttl)); err != nil {
		return err
	}
	// Ristretto buffers admissions; flush so the entry is readable at once.
	v.sync()
	return nil
}

func (v *PageCache) Invalidate(ctx context.Context, route string) error {
	return v.manager.Delete(ctx, v.key(route))
}
