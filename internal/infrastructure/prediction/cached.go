package prediction

import (
	"context"
	"fmt"
	"time"

	"github.com/turtacn/MolScreen/internal/infrastructure/database/redis"
	"github.com/turtacn/MolScreen/internal/infrastructure/monitoring/logging"
	mtypes "github.com/turtacn/MolScreen/pkg/types/molecule"
)

// CacheObserver receives prediction cache outcomes for metrics collection.
type CacheObserver interface {
	ObserveCacheHit(source mtypes.SourceName)
	ObserveCacheMiss(source mtypes.SourceName)
}

type nopCacheObserver struct{}

func (nopCacheObserver) ObserveCacheHit(_ mtypes.SourceName)  {}
func (nopCacheObserver) ObserveCacheMiss(_ mtypes.SourceName) {}

// CachedSource decorates a remote source with the Redis prediction cache.
// Cache keys combine the source name and the normalized SMILES, so the same
// molecule looked up through different sources occupies distinct entries.
// Concurrent identical lookups collapse into a single upstream call.
type CachedSource struct {
	inner    Source
	cache    redis.Cache
	ttl      time.Duration
	logger   logging.Logger
	observer CacheObserver
}

// NewCachedSource wraps inner with the cache.  ttl 0 uses the cache default;
// observer may be nil.
func NewCachedSource(inner Source, cache redis.Cache, ttl time.Duration, log logging.Logger, observer CacheObserver) *CachedSource {
	if observer == nil {
		observer = nopCacheObserver{}
	}
	return &CachedSource{
		inner:    inner,
		cache:    cache,
		ttl:      ttl,
		logger:   log.Named("cache"),
		observer: observer,
	}
}

func (s *CachedSource) Name() mtypes.SourceName {
	return s.inner.Name()
}

func (s *CachedSource) Fetch(ctx context.Context, smiles string) (*Result, error) {
	key := fmt.Sprintf("pred:%s:%s", s.inner.Name(), smiles)

	// loaded flips only when this call reaches upstream; callers collapsed
	// into another in-flight lookup count as hits.
	loaded := false
	var result Result
	err := s.cache.GetOrSet(ctx, key, &result, s.ttl, func(ctx context.Context) (interface{}, error) {
		loaded = true
		return s.inner.Fetch(ctx, smiles)
	})
	if err != nil {
		return nil, err
	}

	if loaded {
		s.observer.ObserveCacheMiss(s.inner.Name())
	} else {
		s.observer.ObserveCacheHit(s.inner.Name())
	}
	return &result, nil
}
