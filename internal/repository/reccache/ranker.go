// Package reccache caches ranked recommendation lists in a key-value store.
package reccache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/recodex/internal/db"
	"github.com/kailas-cloud/recodex/internal/domain/recommend"
	"github.com/kailas-cloud/recodex/internal/domain/recommend/request"
	"github.com/kailas-cloud/recodex/internal/domain/recommend/result"
	"github.com/kailas-cloud/recodex/internal/logger"
)

// KeyPrefix namespaces cache entries.
const KeyPrefix = "recodex:rec:"

// store is the consumer interface for the result cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedRanker caches similarity-ordered results keyed by city, cuisines and topN.
// Cache failures degrade to the inner ranker and are never returned to callers.
type CachedRanker struct {
	inner      recommend.Ranker
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

var _ recommend.Ranker = (*CachedRanker)(nil)

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner recommend.Ranker,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedRanker {
	return &CachedRanker{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Rank returns a cached result or ranks with the inner ranker.
func (c *CachedRanker) Rank(ctx context.Context, req *request.Request) (result.Result, error) {
	key := CacheKey(req)

	if res, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		// entries are shared across city spellings
		res.City = req.City()
		return res, nil
	}

	c.incCache("miss")

	res, err := c.inner.Rank(ctx, req)
	if err != nil {
		return result.Result{}, fmt.Errorf("rank: %w", err)
	}

	c.putToCache(ctx, key, res)
	return res, nil
}

// CacheKey derives the store key of a request.
func CacheKey(req *request.Request) string {
	h := sha256.Sum256([]byte(req.RankingKey()))
	return KeyPrefix + hex.EncodeToString(h[:])
}

func (c *CachedRanker) incCache(res string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(res).Inc()
	}
}

func (c *CachedRanker) getFromCache(ctx context.Context, key string) (result.Result, bool) {
	log := logger.FromContext(ctx, c.logger)

	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			log.Warn("Failed to get cached recommendations", zap.String("key", key), zap.Error(err))
		}
		return result.Result{}, false
	}
	if len(data) == 0 {
		return result.Result{}, false
	}

	var res result.Result
	if err := json.Unmarshal(data, &res); err != nil {
		log.Warn("Failed to parse cached recommendations", zap.String("key", key), zap.Error(err))
		return result.Result{}, false
	}
	if res.Items == nil {
		res.Items = []result.Item{}
	}
	return res, true
}

func (c *CachedRanker) putToCache(ctx context.Context, key string, res result.Result) {
	log := logger.FromContext(ctx, c.logger)

	data, err := json.Marshal(res)
	if err != nil {
		log.Warn("Failed to encode recommendations", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		log.Warn("Failed to cache recommendations", zap.String("key", key), zap.Error(err))
	}
}
