package recodex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/recodex/internal/dataset"
	"github.com/kailas-cloud/recodex/internal/db"
	dbValkey "github.com/kailas-cloud/recodex/internal/db/valkey"
	domrec "github.com/kailas-cloud/recodex/internal/domain/recommend"
	"github.com/kailas-cloud/recodex/internal/domain/recommend/request"
	"github.com/kailas-cloud/recodex/internal/domain/recommend/result"
	"github.com/kailas-cloud/recodex/internal/domain/recommend/sortby"
	"github.com/kailas-cloud/recodex/internal/repository/reccache"
	healthuc "github.com/kailas-cloud/recodex/internal/usecase/health"
	recommenduc "github.com/kailas-cloud/recodex/internal/usecase/recommend"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultCacheTTL         = 10 * time.Minute
	defaultMaxTopN          = 100
)

// Internal interfaces for substitution in tests.
type recommendUseCase interface {
	Recommend(ctx context.Context, req *request.Request) (result.Result, error)
	Cities(ctx context.Context) ([]string, error)
	Cuisines(ctx context.Context, city string) ([]string, error)
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the recodex SDK entry point.
type Client struct {
	store     db.Store // nil without a cache
	svc       recommendUseCase
	healthSvc healthUseCase
	maxTopN   int
	obs       *observer
}

// New loads the tables and, when configured, connects the result cache.
// The provided context bounds the load and the cache readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		cacheTTL: defaultCacheTTL,
		maxTopN:  defaultMaxTopN,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.restaurantsPath == "" || cfg.encodingsPath == "" {
		return nil, errors.New("recodex: table paths required (use WithData)")
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	tables := dataset.NewStore(dataset.Source{
		RestaurantsPath: cfg.restaurantsPath,
		EncodingsPath:   cfg.encodingsPath,
		Format:          cfg.format,
		IDColumn:        cfg.idColumn,
	}, zap.NewNop())
	if _, err := tables.Tables(ctx); err != nil {
		return nil, fmt.Errorf("recodex: %w", err)
	}

	var store db.Store
	if cfg.driver != "" {
		store, err = createStore(cfg)
		if err != nil {
			return nil, err
		}
		if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			store.Close()
			return nil, fmt.Errorf("recodex: cache not ready: %w", err)
		}
	}

	return wireClient(tables, store, cfg, obs), nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "valkey", "redis":
		s, err := dbValkey.NewStore(dbValkey.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("recodex: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("recodex: unknown driver %q", cfg.driver)
	}
}

func wireClient(tables *dataset.Store, store db.Store, cfg *clientConfig, obs *observer) *Client {
	var ranker domrec.Ranker = recommenduc.NewEngine(tables)

	// nil interface, not a typed nil, when there is no cache
	var pinger healthuc.CachePinger
	if store != nil {
		ranker = reccache.New(ranker, store, cfg.cacheTTL, nil, zap.NewNop())
		pinger = store
	}

	return &Client{
		store:     store,
		svc:       recommenduc.New(ranker, tables, zap.NewNop()),
		healthSvc: healthuc.New(tables, pinger),
		maxTopN:   cfg.maxTopN,
		obs:       obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Recommend ranks the restaurants of city by similarity to those serving any of cuisines.
// An unknown city or an unmatched cuisine yields an empty list, not an error.
func (c *Client) Recommend(
	ctx context.Context, city string, cuisines []string, opts ...RecommendOption,
) (recs Recommendations, err error) {
	start := time.Now()
	defer func() { c.obs.observeRecommend(start, city, len(cuisines), len(recs.Items), err) }()

	rc := recommendConfig{topN: request.DefaultTopN, sortBy: SortBySimilarity}
	for _, o := range opts {
		o(&rc)
	}

	req, err := request.New(city, cuisines, rc.topN, c.maxTopN, sortby.Mode(rc.sortBy))
	if err != nil {
		return Recommendations{}, fmt.Errorf("recodex: %w", err)
	}

	res, err := c.svc.Recommend(ctx, &req)
	if err != nil {
		return Recommendations{}, fmt.Errorf("recodex: %w", err)
	}
	return fromResult(res), nil
}

// Cities lists the cities that can be queried, sorted.
func (c *Client) Cities(ctx context.Context) (cities []string, err error) {
	start := time.Now()
	defer func() { c.obs.observe(opCities, start, err, "cities", len(cities)) }()

	cities, err = c.svc.Cities(ctx)
	if err != nil {
		return nil, fmt.Errorf("recodex: %w", err)
	}
	return cities, nil
}

// Cuisines lists the cuisines served in city, in table order.
func (c *Client) Cuisines(ctx context.Context, city string) (cuisines []string, err error) {
	start := time.Now()
	defer func() { c.obs.observe(opCuisines, start, err, "city", city, "cuisines", len(cuisines)) }()

	cuisines, err = c.svc.Cuisines(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("recodex: %w", err)
	}
	return cuisines, nil
}
