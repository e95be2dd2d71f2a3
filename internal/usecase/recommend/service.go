package recommend

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	domrec "github.com/kailas-cloud/recodex/internal/domain/recommend"
	"github.com/kailas-cloud/recodex/internal/domain/recommend/request"
	"github.com/kailas-cloud/recodex/internal/domain/recommend/result"
	"github.com/kailas-cloud/recodex/internal/domain/recommend/sortby"
	"github.com/kailas-cloud/recodex/internal/logger"
	"github.com/kailas-cloud/recodex/internal/metrics"
)

// Service answers recommendation and filter-discovery queries.
type Service struct {
	ranker domrec.Ranker
	tables TableSource
	logger *zap.Logger
}

// New creates a recommendation service. ranker is usually an Engine, optionally cache-decorated.
func New(ranker domrec.Ranker, tables TableSource, logger *zap.Logger) *Service {
	return &Service{ranker: ranker, tables: tables, logger: logger}
}

// Recommend ranks by similarity, then applies the requested presentation order.
// Re-sorting by rating never re-runs the ranking.
func (s *Service) Recommend(ctx context.Context, req *request.Request) (result.Result, error) {
	start := time.Now()

	res, err := s.ranker.Rank(ctx, req)
	metrics.RecommendDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RecommendRequestsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return result.Result{}, fmt.Errorf("rank: %w", err)
	}

	if res.IsEmpty() {
		metrics.RecommendRequestsTotal.WithLabelValues(metrics.OutcomeEmpty).Inc()
		logger.FromContext(ctx, s.logger).Debug("No restaurants matched",
			zap.String("city", req.City()),
			zap.Strings("cuisines", req.Cuisines()),
		)
		return res, nil
	}
	metrics.RecommendRequestsTotal.WithLabelValues(metrics.OutcomeOK).Inc()

	if req.SortBy() == sortby.Rating {
		res = res.ByRating()
	}
	return res, nil
}

// Cities lists the cities that can be queried.
func (s *Service) Cities(ctx context.Context) ([]string, error) {
	t, err := s.tables.Tables(ctx)
	if err != nil {
		return nil, fmt.Errorf("get tables: %w", err)
	}
	return t.Cities(), nil
}

// Cuisines lists the cuisines served in a city. Unknown cities have none.
func (s *Service) Cuisines(ctx context.Context, city string) ([]string, error) {
	t, err := s.tables.Tables(ctx)
	if err != nil {
		return nil, fmt.Errorf("get tables: %w", err)
	}
	return t.Cuisines(city), nil
}
