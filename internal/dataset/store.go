package dataset

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/recodex/internal/domain"
)

type loadFunc func(ctx context.Context, src Source) (*Tables, error)

// Store is the process-wide, load-once cache of the restaurant tables.
// The first successful load is kept for the process lifetime; a failed load is
// not remembered, so the next call retries.
type Store struct {
	src    Source
	load   loadFunc
	logger *zap.Logger

	rows         *prometheus.GaugeVec
	loadDuration prometheus.Observer

	mu     sync.Mutex
	tables *Tables
}

// NewStore creates a lazily loading store for src.
func NewStore(src Source, logger *zap.Logger) *Store {
	return &Store{src: src, load: Load, logger: logger}
}

// WithMetrics reports table sizes (label "table") and load latency.
func (s *Store) WithMetrics(rows *prometheus.GaugeVec, loadDuration prometheus.Observer) *Store {
	s.rows = rows
	s.loadDuration = loadDuration
	return s
}

// Tables returns the loaded tables, reading the files on first use.
// Concurrent first calls block on one load.
func (s *Store) Tables(ctx context.Context) (*Tables, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tables != nil {
		return s.tables, nil
	}

	start := time.Now()
	t, err := s.load(ctx, s.src)
	if err != nil {
		s.logger.Error("Failed to load restaurant tables",
			zap.String("restaurants", s.src.RestaurantsPath),
			zap.String("encodings", s.src.EncodingsPath),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", domain.ErrDatasetUnavailable, err)
	}
	elapsed := time.Since(start)

	s.tables = t
	s.observe(t, elapsed)
	s.logger.Info("Restaurant tables loaded",
		zap.Int("restaurants", t.Len()),
		zap.Int("features", t.Dim()),
		zap.Int("cities", len(t.Cities())),
		zap.Duration("took", elapsed),
	)
	return t, nil
}

// Loaded reports whether the tables are in memory. It never triggers a load.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tables != nil
}

// Check implements the health probe for the dataset.
func (s *Store) Check(_ context.Context) error {
	if !s.Loaded() {
		return domain.ErrDatasetUnavailable
	}
	return nil
}

func (s *Store) observe(t *Tables, elapsed time.Duration) {
	if s.rows != nil {
		s.rows.WithLabelValues("restaurants").Set(float64(t.Len()))
		s.rows.WithLabelValues("encodings").Set(float64(t.Len()))
	}
	if s.loadDuration != nil {
		s.loadDuration.Observe(elapsed.Seconds())
	}
}
