package recodex

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// sdkMetrics holds prometheus metrics registered for the SDK.
type sdkMetrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

func newSDKMetrics(reg prometheus.Registerer) (*sdkMetrics, error) {
	m := &sdkMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "recodex",
			Subsystem: "sdk",
			Name:      "operations_total",
			Help:      "Total SDK operations by type and outcome (ok, empty, error).",
		}, []string{"operation", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "recodex",
			Subsystem: "sdk",
			Name:      "operation_duration_seconds",
			Help:      "SDK operation duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	if err := registerOrReuse(reg, &m.operations); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.duration); err != nil {
		return nil, err
	}
	return m, nil
}

// registerOrReuse registers a collector or reuses an existing one.
func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	if err := reg.Register(*c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			existing, ok := are.ExistingCollector.(T)
			if !ok {
				return fmt.Errorf("recodex: metric already registered with incompatible type: %T", are.ExistingCollector)
			}
			*c = existing
			return nil
		}
		return fmt.Errorf("recodex: register metric: %w", err)
	}
	return nil
}

// SDK operation names, used as the "operation" label.
const (
	opRecommend = "recommend"
	opCities    = "cities"
	opCuisines  = "cuisines"
	opHealth    = "health"
)

// Operation outcomes, used as the "status" label.
const (
	statusOK    = "ok"
	statusEmpty = "empty" // ranking succeeded but nothing matched
	statusError = "error"
)

// observer provides logging and metrics for SDK operations.
type observer struct {
	logger  *slog.Logger
	metrics *sdkMetrics
}

func newObserver(logger *slog.Logger, reg prometheus.Registerer) (*observer, error) {
	var m *sdkMetrics
	if reg != nil {
		var err error
		m, err = newSDKMetrics(reg)
		if err != nil {
			return nil, err
		}
	}
	return &observer{logger: logger, metrics: m}, nil
}

// observe records a lookup operation. attrs are extra slog key/value pairs.
func (o *observer) observe(op string, start time.Time, err error, attrs ...any) {
	status := statusOK
	if err != nil {
		status = statusError
	}
	o.record(op, status, start, err, attrs)
}

// observeRecommend records a ranking; a successful ranking without items counts as empty.
func (o *observer) observeRecommend(start time.Time, city string, cuisines, items int, err error) {
	status := statusOK
	switch {
	case err != nil:
		status = statusError
	case items == 0:
		status = statusEmpty
	}
	o.record(opRecommend, status, start, err,
		[]any{"city", city, "cuisines", cuisines, "items", items})
}

func (o *observer) record(op, status string, start time.Time, err error, attrs []any) {
	if o == nil {
		return
	}
	dur := time.Since(start)

	if o.metrics != nil {
		o.metrics.operations.WithLabelValues(op, status).Inc()
		o.metrics.duration.WithLabelValues(op).Observe(dur.Seconds())
	}

	if o.logger == nil {
		return
	}
	args := append([]any{"op", op, "duration", dur}, attrs...)
	switch status {
	case statusError:
		o.logger.Warn("recodex operation failed", append(args, "error", err)...)
	case statusEmpty:
		o.logger.Info("no restaurants matched", args...)
	default:
		o.logger.Debug("recodex operation completed", args...)
	}
}
