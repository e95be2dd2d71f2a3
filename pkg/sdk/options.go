package recodex

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	restaurantsPath string
	encodingsPath   string
	format          string
	idColumn        string

	driver   string // "valkey" or "redis"; empty disables the cache
	addrs    []string
	password string
	cacheTTL time.Duration

	maxTopN int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithData sets the descriptive and feature-encoding table files.
func WithData(restaurantsPath, encodingsPath string) Option {
	return optionFunc(func(c *clientConfig) {
		c.restaurantsPath = restaurantsPath
		c.encodingsPath = encodingsPath
	})
}

// WithFormat forces the table format ("csv" or "parquet"). By default it follows the file extension.
func WithFormat(format string) Option {
	return optionFunc(func(c *clientConfig) {
		c.format = format
	})
}

// WithIDColumn names the identifier column shared by both tables. Defaults to the leading column.
func WithIDColumn(name string) Option {
	return optionFunc(func(c *clientConfig) {
		c.idColumn = name
	})
}

// WithValkey caches ranked results in a Valkey instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "valkey"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis caches ranked results in a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithCacheTTL sets how long cached results live. Default: 10 minutes.
func WithCacheTTL(ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.cacheTTL = ttl
	})
}

// WithMaxTopN caps the number of recommendations per call. Default: 100.
func WithMaxTopN(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxTopN = n
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}

// RecommendOption tunes a single Recommend call.
type RecommendOption func(*recommendConfig)

type recommendConfig struct {
	topN   int
	sortBy SortBy
}

// TopN sets how many restaurants to return. Default: 15.
func TopN(n int) RecommendOption {
	return func(c *recommendConfig) { c.topN = n }
}

// SortedBy sets the presentation order. Default: SortBySimilarity.
func SortedBy(s SortBy) RecommendOption {
	return func(c *recommendConfig) { c.sortBy = s }
}
