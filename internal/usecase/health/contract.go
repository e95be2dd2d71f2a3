package health

import "context"

// DatasetChecker reports whether the restaurant tables are loaded.
type DatasetChecker interface {
	Check(ctx context.Context) error
}

// CachePinger checks result cache availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}
