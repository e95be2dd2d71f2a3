// Package recommend holds the contracts shared by the ranking engine, its
// decorators and the transport layer.
package recommend

import (
	"context"

	"github.com/kailas-cloud/recodex/internal/domain/recommend/request"
	"github.com/kailas-cloud/recodex/internal/domain/recommend/result"
)

// Ranker ranks a city's restaurants by similarity to the requested cuisines.
// Implementations ignore the request's presentation order; the caller applies it.
type Ranker interface {
	Rank(ctx context.Context, req *request.Request) (result.Result, error)
}
