package recommend

import (
	"context"
	"fmt"

	domrec "github.com/kailas-cloud/recodex/internal/domain/recommend"
	"github.com/kailas-cloud/recodex/internal/domain/recommend/request"
	"github.com/kailas-cloud/recodex/internal/domain/recommend/result"
)

// Engine ranks directly against the in-memory tables.
type Engine struct {
	tables TableSource
}

var _ domrec.Ranker = (*Engine)(nil)

// NewEngine creates the in-memory ranker.
func NewEngine(tables TableSource) *Engine {
	return &Engine{tables: tables}
}

// Rank implements recommend.Ranker.
func (e *Engine) Rank(ctx context.Context, req *request.Request) (result.Result, error) {
	t, err := e.tables.Tables(ctx)
	if err != nil {
		return result.Result{}, fmt.Errorf("get tables: %w", err)
	}
	return Rank(t, req.City(), req.Cuisines(), req.TopN()), nil
}
