package reccache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/recodex/internal/db"
	"github.com/kailas-cloud/recodex/internal/domain/recommend/request"
	"github.com/kailas-cloud/recodex/internal/domain/recommend/result"
	"github.com/kailas-cloud/recodex/internal/domain/recommend/sortby"
)

type mockRanker struct {
	result result.Result
	err    error
	calls  int
}

func (m *mockRanker) Rank(_ context.Context, _ *request.Request) (result.Result, error) {
	m.calls++
	return m.result, m.err
}

// mockKVStore implements the consumer interface for tests.
type mockKVStore struct {
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockKVStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value, ttl)
	}
	return nil
}

func newTestCachedRanker(t *testing.T, inner *mockRanker) (*CachedRanker, *mockKVStore) {
	t.Helper()
	ms := &mockKVStore{}
	return New(inner, ms, time.Minute, nil, zap.NewNop()), ms
}

func testRequest(t *testing.T, city string, cuisines ...string) *request.Request {
	t.Helper()
	req, err := request.New(city, cuisines, 3, 100, sortby.Similarity)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return &req
}

func sampleResult() result.Result {
	area := "Andheri"
	return result.Result{
		City:         "Mumbai",
		IncludesArea: true,
		Items: []result.Item{
			{Rank: 0, Name: "Paradise", Rating: 4.1, RatingCount: 900, Cost: 400, Cuisine: "Biryani", Area: &area, SimilarityScore: 1},
		},
	}
}
