package reccache

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"

	"github.com/kailas-cloud/recodex/internal/db"
	"github.com/kailas-cloud/recodex/internal/domain/recommend/result"
)

func TestRank_CacheMiss(t *testing.T) {
	inner := &mockRanker{result: sampleResult()}
	cr, ms := newTestCachedRanker(t, inner)

	var (
		stored []byte
		ttl    time.Duration
	)
	ms.setFn = func(_ context.Context, _ string, value []byte, d time.Duration) error {
		stored, ttl = value, d
		return nil
	}

	res, err := cr.Rank(context.Background(), testRequest(t, "Mumbai", "Biryani"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(res, sampleResult()) {
		t.Fatalf("unexpected result: %+v", res)
	}
	if inner.calls != 1 {
		t.Fatalf("expected 1 inner call, got %d", inner.calls)
	}
	if stored == nil {
		t.Fatal("expected result to be cached")
	}
	if ttl != time.Minute {
		t.Errorf("expected ttl 1m, got %v", ttl)
	}
}

func TestRank_CacheHit(t *testing.T) {
	inner := &mockRanker{err: errors.New("must not be called")}
	cr, ms := newTestCachedRanker(t, inner)

	cached, err := json.Marshal(sampleResult())
	if err != nil {
		t.Fatal(err)
	}
	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return cached, nil
	}

	res, err := cr.Rank(context.Background(), testRequest(t, "Mumbai", "Biryani"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls != 0 {
		t.Fatalf("expected no inner call on hit, got %d", inner.calls)
	}
	if !reflect.DeepEqual(res, sampleResult()) {
		t.Fatalf("cached result differs:\n%+v\n%+v", res, sampleResult())
	}
}

func TestRank_CachedEmptyResult(t *testing.T) {
	inner := &mockRanker{}
	cr, ms := newTestCachedRanker(t, inner)

	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return []byte(`{"city":"Atlantis","includes_area":false,"items":null}`), nil
	}

	res, err := cr.Rank(context.Background(), testRequest(t, "Atlantis", "Biryani"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Items == nil || !res.IsEmpty() {
		t.Fatalf("expected non-nil empty items, got %#v", res.Items)
	}
}

func TestRank_InnerError(t *testing.T) {
	inner := &mockRanker{err: errors.New("tables unavailable")}
	cr, ms := newTestCachedRanker(t, inner)

	var setCalled bool
	ms.setFn = func(_ context.Context, _ string, _ []byte, _ time.Duration) error {
		setCalled = true
		return nil
	}

	_, err := cr.Rank(context.Background(), testRequest(t, "Mumbai", "Biryani"))
	if err == nil {
		t.Fatal("expected error")
	}
	if setCalled {
		t.Error("errors must not be cached")
	}
}

func TestRank_StoreErrorsDegrade(t *testing.T) {
	inner := &mockRanker{result: sampleResult()}
	cr, ms := newTestCachedRanker(t, inner)

	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return nil, &db.Error{Op: db.OpGet, Err: context.DeadlineExceeded}
	}
	ms.setFn = func(_ context.Context, _ string, _ []byte, _ time.Duration) error {
		return &db.Error{Op: db.OpSet, Err: context.DeadlineExceeded}
	}

	res, err := cr.Rank(context.Background(), testRequest(t, "Mumbai", "Biryani"))
	if err != nil {
		t.Fatalf("store errors must not fail ranking: %v", err)
	}
	if res.Len() != 1 || inner.calls != 1 {
		t.Fatalf("expected inner result, got %+v (calls=%d)", res, inner.calls)
	}
}

func TestRank_CorruptEntry(t *testing.T) {
	inner := &mockRanker{result: sampleResult()}
	cr, ms := newTestCachedRanker(t, inner)

	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return []byte("{not json"), nil
	}

	if _, err := cr.Rank(context.Background(), testRequest(t, "Mumbai", "Biryani")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("corrupt entry should fall through to inner ranker, calls=%d", inner.calls)
	}
}

func TestRank_CacheMetrics(t *testing.T) {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_cache_total"}, []string{"result"})
	inner := &mockRanker{result: sampleResult()}
	ms := &mockKVStore{}
	cr := New(inner, ms, time.Minute, counter, zap.NewNop())

	var stored []byte
	ms.setFn = func(_ context.Context, _ string, value []byte, _ time.Duration) error {
		stored = value
		return nil
	}
	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		if stored == nil {
			return nil, db.ErrKeyNotFound
		}
		return stored, nil
	}

	req := testRequest(t, "Mumbai", "Biryani")
	for i := 0; i < 3; i++ {
		if _, err := cr.Rank(context.Background(), req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := testutil.ToFloat64(counter.WithLabelValues("miss")); got != 1 {
		t.Errorf("expected 1 miss, got %v", got)
	}
	if got := testutil.ToFloat64(counter.WithLabelValues("hit")); got != 2 {
		t.Errorf("expected 2 hits, got %v", got)
	}
}

func TestCacheKey(t *testing.T) {
	a := CacheKey(testRequest(t, "Mumbai", "Chinese", "Biryani"))
	b := CacheKey(testRequest(t, "mumbai", "biryani", "CHINESE"))
	c := CacheKey(testRequest(t, "Mumbai", "Biryani"))

	if !strings.HasPrefix(a, KeyPrefix) {
		t.Errorf("expected prefix %q, got %q", KeyPrefix, a)
	}
	if a != b {
		t.Errorf("equivalent requests must share a key: %q vs %q", a, b)
	}
	if a == c {
		t.Error("different cuisine sets must not share a key")
	}
}

func TestCacheKey_SeparatorsInLabels(t *testing.T) {
	if CacheKey(testRequest(t, "Mumbai", "Chinese,North Indian")) ==
		CacheKey(testRequest(t, "Mumbai", "Chinese", "North Indian")) {
		t.Error("a comma inside a cuisine label must not split it into two cuisines")
	}
	if CacheKey(testRequest(t, "x|y", "z")) == CacheKey(testRequest(t, "x", "y|z")) {
		t.Error("a pipe inside a label must not move text between city and cuisines")
	}
}

func TestRank_CommaCuisineDoesNotServeSplitSelection(t *testing.T) {
	inner := &mockRanker{result: sampleResult()}
	ranker, ms := newTestCachedRanker(t, inner)

	entries := map[string][]byte{}
	ms.getFn = func(_ context.Context, key string) ([]byte, error) {
		if v, ok := entries[key]; ok {
			return v, nil
		}
		return nil, db.ErrKeyNotFound
	}
	ms.setFn = func(_ context.Context, key string, value []byte, _ time.Duration) error {
		entries[key] = value
		return nil
	}

	ctx := context.Background()
	if _, err := ranker.Rank(ctx, testRequest(t, "Mumbai", "Chinese,North Indian")); err != nil {
		t.Fatalf("first rank: %v", err)
	}

	inner.result = result.Empty("Mumbai")
	res, err := ranker.Rank(ctx, testRequest(t, "Mumbai", "Chinese", "North Indian"))
	if err != nil {
		t.Fatalf("second rank: %v", err)
	}
	if inner.calls != 2 {
		t.Errorf("expected the split selection to reach the inner ranker, calls=%d", inner.calls)
	}
	if !res.IsEmpty() {
		t.Errorf("expected the split selection's own empty ranking, got %d items", res.Len())
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 cache entries, got %d", len(entries))
	}
}
