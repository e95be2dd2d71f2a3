package recodex

import (
	"context"

	"github.com/kailas-cloud/recodex/internal/domain/recommend/request"
	"github.com/kailas-cloud/recodex/internal/domain/recommend/result"
	healthuc "github.com/kailas-cloud/recodex/internal/usecase/health"
)

// --- recommendUseCase mock ---

type mockRecommendUC struct {
	recommendFn func(ctx context.Context, req *request.Request) (result.Result, error)
	citiesFn    func(ctx context.Context) ([]string, error)
	cuisinesFn  func(ctx context.Context, city string) ([]string, error)
}

func (m *mockRecommendUC) Recommend(ctx context.Context, req *request.Request) (result.Result, error) {
	return m.recommendFn(ctx, req)
}

func (m *mockRecommendUC) Cities(ctx context.Context) ([]string, error) {
	return m.citiesFn(ctx)
}

func (m *mockRecommendUC) Cuisines(ctx context.Context, city string) ([]string, error) {
	return m.cuisinesFn(ctx, city)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(_ context.Context) healthuc.Report { return m.report }

// --- helpers ---

func testClient(svc recommendUseCase) *Client {
	return &Client{svc: svc, maxTopN: defaultMaxTopN}
}
