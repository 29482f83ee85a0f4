package cache

import (
	"context"
	"time"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
)

// ReportCache caches the dashboard aggregate between sales. A write to the
// sales or stock ledgers must invalidate it.
type ReportCache interface {
	Get(ctx context.Context, key string) (*domain.DashboardReport, bool, error)
	Set(ctx context.Context, key string, value *domain.DashboardReport, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// NoopReportCache is used when no Redis address is configured.
type NoopReportCache struct{}

func (NoopReportCache) Get(_ context.Context, _ string) (*domain.DashboardReport, bool, error) {
	return nil, false, nil
}

func (NoopReportCache) Set(_ context.Context, _ string, _ *domain.DashboardReport, _ time.Duration) error {
	return nil
}

func (NoopReportCache) Delete(_ context.Context, _ string) error {
	return nil
}
