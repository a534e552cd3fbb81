package ports

import (
	"commute-monitor/internal/domain"
	"context"
	"time"
)

// Port: append-only persistence of sample batches.
type SampleStore interface {
	// Write every sample of the batch in a single transaction. On any
	// failure nothing of the batch persists.
	InsertBatch(ctx context.Context, batch domain.Batch) error
}

// RoutePair is one sampled (origin, destination) direction and how many
// samples exist for it.
type RoutePair struct {
	OriginLabel string
	DestLabel   string
	Samples     int
}

// SampleQuery selects the samples of one direction over a trailing time
// window. Since is compared against the per-row creation time; a zero
// Since means no lower bound.
type SampleQuery struct {
	OriginLabel string
	DestLabel   string
	Since       time.Time
}

// Port: read access for downstream consumers (the dashboard).
type SampleReader interface {
	// Distinct sampled directions, most sampled first.
	ListRoutes(ctx context.Context) ([]RoutePair, error)

	// Samples matching the query, ordered by creation time ascending.
	ListSamples(ctx context.Context, q SampleQuery) ([]domain.Sample, error)
}
