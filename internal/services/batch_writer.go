package services

import (
	"commute-monitor/internal/domain"
	"commute-monitor/internal/ports"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BatchWriter persists all route alternatives of one invocation under a
// single batch identifier and timestamp, atomically.
type BatchWriter struct {
	Store ports.SampleStore

	// Overridable in tests.
	now   func() time.Time
	newID func() string
}

func NewBatchWriter(store ports.SampleStore) *BatchWriter {
	return &BatchWriter{
		Store: store,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// Commit writes every metric as one sample of a fresh batch and returns
// the batch identifier. Zero metrics is not an error; no batch is created
// and the identifier is empty.
func (w *BatchWriter) Commit(ctx context.Context, originLabel, destLabel string, metrics []domain.SampleMetrics) (string, error) {
	if len(metrics) == 0 {
		return "", nil
	}

	batch := domain.Batch{
		ID:          w.newID(),
		TS:          w.now().UTC(),
		OriginLabel: originLabel,
		DestLabel:   destLabel,
		Metrics:     metrics,
	}

	if err := w.Store.InsertBatch(ctx, batch); err != nil {
		return "", fmt.Errorf("commit batch: %w", err)
	}

	return batch.ID, nil
}
