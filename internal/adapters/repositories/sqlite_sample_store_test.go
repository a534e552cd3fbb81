package repositories

import (
	"commute-monitor/internal/domain"
	"commute-monitor/internal/ports"
	"context"
	"testing"
	"time"
)

func threeAlternatives() []domain.SampleMetrics {
	return []domain.SampleMetrics{
		{Description: "I-95", Meters: 16000, Miles: 9.9, DurationSeconds: 1200, StaticMinutes: 18, TrafficMinutes: 20},
		{Description: "US-1", Meters: 17500, Miles: 10.9, DurationSeconds: 1500, StaticMinutes: 22, TrafficMinutes: 25},
		{Description: "Route 27", Meters: 15200, Miles: 9.4, DurationSeconds: 1650, StaticMinutes: 24, TrafficMinutes: 28},
	}
}

func TestInsertBatchCohesion(t *testing.T) {
	store := NewSqliteSampleStore(openTestDB(t))
	ctx := context.Background()

	batch := domain.Batch{
		ID:          "batch-1",
		TS:          time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC),
		OriginLabel: "Home",
		DestLabel:   "Work",
		Metrics:     threeAlternatives(),
	}

	if err := store.InsertBatch(ctx, batch); err != nil {
		t.Fatalf("insert batch: %v", err)
	}

	rows, err := store.ListByBatch(ctx, "batch-1")
	if err != nil {
		t.Fatalf("list batch: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(rows))
	}

	for _, r := range rows {
		if r.BatchID != batch.ID {
			t.Errorf("sample %d batch_id = %q", r.ID, r.BatchID)
		}
		if !r.BatchTS.Equal(batch.TS) {
			t.Errorf("sample %d batch_ts = %v, want %v", r.ID, r.BatchTS, batch.TS)
		}
		if r.OriginLabel != "Home" || r.DestLabel != "Work" {
			t.Errorf("sample %d route = %s -> %s", r.ID, r.OriginLabel, r.DestLabel)
		}
	}

	if rows[1].Description != "US-1" || rows[1].Meters != 17500 || rows[1].Miles != 10.9 {
		t.Errorf("second alternative = %+v", rows[1].SampleMetrics)
	}
}

func TestInsertBatchRollsBackOnFailure(t *testing.T) {
	dbh := openTestDB(t)
	store := NewSqliteSampleStore(dbh)
	ctx := context.Background()

	// Abort the transaction after the first row has gone in, simulating a
	// write failure in the middle of the batch.
	_, err := dbh.Exec(`
	CREATE TRIGGER samples_fail AFTER INSERT ON samples
	WHEN (SELECT COUNT(*) FROM samples) > 1
	BEGIN
		SELECT RAISE(ABORT, 'simulated write failure');
	END;
	`)
	if err != nil {
		t.Fatalf("create trigger: %v", err)
	}

	batch := domain.Batch{
		ID:          "batch-broken",
		TS:          time.Now().UTC(),
		OriginLabel: "Home",
		DestLabel:   "Work",
		Metrics:     threeAlternatives(),
	}

	if err := store.InsertBatch(ctx, batch); err == nil {
		t.Fatal("expected insert failure")
	}

	rows, err := store.ListByBatch(ctx, "batch-broken")
	if err != nil {
		t.Fatalf("list batch: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("partial batch persisted: %d rows", len(rows))
	}
}

func TestInsertBatchEmptyWritesNothing(t *testing.T) {
	dbh := openTestDB(t)
	store := NewSqliteSampleStore(dbh)

	err := store.InsertBatch(context.Background(), domain.Batch{ID: "batch-empty", TS: time.Now()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int
	if err := dbh.QueryRow(`SELECT COUNT(*) FROM samples;`).Scan(&count); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no rows, got %d", count)
	}
}

func TestListRoutesOrdersByCount(t *testing.T) {
	store := NewSqliteSampleStore(openTestDB(t))
	ctx := context.Background()

	ts := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	mustInsert := func(id, origin, dest string, n int) {
		t.Helper()
		batch := domain.Batch{ID: id, TS: ts, OriginLabel: origin, DestLabel: dest, Metrics: threeAlternatives()[:n]}
		if err := store.InsertBatch(ctx, batch); err != nil {
			t.Fatalf("insert %s: %v", id, err)
		}
	}

	mustInsert("b1", "Home", "Work", 1)
	mustInsert("b2", "Work", "Home", 3)

	pairs, err := store.ListRoutes(ctx)
	if err != nil {
		t.Fatalf("list routes: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0].OriginLabel != "Work" || pairs[0].Samples != 3 {
		t.Errorf("first pair = %+v, want the most sampled direction", pairs[0])
	}
	if pairs[1].OriginLabel != "Home" || pairs[1].Samples != 1 {
		t.Errorf("second pair = %+v", pairs[1])
	}
}

func TestListSamplesTrailingWindow(t *testing.T) {
	dbh := openTestDB(t)
	store := NewSqliteSampleStore(dbh)
	ctx := context.Background()

	ts := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	old := domain.Batch{ID: "b-old", TS: ts, OriginLabel: "Home", DestLabel: "Work", Metrics: threeAlternatives()[:1]}
	recent := domain.Batch{ID: "b-new", TS: ts, OriginLabel: "Home", DestLabel: "Work", Metrics: threeAlternatives()[:2]}
	other := domain.Batch{ID: "b-other", TS: ts, OriginLabel: "Work", DestLabel: "Home", Metrics: threeAlternatives()[:1]}

	for _, b := range []domain.Batch{old, recent, other} {
		if err := store.InsertBatch(ctx, b); err != nil {
			t.Fatalf("insert %s: %v", b.ID, err)
		}
	}

	// Push one batch outside the window.
	if _, err := dbh.Exec(`UPDATE samples SET created_at = '2020-01-01 06:00:00' WHERE batch_id = 'b-old';`); err != nil {
		t.Fatalf("backdate batch: %v", err)
	}

	got, err := store.ListSamples(ctx, ports.SampleQuery{
		OriginLabel: "Home",
		DestLabel:   "Work",
		Since:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("list samples: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 samples inside window, got %d", len(got))
	}
	for _, smp := range got {
		if smp.BatchID != "b-new" {
			t.Errorf("sample %d from batch %q, want b-new only", smp.ID, smp.BatchID)
		}
	}

	// Without a lower bound the backdated batch reappears, oldest first.
	all, err := store.ListSamples(ctx, ports.SampleQuery{OriginLabel: "Home", DestLabel: "Work"})
	if err != nil {
		t.Fatalf("list samples: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(all))
	}
	if all[0].BatchID != "b-old" {
		t.Errorf("first sample from batch %q, want the oldest", all[0].BatchID)
	}
	for i := 1; i < len(all); i++ {
		if all[i].CreatedAt.Before(all[i-1].CreatedAt) {
			t.Errorf("samples not in ascending creation order at index %d", i)
		}
	}
}
