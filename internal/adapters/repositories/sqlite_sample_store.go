package repositories

import (
	"commute-monitor/internal/domain"
	"commute-monitor/internal/ports"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
)

// Timestamp layout used for batch_ts values and CURRENT_TIMESTAMP defaults
// (UTC, second precision). Lexicographic order equals chronological order,
// which the trailing-window query relies on.
const sqlTimeLayout = "2006-01-02 15:04:05"

var sqlite = goqu.Dialect(DialectSQLite)

var sampleColumns = []any{
	"id", "created_at", "batch_id", "batch_ts", "origin_label", "dest_label",
	"description", "meters", "miles", "duration_seconds",
	"duration_static_minutes", "duration_minutes",
}

// SQLite-backed implementation of the SampleStore and SampleReader ports.
type SqliteSampleStore struct{ DB *sql.DB }

func NewSqliteSampleStore(db *sql.DB) *SqliteSampleStore {
	return &SqliteSampleStore{DB: db}
}

// Write every sample of a batch inside one transaction. Any failed insert
// rolls the whole batch back, so readers never observe a batch with only
// some of its route alternatives.
func (s *SqliteSampleStore) InsertBatch(ctx context.Context, batch domain.Batch) error {
	if s.DB == nil {
		return errors.New("sample store: DB is nil")
	}
	if len(batch.Metrics) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert batch: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO samples (
		batch_id, batch_ts, origin_label, dest_label, description,
		meters, miles, duration_seconds, duration_static_minutes, duration_minutes
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("insert batch: db prepare: %w", err)
	}
	defer stmt.Close()

	batchTS := batch.TS.UTC().Format(sqlTimeLayout)
	for _, m := range batch.Metrics {
		_, err := stmt.ExecContext(ctx,
			batch.ID, batchTS, batch.OriginLabel, batch.DestLabel, m.Description,
			m.Meters, m.Miles, m.DurationSeconds, m.StaticMinutes, m.TrafficMinutes,
		)
		if err != nil {
			return fmt.Errorf("insert batch %s route %q: %w", batch.ID, m.Description, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert batch %s commit: %w", batch.ID, err)
	}

	return nil
}

// Return every sample of one batch, in insertion order.
func (s *SqliteSampleStore) ListByBatch(ctx context.Context, batchID string) ([]domain.Sample, error) {
	query, args, err := sqlite.From("samples").
		Select(sampleColumns...).
		Where(goqu.Ex{"batch_id": batchID}).
		Order(goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("list batch %s: build query: %w", batchID, err)
	}

	return s.querySamples(ctx, query, args)
}

// Distinct sampled directions with their sample counts, most sampled first.
func (s *SqliteSampleStore) ListRoutes(ctx context.Context) ([]ports.RoutePair, error) {
	if s.DB == nil {
		return nil, errors.New("sample store: DB is nil")
	}

	query, args, err := sqlite.From("samples").
		Select(
			goqu.C("origin_label"),
			goqu.C("dest_label"),
			goqu.COUNT(goqu.Star()).As("sample_count"),
		).
		GroupBy("origin_label", "dest_label").
		Order(goqu.C("sample_count").Desc()).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("list routes: build query: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list routes: query samples table: %w", err)
	}
	defer rows.Close()

	out := make([]ports.RoutePair, 0, 4)
	for rows.Next() {
		var p ports.RoutePair
		if err := rows.Scan(&p.OriginLabel, &p.DestLabel, &p.Samples); err != nil {
			return nil, fmt.Errorf("list routes: scan row: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: row iteration: %w", err)
	}

	return out, nil
}

// Samples of one direction over a trailing window, creation time ascending.
func (s *SqliteSampleStore) ListSamples(ctx context.Context, q ports.SampleQuery) ([]domain.Sample, error) {
	ds := sqlite.From("samples").
		Select(sampleColumns...).
		Where(goqu.Ex{
			"origin_label": q.OriginLabel,
			"dest_label":   q.DestLabel,
		}).
		Order(goqu.C("created_at").Asc(), goqu.C("id").Asc())

	if !q.Since.IsZero() {
		ds = ds.Where(goqu.C("created_at").Gte(q.Since.UTC().Format(sqlTimeLayout)))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("list samples: build query: %w", err)
	}

	return s.querySamples(ctx, query, args)
}

func (s *SqliteSampleStore) querySamples(ctx context.Context, query string, args []any) ([]domain.Sample, error) {
	if s.DB == nil {
		return nil, errors.New("sample store: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query samples table: %w", err)
	}
	defer rows.Close()

	samples := make([]domain.Sample, 0, 16)
	for rows.Next() {
		var smp domain.Sample
		var createdAt, batchTS string
		err := rows.Scan(
			&smp.ID, &createdAt, &smp.BatchID, &batchTS, &smp.OriginLabel, &smp.DestLabel,
			&smp.Description, &smp.Meters, &smp.Miles, &smp.DurationSeconds,
			&smp.StaticMinutes, &smp.TrafficMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("scan sample row: %w", err)
		}

		if smp.CreatedAt, err = parseSQLTime(createdAt); err != nil {
			return nil, fmt.Errorf("sample %d created_at: %w", smp.ID, err)
		}
		if smp.BatchTS, err = parseSQLTime(batchTS); err != nil {
			return nil, fmt.Errorf("sample %d batch_ts: %w", smp.ID, err)
		}

		samples = append(samples, smp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sample row iteration: %w", err)
	}

	return samples, nil
}

func parseSQLTime(v string) (time.Time, error) {
	return time.ParseInLocation(sqlTimeLayout, v, time.UTC)
}
