package repositories

import (
	"commute-monitor/internal/domain"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLite-backed implementation of the LocationStore port. One row per
// label; re-resolving a label overwrites its address and coordinates.
type SqliteLocationStore struct{ DB *sql.DB }

func NewSqliteLocationStore(db *sql.DB) *SqliteLocationStore {
	return &SqliteLocationStore{DB: db}
}

// Return the cached coordinates for a label. Rows whose coordinates were
// never resolved (NULL lat/lon) count as a miss.
func (s *SqliteLocationStore) GetCoordinates(ctx context.Context, label string) (domain.Coordinates, bool, error) {
	if s.DB == nil {
		return domain.Coordinates{}, false, errors.New("location store: DB is nil")
	}

	query := `
	SELECT lat, lon
	FROM locations
	WHERE label = ?;
	`

	var lat, lon sql.NullFloat64
	err := s.DB.QueryRowContext(ctx, query, label).Scan(&lat, &lon)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get coordinates %q: %w", label, err)
	}

	if !lat.Valid || !lon.Valid {
		return domain.Coordinates{}, false, nil
	}

	return domain.Coordinates{Lat: lat.Float64, Lon: lon.Float64}, true, nil
}

// Insert or overwrite the stored location for a label. The upsert keys on
// the label's UNIQUE constraint, so resolving the same label twice never
// produces a second row.
func (s *SqliteLocationStore) Upsert(ctx context.Context, label, address string, coord domain.Coordinates) error {
	if s.DB == nil {
		return errors.New("location store: DB is nil")
	}
	if strings.TrimSpace(label) == "" {
		return errors.New("location store: empty label")
	}

	query := `
	INSERT INTO locations (label, address, lat, lon)
	VALUES (?, ?, ?, ?)
	ON CONFLICT (label) DO UPDATE
	SET address = excluded.address,
		lat = excluded.lat,
		lon = excluded.lon;
	`

	if _, err := s.DB.ExecContext(ctx, query, label, address, coord.Lat, coord.Lon); err != nil {
		return fmt.Errorf("upsert location %q: %w", label, err)
	}

	return nil
}
