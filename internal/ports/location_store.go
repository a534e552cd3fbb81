package ports

import (
	"commute-monitor/internal/domain"
	"context"
)

// Port: persistent storage of resolved locations, keyed by label.
type LocationStore interface {
	// Return the cached coordinates for a label. The second value reports
	// whether a non-null coordinate pair was found.
	GetCoordinates(ctx context.Context, label string) (domain.Coordinates, bool, error)

	// Insert or overwrite the stored address and coordinates for a label.
	// At most one row per label ever exists.
	Upsert(ctx context.Context, label, address string, coord domain.Coordinates) error
}
