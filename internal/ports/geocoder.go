package ports

import (
	"commute-monitor/internal/domain"
	"context"
	"fmt"
)

// Contract for turning a street address into coordinates.
type Geocoder interface {
	// Return the coordinates of the first geocoding result for the address.
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}

// ResolutionError reports that the geocoding provider rejected an address
// or returned no result for it. It aborts the run before any routing call.
type ResolutionError struct {
	Address string
	Status  string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("geocode failed for %q: %s", e.Address, e.Status)
}
