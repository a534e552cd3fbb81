package ports

import (
	"commute-monitor/internal/domain"
	"context"
	"fmt"
)

// RawRoute is one candidate route as the provider reports it: machine
// fields (meters, "<seconds>s") next to localized display text.
type RawRoute struct {
	Description        string
	DistanceMeters     int
	Duration           string // "1532s"
	DistanceText       string // "12.3 mi"
	StaticDurationText string // "25 min", without traffic
	DurationText       string // "28 min", with traffic
}

// Contract for fetching candidate routes between two coordinates.
type RouteProvider interface {
	// Request alternative driving routes from origin to destination.
	GetRoutes(ctx context.Context, origin, dest domain.Coordinates) ([]RawRoute, error)
}

// UpstreamError carries the routing provider's HTTP status and response
// body for diagnosis. It is also returned when a request succeeds but
// contains zero routes.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("routes api returned %d: %s", e.Status, e.Body)
}
