package services

import (
	"commute-monitor/internal/domain"
	"commute-monitor/internal/platform/obs"
	"commute-monitor/internal/ports"
	"context"
	"fmt"
)

// LocationResolver maps a location label to coordinates, consulting the
// persistent store before the geocoding provider. A hit performs no
// network call; a miss geocodes the address and upserts the result so the
// next invocation hits.
type LocationResolver struct {
	Store    ports.LocationStore
	Geocoder ports.Geocoder
}

func NewLocationResolver(store ports.LocationStore, geocoder ports.Geocoder) *LocationResolver {
	return &LocationResolver{Store: store, Geocoder: geocoder}
}

func (r *LocationResolver) Resolve(ctx context.Context, label, address string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "resolver.resolve")(&err)

	coord, ok, err := r.Store.GetCoordinates(ctx, label)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("resolve %q: read cache: %w", label, err)
	}
	if ok {
		return coord, nil
	}

	coord, err = r.Geocoder.Geocode(ctx, address)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("resolve %q: %w", label, err)
	}

	if err := r.Store.Upsert(ctx, label, address, coord); err != nil {
		return domain.Coordinates{}, fmt.Errorf("resolve %q: cache result: %w", label, err)
	}

	return coord, nil
}
