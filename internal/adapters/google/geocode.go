package google

import (
	"commute-monitor/internal/domain"
	"commute-monitor/internal/platform/obs"
	"commute-monitor/internal/ports"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves an address via the Geocoding API and returns the first
// result's coordinates. A non-OK provider status or an empty result set is
// a ResolutionError.
func (c *Client) Geocode(ctx context.Context, address string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "google.geocode")(&err)

	ctx, cancel := context.WithTimeout(ctx, geocodeTimeout)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodGet, c.geocodeURL, nil)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode request: %w", err)
	}

	q := req.URL.Query()
	q.Set("address", address)
	q.Set("key", c.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, status, body, err := c.do(req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("execute geocode request: %w", err)
	}
	if resp == nil {
		return domain.Coordinates{}, &ports.ResolutionError{
			Address: address,
			Status:  fmt.Sprintf("http %d: %s", status, body),
		}
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if decoded.Status != "OK" || len(decoded.Results) == 0 {
		return domain.Coordinates{}, &ports.ResolutionError{Address: address, Status: decoded.Status}
	}

	loc := decoded.Results[0].Geometry.Location
	return domain.Coordinates{Lat: loc.Lat, Lon: loc.Lng}, nil
}
