package google

import (
	"bytes"
	"commute-monitor/internal/domain"
	"commute-monitor/internal/platform/obs"
	"commute-monitor/internal/ports"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const routesFieldMask = "routes.duration,routes.distanceMeters,routes.localizedValues,routes.description"

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type waypoint struct {
	Location struct {
		LatLng latLng `json:"latLng"`
	} `json:"location"`
}

type computeRoutesRequest struct {
	Origin                   waypoint `json:"origin"`
	Destination              waypoint `json:"destination"`
	TravelMode               string   `json:"travelMode"`
	Units                    string   `json:"units"`
	ComputeAlternativeRoutes bool     `json:"computeAlternativeRoutes"`
	RoutingPreference        string   `json:"routingPreference"`
}

type localizedText struct {
	Text string `json:"text"`
}

type computeRoutesResponse struct {
	Routes []struct {
		Description     string `json:"description"`
		DistanceMeters  int    `json:"distanceMeters"`
		Duration        string `json:"duration"`
		LocalizedValues struct {
			Distance       localizedText `json:"distance"`
			Duration       localizedText `json:"duration"`
			StaticDuration localizedText `json:"staticDuration"`
		} `json:"localizedValues"`
	} `json:"routes"`
}

// GetRoutes requests alternative driving routes between two coordinates
// with traffic-aware routing. A failed request or a response without any
// route is an UpstreamError carrying the status and body for diagnosis.
func (c *Client) GetRoutes(ctx context.Context, origin, dest domain.Coordinates) (_ []ports.RawRoute, err error) {
	defer obs.Time(ctx, "google.computeRoutes")(&err)

	ctx, cancel := context.WithTimeout(ctx, routesTimeout)
	defer cancel()

	bodyObj := computeRoutesRequest{
		TravelMode:               "DRIVE",
		Units:                    "IMPERIAL",
		ComputeAlternativeRoutes: true,
		RoutingPreference:        "TRAFFIC_AWARE_OPTIMAL",
	}
	bodyObj.Origin.Location.LatLng = latLng{Latitude: origin.Lat, Longitude: origin.Lon}
	bodyObj.Destination.Location.LatLng = latLng{Latitude: dest.Lat, Longitude: dest.Lon}

	payload, err := json.Marshal(bodyObj)
	if err != nil {
		return nil, fmt.Errorf("marshal routes request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.routesURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("routes request: %w", err)
	}
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", routesFieldMask)

	resp, status, body, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("execute routes request: %w", err)
	}
	if resp == nil {
		return nil, &ports.UpstreamError{Status: status, Body: body}
	}
	defer resp.Body.Close()

	var decoded computeRoutesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode routes response: %w", err)
	}

	if len(decoded.Routes) == 0 {
		return nil, &ports.UpstreamError{Status: status, Body: "no routes returned"}
	}

	out := make([]ports.RawRoute, 0, len(decoded.Routes))
	for _, rt := range decoded.Routes {
		out = append(out, ports.RawRoute{
			Description:        rt.Description,
			DistanceMeters:     rt.DistanceMeters,
			Duration:           rt.Duration,
			DistanceText:       rt.LocalizedValues.Distance.Text,
			StaticDurationText: rt.LocalizedValues.StaticDuration.Text,
			DurationText:       rt.LocalizedValues.Duration.Text,
		})
	}

	return out, nil
}
