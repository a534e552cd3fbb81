package google

import (
	"commute-monitor/internal/ports"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient("test-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.geocodeURL = srv.URL
	c.routesURL = srv.URL
	return c
}

func TestGeocodeFirstResult(t *testing.T) {
	var gotAddress string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAddress = r.URL.Query().Get("address")
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key in query")
		}
		w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"geometry": {"location": {"lat": 40.1, "lng": -74.2}}},
				{"geometry": {"location": {"lat": 99.0, "lng": 99.0}}}
			]
		}`))
	})

	coord, err := c.Geocode(context.Background(), "1 Main St")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAddress != "1 Main St" {
		t.Errorf("address sent = %q", gotAddress)
	}
	if coord.Lat != 40.1 || coord.Lon != -74.2 {
		t.Errorf("coord = %+v, want first result", coord)
	}
}

func TestGeocodeNonSuccessStatus(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	_, err := c.Geocode(context.Background(), "nowhere")
	var re *ports.ResolutionError
	if !errors.As(err, &re) {
		t.Fatalf("expected ResolutionError, got %v", err)
	}
	if re.Status != "ZERO_RESULTS" {
		t.Errorf("status = %q", re.Status)
	}
}

func TestGeocodeHTTPError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	})

	_, err := c.Geocode(context.Background(), "1 Main St")
	var re *ports.ResolutionError
	if !errors.As(err, &re) {
		t.Fatalf("expected ResolutionError, got %v", err)
	}
}
