package google

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	geocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"
	routesURL  = "https://routes.googleapis.com/directions/v2:computeRoutes"

	geocodeTimeout = 20 * time.Second
	routesTimeout  = 25 * time.Second
)

// Client talks to the Google Maps platform: the Geocoding API for
// address resolution and the Routes API for traffic-aware directions.
//
// Requests are not retried; a failed call fails the invocation and the
// external scheduler's next tick is the retry.
type Client struct {
	session    *http.Client
	apiKey     string
	geocodeURL string
	routesURL  string
}

func NewClient(apiKey string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("google api key is empty")
	}

	return &Client{
		session:    &http.Client{},
		apiKey:     apiKey,
		geocodeURL: geocodeURL,
		routesURL:  routesURL,
	}, nil
}

func (c *Client) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// do executes a request and hands back the response together with the
// status code and, for non-2xx responses, the drained body.
func (c *Client) do(req *http.Request) (*http.Response, int, string, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, 0, "", err
	}

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, resp.StatusCode, strings.TrimSpace(string(b)), nil
	}

	return resp, resp.StatusCode, "", nil
}
