package handlers

import (
	"commute-monitor/internal/api/dto"
	"commute-monitor/internal/ports"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRoutes(t *testing.T) {
	reader := &fakeReader{routes: []ports.RoutePair{
		{OriginLabel: "home", DestLabel: "work", Samples: 42},
		{OriginLabel: "work", DestLabel: "home", Samples: 17},
	}}
	h := NewRoutesHandler(reader)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/routes", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.ListRoutesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Routes, 2)
	assert.Equal(t, "home", res.Routes[0].Origin)
	assert.Equal(t, "work", res.Routes[0].Dest)
	assert.Equal(t, 42, res.Routes[0].Samples)
}

func TestListRoutesServesFromCache(t *testing.T) {
	reader := &fakeReader{routes: []ports.RoutePair{
		{OriginLabel: "home", DestLabel: "work", Samples: 1},
	}}
	h := NewRoutesHandler(reader)

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.List(rec, httptest.NewRequest(http.MethodGet, "/api/routes", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 1, reader.listRoutesCalls)
}
