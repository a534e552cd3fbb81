package handlers

import (
	"commute-monitor/internal/api/dto"
	"commute-monitor/internal/logging"
	"commute-monitor/internal/ports"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
)

const routesCacheKey = "routes"

// RoutesHandler lists the sampled directions. The result only changes when
// a new direction appears, so responses are served from a short-lived
// in-process cache.
type RoutesHandler struct {
	Reader ports.SampleReader
	Cache  *cache.Cache
}

func NewRoutesHandler(reader ports.SampleReader) *RoutesHandler {
	return &RoutesHandler{
		Reader: reader,
		Cache:  cache.New(time.Minute, 5*time.Minute),
	}
}

func (h *RoutesHandler) List(w http.ResponseWriter, r *http.Request) {
	if cached, ok := h.Cache.Get(routesCacheKey); ok {
		if res, ok := cached.(dto.ListRoutesResponse); ok {
			writeJSON(w, r, http.StatusOK, res)
			return
		}
	}

	pairs, err := h.Reader.ListRoutes(r.Context())
	if err != nil {
		logging.Error("list routes failed", "error", err.Error())
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListRoutesResponse{
		Routes: make([]dto.RouteResponse, 0, len(pairs)),
	}
	for _, p := range pairs {
		res.Routes = append(res.Routes, dto.RouteResponse{
			Origin:  p.OriginLabel,
			Dest:    p.DestLabel,
			Samples: p.Samples,
		})
	}

	h.Cache.SetDefault(routesCacheKey, res)
	writeJSON(w, r, http.StatusOK, res)
}
