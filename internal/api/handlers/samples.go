package handlers

import (
	"commute-monitor/internal/api/dto"
	"commute-monitor/internal/domain"
	"commute-monitor/internal/logging"
	"commute-monitor/internal/ports"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// SamplesHandler serves the samples of one direction over a trailing
// window of days, ordered by creation time ascending. The optional
// from/to parameters restrict results to a local time-of-day sub-window,
// and limit keeps only the most recent N rows.
type SamplesHandler struct {
	Reader ports.SampleReader
	Local  *time.Location

	// Now is overridable in tests; nil means time.Now.
	Now func() time.Time
}

func (h *SamplesHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	origin := strings.TrimSpace(q.Get("origin"))
	dest := strings.TrimSpace(q.Get("dest"))
	if origin == "" || dest == "" {
		writeError(w, r, http.StatusBadRequest, "origin and dest are required")
		return
	}

	days := 7
	if v := q.Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 90 {
			writeError(w, r, http.StatusBadRequest, "days must be between 1 and 90")
			return
		}
		days = n
	}

	fromMin, toMin := 0, 24*60-1
	if v := q.Get("from"); v != "" {
		n, err := parseClock(v)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "from must be HH:MM")
			return
		}
		fromMin = n
	}
	if v := q.Get("to"); v != "" {
		n, err := parseClock(v)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "to must be HH:MM")
			return
		}
		toMin = n
	}
	if fromMin > toMin {
		writeError(w, r, http.StatusBadRequest, "from must not be after to")
		return
	}

	limit := 0
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	since := now().Add(-time.Duration(days) * 24 * time.Hour)

	samples, err := h.Reader.ListSamples(r.Context(), ports.SampleQuery{
		OriginLabel: origin,
		DestLabel:   dest,
		Since:       since,
	})
	if err != nil {
		logging.Error("list samples failed", "error", err.Error())
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	samples = filterByLocalWindow(samples, h.Local, fromMin, toMin)
	if limit > 0 && len(samples) > limit {
		samples = samples[len(samples)-limit:]
	}

	res := dto.ListSamplesResponse{
		Origin:  origin,
		Dest:    dest,
		Samples: make([]dto.SampleResponse, 0, len(samples)),
	}
	for _, s := range samples {
		res.Samples = append(res.Samples, dto.SampleResponse{
			CreatedAt:             s.CreatedAt,
			BatchID:               s.BatchID,
			BatchTS:               s.BatchTS,
			Description:           s.Description,
			Meters:                s.Meters,
			Miles:                 s.Miles,
			DurationSeconds:       s.DurationSeconds,
			DurationStaticMinutes: s.StaticMinutes,
			DurationMinutes:       s.TrafficMinutes,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// parseClock parses "HH:MM" into minutes since midnight.
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// filterByLocalWindow keeps samples whose local creation time falls inside
// [fromMin, toMin], inclusive at both ends.
func filterByLocalWindow(samples []domain.Sample, local *time.Location, fromMin, toMin int) []domain.Sample {
	if fromMin == 0 && toMin == 24*60-1 {
		return samples
	}

	out := make([]domain.Sample, 0, len(samples))
	for _, s := range samples {
		lt := s.CreatedAt.In(local)
		mins := lt.Hour()*60 + lt.Minute()
		if mins >= fromMin && mins <= toMin {
			out = append(out, s)
		}
	}
	return out
}
