package services

import (
	"commute-monitor/internal/domain"
	"commute-monitor/internal/parse"
	"commute-monitor/internal/ports"
	"fmt"
)

// ExtractMetrics normalizes one raw provider route into typed metrics.
// Pure: no I/O, no clock. Any field that is absent or does not match its
// expected textual shape fails the whole extraction; the pipeline persists
// nothing partial.
func ExtractMetrics(rt ports.RawRoute) (domain.SampleMetrics, error) {
	if rt.DistanceMeters <= 0 {
		return domain.SampleMetrics{}, fmt.Errorf("extract route %q: missing distanceMeters", rt.Description)
	}

	miles, err := parse.LeadingFloat(rt.DistanceText)
	if err != nil {
		return domain.SampleMetrics{}, fmt.Errorf("extract route %q: distance text: %w", rt.Description, err)
	}

	seconds, err := parse.Seconds(rt.Duration)
	if err != nil {
		return domain.SampleMetrics{}, fmt.Errorf("extract route %q: duration: %w", rt.Description, err)
	}

	staticMin, err := parse.LeadingInt(rt.StaticDurationText)
	if err != nil {
		return domain.SampleMetrics{}, fmt.Errorf("extract route %q: static duration text: %w", rt.Description, err)
	}

	trafficMin, err := parse.LeadingInt(rt.DurationText)
	if err != nil {
		return domain.SampleMetrics{}, fmt.Errorf("extract route %q: duration text: %w", rt.Description, err)
	}

	return domain.SampleMetrics{
		Description:     rt.Description,
		Meters:          rt.DistanceMeters,
		Miles:           miles,
		DurationSeconds: seconds,
		StaticMinutes:   staticMin,
		TrafficMinutes:  trafficMin,
	}, nil
}
