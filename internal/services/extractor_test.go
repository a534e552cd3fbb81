package services

import (
	"commute-monitor/internal/ports"
	"testing"
)

func goodRawRoute() ports.RawRoute {
	return ports.RawRoute{
		Description:        "I-95",
		DistanceMeters:     16000,
		Duration:           "1200s",
		DistanceText:       "9.9 mi",
		StaticDurationText: "18 min",
		DurationText:       "20 min",
	}
}

func TestExtractMetrics(t *testing.T) {
	m, err := ExtractMetrics(goodRawRoute())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.Description != "I-95" {
		t.Errorf("Description = %q", m.Description)
	}
	if m.Meters != 16000 {
		t.Errorf("Meters = %d", m.Meters)
	}
	if m.Miles != 9.9 {
		t.Errorf("Miles = %v", m.Miles)
	}
	if m.DurationSeconds != 1200 {
		t.Errorf("DurationSeconds = %d", m.DurationSeconds)
	}
	if m.StaticMinutes != 18 {
		t.Errorf("StaticMinutes = %d", m.StaticMinutes)
	}
	if m.TrafficMinutes != 20 {
		t.Errorf("TrafficMinutes = %d", m.TrafficMinutes)
	}
}

func TestExtractMetricsPluralUnits(t *testing.T) {
	rt := goodRawRoute()
	rt.StaticDurationText = "18 mins"
	rt.DurationText = "20 mins"

	m, err := ExtractMetrics(rt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.StaticMinutes != 18 || m.TrafficMinutes != 20 {
		t.Errorf("minutes = %d/%d, plural unit must parse identically", m.StaticMinutes, m.TrafficMinutes)
	}
}

func TestExtractMetricsRejectsMalformedFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ports.RawRoute)
	}{
		{"missing meters", func(rt *ports.RawRoute) { rt.DistanceMeters = 0 }},
		{"missing duration", func(rt *ports.RawRoute) { rt.Duration = "" }},
		{"duration without suffix", func(rt *ports.RawRoute) { rt.Duration = "1200" }},
		{"separator in machine duration", func(rt *ports.RawRoute) { rt.Duration = "1,532s" }},
		{"missing distance text", func(rt *ports.RawRoute) { rt.DistanceText = "" }},
		{"missing static duration text", func(rt *ports.RawRoute) { rt.StaticDurationText = "" }},
		{"garbled duration text", func(rt *ports.RawRoute) { rt.DurationText = "min 20" }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rt := goodRawRoute()
			c.mutate(&rt)
			if _, err := ExtractMetrics(rt); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
