package domain

import "time"

// SampleMetrics is the normalized form of one route alternative returned by
// the routing provider: machine-readable meters and seconds plus the values
// parsed out of the provider's localized text fields.
type SampleMetrics struct {
	Description     string
	Meters          int
	Miles           float64
	DurationSeconds int
	// Estimated minutes without traffic, from the localized staticDuration.
	StaticMinutes int
	// Estimated minutes with current traffic, from the localized duration.
	TrafficMinutes int
}

// Sample is one persisted route observation.
// Samples are immutable once written; the pipeline only appends.
type Sample struct {
	ID          int64
	CreatedAt   time.Time
	BatchID     string
	BatchTS     time.Time
	OriginLabel string
	DestLabel   string
	SampleMetrics
}

// Batch groups every route alternative returned by one provider call.
// All samples of a batch share the identifier, the timestamp and the
// (origin, destination) pair, and are persisted atomically.
type Batch struct {
	ID          string
	TS          time.Time
	OriginLabel string
	DestLabel   string
	Metrics     []SampleMetrics
}
