package dto

import "time"

type SampleResponse struct {
	CreatedAt             time.Time `json:"created_at"`
	BatchID               string    `json:"batch_id"`
	BatchTS               time.Time `json:"batch_ts"`
	Description           string    `json:"description"`
	Meters                int       `json:"meters"`
	Miles                 float64   `json:"miles"`
	DurationSeconds       int       `json:"duration_seconds"`
	DurationStaticMinutes int       `json:"duration_static_minutes"`
	DurationMinutes       int       `json:"duration_minutes"`
}

type ListSamplesResponse struct {
	Origin  string           `json:"origin"`
	Dest    string           `json:"dest"`
	Samples []SampleResponse `json:"samples"`
}

type RouteResponse struct {
	Origin  string `json:"origin"`
	Dest    string `json:"dest"`
	Samples int    `json:"samples"`
}

type ListRoutesResponse struct {
	Routes []RouteResponse `json:"routes"`
}
