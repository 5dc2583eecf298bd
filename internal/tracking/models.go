package tracking

import (
	"time"

	"backend-runtracker/internal/route"
)

type Run struct {
	ID             string     `json:"id"`
	State          string     `json:"state"`
	StartedAt      time.Time  `json:"started_at"`
	StoppedAt      time.Time  `json:"stopped_at,omitempty"`
	PointCount     int        `json:"point_count"`
	TotalDistanceM float64    `json:"total_distance_m"`
	Unit           route.Unit `json:"unit"`
	Display        string     `json:"display_distance"`
}

type StopResult struct {
	Run     Run           `json:"run"`
	Summary route.Summary `json:"summary"`
}

// SampleInput is a location update as posted by the device.
type SampleInput struct {
	Lat        *float64  `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng        *float64  `json:"lng" validate:"required,gte=-180,lte=180"`
	RecordedAt time.Time `json:"recorded_at"`
}

// IngestRequest carries either a single sample or a batch under "samples".
type IngestRequest struct {
	SampleInput
	Samples []SampleInput `json:"samples"`
}

type IngestResult struct {
	RunID    string `json:"run_id"`
	Received int    `json:"received"`
	Recorded int    `json:"recorded"`
}

type SampleEvent struct {
	RunID          string       `json:"run_id"`
	Sample         route.Sample `json:"sample"`
	TotalDistanceM float64      `json:"total_distance_m"`
}

type Share struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

type Location struct {
	Sample route.Sample `json:"sample"`
	Region []float64    `json:"region"`
}
