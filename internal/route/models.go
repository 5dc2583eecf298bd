package route

import (
	"errors"
	"strings"
	"time"
)

// Sample is a single position fix in degrees. Ordering is arrival order;
// RecordedAt is informational and may be zero.
type Sample struct {
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	RecordedAt time.Time `json:"recorded_at"`
}

type Unit string

const (
	Miles      Unit = "Miles"
	Kilometers Unit = "Kilometers"
)

const (
	metersToMiles      = 0.0006213712
	metersToKilometers = 0.001
)

var ErrUnknownUnit = errors.New("unknown distance unit")

// ParseUnit accepts "Miles" or "Kilometers" in any case.
func ParseUnit(raw string) (Unit, error) {
	switch {
	case strings.EqualFold(raw, string(Miles)):
		return Miles, nil
	case strings.EqualFold(raw, string(Kilometers)):
		return Kilometers, nil
	}
	return "", ErrUnknownUnit
}

// Factor converts metres to the unit. Anything other than Miles is shown in
// kilometers.
func (u Unit) Factor() float64 {
	if u == Miles {
		return metersToMiles
	}
	return metersToKilometers
}

func (u Unit) Label() string {
	if u == Miles {
		return "miles"
	}
	return "kilometers"
}

type Summary struct {
	PointCount      int     `json:"point_count"`
	DistanceM       float64 `json:"distance_m"`
	DurationSec     int64   `json:"duration_sec"`
	AverageSpeedMps float64 `json:"average_speed_mps"`
}

type Annotation struct {
	Kind     string  `json:"kind"`
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Cell     string  `json:"cell"`
}
