package route

import (
	"fmt"

	"backend-runtracker/internal/shared/geo"
)

// TotalDistance sums the geodesic distance between each pair of adjacent
// samples. Fewer than two samples travel nowhere.
func TotalDistance(samples []Sample) float64 {
	total := 0.0
	for i := 1; i < len(samples); i++ {
		prev, cur := samples[i-1], samples[i]
		total += geo.DistanceMeters(prev.Lat, prev.Lng, cur.Lat, cur.Lng)
	}
	return total
}

func FormatDistance(meters float64, unit Unit) string {
	return fmt.Sprintf("Distance Travelled: %.2f %s", meters*unit.Factor(), unit.Label())
}

func summarize(samples []Sample, distance float64) Summary {
	summary := Summary{PointCount: len(samples), DistanceM: distance}
	if len(samples) < 2 {
		return summary
	}

	first, last := samples[0].RecordedAt, samples[len(samples)-1].RecordedAt
	if first.IsZero() || last.IsZero() || !last.After(first) {
		return summary
	}
	duration := last.Sub(first)
	summary.DurationSec = int64(duration.Seconds())
	summary.AverageSpeedMps = distance / duration.Seconds()
	return summary
}
