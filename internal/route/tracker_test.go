package route

import (
	"sync"
	"testing"
	"time"

	"backend-runtracker/internal/shared/geo"
)

var (
	sampleA = Sample{Lat: 37.33182, Lng: -122.03118}
	sampleB = Sample{Lat: 37.33250, Lng: -122.03050}
	sampleC = Sample{Lat: 37.33320, Lng: -122.02990}
)

func TestTrackerStartsIdle(t *testing.T) {
	tr := NewTracker()
	if tr.State() != Idle {
		t.Fatalf("expected idle, got %v", tr.State())
	}
	if tr.TotalDistanceMeters() != 0 {
		t.Fatalf("expected zero distance")
	}
}

func TestAddSampleIgnoredWhenNotActive(t *testing.T) {
	tr := NewTracker()
	if tr.AddSample(sampleA) {
		t.Fatalf("expected sample to be skipped while idle")
	}
	if tr.Len() != 0 {
		t.Fatalf("expected no samples while idle")
	}

	tr.Start()
	tr.AddSample(sampleA)
	tr.Stop()

	if tr.AddSample(sampleB) {
		t.Fatalf("expected sample to be skipped while stopped")
	}
	if tr.Len() != 1 {
		t.Fatalf("expected 1 sample, got %d", tr.Len())
	}
}

func TestTotalDistanceEmptyAndSingle(t *testing.T) {
	tr := NewTracker()
	tr.Start()
	if d := tr.TotalDistanceMeters(); d != 0 {
		t.Fatalf("expected 0 for empty route, got %v", d)
	}
	tr.AddSample(sampleA)
	if d := tr.TotalDistanceMeters(); d != 0 {
		t.Fatalf("expected 0 for single sample, got %v", d)
	}
}

func TestTotalDistanceAdditive(t *testing.T) {
	tr := NewTracker()
	tr.Start()
	tr.AddSample(sampleA)
	tr.AddSample(sampleB)
	tr.AddSample(sampleC)

	want := geo.DistanceMeters(sampleA.Lat, sampleA.Lng, sampleB.Lat, sampleB.Lng) +
		geo.DistanceMeters(sampleB.Lat, sampleB.Lng, sampleC.Lat, sampleC.Lng)
	if got := tr.TotalDistanceMeters(); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}

	tr.Stop()
	if got := tr.TotalDistanceMeters(); got != want {
		t.Fatalf("expected frozen total %v, got %v", want, got)
	}
	tr.DisplayDistance(Kilometers)
	tr.DisplayDistance(Miles)
	if got := tr.TotalDistanceMeters(); got != want {
		t.Fatalf("unit choice changed total: %v", got)
	}
}

func TestTotalDistanceIdempotent(t *testing.T) {
	tr := NewTracker()
	tr.Start()
	tr.AddSample(sampleA)
	tr.AddSample(sampleC)

	first := tr.TotalDistanceMeters()
	second := tr.TotalDistanceMeters()
	if first != second {
		t.Fatalf("expected identical totals, got %v and %v", first, second)
	}
}

func TestDuplicateSamplesAddNothing(t *testing.T) {
	tr := NewTracker()
	tr.Start()
	tr.AddSample(sampleA)
	tr.AddSample(sampleA)
	tr.AddSample(sampleB)
	tr.AddSample(sampleB)

	if tr.Len() != 4 {
		t.Fatalf("expected duplicates to be kept, got %d samples", tr.Len())
	}
	want := geo.DistanceMeters(sampleA.Lat, sampleA.Lng, sampleB.Lat, sampleB.Lng)
	if got := tr.TotalDistanceMeters(); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestStartAfterStopResets(t *testing.T) {
	tr := NewTracker()
	tr.Start()
	tr.AddSample(sampleA)
	tr.AddSample(sampleB)
	tr.Stop()
	if tr.State() != Stopped {
		t.Fatalf("expected stopped")
	}

	tr.Start()
	if tr.State() != Active {
		t.Fatalf("expected active")
	}
	if tr.Len() != 0 || tr.TotalDistanceMeters() != 0 {
		t.Fatalf("expected empty route after restart")
	}
}

func TestStopWhileIdle(t *testing.T) {
	tr := NewTracker()
	summary := tr.Stop()
	if tr.State() != Idle {
		t.Fatalf("expected idle after stop without start")
	}
	if summary.PointCount != 0 || summary.DistanceM != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestStopSummary(t *testing.T) {
	start := time.Date(2024, 5, 1, 7, 0, 0, 0, time.UTC)
	a, b := sampleA, sampleC
	a.RecordedAt = start
	b.RecordedAt = start.Add(2 * time.Minute)

	tr := NewTracker()
	tr.Start()
	tr.AddSample(a)
	tr.AddSample(b)
	summary := tr.Stop()

	if summary.PointCount != 2 {
		t.Fatalf("expected 2 points, got %d", summary.PointCount)
	}
	if summary.DurationSec != 120 {
		t.Fatalf("expected 120s, got %d", summary.DurationSec)
	}
	if summary.AverageSpeedMps != summary.DistanceM/120 {
		t.Fatalf("unexpected speed: %v", summary.AverageSpeedMps)
	}
	if tr.Summary() != summary {
		t.Fatalf("expected summary to be stable after stop")
	}
}

func TestSamplesReturnsCopy(t *testing.T) {
	tr := NewTracker()
	tr.Start()
	tr.AddSample(sampleA)

	out := tr.Samples()
	out[0].Lat = 0
	if tr.Samples()[0].Lat != sampleA.Lat {
		t.Fatalf("expected tracker samples to be unaffected")
	}
}

func TestConcurrentAppends(t *testing.T) {
	tr := NewTracker()
	tr.Start()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tr.AddSample(sampleA)
			}
		}()
	}
	wg.Wait()

	if tr.Len() != 800 {
		t.Fatalf("expected 800 samples, got %d", tr.Len())
	}
	if tr.TotalDistanceMeters() != 0 {
		t.Fatalf("expected zero distance for identical samples")
	}
}

func TestStateString(t *testing.T) {
	if Idle.String() != "idle" || Active.String() != "active" || Stopped.String() != "stopped" {
		t.Fatalf("unexpected state names")
	}
}
