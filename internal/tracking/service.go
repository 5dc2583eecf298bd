package tracking

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"backend-runtracker/internal/route"
	"backend-runtracker/internal/shared/geo"
	"backend-runtracker/internal/stream"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// regionMeters is the span of the map region centred on the last fix.
const regionMeters = 500

var (
	ErrRunNotActive  = errors.New("no active run")
	ErrRouteTooShort = errors.New("route needs at least two samples")
)

// Service owns the single route tracker of this process and feeds it from
// device location updates.
type Service struct {
	mu        sync.Mutex
	tracker   *route.Tracker
	feed      *route.Feed
	hub       *stream.Hub
	unit      route.Unit
	runID     string
	startedAt time.Time
	stoppedAt time.Time
}

func NewService(feed *route.Feed, hub *stream.Hub, unit route.Unit) *Service {
	s := &Service{
		tracker: route.NewTracker(),
		feed:    feed,
		hub:     hub,
		unit:    unit,
	}
	s.tracker.Attach(feed)
	feed.Subscribe(s.broadcast)
	return s
}

func (s *Service) Start() Run {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tracker.Start()
	s.runID = uuid.NewString()
	s.startedAt = time.Now()
	s.stoppedAt = time.Time{}
	log.Printf("run %s started", s.runID)
	return s.snapshot(s.unit)
}

func (s *Service) Stop() (StopResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tracker.State() != route.Active {
		return StopResult{}, ErrRunNotActive
	}
	summary := s.tracker.Stop()
	s.stoppedAt = time.Now()
	log.Printf("run %s stopped: %d samples, %.1f m", s.runID, summary.PointCount, summary.DistanceM)
	return StopResult{Run: s.snapshot(s.unit), Summary: summary}, nil
}

// Ingest publishes samples on the location feed and reports how many the
// tracker recorded. Zero timestamps are stamped with the arrival time.
func (s *Service) Ingest(samples []route.Sample) IngestResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.tracker.Len()
	for _, sample := range samples {
		if sample.RecordedAt.IsZero() {
			sample.RecordedAt = time.Now()
		}
		s.feed.Publish(sample)
	}
	return IngestResult{
		RunID:    s.runID,
		Received: len(samples),
		Recorded: s.tracker.Len() - before,
	}
}

func (s *Service) Run(unit route.Unit) Run {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(unit)
}

func (s *Service) Samples() []route.Sample {
	return s.tracker.Samples()
}

func (s *Service) DisplayDistance(unit route.Unit) string {
	return s.tracker.DisplayDistance(unit)
}

func (s *Service) Summary() route.Summary {
	return s.tracker.Summary()
}

func (s *Service) Share() (Share, error) {
	url, ok := route.ShareURL(s.tracker.Samples())
	if !ok {
		return Share{}, ErrRouteTooShort
	}
	return Share{URL: url, Message: route.ShareMessage(url)}, nil
}

func (s *Service) GeoJSON() ([]byte, error) {
	return route.MarshalGeoJSON(s.tracker.Samples())
}

func (s *Service) Annotations() []route.Annotation {
	return route.Annotations(s.tracker.Samples())
}

// LastLocation is the most recent fix from the device, tracked or not.
func (s *Service) LastLocation() (Location, bool) {
	last, ok := s.feed.Last()
	if !ok {
		return Location{}, false
	}
	region := geo.Region(last.Lat, last.Lng, regionMeters)
	return Location{Sample: last, Region: geojson.NewBBox(region)}, true
}

func (s *Service) DefaultUnit() route.Unit {
	return s.unit
}

func (s *Service) snapshot(unit route.Unit) Run {
	total := s.tracker.TotalDistanceMeters()
	return Run{
		ID:             s.runID,
		State:          s.tracker.State().String(),
		StartedAt:      s.startedAt,
		StoppedAt:      s.stoppedAt,
		PointCount:     s.tracker.Len(),
		TotalDistanceM: total,
		Unit:           unit,
		Display:        route.FormatDistance(total, unit),
	}
}

// broadcast runs after the tracker on every published sample, with s.mu
// held by Ingest. Only samples of an active run reach the stream.
func (s *Service) broadcast(sample route.Sample) {
	if s.hub == nil || s.tracker.State() != route.Active {
		return
	}
	payload, err := json.Marshal(SampleEvent{
		RunID:          s.runID,
		Sample:         sample,
		TotalDistanceM: s.tracker.TotalDistanceMeters(),
	})
	if err != nil {
		log.Printf("encode sample event: %v", err)
		return
	}
	s.hub.Broadcast(s.runID, payload)
}
