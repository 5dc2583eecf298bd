package route

import "sync"

type State int

const (
	Idle State = iota
	Active
	Stopped
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Stopped:
		return "stopped"
	default:
		return "idle"
	}
}

// Tracker records the samples of one run. It is safe for concurrent use;
// appends are serialized.
type Tracker struct {
	mu       sync.Mutex
	state    State
	samples  []Sample
	distance float64
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Start discards any previous run and begins accepting samples.
func (t *Tracker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.samples = nil
	t.distance = 0
	t.state = Active
}

// AddSample appends s while the tracker is active and reports whether it was
// recorded. Identical consecutive samples are kept.
func (t *Tracker) AddSample(s Sample) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != Active {
		return false
	}
	t.samples = append(t.samples, s)
	return true
}

// Stop freezes the route and computes its distance. Stopping an idle
// tracker does nothing.
func (t *Tracker) Stop() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == Active {
		t.state = Stopped
		t.distance = TotalDistance(t.samples)
	}
	return summarize(t.samples, t.distance)
}

func (t *Tracker) TotalDistanceMeters() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == Stopped {
		return t.distance
	}
	return TotalDistance(t.samples)
}

func (t *Tracker) DisplayDistance(unit Unit) string {
	return FormatDistance(t.TotalDistanceMeters(), unit)
}

func (t *Tracker) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	distance := t.distance
	if t.state != Stopped {
		distance = TotalDistance(t.samples)
	}
	return summarize(t.samples, distance)
}

// Samples returns a copy of the recorded route in arrival order.
func (t *Tracker) Samples() []Sample {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Sample, len(t.samples))
	copy(out, t.samples)
	return out
}

func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.samples)
}

// Attach subscribes the tracker to src. The returned func detaches it.
func (t *Tracker) Attach(src Source) func() {
	return src.Subscribe(func(s Sample) {
		t.AddSample(s)
	})
}
