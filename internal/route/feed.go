package route

import "sync"

type Handler func(Sample)

// Source pushes location samples to registered handlers.
type Source interface {
	Subscribe(h Handler) (unsubscribe func())
}

// Feed is an in-process Source. Publish delivers synchronously to every
// handler in subscription order.
type Feed struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[int]Handler
	order    []int
	last     Sample
	hasLast  bool
}

func NewFeed() *Feed {
	return &Feed{handlers: map[int]Handler{}}
}

func (f *Feed) Subscribe(h Handler) func() {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.handlers[id] = h
	f.order = append(f.order, id)
	f.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { f.remove(id) })
	}
}

func (f *Feed) remove(id int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.handlers, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
}

// Publish records s as the last known location and hands it to every
// subscriber, whether or not a run is in progress.
func (f *Feed) Publish(s Sample) {
	f.mu.Lock()
	f.last = s
	f.hasLast = true
	handlers := make([]Handler, 0, len(f.order))
	for _, id := range f.order {
		handlers = append(handlers, f.handlers[id])
	}
	f.mu.Unlock()

	for _, h := range handlers {
		h(s)
	}
}

func (f *Feed) Last() (Sample, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.last, f.hasLast
}
