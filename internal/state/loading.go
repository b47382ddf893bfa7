package state

import "sync"

// LoadingTracker counts in-flight operations so interactive surfaces can
// show a busy indicator. The zero value is ready to use and safe for
// concurrent callers.
type LoadingTracker struct {
	mu        sync.Mutex
	active    int
	listeners []func(bool)
}

// Begin marks one operation as started.
func (t *LoadingTracker) Begin() {
	t.mu.Lock()
	t.active++
	edge := t.active == 1
	listeners := t.listeners
	t.mu.Unlock()

	if edge {
		notify(listeners, true)
	}
}

// End marks one operation as finished. Calling End with nothing in flight
// is a no-op.
func (t *LoadingTracker) End() {
	t.mu.Lock()
	edge := false
	if t.active > 0 {
		t.active--
		edge = t.active == 0
	}
	listeners := t.listeners
	t.mu.Unlock()

	if edge {
		notify(listeners, false)
	}
}

// Active reports whether any operation is in flight.
func (t *LoadingTracker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active > 0
}

// OnChange registers fn to run on every idle/busy edge. Intermediate counter
// movement while busy does not fire. fn runs outside the tracker's lock, so
// it may call back into the tracker.
func (t *LoadingTracker) OnChange(fn func(bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners = append(t.listeners, fn)
}

func notify(listeners []func(bool), busy bool) {
	for _, fn := range listeners {
		fn(busy)
	}
}
