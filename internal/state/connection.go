// Package state holds the small pieces of session state interactive
// surfaces render from: whether work is in flight and whether the backend
// is reachable.
package state

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/taskpilot/internal/logging"
)

// Status describes the last known reachability of the backend.
type Status string

const (
	// StatusUnknown means no probe has completed yet.
	StatusUnknown Status = "unknown"
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
)

// Prober runs one health probe. api.Client satisfies it.
type Prober interface {
	Health(ctx context.Context) error
}

// probeTimeout bounds a single health probe so a hung backend cannot stall
// the watcher loop.
const probeTimeout = 3 * time.Second

// ConnectionWatcher polls a health probe and tracks backend reachability.
type ConnectionWatcher struct {
	probe Prober
	log   logging.Logger

	mu        sync.Mutex
	current   Status
	listeners []func(Status)
}

func NewConnectionWatcher(probe Prober, log logging.Logger) *ConnectionWatcher {
	return &ConnectionWatcher{probe: probe, log: log, current: StatusUnknown}
}

// Status returns the last observed reachability.
func (w *ConnectionWatcher) Status() Status {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// OnChange registers fn to run on every status transition. fn runs outside
// the watcher's lock.
func (w *ConnectionWatcher) OnChange(fn func(Status)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.listeners = append(w.listeners, fn)
}

// Check runs one probe now and returns the resulting status.
func (w *ConnectionWatcher) Check(ctx context.Context) Status {
	pctx, cancel := context.WithTimeout(ctx, probeTimeout)
	err := w.probe.Health(pctx)
	cancel()

	next := StatusOnline
	if err != nil {
		next = StatusOffline
	}
	w.transition(ctx, next, err)
	return next
}

// Watch probes immediately and then on every interval tick until ctx is
// cancelled. Run it on its own goroutine.
func (w *ConnectionWatcher) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.Check(ctx)
	for {
		select {
		case <-ticker.C:
			w.Check(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (w *ConnectionWatcher) transition(ctx context.Context, next Status, cause error) {
	w.mu.Lock()
	if w.current == next {
		w.mu.Unlock()
		return
	}
	w.current = next
	listeners := slices.Clone(w.listeners)
	w.mu.Unlock()

	if next == StatusOffline {
		w.log.Warn(ctx, "backend unreachable, switching to offline", "error", cause)
	} else {
		w.log.Info(ctx, "backend reachable, switching to online")
	}

	for _, fn := range listeners {
		fn(next)
	}
}
