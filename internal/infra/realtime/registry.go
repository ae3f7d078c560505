// Package realtime keeps connected viewers in sync with unit changes.
package realtime

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"leasing/config"
	"leasing/internal/domain/service"

	"go.uber.org/fx"
)

// RegistryParams defines the parameters required for the observer registry
type RegistryParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Registry is the set of connected observers. Readers iterate an immutable
// snapshot; writers replace it under mu.
type Registry struct {
	mu          sync.Mutex
	snapshot    atomic.Pointer[[]*observer]
	queueSize   int
	sendTimeout time.Duration
	logger      *slog.Logger
}

var _ service.ObserverRegistry = (*Registry)(nil)

// NewRegistry creates the registry and disconnects every observer on shutdown.
func NewRegistry(params RegistryParams) *Registry {
	registry := newRegistry(
		params.Logger,
		params.Config.Broadcast.QueueSize,
		params.Config.Broadcast.SendTimeout,
	)

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			registry.Close()

			return nil
		},
	})

	return registry
}

func newRegistry(logger *slog.Logger, queueSize int, sendTimeout time.Duration) *Registry {
	registry := &Registry{
		queueSize:   max(queueSize, 1),
		sendTimeout: sendTimeout,
		logger:      logger.With(slog.String("component", "observer_registry")),
	}
	empty := make([]*observer, 0)
	registry.snapshot.Store(&empty)

	return registry
}

// Register adds sink and starts its writer goroutine.
func (r *Registry) Register(sink service.ObserverSink) service.ObserverHandle {
	obs := newObserver(sink, r.queueSize, r.sendTimeout)

	r.mu.Lock()
	current := *r.snapshot.Load()
	next := make([]*observer, len(current), len(current)+1)
	copy(next, current)
	next = append(next, obs)
	r.snapshot.Store(&next)
	r.mu.Unlock()

	go obs.run(r.logger, r.evict)

	r.logger.Info("Observer registered",
		slog.String("observerID", obs.id.String()),
		slog.Int("observers", len(next)),
	)

	return obs
}

// Unregister removes the observer behind handle without waiting for an
// in-flight send. Unknown or already removed handles are ignored.
func (r *Registry) Unregister(handle service.ObserverHandle) {
	obs, ok := handle.(*observer)
	if !ok || obs == nil {
		return
	}

	if !r.remove(obs) {
		return
	}

	r.logger.Info("Observer unregistered",
		slog.String("observerID", obs.id.String()),
		slog.Int("observers", r.Len()),
	)
}

// Len returns the number of live observers.
func (r *Registry) Len() int {
	return len(*r.snapshot.Load())
}

// ForEach calls fn for every live observer in registration order. Observers
// removed while the iteration is running are skipped.
func (r *Registry) ForEach(fn func(service.ObserverHandle)) {
	r.forEach(func(obs *observer) { fn(obs) })
}

// Close unregisters every observer.
func (r *Registry) Close() {
	for _, obs := range *r.snapshot.Load() {
		r.remove(obs)
	}
}

func (r *Registry) forEach(fn func(*observer)) {
	for _, obs := range *r.snapshot.Load() {
		if obs.removed.Load() {
			continue
		}
		fn(obs)
	}
}

func (r *Registry) evict(obs *observer, cause error) {
	if r.remove(obs) {
		r.logger.Warn("Observer evicted",
			slog.String("observerID", obs.id.String()),
			slog.Any("error", cause),
		)
	}
}

// remove tombstones obs and drops it from the snapshot. The writer goroutine
// notices the tombstone and closes the sink. It returns false when obs was
// already removed.
func (r *Registry) remove(obs *observer) bool {
	if !obs.markRemoved() {
		return false
	}

	r.mu.Lock()
	current := *r.snapshot.Load()
	next := slices.DeleteFunc(slices.Clone(current), func(o *observer) bool { return o == obs })
	r.snapshot.Store(&next)
	r.mu.Unlock()

	return true
}
