package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"

	"leasing/internal/domain/entity"
	"leasing/internal/domain/service"

	"go.uber.org/fx"
)

// BroadcasterParams defines the parameters required for the broadcaster
type BroadcasterParams struct {
	fx.In

	Registry *Registry
	Mirror   *Mirror `optional:"true"`
	Logger   *slog.Logger
}

// Broadcaster encodes each event once and queues the same bytes for every observer.
type Broadcaster struct {
	registry *Registry
	mirror   *Mirror
	logger   *slog.Logger

	// publishMu makes stamping and enqueueing one step, so every queue
	// receives events in sequence order.
	publishMu sync.Mutex
	sequence  atomic.Uint64
}

var _ service.UnitBroadcaster = (*Broadcaster)(nil)

// NewBroadcaster creates a broadcaster over the registry.
func NewBroadcaster(params BroadcasterParams) *Broadcaster {
	return newBroadcaster(params.Registry, params.Mirror, params.Logger)
}

func newBroadcaster(registry *Registry, mirror *Mirror, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		registry: registry,
		mirror:   mirror,
		logger:   logger.With(slog.String("component", "broadcaster")),
	}
}

// Publish stamps event with the next sequence number and fans it out.
// Observers whose queue is full are evicted; nothing is reported to the caller.
func (b *Broadcaster) Publish(ctx context.Context, event entity.UnitEvent) {
	sequence, delivered, err := b.fanOut(ctx, event)
	if err != nil {
		b.logger.ErrorContext(ctx, "Failed to encode unit event",
			slog.String("unitID", event.UnitID.String()),
			slog.Any("error", err),
		)

		return
	}

	b.logger.DebugContext(ctx, "Unit event published",
		slog.String("kind", string(event.Kind)),
		slog.String("unitID", event.UnitID.String()),
		slog.Uint64("sequence", sequence),
		slog.Int("observers", delivered),
	)
}

func (b *Broadcaster) fanOut(ctx context.Context, event entity.UnitEvent) (uint64, int, error) {
	b.publishMu.Lock()
	defer b.publishMu.Unlock()

	event.Sequence = b.sequence.Load() + 1
	payload, err := json.Marshal(event)
	if err != nil {
		return 0, 0, err
	}
	b.sequence.Store(event.Sequence)

	delivered := 0
	b.registry.forEach(func(obs *observer) {
		if err := obs.enqueue(payload); err != nil {
			b.registry.evict(obs, err)

			return
		}
		delivered++
	})

	if b.mirror != nil {
		b.mirror.Enqueue(ctx, event)
	}

	return event.Sequence, delivered, nil
}

// LastSequence returns the sequence number of the most recent event.
func (b *Broadcaster) LastSequence() uint64 {
	return b.sequence.Load()
}
