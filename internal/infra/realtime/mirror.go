package realtime

import (
	"context"
	"log/slog"
	"sync"

	"leasing/config"
	"leasing/internal/domain/entity"
	"leasing/internal/domain/lifecycle"
	"leasing/internal/domain/service"

	"go.uber.org/fx"
)

// MirrorParams defines the parameters required for the event mirror
type MirrorParams struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// Mirror forwards events to an EventPublisher from a single goroutine so
// downstream consumers see them in publish order. A full queue drops the event.
type Mirror struct {
	publisher service.EventPublisher
	queue     chan entity.UnitEvent
	stop      chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	logger    *slog.Logger
}

// NewMirror creates the mirror and ties its worker to the application lifecycle.
func NewMirror(params MirrorParams) *Mirror {
	mirror := newMirror(params.Publisher, params.Config.Broadcast.MirrorQueueSize, params.Logger)

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			mirror.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return mirror.Stop(ctx)
		},
	})

	return mirror
}

func newMirror(publisher service.EventPublisher, queueSize int, logger *slog.Logger) *Mirror {
	return &Mirror{
		publisher: publisher,
		queue:     make(chan entity.UnitEvent, max(queueSize, 1)),
		stop:      make(chan struct{}),
		logger:    logger.With(slog.String("component", "event_mirror")),
	}
}

// Start launches the forwarding goroutine.
func (m *Mirror) Start() {
	m.wg.Add(1)
	go m.run()
}

// Stop drains what is already queued, then waits for the worker or ctx.
func (m *Mirror) Stop(ctx context.Context) error {
	m.stopOnce.Do(func() { close(m.stop) })

	finished := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Enqueue schedules event for forwarding without blocking.
func (m *Mirror) Enqueue(ctx context.Context, event entity.UnitEvent) {
	select {
	case <-m.stop:
		return
	default:
	}

	select {
	case m.queue <- event:
	default:
		m.logger.WarnContext(ctx, "Event mirror queue full, dropping event",
			slog.String("unitID", event.UnitID.String()),
			slog.Uint64("sequence", event.Sequence),
		)
	}
}

func (m *Mirror) run() {
	defer m.wg.Done()

	for {
		select {
		case event := <-m.queue:
			m.forward(event)
		case <-m.stop:
			for {
				select {
				case event := <-m.queue:
					m.forward(event)
				default:
					return
				}
			}
		}
	}
}

func (m *Mirror) forward(event entity.UnitEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := m.publisher.PublishUnitEvent(ctx, &event); err != nil {
		m.logger.Error("Failed to mirror unit event",
			slog.String("unitID", event.UnitID.String()),
			slog.Uint64("sequence", event.Sequence),
			slog.Any("error", err),
		)
	}
}
