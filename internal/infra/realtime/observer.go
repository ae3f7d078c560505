package realtime

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"leasing/internal/domain/service"
	"leasing/internal/errors"

	"github.com/google/uuid"
)

// ErrDeliveryFailed marks an observer that could not receive a message.
var ErrDeliveryFailed = errors.New("observer delivery failed")

// ErrObserverLagging is returned when an observer's queue is full.
var ErrObserverLagging = errors.New("observer queue full")

// observer is one registered sink with its own FIFO queue and writer goroutine.
// The queue channel is never closed; shutdown is signalled through done.
type observer struct {
	id          uuid.UUID
	sink        service.ObserverSink
	queue       chan []byte
	done        chan struct{}
	closeOnce   sync.Once
	removed     atomic.Bool
	sendTimeout time.Duration
}

var _ service.ObserverHandle = (*observer)(nil)

func newObserver(sink service.ObserverSink, queueSize int, sendTimeout time.Duration) *observer {
	return &observer{
		id:          uuid.New(),
		sink:        sink,
		queue:       make(chan []byte, queueSize),
		done:        make(chan struct{}),
		sendTimeout: sendTimeout,
	}
}

func (o *observer) ID() uuid.UUID {
	return o.id
}

func (o *observer) Done() <-chan struct{} {
	return o.done
}

// enqueue hands payload to the writer without blocking.
func (o *observer) enqueue(payload []byte) error {
	if o.removed.Load() {
		return nil
	}

	select {
	case o.queue <- payload:
		return nil
	case <-o.done:
		return nil
	default:
		return ErrObserverLagging
	}
}

// markRemoved flips the tombstone and reports whether this call did it.
func (o *observer) markRemoved() bool {
	if !o.removed.CompareAndSwap(false, true) {
		return false
	}
	o.closeOnce.Do(func() { close(o.done) })

	return true
}

// run drains the queue until the observer is removed or a send fails, then
// closes the sink. Closing here keeps blocking sink teardown off the publish path.
func (o *observer) run(logger *slog.Logger, onFailure func(*observer, error)) {
	defer func() {
		if err := o.sink.Close(); err != nil {
			logger.Debug("Observer sink close failed",
				slog.String("observerID", o.id.String()),
				slog.Any("error", err),
			)
		}
	}()

	for {
		select {
		case <-o.done:
			return
		case payload := <-o.queue:
			if err := o.send(payload); err != nil {
				if o.removed.Load() {
					return
				}
				logger.Warn("Observer delivery failed",
					slog.String("observerID", o.id.String()),
					slog.Any("error", err),
				)
				onFailure(o, errors.Wrap(ErrDeliveryFailed, err.Error()))

				return
			}
		}
	}
}

func (o *observer) send(payload []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), o.sendTimeout)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- o.sink.Send(ctx, payload)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "send timed out")
	case <-o.done:
		return errors.New("observer removed")
	}
}
