package service

import (
	"context"

	"leasing/internal/domain/entity"

	"github.com/google/uuid"
)

// ObserverSink delivers encoded messages to one connected viewer.
type ObserverSink interface {
	// Send writes one message. It must honor ctx cancellation.
	Send(ctx context.Context, payload []byte) error

	// Close tears down the underlying connection. It may be called more than once.
	Close() error
}

// ObserverHandle identifies a registered observer.
type ObserverHandle interface {
	ID() uuid.UUID

	// Done is closed once the observer has been unregistered for any reason.
	Done() <-chan struct{}
}

// ObserverRegistry tracks currently connected observers.
type ObserverRegistry interface {
	Register(sink ObserverSink) ObserverHandle
	Unregister(handle ObserverHandle)
	Len() int
}

// UnitBroadcaster fans unit events out to every registered observer.
// Publish never blocks on a slow observer and never reports delivery failures.
type UnitBroadcaster interface {
	Publish(ctx context.Context, event entity.UnitEvent)
}
