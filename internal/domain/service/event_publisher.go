package service

import (
	"context"

	"leasing/internal/domain/entity"
)

// EventPublisher mirrors unit events to downstream consumers through a message broker.
type EventPublisher interface {
	// PublishUnitEvent sends one encoded event. Implementations must not reorder
	// events published from a single goroutine.
	PublishUnitEvent(ctx context.Context, event *entity.UnitEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
