package usecase

import (
	"context"

	"leasing/internal/domain/service"
)

// ServiceStatus is the health summary exposed by the root and health endpoints
type ServiceStatus struct {
	StoreHealthy    bool
	StoreError      error
	ActiveObservers int
}

// StreamUsecase defines the live update subscription use cases
type StreamUsecase interface {
	// Subscribe registers sink for every future unit event
	Subscribe(sink service.ObserverSink) service.ObserverHandle

	// Unsubscribe removes an observer; repeated calls are no-ops
	Unsubscribe(handle service.ObserverHandle)

	// ActiveObservers returns the number of connected observers
	ActiveObservers() int

	// Status checks the store and reports observer count
	Status(ctx context.Context) *ServiceStatus
}
