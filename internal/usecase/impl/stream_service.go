package impl

import (
	"context"

	"leasing/internal/domain/repository"
	"leasing/internal/domain/service"
	"leasing/internal/usecase"
)

type streamService struct {
	registry service.ObserverRegistry
	repo     repository.UnitRepository
}

// NewStreamService creates a new live update service instance
func NewStreamService(registry service.ObserverRegistry, repo repository.UnitRepository) usecase.StreamUsecase {
	return &streamService{
		registry: registry,
		repo:     repo,
	}
}

// Subscribe registers sink for every future unit event
func (s *streamService) Subscribe(sink service.ObserverSink) service.ObserverHandle {
	return s.registry.Register(sink)
}

// Unsubscribe removes an observer; repeated calls are no-ops
func (s *streamService) Unsubscribe(handle service.ObserverHandle) {
	s.registry.Unregister(handle)
}

// ActiveObservers returns the number of connected observers
func (s *streamService) ActiveObservers() int {
	return s.registry.Len()
}

// Status checks the store and reports observer count
func (s *streamService) Status(ctx context.Context) *usecase.ServiceStatus {
	status := &usecase.ServiceStatus{
		StoreHealthy:    true,
		ActiveObservers: s.registry.Len(),
	}

	if err := s.repo.Ping(ctx); err != nil {
		status.StoreHealthy = false
		status.StoreError = mapStoreError(err, "ping store")
	}

	return status
}
