package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"leasing/config"
	"leasing/internal/domain/entity"
	"leasing/internal/domain/repository"
	"leasing/internal/domain/scoring"
	"leasing/internal/infra/persistence/memory"
	"leasing/internal/usecase"
)

var testNow = time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Scoring:       &config.ScoringConfig{PrioritizedLimit: 3},
		Recalculation: &config.RecalculationConfig{Workers: 4},
	}
}

// recordingBroadcaster keeps every published event in order.
type recordingBroadcaster struct {
	mu     sync.Mutex
	events []entity.UnitEvent
}

func (b *recordingBroadcaster) Publish(_ context.Context, event entity.UnitEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.events = append(b.events, event)
}

func (b *recordingBroadcaster) Events() []entity.UnitEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]entity.UnitEvent(nil), b.events...)
}

func (b *recordingBroadcaster) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.events = nil
}

// leasingFixtures wires the services against an in-memory store.
type leasingFixtures struct {
	repo        repository.UnitRepository
	events      *recordingBroadcaster
	coordinator *Coordinator
	units       usecase.UnitUsecase
	scores      usecase.ScoreUsecase
	clock       *testClock
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func createLeasingFixtures(t *testing.T) *leasingFixtures {
	t.Helper()

	repo := memory.NewUnitRepository()
	events := &recordingBroadcaster{}
	clock := &testClock{now: testNow}
	coordinator := newCoordinator(repo, events, scoring.NewEngine(), 4, newDiscardLogger(), clock.Now)

	return &leasingFixtures{
		repo:        repo,
		events:      events,
		coordinator: coordinator,
		units:       NewUnitService(coordinator, repo, nil),
		scores:      NewScoreService(newTestConfig(), coordinator, repo),
		clock:       clock,
	}
}

func sampleInput(price int) *usecase.UnitInput {
	return &usecase.UnitInput{
		PropertyName: "Harbor View",
		UnitNumber:   "4B",
		Bedrooms:     2,
		Bathrooms:    1.5,
		SquareFeet:   950,
		Price:        price,
		Amenities:    []string{"Parking", "In Unit Laundry", "balcony"},
		Location: entity.Location{
			Address: "12 Pier Rd",
			City:    "Seattle",
			State:   "WA",
			Zip:     "98101",
		},
		Description: "Bright corner unit with harbor views",
	}
}

func ptr[T any](v T) *T {
	return &v
}
