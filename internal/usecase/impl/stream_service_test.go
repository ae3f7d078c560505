package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"leasing/config"
	domainerrors "leasing/internal/domain/errors"
	"leasing/internal/infra/persistence/memory"
	"leasing/internal/infra/realtime"
	mockRepo "leasing/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type discardSink struct {
	mu     sync.Mutex
	closed bool
}

func (s *discardSink) Send(context.Context, []byte) error {
	return nil
}

func (s *discardSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true

	return nil
}

func (s *discardSink) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

func newTestRegistry(t *testing.T) *realtime.Registry {
	t.Helper()

	lc := fxtest.NewLifecycle(t)
	registry := realtime.NewRegistry(realtime.RegistryParams{
		Lifecycle: lc,
		Config: &config.Config{
			Broadcast: &config.BroadcastConfig{QueueSize: 4, SendTimeout: time.Second},
		},
		Logger: newDiscardLogger(),
	})
	lc.RequireStart()
	t.Cleanup(lc.RequireStop)

	return registry
}

func TestStreamService_SubscribeUnsubscribe(t *testing.T) {
	registry := newTestRegistry(t)
	svc := NewStreamService(registry, memory.NewUnitRepository())

	sink := &discardSink{}
	handle := svc.Subscribe(sink)
	assert.Equal(t, 1, svc.ActiveObservers())

	svc.Unsubscribe(handle)
	svc.Unsubscribe(handle)
	assert.Zero(t, svc.ActiveObservers())

	select {
	case <-handle.Done():
	case <-time.After(time.Second):
		t.Fatal("observer was not shut down")
	}
	assert.Eventually(t, sink.isClosed, time.Second, 10*time.Millisecond)
}

func TestStreamService_Status(t *testing.T) {
	registry := newTestRegistry(t)
	svc := NewStreamService(registry, memory.NewUnitRepository())
	svc.Subscribe(&discardSink{})

	status := svc.Status(context.Background())
	assert.True(t, status.StoreHealthy)
	assert.NoError(t, status.StoreError)
	assert.Equal(t, 1, status.ActiveObservers)
}

func TestStreamService_StatusReportsStoreOutage(t *testing.T) {
	repo := mockRepo.NewMockUnitRepository(t)
	svc := NewStreamService(newTestRegistry(t), repo)

	repo.EXPECT().
		Ping(mock.Anything).
		Return(errors.New("dial tcp: connection refused"))

	status := svc.Status(context.Background())
	assert.False(t, status.StoreHealthy)
	require.Error(t, status.StoreError)
	assert.True(t, domainerrors.IsStoreUnavailable(status.StoreError))
	assert.Zero(t, status.ActiveObservers)
}
