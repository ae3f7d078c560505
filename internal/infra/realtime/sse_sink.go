package realtime

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"leasing/internal/domain/service"
	"leasing/internal/errors"
)

// errSinkClosed is returned by Send after Close.
var errSinkClosed = errors.New("sink closed")

// SSESink writes observer messages as Server-Sent Events on a streaming response.
type SSESink struct {
	writer     http.ResponseWriter
	controller *http.ResponseController
	mu         sync.Mutex
	closed     bool
}

var _ service.ObserverSink = (*SSESink)(nil)

// NewSSESink wraps a response whose headers have already been written.
func NewSSESink(w http.ResponseWriter) *SSESink {
	return &SSESink{
		writer:     w,
		controller: http.NewResponseController(w),
	}
}

// Send writes payload as one "unit" event and flushes it.
func (s *SSESink) Send(ctx context.Context, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errSinkClosed
	}

	if deadline, ok := ctx.Deadline(); ok {
		// Not every ResponseWriter supports deadlines; the writer goroutine still enforces the timeout.
		_ = s.controller.SetWriteDeadline(deadline)
	}

	if _, err := fmt.Fprintf(s.writer, "event: unit\ndata: %s\n\n", payload); err != nil {
		return errors.Wrap(err, "failed to write SSE event")
	}
	if err := s.controller.Flush(); err != nil {
		return errors.Wrap(err, "failed to flush SSE event")
	}

	return nil
}

// Comment writes an SSE comment line, used as a keep-alive.
func (s *SSESink) Comment(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errSinkClosed
	}

	_ = s.controller.SetWriteDeadline(time.Now().Add(closeGracePeriod))
	if _, err := fmt.Fprintf(s.writer, ": %s\n\n", text); err != nil {
		return errors.Wrap(err, "failed to write SSE comment")
	}

	return errors.Wrap(s.controller.Flush(), "failed to flush SSE comment")
}

// Close stops further writes and waits for an in-flight Send, so the HTTP
// handler may return right after calling it.
func (s *SSESink) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	return nil
}
