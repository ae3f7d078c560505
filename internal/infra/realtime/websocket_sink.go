package realtime

import (
	"context"
	"sync"
	"time"

	"leasing/internal/domain/service"
	"leasing/internal/errors"

	"github.com/gorilla/websocket"
)

const closeGracePeriod = time.Second

// WebSocketSink writes observer messages as text frames on a websocket connection.
type WebSocketSink struct {
	conn      *websocket.Conn
	writeMu   sync.Mutex
	closeOnce sync.Once
}

var _ service.ObserverSink = (*WebSocketSink)(nil)

// NewWebSocketSink wraps an upgraded connection.
func NewWebSocketSink(conn *websocket.Conn) *WebSocketSink {
	return &WebSocketSink{conn: conn}
}

// Send writes payload as one text message, bounded by the ctx deadline.
func (s *WebSocketSink) Send(ctx context.Context, payload []byte) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Time{}
	}
	if err := s.conn.SetWriteDeadline(deadline); err != nil {
		return errors.Wrap(err, "failed to set websocket write deadline")
	}

	if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return errors.Wrap(err, "failed to write websocket message")
	}

	return nil
}

// Close sends a close frame when possible and closes the connection.
func (s *WebSocketSink) Close() error {
	var err error
	s.closeOnce.Do(func() {
		message := websocket.FormatCloseMessage(websocket.CloseGoingAway, "")
		_ = s.conn.WriteControl(websocket.CloseMessage, message, time.Now().Add(closeGracePeriod))
		err = s.conn.Close()
	})

	return err
}
