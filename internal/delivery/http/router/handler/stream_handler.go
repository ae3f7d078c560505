package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "leasing/internal/delivery/context"
	"leasing/internal/infra/realtime"
	"leasing/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const sseKeepAliveInterval = 15 * time.Second

// StreamHandlerParams holds dependencies for StreamHandler, injected by Fx.
type StreamHandlerParams struct {
	fx.In

	StreamUC usecase.StreamUsecase
	Logger   *slog.Logger
}

// StreamHandler attaches live observers over WebSocket or SSE
type StreamHandler struct {
	streamUC usecase.StreamUsecase
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewStreamHandler is the constructor for StreamHandler
func NewStreamHandler(params StreamHandlerParams) *StreamHandler {
	return &StreamHandler{
		streamUC: params.StreamUC,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger: params.Logger,
	}
}

// WebSocket upgrades the connection and streams unit events until the client leaves
func (h *StreamHandler) WebSocket(c echo.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader already wrote the HTTP error.
		logger.Warn("WebSocket upgrade failed", slog.Any("error", err))

		return nil
	}

	sink := realtime.NewWebSocketSink(conn)
	handle := h.streamUC.Subscribe(sink)
	logger.Info("WebSocket observer connected", slog.String("observer_id", handle.ID().String()))

	// Inbound messages are ignored; reading only detects the disconnect.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.streamUC.Unsubscribe(handle)
	_ = sink.Close()
	logger.Info("WebSocket observer disconnected", slog.String("observer_id", handle.ID().String()))

	return nil
}

// ServerSentEvents streams unit events as text/event-stream until the client leaves
func (h *StreamHandler) ServerSentEvents(c echo.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	header := c.Response().Header()
	header.Set(echo.HeaderContentType, "text/event-stream")
	header.Set(echo.HeaderCacheControl, "no-cache")
	header.Set("X-Accel-Buffering", "no")
	c.Response().WriteHeader(http.StatusOK)

	sink := realtime.NewSSESink(c.Response())
	if err := sink.Comment("connected"); err != nil {
		return nil
	}

	handle := h.streamUC.Subscribe(sink)
	logger.Info("SSE observer connected", slog.String("observer_id", handle.ID().String()))

	ticker := time.NewTicker(sseKeepAliveInterval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-c.Request().Context().Done():
			break loop
		case <-handle.Done():
			break loop
		case <-ticker.C:
			if err := sink.Comment("keep-alive"); err != nil {
				break loop
			}
		}
	}

	h.streamUC.Unsubscribe(handle)
	// Close waits for an in-flight write so nothing touches the response after return.
	_ = sink.Close()
	logger.Info("SSE observer disconnected", slog.String("observer_id", handle.ID().String()))

	return nil
}
