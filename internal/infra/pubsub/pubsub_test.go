package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"leasing/config"
	"leasing/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gocloudpubsub "gocloud.dev/pubsub"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *entity.UnitEvent {
	event := entity.NewUpdatedEvent(&entity.Unit{ID: uuid.New(), Price: 1450, Status: entity.UnitStatusAvailable})
	event.Sequence = 42

	return &event
}

func TestNewPublisher_ProviderSelection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
		wantTyp any
	}{
		{"Nil config", nil, false, &noopPublisher{}},
		{"Empty provider", &config.PubSubConfig{}, false, &noopPublisher{}},
		{"Local without endpoint", &config.PubSubConfig{Provider: "local"}, true, nil},
		{"Local", &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:1/push"}, false, &localHTTPPublisher{}},
		{"Google without project", &config.PubSubConfig{Provider: "google", TopicID: "t"}, true, nil},
		{"Google without topic", &config.PubSubConfig{Provider: "google", ProjectID: "p"}, true, nil},
		{"GoCloud without URL", &config.PubSubConfig{Provider: "gocloud"}, true, nil},
		{"GoCloud memory topic", &config.PubSubConfig{Provider: "gocloud", TopicURL: "mem://provider-selection"}, false, &goCloudPublisher{}},
		{"Unknown provider", &config.PubSubConfig{Provider: "kafka"}, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := newPublisher(context.Background(), tt.cfg, discardLogger())
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.wantTyp, publisher)
			assert.NoError(t, publisher.Close())
		})
	}
}

func TestLocalHTTPPublisher_PublishUnitEvent(t *testing.T) {
	received := make(chan PubSubPushMessage, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg PubSubPushMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		received <- msg
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := sampleEvent()

	require.NoError(t, publisher.PublishUnitEvent(context.Background(), event))

	msg := <-received
	assert.Equal(t, "updated", msg.Message.Attributes["kind"])
	assert.Equal(t, event.UnitID.String(), msg.Message.Attributes["unit_id"])
	assert.Equal(t, "42", msg.Message.MessageID)
	assert.Equal(t, event.UnitID.String(), msg.Message.OrderingKey)

	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	require.NoError(t, err)
	var decoded entity.UnitEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.UnitID, decoded.UnitID)
	assert.Equal(t, uint64(42), decoded.Sequence)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	assert.Error(t, publisher.PublishUnitEvent(context.Background(), sampleEvent()))
}

func TestGoCloudPublisher_PublishUnitEvent(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	const topicURL = "mem://unit-events-test"
	publisher, err := NewGoCloudPublisher(ctx, topicURL, discardLogger())
	require.NoError(t, err)
	defer publisher.Close()

	subscription, err := gocloudpubsub.OpenSubscription(ctx, topicURL)
	require.NoError(t, err)
	defer subscription.Shutdown(ctx)

	event := sampleEvent()
	require.NoError(t, publisher.PublishUnitEvent(ctx, event))

	msg, err := subscription.Receive(ctx)
	require.NoError(t, err)
	msg.Ack()

	assert.Equal(t, "updated", msg.Metadata["kind"])
	assert.Equal(t, "42", msg.Metadata["sequence"])

	var decoded entity.UnitEvent
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, event.UnitID, decoded.UnitID)
	require.NotNil(t, decoded.Unit)
	assert.Equal(t, 1450, decoded.Unit.Price)
}
