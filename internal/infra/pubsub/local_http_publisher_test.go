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

	"dnotes/config"
	"dnotes/internal/domain/constants"
	"dnotes/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.DeliveryNoteEvent {
	return &service.DeliveryNoteEvent{
		RequestID:      "req-1",
		Type:           constants.EventDeliveryNoteArtifactRequested,
		DeliveryNoteID: 42,
		OwnerUserID:    7,
		ClientID:       10,
		ProjectID:      20,
		OccurredAt:     time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishesPushEnvelope(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	require.NoError(t, publisher.PublishDeliveryNoteEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "42", received.Message.Attributes["delivery_note_id"])
	assert.Equal(t, constants.EventDeliveryNoteArtifactRequested, received.Message.Attributes["event_type"])
	assert.NotEmpty(t, received.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.DeliveryNoteEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, uint64(42), event.DeliveryNoteID)
	assert.Equal(t, uint64(20), event.ProjectID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	err := publisher.PublishDeliveryNoteEvent(context.Background(), testEvent())
	assert.ErrorContains(t, err, "non-success status: 503")
}

func TestNewEventPublisher_SelectsProvider(t *testing.T) {
	newParams := func(cfg *config.PubSubConfig) PublisherParams {
		return PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: cfg},
			Logger: testLogger(),
		}
	}

	publisher, err := NewEventPublisher(newParams(nil))
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishDeliveryNoteEvent(context.Background(), testEvent()))

	publisher, err = NewEventPublisher(newParams(&config.PubSubConfig{
		Provider:      constants.PubSubProviderLocal,
		LocalEndpoint: "http://localhost:8081/push",
	}))
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: constants.PubSubProviderLocal}))
	assert.ErrorContains(t, err, "local endpoint is required")

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: constants.PubSubProviderGoogle}))
	assert.ErrorContains(t, err, "project ID is required")

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: "kafka"}))
	assert.ErrorContains(t, err, "unknown pubsub provider")
}
