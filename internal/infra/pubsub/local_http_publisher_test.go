package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"careconnect/internal/domain/entity"
	"careconnect/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	event := &service.NotificationEvent{
		RequestID:    "req-1",
		Kind:         entity.NotificationGeofenceBreach,
		ReferenceID:  "alert-1",
		RecipientIDs: []string{"caretaker-1"},
		Title:        "Safe zone alert",
		Body:         "Patient exited Safe Zone! Distance: 650m",
		Data:         map[string]string{"patient_id": "patient-1"},
	}

	require.NoError(t, publisher.PublishNotificationEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "geofence_breach", received.Message.Attributes["kind"])
	assert.Equal(t, "alert-1", received.Message.Attributes["reference_id"])
	assert.Equal(t, "true", received.Message.Attributes["urgent"])
	assert.Equal(t, "patient-1", received.Message.Attributes["patient_id"])
	assert.Equal(t, "patient/patient-1", received.Message.OrderingKey)
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.NotificationEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.RecipientIDs, decoded.RecipientIDs)
	assert.Equal(t, event.Body, decoded.Body)
}

func newFastPublisher(endpoint string) *localHTTPPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: http.DefaultClient,
		backoff:    time.Millisecond,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestLocalHTTPPublisher_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newFastPublisher(srv.URL).PublishNotificationEvent(context.Background(), &service.NotificationEvent{Kind: entity.NotificationChat})

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestLocalHTTPPublisher_GivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := newFastPublisher(srv.URL).PublishNotificationEvent(context.Background(), &service.NotificationEvent{Kind: entity.NotificationChat})

	assert.Error(t, err)
	assert.Equal(t, int32(localMaxAttempts), calls.Load())
}

func TestLocalHTTPPublisher_ClientErrorsAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	err := newFastPublisher(srv.URL).PublishNotificationEvent(context.Background(), &service.NotificationEvent{Kind: entity.NotificationChat})

	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}
