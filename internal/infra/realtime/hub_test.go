package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"careconnect/internal/domain/service"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu      sync.Mutex
	written chan []byte
	closed  chan struct{}
	once    sync.Once
}

func newFakeConn() *fakeConn {
	return &fakeConn{written: make(chan []byte, 16), closed: make(chan struct{})}
}

func (c *fakeConn) ReadMessage() (int, []byte, error) {
	<-c.closed

	return 0, nil, errors.New("closed")
}

func (c *fakeConn) WriteMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if messageType == websocket.TextMessage {
		c.written <- data
	}

	return nil
}

func (c *fakeConn) SetReadLimit(int64) {}
func (c *fakeConn) SetReadDeadline(time.Time) error { return nil }
func (c *fakeConn) SetWriteDeadline(time.Time) error { return nil }
func (c *fakeConn) SetPongHandler(func(string) error) {}

func (c *fakeConn) Close() error {
	c.once.Do(func() { close(c.closed) })

	return nil
}

func newTestHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	require.Eventually(t, cond, time.Second, 5*time.Millisecond)
}

func TestHub_PublishReachesOnlyTopicSubscribers(t *testing.T) {
	hub := newTestHub()
	caretaker := newFakeConn()
	other := newFakeConn()

	go hub.Serve(caretaker, "caretaker-1")
	go hub.Serve(other, "caretaker-2")
	waitFor(t, func() bool {
		return hub.TopicCount(service.UserTopic("caretaker-1")) == 1 &&
			hub.TopicCount(service.UserTopic("caretaker-2")) == 1
	})

	err := hub.Publish(context.Background(), service.RealtimeEvent{
		Type:  service.RealtimeAlert,
		Topic: service.UserTopic("caretaker-1"),
		Data:  json.RawMessage(`{"id":"a1"}`),
	})
	require.NoError(t, err)

	select {
	case raw := <-caretaker.written:
		var event service.RealtimeEvent
		require.NoError(t, json.Unmarshal(raw, &event))
		assert.Equal(t, service.RealtimeAlert, event.Type)
		assert.JSONEq(t, `{"id":"a1"}`, string(event.Data))
		assert.False(t, event.Timestamp.IsZero())
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}

	select {
	case <-other.written:
		t.Fatal("event leaked to another user")
	case <-time.After(20 * time.Millisecond):
	}

	_ = caretaker.Close()
	_ = other.Close()
}

func TestHub_ServeUnregistersOnClose(t *testing.T) {
	hub := newTestHub()
	conn := newFakeConn()
	topic := service.UserTopic("patient-1")

	done := make(chan struct{})
	go func() {
		hub.Serve(conn, "patient-1")
		close(done)
	}()
	waitFor(t, func() bool { return hub.TopicCount(topic) == 1 })

	_ = conn.Close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Serve did not return")
	}
	assert.Zero(t, hub.TopicCount(topic))
	assert.NoError(t, hub.Publish(context.Background(), service.RealtimeEvent{Topic: topic}))
}
