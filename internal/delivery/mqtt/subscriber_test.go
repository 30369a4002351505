package mqtt

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	mockUsecase "careconnect/internal/mocks/usecase"
	"careconnect/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testTopic = "careconnect/patient/+/location"

type fakeMessage struct {
	topic   string
	payload []byte
}

func (m fakeMessage) Duplicate() bool   { return false }
func (m fakeMessage) Qos() byte         { return 1 }
func (m fakeMessage) Retained() bool    { return false }
func (m fakeMessage) Topic() string     { return m.topic }
func (m fakeMessage) MessageID() uint16 { return 1 }
func (m fakeMessage) Payload() []byte   { return m.payload }
func (m fakeMessage) Ack()              {}

func newTestSubscriber(t *testing.T) (*subscriber, *mockUsecase.MockTrackingUsecase) {
	t.Helper()

	trackingUC := mockUsecase.NewMockTrackingUsecase(t)
	s, err := newSubscriber(nil, testTopic, 1, trackingUC, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return s, trackingUC
}

func TestNewSubscriber_TopicMustCarryOneWildcard(t *testing.T) {
	_, err := newSubscriber(nil, "careconnect/patient/location", 1, nil, nil)
	require.Error(t, err)

	_, err = newSubscriber(nil, "careconnect/+/+/location", 1, nil, nil)
	require.Error(t, err)
}

func TestSubscriber_HandleMessage(t *testing.T) {
	s, trackingUC := newTestSubscriber(t)

	trackingUC.EXPECT().
		ReportLocation(mock.Anything, "patient-1", &usecase.LocationReport{
			Latitude:   12.9716,
			Longitude:  77.5946,
			ObservedAt: time.Unix(1773475200, 0).UTC(),
			Source:     sourceWearable,
		}).
		Return(&usecase.LocationResult{}, nil)

	s.handleMessage(nil, fakeMessage{
		topic:   "careconnect/patient/patient-1/location",
		payload: []byte(`{"lat":12.9716,"lng":77.5946,"timestamp":1773475200}`),
	})
}

func TestSubscriber_HandleMessage_UsecaseErrorIsLogged(t *testing.T) {
	s, trackingUC := newTestSubscriber(t)

	trackingUC.EXPECT().ReportLocation(mock.Anything, "patient-1", mock.Anything).
		Return(nil, errors.New("invalid coordinate"))

	assert.NotPanics(t, func() {
		s.handleMessage(nil, fakeMessage{
			topic:   "careconnect/patient/patient-1/location",
			payload: []byte(`{"lat":95,"lng":0}`),
		})
	})
}

func TestSubscriber_HandleMessage_DropsMalformed(t *testing.T) {
	s, _ := newTestSubscriber(t)

	// no ReportLocation expectation: the mock fails the test if it is called
	s.handleMessage(nil, fakeMessage{topic: "careconnect/patient/patient-1/location", payload: []byte(`not json`)})
	s.handleMessage(nil, fakeMessage{topic: "careconnect/patient/patient-1/location", payload: []byte(`{"lat":1}`)})
	s.handleMessage(nil, fakeMessage{topic: "careconnect/patient", payload: []byte(`{"lat":1,"lng":2}`)})
}

func TestDecodePosition_ZeroTimestampLeavesObservedAtUnset(t *testing.T) {
	report, err := decodePosition([]byte(`{"lat":0,"lng":0,"simulated":true}`))

	require.NoError(t, err)
	assert.True(t, report.ObservedAt.IsZero())
	assert.True(t, report.Simulated)
	assert.Equal(t, 0.0, report.Latitude)
}

func TestDisabled_ServeReturns(t *testing.T) {
	d := disabled{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	assert.NoError(t, d.Serve(context.Background()))
}
