// Package mqtt ingests wearable positions published to the broker.
package mqtt

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"careconnect/config"
	"careconnect/internal/delivery"
	deliverycontext "careconnect/internal/delivery/context"
	"careconnect/internal/domain/lifecycle"
	"careconnect/internal/usecase"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	sourceWearable    = "wearable"
	disconnectQuiesce = 250 // milliseconds
)

// Params holds dependencies for the subscriber, injected by Fx.
type Params struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	TrackingUC usecase.TrackingUsecase
}

// positionMessage is the payload wearables publish. Timestamp is unix seconds.
type positionMessage struct {
	Latitude  *float64 `json:"lat"`
	Longitude *float64 `json:"lng"`
	Timestamp int64    `json:"timestamp"`
	Simulated bool     `json:"simulated"`
}

type subscriber struct {
	client     paho.Client
	topic      string
	qos        byte
	wildcard   int
	trackingUC usecase.TrackingUsecase
	logger     *slog.Logger

	done     chan struct{}
	stopOnce sync.Once
}

// disabled stands in for the subscriber when no broker is configured.
type disabled struct {
	logger *slog.Logger
}

func (d disabled) Serve(context.Context) error {
	d.logger.Info("MQTT ingestion disabled")

	return nil
}

// New builds the subscriber. The topic must hold exactly one single-level wildcard, which
// carries the patient uid.
func New(params Params) (delivery.Delivery, error) {
	cfg := params.Cfg.MQTT
	if cfg == nil || !cfg.Enabled {
		return disabled{logger: params.Logger}, nil
	}

	s, err := newSubscriber(nil, cfg.Topic, cfg.QoS, params.TrackingUC, params.Logger)
	if err != nil {
		return nil, err
	}

	// subscriptions are lost on reconnect unless the session is persistent
	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetOnConnectHandler(func(paho.Client) { s.subscribe() })
	s.client = paho.NewClient(opts)

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newSubscriber(client paho.Client, topic string, qos byte, trackingUC usecase.TrackingUsecase, logger *slog.Logger) (*subscriber, error) {
	wildcard := -1
	for i, level := range strings.Split(topic, "/") {
		if level != "+" {
			continue
		}
		if wildcard >= 0 {
			return nil, errors.Errorf("mqtt topic %q has more than one wildcard", topic)
		}
		wildcard = i
	}
	if wildcard < 0 {
		return nil, errors.Errorf("mqtt topic %q has no patient wildcard", topic)
	}

	return &subscriber{
		client:     client,
		topic:      topic,
		qos:        qos,
		wildcard:   wildcard,
		trackingUC: trackingUC,
		logger:     logger,
		done:       make(chan struct{}),
	}, nil
}

// Serve connects to the broker and blocks until stopped.
func (s *subscriber) Serve(ctx context.Context) error {
	s.logger.Info("Connecting to MQTT broker", slog.String("topic", s.topic))

	token := s.client.Connect()
	if !token.WaitTimeout(lifecycle.DefaultTimeout) {
		s.logger.Warn("MQTT broker not reachable yet, retrying in background")
	} else if token.Error() != nil {
		return errors.Wrap(token.Error(), "mqtt connect")
	}

	select {
	case <-ctx.Done():
	case <-s.done:
	}

	return nil
}

func (s *subscriber) subscribe() {
	token := s.client.Subscribe(s.topic, s.qos, s.handleMessage)
	if token.WaitTimeout(lifecycle.DefaultTimeout) && token.Error() != nil {
		s.logger.Error("MQTT subscribe failed", slog.String("topic", s.topic), slog.Any("error", token.Error()))

		return
	}
	s.logger.Info("Subscribed to wearable positions", slog.String("topic", s.topic))
}

func (s *subscriber) handleMessage(_ paho.Client, msg paho.Message) {
	logger := s.logger.With(slog.String("topic", msg.Topic()))

	patientID, ok := s.patientID(msg.Topic())
	if !ok {
		logger.Warn("Position on unexpected topic")

		return
	}

	report, err := decodePosition(msg.Payload())
	if err != nil {
		logger.Warn("Invalid position message", slog.Any("error", err))

		return
	}

	ctx, cancel := context.WithTimeout(
		deliverycontext.Begin(context.Background(), s.logger, deliverycontext.OriginMQTT, slog.String("patient_id", patientID)),
		lifecycle.DefaultTimeout,
	)
	defer cancel()

	result, err := s.trackingUC.ReportLocation(ctx, patientID, report)
	if err != nil {
		logger.Error("Failed to record wearable position",
			slog.String("patient_id", patientID),
			slog.Any("error", err),
		)

		return
	}

	logger.Debug("Wearable position recorded",
		slog.String("patient_id", patientID),
		slog.Int("zones", len(result.Evaluations)),
	)
}

func (s *subscriber) patientID(topic string) (string, bool) {
	levels := strings.Split(topic, "/")
	if s.wildcard >= len(levels) || levels[s.wildcard] == "" {
		return "", false
	}

	return levels[s.wildcard], true
}

func decodePosition(payload []byte) (*usecase.LocationReport, error) {
	var raw positionMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, errors.Wrap(err, "decode payload")
	}
	if raw.Latitude == nil || raw.Longitude == nil {
		return nil, errors.New("lat and lng are required")
	}

	report := &usecase.LocationReport{
		Latitude:  *raw.Latitude,
		Longitude: *raw.Longitude,
		Simulated: raw.Simulated,
		Source:    sourceWearable,
	}
	if raw.Timestamp > 0 {
		report.ObservedAt = time.Unix(raw.Timestamp, 0).UTC()
	}

	return report, nil
}

func (s *subscriber) stop(context.Context) error {
	s.stopOnce.Do(func() {
		s.logger.Info("Disconnecting from MQTT broker")
		if s.client.IsConnected() {
			s.client.Disconnect(disconnectQuiesce)
		}
		close(s.done)
	})

	return nil
}
