package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"careconnect/config"
	deliverycontext "careconnect/internal/delivery/context"
	"careconnect/internal/domain/constants"
	"careconnect/internal/domain/entity"
	"careconnect/internal/domain/service"
	mockUsecase "careconnect/internal/mocks/usecase"
	"careconnect/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockNotificationUsecase) {
	t.Helper()

	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:         cfg,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationUC: notificationUC,
	})

	return h, notificationUC
}

func developConfig() *config.Config {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
	cfg.Env.Env = constants.EnvDevelop

	return cfg
}

func pushBody(t *testing.T, event *service.NotificationEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/demo/subscriptions/notifications"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func breach() *service.NotificationEvent {
	return &service.NotificationEvent{
		Kind:         entity.NotificationGeofenceBreach,
		ReferenceID:  "alert-1",
		RecipientIDs: []string{"caretaker-1"},
		Title:        "Safe zone alert",
	}
}

func TestPushHandler_Delivers(t *testing.T) {
	h, notificationUC := newTestPushHandler(t, developConfig())

	notificationUC.EXPECT().
		Deliver(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-42"
		}), mock.MatchedBy(func(e *service.NotificationEvent) bool {
			return e.ReferenceID == "alert-1" && e.Kind == entity.NotificationGeofenceBreach
		})).
		Return(&entity.DeliverySummary{Sent: 1, Devices: 1}, nil)

	rec := servePush(h, pushBody(t, breach(), map[string]string{"request_id": "req-42"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RetryableFailure(t *testing.T) {
	h, notificationUC := newTestPushHandler(t, developConfig())

	notificationUC.EXPECT().Deliver(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(impl.ErrDeliveryUnavailable, "device store down"))

	rec := servePush(h, pushBody(t, breach(), nil), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_PermanentFailureIsAcknowledged(t *testing.T) {
	h, notificationUC := newTestPushHandler(t, developConfig())

	notificationUC.EXPECT().Deliver(mock.Anything, mock.Anything).Return(nil, errors.New("bad event"))

	rec := servePush(h, pushBody(t, breach(), nil), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedPayload(t *testing.T) {
	h, _ := newTestPushHandler(t, developConfig())

	rec := servePush(h, `{"message":{"data":"not base64!"}}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_VerifiesGooglePushInProduction(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{
		Provider:     constants.PubSubProviderGoogle,
		PushAudience: "https://worker.example.com/push",
	}}
	cfg.Env.Env = constants.EnvProduction
	h, _ := newTestPushHandler(t, cfg)

	var gotAudience string
	h.verify = func(_ *http.Request, audience string) error {
		gotAudience = audience

		return errors.New("token expired")
	}

	rec := servePush(h, pushBody(t, breach(), nil), http.Header{"Authorization": {"Bearer stale"}})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "https://worker.example.com/push", gotAudience)
}

func TestVerifyPubSubToken_RejectsMalformedHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	require.Error(t, verifyPubSubToken(req, "aud"))

	req.Header.Set("Authorization", "Basic abc")
	require.Error(t, verifyPubSubToken(req, "aud"))
}
