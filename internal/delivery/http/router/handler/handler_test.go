package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpmiddleware "careconnect/internal/delivery/http/middleware"
	"careconnect/internal/delivery/http/validator"
	"careconnect/internal/domain/constants"
	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/geo"
	"careconnect/internal/domain/service"
	mockUsecase "careconnect/internal/mocks/usecase"
	"careconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(discardLogger()).HandleHTTPError

	return e
}

// newRequest builds a context for the given caller. An empty userID leaves the request anonymous.
func newRequest(e *echo.Echo, method, target, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set(constants.ContextUserID, userID)
	}

	return c, rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  struct {
		RequestID  string    `json:"request_id"`
		ServerTime time.Time `json:"server_time"`
		Count      *int      `json:"count"`
	} `json:"meta"`
	Error *struct {
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestTrackingHandler_ReportLocation(t *testing.T) {
	e := newTestEcho()
	trackingUC := mockUsecase.NewMockTrackingUsecase(t)
	h := NewTrackingHandler(TrackingHandlerParams{TrackingUC: trackingUC, Logger: discardLogger()})

	trackingUC.EXPECT().
		ReportLocation(mock.Anything, "patient-1", mock.MatchedBy(func(r *usecase.LocationReport) bool {
			return r.Latitude == 12.9716 && r.Longitude == 77.5946 && r.Source == "app"
		})).
		Return(&usecase.LocationResult{
			Tracking: &entity.Tracking{PatientID: "patient-1", Location: geo.Point{Lat: 12.9716, Lng: 77.5946}},
		}, nil)

	c, rec := newRequest(e, http.MethodPost, "/api/v1/tracking/location", `{"lat":12.9716,"lng":77.5946}`, "patient-1")

	require.NoError(t, h.ReportLocation(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"patient_id":"patient-1"`)
}

func TestTrackingHandler_ReportLocation_InvalidCoordinate(t *testing.T) {
	e := newTestEcho()
	trackingUC := mockUsecase.NewMockTrackingUsecase(t)
	h := NewTrackingHandler(TrackingHandlerParams{TrackingUC: trackingUC, Logger: discardLogger()})

	trackingUC.EXPECT().ReportLocation(mock.Anything, "patient-1", mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidCoordinate))

	c, rec := newRequest(e, http.MethodPost, "/api/v1/tracking/location", `{"lat":91,"lng":0}`, "patient-1")

	require.NoError(t, h.ReportLocation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_COORDINATE", decode(t, rec).Error.Code)
}

func TestTrackingHandler_Unauthenticated(t *testing.T) {
	e := newTestEcho()
	h := NewTrackingHandler(TrackingHandlerParams{TrackingUC: mockUsecase.NewMockTrackingUsecase(t), Logger: discardLogger()})

	c, rec := newRequest(e, http.MethodGet, "/api/v1/tracking/patient-1", "", "")

	require.NoError(t, h.GetLocation(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTrackingHandler_History_QueryParameters(t *testing.T) {
	e := newTestEcho()
	trackingUC := mockUsecase.NewMockTrackingUsecase(t)
	h := NewTrackingHandler(TrackingHandlerParams{TrackingUC: trackingUC, Logger: discardLogger()})
	since := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

	trackingUC.EXPECT().
		History(mock.Anything, "caretaker-1", "patient-1", mock.MatchedBy(func(t time.Time) bool { return t.Equal(since) }), 20).
		Return([]*entity.LocationPoint{{PatientID: "patient-1"}, {PatientID: "patient-1"}}, nil)

	c, rec := newRequest(e, http.MethodGet, "/api/v1/tracking/patient-1/history?since=2026-03-14T08:00:00Z&limit=20", "", "caretaker-1")
	c.SetParamNames("patientId")
	c.SetParamValues("patient-1")

	require.NoError(t, h.History(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Meta.Count)
	assert.Equal(t, 2, *env.Meta.Count)
	assert.False(t, env.Meta.ServerTime.IsZero())
}

func TestConnectionHandler_Respond_Validation(t *testing.T) {
	e := newTestEcho()
	h := NewConnectionHandler(ConnectionHandlerParams{
		ConnectionUC: mockUsecase.NewMockConnectionUsecase(t),
		UserUC:       mockUsecase.NewMockUserUsecase(t),
		Logger:       discardLogger(),
	})

	c, rec := newRequest(e, http.MethodPost, "/api/v1/connections/req-1/respond", `{"status":"maybe"}`, "patient-1")
	c.SetParamNames("id")
	c.SetParamValues("req-1")

	require.NoError(t, h.Respond(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "oneof", env.Error.Details["status"])
}

func TestConnectionHandler_List_ByRole(t *testing.T) {
	e := newTestEcho()
	connectionUC := mockUsecase.NewMockConnectionUsecase(t)
	userUC := mockUsecase.NewMockUserUsecase(t)
	h := NewConnectionHandler(ConnectionHandlerParams{ConnectionUC: connectionUC, UserUC: userUC, Logger: discardLogger()})

	userUC.EXPECT().GetProfile(mock.Anything, "patient-1").Return(&entity.User{ID: "patient-1", Role: entity.RolePatient}, nil)
	connectionUC.EXPECT().ListForPatient(mock.Anything, "patient-1").
		Return([]*entity.ConnectionRequest{{ID: "req-1", Status: entity.RequestPending}}, nil)

	c, rec := newRequest(e, http.MethodGet, "/api/v1/connections", "", "patient-1")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"req-1"`)
}

func TestConnectionHandler_InviteQRCode(t *testing.T) {
	e := newTestEcho()
	connectionUC := mockUsecase.NewMockConnectionUsecase(t)
	h := NewConnectionHandler(ConnectionHandlerParams{
		ConnectionUC: connectionUC,
		UserUC:       mockUsecase.NewMockUserUsecase(t),
		Logger:       discardLogger(),
	})

	png := []byte{0x89, 'P', 'N', 'G'}
	connectionUC.EXPECT().InviteQRCode(mock.Anything, "caretaker-1").Return(png, nil)

	c, rec := newRequest(e, http.MethodGet, "/api/v1/connections/invite.png", "", "caretaker-1")

	require.NoError(t, h.InviteQRCode(c))
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestMedicineHandler_MarkTaken(t *testing.T) {
	e := newTestEcho()
	medicineUC := mockUsecase.NewMockMedicineUsecase(t)
	h := NewMedicineHandler(MedicineHandlerParams{
		MedicineUC: medicineUC,
		UserUC:     mockUsecase.NewMockUserUsecase(t),
		Logger:     discardLogger(),
	})

	t.Run("recorded", func(t *testing.T) {
		medicineUC.EXPECT().MarkTaken(mock.Anything, "patient-1", "med-1", "2026-03-14", "08:00").Return(nil).Once()

		c, rec := newRequest(e, http.MethodPost, "/api/v1/medicines/med-1/taken", `{"date":"2026-03-14","time":"08:00"}`, "patient-1")
		c.SetParamNames("id")
		c.SetParamValues("med-1")

		require.NoError(t, h.MarkTaken(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed time", func(t *testing.T) {
		c, rec := newRequest(e, http.MethodPost, "/api/v1/medicines/med-1/taken", `{"date":"2026-03-14","time":"8am"}`, "patient-1")
		c.SetParamNames("id")
		c.SetParamValues("med-1")

		require.NoError(t, h.MarkTaken(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "datetime", decode(t, rec).Error.Details["time"])
	})

	t.Run("unknown slot", func(t *testing.T) {
		medicineUC.EXPECT().MarkTaken(mock.Anything, "patient-1", "med-1", "2026-03-14", "09:00").
			Return(errors.WithStack(domainerrors.ErrInvalidDoseSlot)).Once()

		c, rec := newRequest(e, http.MethodPost, "/api/v1/medicines/med-1/taken", `{"date":"2026-03-14","time":"09:00"}`, "patient-1")
		c.SetParamNames("id")
		c.SetParamValues("med-1")

		require.NoError(t, h.MarkTaken(c))
		assert.Equal(t, domainerrors.ErrInvalidDoseSlot.HTTPCode(), rec.Code)
	})
}

func TestMedicineHandler_List_CaretakerWithoutFilter(t *testing.T) {
	e := newTestEcho()
	medicineUC := mockUsecase.NewMockMedicineUsecase(t)
	userUC := mockUsecase.NewMockUserUsecase(t)
	h := NewMedicineHandler(MedicineHandlerParams{MedicineUC: medicineUC, UserUC: userUC, Logger: discardLogger()})

	userUC.EXPECT().GetProfile(mock.Anything, "caretaker-1").Return(&entity.User{ID: "caretaker-1", Role: entity.RoleCaretaker}, nil)
	medicineUC.EXPECT().ListForCaretaker(mock.Anything, "caretaker-1").Return(nil, nil)

	c, rec := newRequest(e, http.MethodGet, "/api/v1/medicines", "", "caretaker-1")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.JSONEq(t, `[]`, string(env.Data), "no medicines renders an empty list")
	assert.Equal(t, 0, *env.Meta.Count)
}

func TestAlertHandler_Snapshot(t *testing.T) {
	e := newTestEcho()
	alertUC := mockUsecase.NewMockAlertUsecase(t)
	h := NewAlertHandler(AlertHandlerParams{AlertUC: alertUC, Logger: discardLogger()})

	alertUC.EXPECT().Snapshot(mock.Anything, "caretaker-1", "alert-1").
		Return([]byte(`{"type":"FeatureCollection","features":[]}`), "application/geo+json", nil)

	c, rec := newRequest(e, http.MethodGet, "/api/v1/alerts/alert-1/snapshot", "", "caretaker-1")
	c.SetParamNames("id")
	c.SetParamValues("alert-1")

	require.NoError(t, h.Snapshot(c))
	assert.Equal(t, "application/geo+json", rec.Header().Get(echo.HeaderContentType))
}

func TestUserHandler_Register(t *testing.T) {
	e := newTestEcho()
	userUC := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: discardLogger()})
	identity := &service.Identity{UserID: "patient-1", Email: "pat@example.com"}

	userUC.EXPECT().
		Register(mock.Anything, identity, &usecase.RegisterInput{Name: "Pat", Role: entity.RolePatient}).
		Return(&entity.User{ID: "patient-1", Name: "Pat", Role: entity.RolePatient}, nil)

	c, rec := newRequest(e, http.MethodPost, "/api/v1/users/me", `{"name":"Pat","role":"patient"}`, "patient-1")
	c.Set("identity", identity)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestChatHandler_Unread(t *testing.T) {
	e := newTestEcho()
	chatUC := mockUsecase.NewMockChatUsecase(t)
	h := NewChatHandler(ChatHandlerParams{ChatUC: chatUC, Logger: discardLogger()})

	chatUC.EXPECT().HasUnread(mock.Anything, "caretaker-1", "patient-1").Return(true, nil)

	c, rec := newRequest(e, http.MethodGet, "/api/v1/chats/patient-1/unread", "", "caretaker-1")
	c.SetParamNames("peerId")
	c.SetParamValues("patient-1")

	require.NoError(t, h.Unread(c))
	assert.JSONEq(t, `{"unread":true}`, string(decode(t, rec).Data))
}

func TestAssistantHandler_Analyze_Unavailable(t *testing.T) {
	e := newTestEcho()
	snapshotUC := mockUsecase.NewMockSnapshotUsecase(t)
	h := NewAssistantHandler(AssistantHandlerParams{
		AssistantUC: mockUsecase.NewMockAssistantUsecase(t),
		SnapshotUC:  snapshotUC,
		Logger:      discardLogger(),
	})

	snapshotUC.EXPECT().Assess(mock.Anything, "caretaker-1", "patient-1", mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrAssistantUnavailable))

	c, rec := newRequest(e, http.MethodGet, "/api/v1/assistant/analyze/patient-1", "", "caretaker-1")
	c.SetParamNames("patientId")
	c.SetParamValues("patient-1")

	require.NoError(t, h.Analyze(c))
	assert.Equal(t, domainerrors.ErrAssistantUnavailable.HTTPCode(), rec.Code)
}
