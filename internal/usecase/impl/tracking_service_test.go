package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/geo"
	"careconnect/internal/domain/geofence"
	"careconnect/internal/domain/repository"
	"careconnect/internal/domain/service"
	mockRepo "careconnect/internal/mocks/repository"
	mockSvc "careconnect/internal/mocks/service"
	mockUsecase "careconnect/internal/mocks/usecase"
	"careconnect/internal/usecase"

	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type trackingServiceFixtures struct {
	service        usecase.TrackingUsecase
	userRepo       *mockRepo.MockUserRepository
	connectionRepo *mockRepo.MockConnectionRepository
	trackingRepo   *mockRepo.MockTrackingRepository
	historyRepo    *mockRepo.MockLocationHistoryRepository
	alertRepo      *mockRepo.MockAlertRepository
	snapshots      *mockSvc.MockSnapshotStore
	realtime       *mockSvc.MockRealtimePublisher
	notifier       *mockUsecase.MockNotificationUsecase
	metrics        *mockSvc.MockMonitorMetrics
	states         *geofence.StateTable
}

func createTestTrackingService(t *testing.T) trackingServiceFixtures {
	t.Helper()

	states := geofence.NewStateTable()
	fx := trackingServiceFixtures{
		userRepo:       mockRepo.NewMockUserRepository(t),
		connectionRepo: mockRepo.NewMockConnectionRepository(t),
		trackingRepo:   mockRepo.NewMockTrackingRepository(t),
		historyRepo:    mockRepo.NewMockLocationHistoryRepository(t),
		alertRepo:      mockRepo.NewMockAlertRepository(t),
		snapshots:      mockSvc.NewMockSnapshotStore(t),
		realtime:       mockSvc.NewMockRealtimePublisher(t),
		notifier:       mockUsecase.NewMockNotificationUsecase(t),
		metrics:        mockSvc.NewMockMonitorMetrics(t),
		states:         states,
	}
	fx.service = NewTrackingService(TrackingServiceParams{
		UserRepo:       fx.userRepo,
		ConnectionRepo: fx.connectionRepo,
		TrackingRepo:   fx.trackingRepo,
		HistoryRepo:    fx.historyRepo,
		AlertRepo:      fx.alertRepo,
		Monitor:        geofence.NewMonitor(geofence.NewEvaluator(geofence.Options{}), states),
		Snapshots:      fx.snapshots,
		Realtime:       fx.realtime,
		Notifier:       fx.notifier,
		Metrics:        fx.metrics,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return fx
}

var zoneCenter = geo.Point{Lat: 25.0330, Lng: 121.5654}

func zonedRelation() *entity.ConnectionRequest {
	req := acceptedRequest()
	req.SafeZone = &entity.SafeZone{
		Latitude:     zoneCenter.Lat,
		Longitude:    zoneCenter.Lng,
		RadiusMeters: 200,
		Active:       true,
	}

	return req
}

// expectStored sets up the calls every accepted report makes before zones are evaluated.
func (fx trackingServiceFixtures) expectStored(ctx context.Context, relations []*entity.ConnectionRequest) {
	fx.userRepo.EXPECT().FindByID(ctx, "patient-1").Return(testPatient(), nil)
	fx.trackingRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.Tracking")).Return(nil)
	fx.metrics.EXPECT().LocationReported(false).Return()
	fx.historyRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.LocationPoint")).Return(nil)
	fx.connectionRepo.EXPECT().FindAcceptedByPatient(ctx, "patient-1").Return(relations, nil)
	fx.realtime.EXPECT().Publish(ctx, mock.AnythingOfType("service.RealtimeEvent")).Return(nil).Maybe()
}

func report(p geo.Point) *usecase.LocationReport {
	return &usecase.LocationReport{
		Latitude:   p.Lat,
		Longitude:  p.Lng,
		ObservedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Source:     "gps",
	}
}

func TestTrackingService_ReportLocation_InsideZone(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	fx.expectStored(ctx, []*entity.ConnectionRequest{zonedRelation()})
	fx.metrics.EXPECT().GeofenceEvaluated("inside").Return()

	result, err := fx.service.ReportLocation(ctx, "patient-1", report(geo.Destination(zoneCenter, 45, 50)))

	require.NoError(t, err)
	require.Len(t, result.Evaluations, 1)
	assert.Equal(t, geofence.OutcomeInside, result.Evaluations[0].Outcome)
	assert.False(t, result.Evaluations[0].Breached)
	assert.Equal(t, entity.TrackingActive, result.Tracking.Status)
	assert.Equal(t, "Pat", result.Tracking.Name)
}

func TestTrackingService_ReportLocation_BreachRaisesAlertOnce(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	outside := geo.Destination(zoneCenter, 90, 350)

	fx.expectStored(ctx, []*entity.ConnectionRequest{zonedRelation()})
	fx.metrics.EXPECT().GeofenceEvaluated("outside").Return().Times(2)
	fx.metrics.EXPECT().BreachDetected().Return().Once()

	var stored []byte
	fx.snapshots.EXPECT().
		Put(ctx, mock.MatchedBy(func(key string) bool { return strings.HasPrefix(key, "req-1/") }), mock.Anything, "application/geo+json").
		RunAndReturn(func(_ context.Context, _ string, data []byte, _ string) error {
			stored = data

			return nil
		}).Once()

	var alert *entity.Alert
	fx.alertRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Alert")).
		RunAndReturn(func(_ context.Context, a *entity.Alert) error {
			a.ID = "alert-1"
			alert = a

			return nil
		}).Once()

	var event *service.NotificationEvent
	fx.notifier.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Run(func(_ context.Context, e *service.NotificationEvent) { event = e }).
		Return().Once()

	first, err := fx.service.ReportLocation(ctx, "patient-1", report(outside))
	require.NoError(t, err)
	require.Len(t, first.Evaluations, 1)
	assert.True(t, first.Evaluations[0].Breached)
	assert.Equal(t, "alert-1", first.Evaluations[0].AlertID)

	require.NotNil(t, alert)
	assert.Equal(t, entity.AlertGeofenceBreach, alert.Type)
	assert.Equal(t, "caretaker-1", alert.CaretakerID)
	assert.InDelta(t, 350, alert.Distance, 1)
	assert.Equal(t, fmt.Sprintf("Patient exited Safe Zone! Distance: %dm", int(math.Round(alert.Distance))), alert.Message)
	assert.NotEmpty(t, alert.ImageKey)

	require.NotNil(t, event)
	assert.Equal(t, entity.NotificationGeofenceBreach, event.Kind)
	assert.Equal(t, []string{"caretaker-1"}, event.RecipientIDs)
	assert.Equal(t, "alert-1", event.ReferenceID)

	fc, err := geojson.UnmarshalFeatureCollection(stored)
	require.NoError(t, err)
	assert.Len(t, fc.Features, 2)

	// still outside: no second alert
	second, err := fx.service.ReportLocation(ctx, "patient-1", report(geo.Destination(zoneCenter, 90, 400)))
	require.NoError(t, err)
	assert.False(t, second.Evaluations[0].Breached)
	assert.Equal(t, geofence.OutcomeOutside, second.Evaluations[0].Outcome)
}

func TestTrackingService_ReportLocation_SnapshotFailureKeepsAlert(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	fx.expectStored(ctx, []*entity.ConnectionRequest{zonedRelation()})
	fx.metrics.EXPECT().GeofenceEvaluated("outside").Return()
	fx.metrics.EXPECT().BreachDetected().Return()
	fx.snapshots.EXPECT().Put(ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("bucket down"))
	fx.alertRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(a *entity.Alert) bool { return a.ImageKey == "" })).
		Return(nil)
	fx.notifier.EXPECT().Dispatch(ctx, mock.Anything).Return()

	result, err := fx.service.ReportLocation(ctx, "patient-1", report(geo.Destination(zoneCenter, 0, 1000)))

	require.NoError(t, err)
	assert.True(t, result.Evaluations[0].Breached)
}

func TestTrackingService_ReportLocation_NoZoneOrInactive(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	inactive := zonedRelation()
	inactive.ID = "req-2"
	inactive.CaretakerID = "caretaker-2"
	inactive.SafeZone.Active = false

	fx.expectStored(ctx, []*entity.ConnectionRequest{acceptedRequest(), inactive})
	fx.metrics.EXPECT().GeofenceEvaluated("no_zone_configured").Return()
	fx.metrics.EXPECT().GeofenceEvaluated("inactive").Return()

	result, err := fx.service.ReportLocation(ctx, "patient-1", report(geo.Destination(zoneCenter, 0, 5000)))

	require.NoError(t, err)
	require.Len(t, result.Evaluations, 2)
	assert.Equal(t, geofence.OutcomeNoZoneConfigured, result.Evaluations[0].Outcome)
	assert.Equal(t, geofence.OutcomeInactive, result.Evaluations[1].Outcome)
}

func TestTrackingService_ReportLocation_HistoryFailureIsNotFatal(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, "patient-1").Return(testPatient(), nil)
	fx.trackingRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)
	fx.metrics.EXPECT().LocationReported(true).Return()
	fx.historyRepo.EXPECT().Append(ctx, mock.Anything).Return(errors.New("db down"))
	fx.connectionRepo.EXPECT().FindAcceptedByPatient(ctx, "patient-1").Return(nil, nil)

	in := report(zoneCenter)
	in.Simulated = true
	result, err := fx.service.ReportLocation(ctx, "patient-1", in)

	require.NoError(t, err)
	assert.Equal(t, entity.TrackingSimulated, result.Tracking.Status)
	assert.Empty(t, result.Evaluations)
}

func TestTrackingService_ReportLocation_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid coordinate", func(t *testing.T) {
		fx := createTestTrackingService(t)

		_, err := fx.service.ReportLocation(ctx, "patient-1", &usecase.LocationReport{Latitude: 91, Longitude: 0})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
	})

	t.Run("caretaker cannot report", func(t *testing.T) {
		fx := createTestTrackingService(t)
		fx.userRepo.EXPECT().FindByID(ctx, "caretaker-1").Return(testCaretaker(), nil)

		_, err := fx.service.ReportLocation(ctx, "caretaker-1", report(zoneCenter))
		assert.ErrorIs(t, err, domainerrors.ErrRoleRequired)
	})
}

func TestTrackingService_ReportLocation_BroadcastsToCaretakers(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, "patient-1").Return(testPatient(), nil)
	fx.trackingRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)
	fx.metrics.EXPECT().LocationReported(false).Return()
	fx.historyRepo.EXPECT().Append(ctx, mock.Anything).Return(nil)
	fx.connectionRepo.EXPECT().FindAcceptedByPatient(ctx, "patient-1").Return([]*entity.ConnectionRequest{acceptedRequest()}, nil)
	fx.metrics.EXPECT().GeofenceEvaluated(mock.Anything).Return()

	var published service.RealtimeEvent
	fx.realtime.EXPECT().Publish(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, e service.RealtimeEvent) error {
			published = e

			return nil
		})

	_, err := fx.service.ReportLocation(ctx, "patient-1", report(zoneCenter))
	require.NoError(t, err)

	assert.Equal(t, service.RealtimeLocation, published.Type)
	assert.Equal(t, service.UserTopic("caretaker-1"), published.Topic)

	var tracking entity.Tracking
	require.NoError(t, json.Unmarshal(published.Data, &tracking))
	assert.Equal(t, "patient-1", tracking.PatientID)
}

func TestTrackingService_GetLocation(t *testing.T) {
	ctx := context.Background()

	t.Run("connected caretaker", func(t *testing.T) {
		fx := createTestTrackingService(t)
		fx.connectionRepo.EXPECT().FindByCaretaker(ctx, "caretaker-1").Return([]*entity.ConnectionRequest{acceptedRequest()}, nil)
		fx.trackingRepo.EXPECT().Find(ctx, "patient-1").Return(&entity.Tracking{PatientID: "patient-1"}, nil)

		tracking, err := fx.service.GetLocation(ctx, "caretaker-1", "patient-1")
		require.NoError(t, err)
		assert.Equal(t, "patient-1", tracking.PatientID)
	})

	t.Run("stranger", func(t *testing.T) {
		fx := createTestTrackingService(t)
		fx.connectionRepo.EXPECT().FindByCaretaker(ctx, "caretaker-9").Return(nil, nil)

		_, err := fx.service.GetLocation(ctx, "caretaker-9", "patient-1")
		assert.ErrorIs(t, err, domainerrors.ErrNotConnected)
	})

	t.Run("never reported", func(t *testing.T) {
		fx := createTestTrackingService(t)
		fx.trackingRepo.EXPECT().Find(ctx, "patient-1").Return(nil, repository.ErrTrackingNotFound)

		_, err := fx.service.GetLocation(ctx, "patient-1", "patient-1")
		assert.ErrorIs(t, err, domainerrors.ErrLocationUnavailable)
	})
}

func TestTrackingService_History_ClampsLimit(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	since := time.Now().Add(-time.Hour)

	fx.historyRepo.EXPECT().FindSince(ctx, "patient-1", since, 200).Return(nil, nil).Once()
	fx.historyRepo.EXPECT().FindSince(ctx, "patient-1", since, 1000).Return(nil, nil).Once()

	_, err := fx.service.History(ctx, "patient-1", "patient-1", since, 0)
	require.NoError(t, err)
	_, err = fx.service.History(ctx, "patient-1", "patient-1", since, 50000)
	require.NoError(t, err)
}

func TestTrackingService_PruneHistory(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	now := time.Date(2026, 4, 30, 3, 30, 0, 0, time.UTC)

	fx.historyRepo.EXPECT().DeleteBefore(ctx, now.Add(-30*24*time.Hour)).Return(int64(42), nil)

	removed, err := fx.service.PruneHistory(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, int64(42), removed)
}
