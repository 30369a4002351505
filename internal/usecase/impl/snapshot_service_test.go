package impl

import (
	"context"
	"testing"
	"time"

	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/geo"
	"careconnect/internal/domain/reminder"
	"careconnect/internal/domain/repository"
	"careconnect/internal/domain/service"
	mockRepo "careconnect/internal/mocks/repository"
	mockSvc "careconnect/internal/mocks/service"
	mockUsecase "careconnect/internal/mocks/usecase"
	"careconnect/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type snapshotServiceFixtures struct {
	service        usecase.SnapshotUsecase
	connectionRepo *mockRepo.MockConnectionRepository
	trackingRepo   *mockRepo.MockTrackingRepository
	historyRepo    *mockRepo.MockLocationHistoryRepository
	medicineRepo   *mockRepo.MockMedicineRepository
	alertRepo      *mockRepo.MockAlertRepository
	analyzer       *mockSvc.MockActivityAnalyzer
	snapshots      *mockSvc.MockSnapshotStore
	notifier       *mockUsecase.MockNotificationUsecase
}

func createTestSnapshotService(t *testing.T) snapshotServiceFixtures {
	t.Helper()

	fx := snapshotServiceFixtures{
		connectionRepo: mockRepo.NewMockConnectionRepository(t),
		trackingRepo:   mockRepo.NewMockTrackingRepository(t),
		historyRepo:    mockRepo.NewMockLocationHistoryRepository(t),
		medicineRepo:   mockRepo.NewMockMedicineRepository(t),
		alertRepo:      mockRepo.NewMockAlertRepository(t),
		analyzer:       mockSvc.NewMockActivityAnalyzer(t),
		snapshots:      mockSvc.NewMockSnapshotStore(t),
		notifier:       mockUsecase.NewMockNotificationUsecase(t),
	}
	fx.service = NewSnapshotService(SnapshotServiceParams{
		ConnectionRepo: fx.connectionRepo,
		TrackingRepo:   fx.trackingRepo,
		HistoryRepo:    fx.historyRepo,
		MedicineRepo:   fx.medicineRepo,
		AlertRepo:      fx.alertRepo,
		Analyzer:       fx.analyzer,
		Snapshots:      fx.snapshots,
		Notifier:       fx.notifier,
		Classifier:     reminder.NewClassifier(10 * time.Minute),
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return fx
}

func patientTracking() *entity.Tracking {
	return &entity.Tracking{
		PatientID:  "patient-1",
		Name:       "Pat",
		Location:   geo.Point{Lat: 12.97160, Lng: 77.59460},
		LastActive: time.Date(2026, 3, 14, 11, 45, 0, 0, time.UTC),
		Status:     entity.TrackingActive,
	}
}

// expectSample sets up the reads the activity sample performs.
func (fx snapshotServiceFixtures) expectSample(ctx context.Context, now time.Time) {
	fx.historyRepo.EXPECT().FindSince(ctx, "patient-1", now.Add(-12*time.Hour), 500).Return([]*entity.LocationPoint{
		{PatientID: "patient-1", Latitude: 12.9716, Longitude: 77.5946},
		{PatientID: "patient-1", Latitude: 12.9816, Longitude: 77.5946},
	}, nil)
	fx.medicineRepo.EXPECT().ListByPatient(ctx, "patient-1", true).Return([]*entity.Medicine{morningMedicine()}, nil)
}

func TestSnapshotService_Capture_LowRisk(t *testing.T) {
	fx := createTestSnapshotService(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	second := acceptedRequest()
	second.ID = "req-2"
	second.CaretakerID = "caretaker-2"

	fx.connectionRepo.EXPECT().FindAccepted(ctx).Return([]*entity.ConnectionRequest{acceptedRequest(), second}, nil)
	fx.trackingRepo.EXPECT().Find(ctx, "patient-1").Return(patientTracking(), nil).Once()
	fx.snapshots.EXPECT().Put(ctx, mock.Anything, mock.Anything, "application/geo+json").Return(nil).Times(2)

	var alerts []*entity.Alert
	fx.alertRepo.EXPECT().Create(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, a *entity.Alert) error {
			alerts = append(alerts, a)

			return nil
		}).Times(2)
	fx.notifier.EXPECT().Dispatch(ctx, mock.MatchedBy(func(e *service.NotificationEvent) bool {
		return e.Kind == entity.NotificationSnapshot
	})).Return().Times(2)

	fx.expectSample(ctx, now)
	fx.analyzer.EXPECT().
		Analyze(ctx, mock.MatchedBy(func(s *entity.ActivitySample) bool {
			return s.MissedDoses == 1 && s.DistanceMeters > 1000 && len(s.Locations) == 2
		})).
		Return(&entity.RiskAssessment{RiskLevel: entity.RiskLow}, nil).Once()

	summary, err := fx.service.Capture(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, &usecase.SnapshotSummary{Relations: 2, Snapshots: 2}, summary)
	require.Len(t, alerts, 2)
	assert.Equal(t, entity.AlertAutomatedSnapshot, alerts[0].Type)
	assert.Equal(t, "Automated snapshot: last seen at 12.97160, 77.59460 (Mar 14 11:45)", alerts[0].Message)
	assert.Equal(t, "req-1/1773489600000.geojson", alerts[0].ImageKey)
	assert.Equal(t, "caretaker-2", alerts[1].CaretakerID)
}

func TestSnapshotService_Capture_HighRiskAlertsEveryCaretaker(t *testing.T) {
	fx := createTestSnapshotService(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	message := "Patient has been inactive and missed a dose"

	fx.connectionRepo.EXPECT().FindAccepted(ctx).Return([]*entity.ConnectionRequest{acceptedRequest()}, nil)
	fx.trackingRepo.EXPECT().Find(ctx, "patient-1").Return(patientTracking(), nil)
	fx.snapshots.EXPECT().Put(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	fx.expectSample(ctx, now)
	fx.analyzer.EXPECT().Analyze(ctx, mock.Anything).
		Return(&entity.RiskAssessment{RiskLevel: entity.RiskHigh, Alert: &message}, nil)

	var risk *entity.Alert
	fx.alertRepo.EXPECT().Create(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, a *entity.Alert) error {
			if a.Type == entity.AlertRiskAnalysis {
				risk = a
			}

			return nil
		})
	fx.notifier.EXPECT().Dispatch(ctx, mock.Anything).Return()

	summary, err := fx.service.Capture(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.RiskAlerts)
	require.NotNil(t, risk)
	assert.Equal(t, entity.RiskHigh, risk.RiskLevel)
	assert.Equal(t, message, risk.Message)
}

func TestSnapshotService_Capture_SkipsPatientsWithoutLocation(t *testing.T) {
	fx := createTestSnapshotService(t)
	ctx := context.Background()

	fx.connectionRepo.EXPECT().FindAccepted(ctx).Return([]*entity.ConnectionRequest{acceptedRequest()}, nil)
	fx.trackingRepo.EXPECT().Find(ctx, "patient-1").Return(nil, repository.ErrTrackingNotFound)

	summary, err := fx.service.Capture(ctx, time.Now())

	require.NoError(t, err)
	assert.Equal(t, 0, summary.Snapshots)
	assert.Equal(t, 0, summary.Failures)
}

func TestSnapshotService_Capture_AnalyzerFailureIsCounted(t *testing.T) {
	fx := createTestSnapshotService(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	fx.connectionRepo.EXPECT().FindAccepted(ctx).Return([]*entity.ConnectionRequest{acceptedRequest()}, nil)
	fx.trackingRepo.EXPECT().Find(ctx, "patient-1").Return(patientTracking(), nil)
	fx.snapshots.EXPECT().Put(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	fx.alertRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.notifier.EXPECT().Dispatch(ctx, mock.Anything).Return()
	fx.expectSample(ctx, now)
	fx.analyzer.EXPECT().Analyze(ctx, mock.Anything).Return(nil, errors.WithStack(service.ErrModelUnavailable))

	summary, err := fx.service.Capture(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Snapshots)
	assert.Equal(t, 1, summary.Failures)
}

func TestSnapshotService_Assess(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("outside an active zone", func(t *testing.T) {
		fx := createTestSnapshotService(t)
		relation := acceptedRequest()
		relation.SafeZone = &entity.SafeZone{Latitude: 13.5, Longitude: 77.5946, RadiusMeters: 500, Active: true}

		fx.connectionRepo.EXPECT().FindByCaretaker(ctx, "caretaker-1").Return([]*entity.ConnectionRequest{relation}, nil)
		fx.trackingRepo.EXPECT().Find(ctx, "patient-1").Return(patientTracking(), nil)
		fx.connectionRepo.EXPECT().FindAcceptedByPatient(ctx, "patient-1").Return([]*entity.ConnectionRequest{relation}, nil)
		fx.expectSample(ctx, now)
		fx.analyzer.EXPECT().
			Analyze(ctx, mock.MatchedBy(func(s *entity.ActivitySample) bool { return s.OutsideSafeZone })).
			Return(&entity.RiskAssessment{RiskLevel: entity.RiskMedium}, nil)

		assessment, err := fx.service.Assess(ctx, "caretaker-1", "patient-1", now)

		require.NoError(t, err)
		assert.Equal(t, entity.RiskMedium, assessment.RiskLevel)
	})

	t.Run("model unavailable", func(t *testing.T) {
		fx := createTestSnapshotService(t)
		fx.trackingRepo.EXPECT().Find(ctx, "patient-1").Return(patientTracking(), nil)
		fx.connectionRepo.EXPECT().FindAcceptedByPatient(ctx, "patient-1").Return(nil, nil)
		fx.expectSample(ctx, now)
		fx.analyzer.EXPECT().Analyze(ctx, mock.Anything).Return(nil, errors.WithStack(service.ErrModelUnavailable))

		_, err := fx.service.Assess(ctx, "patient-1", "patient-1", now)
		assert.ErrorIs(t, err, domainerrors.ErrAssistantUnavailable)
	})

	t.Run("no location", func(t *testing.T) {
		fx := createTestSnapshotService(t)
		fx.trackingRepo.EXPECT().Find(ctx, "patient-1").Return(nil, repository.ErrTrackingNotFound)

		_, err := fx.service.Assess(ctx, "patient-1", "patient-1", now)
		assert.ErrorIs(t, err, domainerrors.ErrLocationUnavailable)
	})
}
