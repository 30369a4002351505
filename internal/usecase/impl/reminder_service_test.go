package impl

import (
	"context"
	"testing"
	"time"

	"careconnect/internal/domain/entity"
	"careconnect/internal/domain/reminder"
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

type reminderServiceFixtures struct {
	service        usecase.ReminderUsecase
	medicineRepo   *mockRepo.MockMedicineRepository
	connectionRepo *mockRepo.MockConnectionRepository
	notifier       *mockUsecase.MockNotificationUsecase
	metrics        *mockSvc.MockMonitorMetrics
	tracker        *reminder.Tracker
}

func createTestReminderService(t *testing.T) reminderServiceFixtures {
	t.Helper()

	fx := reminderServiceFixtures{
		medicineRepo:   mockRepo.NewMockMedicineRepository(t),
		connectionRepo: mockRepo.NewMockConnectionRepository(t),
		notifier:       mockUsecase.NewMockNotificationUsecase(t),
		metrics:        mockSvc.NewMockMonitorMetrics(t),
		tracker:        reminder.NewTracker(),
	}
	fx.service = NewReminderService(ReminderServiceParams{
		MedicineRepo:   fx.medicineRepo,
		ConnectionRepo: fx.connectionRepo,
		Classifier:     reminder.NewClassifier(10 * time.Minute),
		Tracker:        fx.tracker,
		Notifier:       fx.notifier,
		Metrics:        fx.metrics,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return fx
}

func morningMedicine() *entity.Medicine {
	return &entity.Medicine{
		ID:           "med-1",
		PatientID:    "patient-1",
		PatientName:  "Pat",
		Name:         "Metformin",
		Dosage:       "500mg",
		Times:        []string{"08:00"},
		Instructions: "After breakfast",
		Active:       true,
	}
}

func at(hh, mm int) time.Time {
	return time.Date(2026, 3, 14, hh, mm, 0, 0, time.UTC)
}

func TestReminderService_Tick_AdvanceThenDue(t *testing.T) {
	fx := createTestReminderService(t)
	ctx := context.Background()

	fx.medicineRepo.EXPECT().ListActive(ctx).Return([]*entity.Medicine{morningMedicine()}, nil)
	fx.connectionRepo.EXPECT().FindAcceptedByPatient(ctx, "patient-1").Return([]*entity.ConnectionRequest{acceptedRequest()}, nil)
	fx.metrics.EXPECT().ReminderSurfaced("advance").Return().Once()
	fx.metrics.EXPECT().ReminderSurfaced("due").Return().Once()

	var events []*service.NotificationEvent
	fx.notifier.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Run(func(_ context.Context, e *service.NotificationEvent) { events = append(events, e) }).
		Return()

	summary, err := fx.service.Tick(ctx, at(7, 55))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Surfaced)

	summary, err = fx.service.Tick(ctx, at(7, 56))
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Surfaced, "advance reminder surfaces once")

	summary, err = fx.service.Tick(ctx, at(8, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Surfaced)

	require.Len(t, events, 2)

	advance := events[0]
	assert.Equal(t, entity.NotificationReminderAdvance, advance.Kind)
	assert.Equal(t, []string{"caretaker-1"}, advance.RecipientIDs)
	assert.Equal(t, "Medicine Reminder: Pat", advance.Title)
	assert.Equal(t, "Metformin - 500mg. In 10 minutes (08:00)", advance.Body)
	assert.Equal(t, "med-1_2026-03-14_08:00", advance.ReferenceID)

	due := events[1]
	assert.Equal(t, entity.NotificationReminderDue, due.Kind)
	assert.Equal(t, []string{"patient-1"}, due.RecipientIDs)
	assert.Equal(t, "Medicine Time!", due.Title)
	assert.Equal(t, "Time to take Metformin (500mg). After breakfast", due.Body)
}

func TestReminderService_Tick_TakenDoseIsSilent(t *testing.T) {
	fx := createTestReminderService(t)
	ctx := context.Background()

	medicine := morningMedicine()
	medicine.TakenDoses = map[string]bool{"2026-03-14_08:00": true}
	fx.medicineRepo.EXPECT().ListActive(ctx).Return([]*entity.Medicine{medicine}, nil)

	summary, err := fx.service.Tick(ctx, at(7, 55))

	require.NoError(t, err)
	assert.Equal(t, 0, summary.Surfaced)
	assert.Equal(t, 1, summary.Medicines)
}

func TestReminderService_Tick_AdvanceWithoutCaretakersIsSkipped(t *testing.T) {
	fx := createTestReminderService(t)
	ctx := context.Background()

	fx.medicineRepo.EXPECT().ListActive(ctx).Return([]*entity.Medicine{morningMedicine()}, nil)
	fx.connectionRepo.EXPECT().FindAcceptedByPatient(ctx, "patient-1").Return(nil, nil)

	summary, err := fx.service.Tick(ctx, at(7, 55))

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Surfaced)
}

func TestReminderService_Tick_CountsMalformedEntries(t *testing.T) {
	fx := createTestReminderService(t)
	ctx := context.Background()

	medicine := morningMedicine()
	medicine.Times = []string{"8am"}
	fx.medicineRepo.EXPECT().ListActive(ctx).Return([]*entity.Medicine{medicine}, nil)

	summary, err := fx.service.Tick(ctx, at(7, 55))

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Warnings)
	assert.Equal(t, 0, summary.Surfaced)
}

func TestReminderService_Tick_PrunesPreviousDays(t *testing.T) {
	fx := createTestReminderService(t)
	ctx := context.Background()

	fx.tracker.Surface("patient-9", []reminder.Reminder{{
		Entry: reminder.Entry{ScheduleID: "old", Date: "2026-03-13", Time: "08:00"},
		Kind:  reminder.KindDue,
	}})
	fx.medicineRepo.EXPECT().ListActive(ctx).Return(nil, nil)

	summary, err := fx.service.Tick(ctx, at(0, 1))

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Pruned)
	assert.Equal(t, 0, fx.tracker.Subjects())
}

func TestReminderService_Tick_RepositoryError(t *testing.T) {
	fx := createTestReminderService(t)
	ctx := context.Background()

	fx.medicineRepo.EXPECT().ListActive(ctx).Return(nil, errors.New("firestore unavailable"))

	_, err := fx.service.Tick(ctx, at(8, 0))

	assert.Error(t, err)
}
