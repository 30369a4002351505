package impl

import (
	"context"
	"testing"
	"time"

	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/reminder"
	"careconnect/internal/domain/repository"
	mockRepo "careconnect/internal/mocks/repository"
	"careconnect/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type medicineServiceFixtures struct {
	service        usecase.MedicineUsecase
	userRepo       *mockRepo.MockUserRepository
	connectionRepo *mockRepo.MockConnectionRepository
	medicineRepo   *mockRepo.MockMedicineRepository
	tracker        *reminder.Tracker
}

func createTestMedicineService(t *testing.T) medicineServiceFixtures {
	t.Helper()

	fx := medicineServiceFixtures{
		userRepo:       mockRepo.NewMockUserRepository(t),
		connectionRepo: mockRepo.NewMockConnectionRepository(t),
		medicineRepo:   mockRepo.NewMockMedicineRepository(t),
		tracker:        reminder.NewTracker(),
	}
	fx.service = NewMedicineService(MedicineServiceParams{
		UserRepo:       fx.userRepo,
		ConnectionRepo: fx.connectionRepo,
		MedicineRepo:   fx.medicineRepo,
		Classifier:     reminder.NewClassifier(10 * time.Minute),
		Tracker:        fx.tracker,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return fx
}

func testMedicine() *entity.Medicine {
	return &entity.Medicine{
		ID:         "med-1",
		PatientID:  "patient-1",
		Name:       "Metformin",
		Dosage:     "500mg",
		Times:      []string{"08:00", "20:00"},
		Active:     true,
		TakenDoses: map[string]bool{},
	}
}

func TestMedicineService_Create_ByPatient(t *testing.T) {
	fx := createTestMedicineService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, "patient-1").Return(testPatient(), nil)
	fx.medicineRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Medicine")).Return(nil)

	medicine, err := fx.service.Create(ctx, "patient-1", &usecase.MedicineInput{
		Name:   " Metformin ",
		Dosage: "500mg",
		Times:  []string{"20:00", "08:00", "20:00"},
	}, entity.MedicineSourceManual)

	require.NoError(t, err)
	assert.Equal(t, "Metformin", medicine.Name)
	assert.Equal(t, []string{"08:00", "20:00"}, medicine.Times, "times are deduplicated and sorted")
	assert.Equal(t, "patient-1", medicine.PatientID)
	assert.Empty(t, medicine.CaretakerID)
	assert.True(t, medicine.Active)
	assert.Equal(t, entity.MedicineSourceManual, medicine.Source)
}

func TestMedicineService_Create_ByCaretaker(t *testing.T) {
	fx := createTestMedicineService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, "caretaker-1").Return(testCaretaker(), nil)
	fx.connectionRepo.EXPECT().FindByCaretaker(ctx, "caretaker-1").Return([]*entity.ConnectionRequest{acceptedRequest()}, nil)
	fx.medicineRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	medicine, err := fx.service.Create(ctx, "caretaker-1", &usecase.MedicineInput{
		PatientID: "patient-1",
		Name:      "Aspirin",
		Dosage:    "75mg",
		Times:     []string{"09:00"},
	}, entity.MedicineSourceManual)

	require.NoError(t, err)
	assert.Equal(t, "patient-1", medicine.PatientID)
	assert.Equal(t, "Pat", medicine.PatientName)
	assert.Equal(t, "caretaker-1", medicine.CaretakerID)
}

func TestMedicineService_Create_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed time", func(t *testing.T) {
		fx := createTestMedicineService(t)

		_, err := fx.service.Create(ctx, "patient-1", &usecase.MedicineInput{
			Name: "A", Dosage: "1", Times: []string{"25:99"},
		}, entity.MedicineSourceManual)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_MEDICINE", appErr.ErrorCode())
	})

	t.Run("no times", func(t *testing.T) {
		fx := createTestMedicineService(t)

		_, err := fx.service.Create(ctx, "patient-1", &usecase.MedicineInput{Name: "A", Dosage: "1"}, entity.MedicineSourceManual)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidMedicine)
	})

	t.Run("caretaker not connected", func(t *testing.T) {
		fx := createTestMedicineService(t)
		fx.userRepo.EXPECT().FindByID(ctx, "caretaker-1").Return(testCaretaker(), nil)
		fx.connectionRepo.EXPECT().FindByCaretaker(ctx, "caretaker-1").Return(nil, nil)

		_, err := fx.service.Create(ctx, "caretaker-1", &usecase.MedicineInput{
			PatientID: "patient-2", Name: "A", Dosage: "1", Times: []string{"08:00"},
		}, entity.MedicineSourceManual)
		assert.ErrorIs(t, err, domainerrors.ErrNotConnected)
	})

	t.Run("patient for someone else", func(t *testing.T) {
		fx := createTestMedicineService(t)
		fx.userRepo.EXPECT().FindByID(ctx, "patient-1").Return(testPatient(), nil)

		_, err := fx.service.Create(ctx, "patient-1", &usecase.MedicineInput{
			PatientID: "patient-2", Name: "A", Dosage: "1", Times: []string{"08:00"},
		}, entity.MedicineSourceManual)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestMedicineService_Update_HidesForeignMedicine(t *testing.T) {
	fx := createTestMedicineService(t)
	ctx := context.Background()

	fx.medicineRepo.EXPECT().FindByID(ctx, "med-1").Return(testMedicine(), nil)
	fx.connectionRepo.EXPECT().FindByCaretaker(ctx, "caretaker-9").Return(nil, nil)

	_, err := fx.service.Update(ctx, "caretaker-9", "med-1", &usecase.MedicineInput{
		Name: "A", Dosage: "1", Times: []string{"08:00"},
	})

	assert.ErrorIs(t, err, domainerrors.ErrMedicineNotFound)
}

func surfacedSlots(times ...string) []reminder.Reminder {
	out := make([]reminder.Reminder, 0, len(times))
	for _, tm := range times {
		out = append(out, reminder.Reminder{
			Entry: reminder.Entry{ScheduleID: "med-1", Date: "2026-03-14", Time: tm},
			Kind:  reminder.KindAdvance,
		})
	}

	return out
}

func TestMedicineService_Update_ReleasesRemovedSlots(t *testing.T) {
	fx := createTestMedicineService(t)
	ctx := context.Background()
	fx.tracker.Surface("patient-1", surfacedSlots("08:00", "20:00"))

	fx.medicineRepo.EXPECT().FindByID(ctx, "med-1").Return(testMedicine(), nil)
	fx.medicineRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)

	updated, err := fx.service.Update(ctx, "patient-1", "med-1", &usecase.MedicineInput{
		Name: "Metformin", Dosage: "850mg", Times: []string{"21:00", "08:00"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"08:00", "21:00"}, updated.Times)
	fresh := fx.tracker.Surface("patient-1", surfacedSlots("08:00", "20:00"))
	require.Len(t, fresh, 1, "the kept 08:00 slot stays surfaced")
	assert.Equal(t, "20:00", fresh[0].Time)
}

func TestMedicineService_Delete_ReleasesSchedule(t *testing.T) {
	fx := createTestMedicineService(t)
	ctx := context.Background()
	fx.tracker.Surface("patient-1", surfacedSlots("08:00"))

	fx.medicineRepo.EXPECT().FindByID(ctx, "med-1").Return(testMedicine(), nil)
	fx.medicineRepo.EXPECT().Delete(ctx, "med-1").Return(nil)

	require.NoError(t, fx.service.Delete(ctx, "patient-1", "med-1"))
	assert.Len(t, fx.tracker.Surface("patient-1", surfacedSlots("08:00")), 1)
}

func TestMedicineService_Deactivate(t *testing.T) {
	fx := createTestMedicineService(t)
	ctx := context.Background()

	fx.medicineRepo.EXPECT().FindByID(ctx, "med-1").Return(testMedicine(), nil)
	fx.medicineRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(m *entity.Medicine) bool { return !m.Active && m.LastModifiedBy == "patient-1" })).
		Return(nil)

	require.NoError(t, fx.service.Deactivate(ctx, "patient-1", "med-1"))
}

func TestMedicineService_MarkTaken(t *testing.T) {
	ctx := context.Background()

	t.Run("records dose key", func(t *testing.T) {
		fx := createTestMedicineService(t)
		fx.medicineRepo.EXPECT().FindByID(ctx, "med-1").Return(testMedicine(), nil)
		fx.medicineRepo.EXPECT().MarkTaken(ctx, "med-1", "2026-03-14_08:00", "patient-1").Return(nil)

		require.NoError(t, fx.service.MarkTaken(ctx, "patient-1", "med-1", "2026-03-14", "08:00"))
	})

	t.Run("unknown slot", func(t *testing.T) {
		fx := createTestMedicineService(t)
		fx.medicineRepo.EXPECT().FindByID(ctx, "med-1").Return(testMedicine(), nil)

		err := fx.service.MarkTaken(ctx, "patient-1", "med-1", "2026-03-14", "09:00")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidDoseSlot)
	})

	t.Run("bad date", func(t *testing.T) {
		fx := createTestMedicineService(t)

		err := fx.service.MarkTaken(ctx, "patient-1", "med-1", "14/03/2026", "08:00")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("someone else's medicine", func(t *testing.T) {
		fx := createTestMedicineService(t)
		fx.medicineRepo.EXPECT().FindByID(ctx, "med-1").Return(testMedicine(), nil)

		err := fx.service.MarkTaken(ctx, "patient-2", "med-1", "2026-03-14", "08:00")
		assert.ErrorIs(t, err, domainerrors.ErrMedicineNotFound)
	})

	t.Run("missing medicine", func(t *testing.T) {
		fx := createTestMedicineService(t)
		fx.medicineRepo.EXPECT().FindByID(ctx, "med-x").Return(nil, repository.ErrMedicineNotFound)

		err := fx.service.MarkTaken(ctx, "patient-1", "med-x", "2026-03-14", "08:00")
		assert.ErrorIs(t, err, domainerrors.ErrMedicineNotFound)
	})
}

func TestMedicineService_TodaySchedule(t *testing.T) {
	fx := createTestMedicineService(t)
	ctx := context.Background()

	taken := testMedicine()
	taken.TakenDoses = map[string]bool{"2026-03-14_08:00": true}
	broken := &entity.Medicine{ID: "med-2", PatientID: "patient-1", Name: "Broken", Times: []string{"7pm"}, Active: true}

	fx.medicineRepo.EXPECT().ListByPatient(ctx, "patient-1", true).Return([]*entity.Medicine{taken, broken}, nil)

	schedule, err := fx.service.TodaySchedule(ctx, "patient-1", time.Date(2026, 3, 14, 19, 55, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, "2026-03-14", schedule.Date)
	require.Len(t, schedule.Entries, 2)
	assert.Equal(t, reminder.StatusTaken, schedule.Entries[0].Status)
	assert.Equal(t, reminder.StatusDueSoon, schedule.Entries[1].Status)
	require.Len(t, schedule.Warnings, 1)
	assert.Equal(t, "7pm", schedule.Warnings[0].Value)
}

func TestMedicineService_DayPlan(t *testing.T) {
	fx := createTestMedicineService(t)
	ctx := context.Background()

	pending := acceptedRequest()
	pending.ID = "req-2"
	pending.PatientID = "patient-2"
	pending.Status = entity.RequestPending

	fx.connectionRepo.EXPECT().FindByCaretaker(ctx, "caretaker-1").Return([]*entity.ConnectionRequest{acceptedRequest(), pending}, nil)
	fx.medicineRepo.EXPECT().ListByPatient(ctx, "patient-1", true).Return([]*entity.Medicine{testMedicine()}, nil)

	plan, err := fx.service.DayPlan(ctx, "caretaker-1", time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, plan.Patients, 1)
	assert.Equal(t, "Pat", plan.Patients[0].PatientName)
	require.Len(t, plan.Patients[0].Entries, 2)
	assert.Equal(t, reminder.StatusDue, plan.Patients[0].Entries[0].Status)
	assert.Equal(t, reminder.StatusUpcoming, plan.Patients[0].Entries[1].Status)
}

func TestMedicineService_ListForCaretaker(t *testing.T) {
	fx := createTestMedicineService(t)
	ctx := context.Background()

	fx.connectionRepo.EXPECT().FindByCaretaker(ctx, "caretaker-1").Return([]*entity.ConnectionRequest{acceptedRequest()}, nil)
	fx.medicineRepo.EXPECT().ListByPatient(ctx, "patient-1", false).Return([]*entity.Medicine{testMedicine()}, nil)

	medicines, err := fx.service.ListForCaretaker(ctx, "caretaker-1")

	require.NoError(t, err)
	assert.Len(t, medicines, 1)
}
