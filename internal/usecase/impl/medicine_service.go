package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"careconnect/config"
	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/reminder"
	"careconnect/internal/domain/repository"
	"careconnect/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type medicineService struct {
	userRepo       repository.UserRepository
	connectionRepo repository.ConnectionRepository
	medicineRepo   repository.MedicineRepository
	classifier     *reminder.Classifier
	tracker        *reminder.Tracker
	location       *time.Location
	logger         *slog.Logger
}

// MedicineServiceParams holds dependencies for MedicineService, injected by Fx.
type MedicineServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	ConnectionRepo repository.ConnectionRepository
	MedicineRepo   repository.MedicineRepository
	Classifier     *reminder.Classifier
	Tracker        *reminder.Tracker
	Config         *config.Config
	Logger         *slog.Logger
}

// NewMedicineService creates the medicine use case.
func NewMedicineService(params MedicineServiceParams) usecase.MedicineUsecase {
	return &medicineService{
		userRepo:       params.UserRepo,
		connectionRepo: params.ConnectionRepo,
		medicineRepo:   params.MedicineRepo,
		classifier:     params.Classifier,
		tracker:        params.Tracker,
		location:       params.Config.Monitor.Location(),
		logger:         params.Logger,
	}
}

// normalizeTimes validates every entry and returns the distinct times in order.
func normalizeTimes(times []string) ([]string, error) {
	out := make([]string, 0, len(times))
	for _, raw := range times {
		t := strings.TrimSpace(raw)
		if _, err := reminder.ParseTimeOfDay(t); err != nil {
			return nil, errors.WithStack(domainerrors.ErrInvalidMedicine.WithDetails(err.Error()))
		}
		if !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil, errors.WithStack(domainerrors.ErrInvalidMedicine)
	}
	slices.Sort(out)

	return out, nil
}

func normalizeMedicine(input *usecase.MedicineInput) (name, dosage string, times []string, err error) {
	name = strings.TrimSpace(input.Name)
	dosage = strings.TrimSpace(input.Dosage)
	if name == "" || dosage == "" {
		return "", "", nil, errors.WithStack(domainerrors.ErrInvalidMedicine)
	}

	times, err = normalizeTimes(input.Times)
	if err != nil {
		return "", "", nil, err
	}

	return name, dosage, times, nil
}

// Create resolves the patient from the actor: patients add their own medicines, caretakers
// name a connected patient.
func (s *medicineService) Create(ctx context.Context, actorID string, input *usecase.MedicineInput, source entity.MedicineSource) (*entity.Medicine, error) {
	name, dosage, times, err := normalizeMedicine(input)
	if err != nil {
		return nil, err
	}

	actor, err := loadUser(ctx, s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	medicine := &entity.Medicine{
		CreatedBy:    actor.ID,
		Name:         name,
		Dosage:       dosage,
		Times:        times,
		Instructions: strings.TrimSpace(input.Instructions),
		Active:       true,
		Source:       source,
		TakenDoses:   map[string]bool{},
	}

	switch {
	case actor.IsPatient():
		if input.PatientID != "" && input.PatientID != actor.ID {
			return nil, errors.Wrap(domainerrors.ErrForbidden, "patients manage their own medicines")
		}
		medicine.PatientID = actor.ID
		medicine.PatientName = actor.Name
	case actor.IsCaretaker():
		if input.PatientID == "" {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "patient_id is required")
		}
		relation, err := acceptedRelation(ctx, s.connectionRepo, actor.ID, input.PatientID)
		if err != nil {
			return nil, err
		}
		medicine.PatientID = relation.PatientID
		medicine.PatientName = relation.PatientName
		medicine.CaretakerID = actor.ID
	default:
		return nil, errors.WithStack(domainerrors.ErrRoleRequired)
	}

	now := time.Now().UTC()
	medicine.CreatedAt = now
	medicine.UpdatedAt = now
	medicine.LastModifiedBy = actor.ID

	if err := s.medicineRepo.Create(ctx, medicine); err != nil {
		return nil, errors.Wrap(err, "failed to create medicine")
	}

	requestLogger(ctx, s.logger).Info("Medicine created",
		slog.String("medicine_id", medicine.ID),
		slog.String("patient_id", medicine.PatientID),
		slog.String("source", string(source)),
	)

	return medicine, nil
}

func (s *medicineService) Update(ctx context.Context, actorID, medicineID string, input *usecase.MedicineInput) (*entity.Medicine, error) {
	name, dosage, times, err := normalizeMedicine(input)
	if err != nil {
		return nil, err
	}

	medicine, err := s.accessibleMedicine(ctx, actorID, medicineID)
	if err != nil {
		return nil, err
	}

	medicine.Name = name
	medicine.Dosage = dosage
	medicine.Times = times
	medicine.Instructions = strings.TrimSpace(input.Instructions)
	medicine.LastModifiedBy = actorID
	medicine.UpdatedAt = time.Now().UTC()

	if err := s.medicineRepo.Update(ctx, medicine); err != nil {
		return nil, errors.Wrap(err, "failed to update medicine")
	}
	s.tracker.Release(medicine.PatientID, medicine.ID, times)

	return medicine, nil
}

func (s *medicineService) Deactivate(ctx context.Context, actorID, medicineID string) error {
	medicine, err := s.accessibleMedicine(ctx, actorID, medicineID)
	if err != nil {
		return err
	}
	if !medicine.Active {
		return nil
	}

	medicine.Active = false
	medicine.LastModifiedBy = actorID
	medicine.UpdatedAt = time.Now().UTC()
	if err := s.medicineRepo.Update(ctx, medicine); err != nil {
		return errors.Wrap(err, "failed to deactivate medicine")
	}
	s.tracker.Release(medicine.PatientID, medicine.ID, nil)

	return nil
}

func (s *medicineService) Delete(ctx context.Context, actorID, medicineID string) error {
	medicine, err := s.accessibleMedicine(ctx, actorID, medicineID)
	if err != nil {
		return err
	}

	if err := s.medicineRepo.Delete(ctx, medicine.ID); err != nil {
		return errors.Wrap(err, "failed to delete medicine")
	}
	s.tracker.Release(medicine.PatientID, medicine.ID, nil)

	requestLogger(ctx, s.logger).Info("Medicine deleted", slog.String("medicine_id", medicine.ID))

	return nil
}

func (s *medicineService) ListForPatient(ctx context.Context, actorID, patientID string) ([]*entity.Medicine, error) {
	if err := canView(ctx, s.connectionRepo, actorID, patientID); err != nil {
		return nil, err
	}

	medicines, err := s.medicineRepo.ListByPatient(ctx, patientID, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list medicines")
	}

	return medicines, nil
}

func (s *medicineService) ListForCaretaker(ctx context.Context, caretakerID string) ([]*entity.Medicine, error) {
	relations, err := s.acceptedPatients(ctx, caretakerID)
	if err != nil {
		return nil, err
	}

	var medicines []*entity.Medicine
	for _, relation := range relations {
		list, err := s.medicineRepo.ListByPatient(ctx, relation.PatientID, false)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list medicines")
		}
		medicines = append(medicines, list...)
	}

	return medicines, nil
}

func (s *medicineService) MarkTaken(ctx context.Context, patientID, medicineID, date, timeOfDay string) error {
	if _, err := time.Parse(reminder.DateLayout, date); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "date must be YYYY-MM-DD")
	}

	medicine, err := s.findMedicine(ctx, medicineID)
	if err != nil {
		return err
	}
	if medicine.PatientID != patientID {
		return errors.WithStack(domainerrors.ErrMedicineNotFound)
	}
	if !medicine.HasTime(timeOfDay) {
		return errors.WithStack(domainerrors.ErrInvalidDoseSlot)
	}

	key := reminder.DoseKey{ScheduleID: medicine.ID, Date: date, Time: timeOfDay}
	if err := s.medicineRepo.MarkTaken(ctx, medicine.ID, key.String(), patientID); err != nil {
		return errors.Wrap(err, "failed to record dose")
	}

	return nil
}

func (s *medicineService) TodaySchedule(ctx context.Context, patientID string, now time.Time) (*usecase.TodaySchedule, error) {
	medicines, err := s.medicineRepo.ListByPatient(ctx, patientID, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list medicines")
	}

	schedules, taken := entity.MedicineSchedules(medicines)
	classification := s.classifier.Classify(schedules, now.In(s.location), taken)
	s.logWarnings(ctx, classification.Warnings)

	return &usecase.TodaySchedule{
		Date:     classification.Date,
		Entries:  classification.Entries,
		Warnings: classification.Warnings,
	}, nil
}

func (s *medicineService) DayPlan(ctx context.Context, caretakerID string, now time.Time) (*usecase.DayPlan, error) {
	relations, err := s.acceptedPatients(ctx, caretakerID)
	if err != nil {
		return nil, err
	}

	local := now.In(s.location)
	plan := &usecase.DayPlan{
		Date:     local.Format(reminder.DateLayout),
		Patients: make([]*usecase.PatientPlan, 0, len(relations)),
	}
	for _, relation := range relations {
		medicines, err := s.medicineRepo.ListByPatient(ctx, relation.PatientID, true)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list medicines")
		}

		schedules, taken := entity.MedicineSchedules(medicines)
		classification := s.classifier.Plan(schedules, local, taken)
		plan.Warnings = append(plan.Warnings, classification.Warnings...)
		plan.Patients = append(plan.Patients, &usecase.PatientPlan{
			PatientID:   relation.PatientID,
			PatientName: relation.PatientName,
			Entries:     classification.Entries,
		})
	}
	s.logWarnings(ctx, plan.Warnings)

	return plan, nil
}

func (s *medicineService) logWarnings(ctx context.Context, warnings []reminder.MalformedScheduleEntry) {
	for _, w := range warnings {
		requestLogger(ctx, s.logger).Warn("Skipping malformed schedule entry",
			slog.String("medicine_id", w.ScheduleID),
			slog.String("value", w.Value),
		)
	}
}

func (s *medicineService) acceptedPatients(ctx context.Context, caretakerID string) ([]*entity.ConnectionRequest, error) {
	requests, err := s.connectionRepo.FindByCaretaker(ctx, caretakerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list caretaker requests")
	}

	accepted := make([]*entity.ConnectionRequest, 0, len(requests))
	for _, req := range requests {
		if req.IsAccepted() {
			accepted = append(accepted, req)
		}
	}

	return accepted, nil
}

func (s *medicineService) findMedicine(ctx context.Context, medicineID string) (*entity.Medicine, error) {
	medicine, err := s.medicineRepo.FindByID(ctx, medicineID)
	if err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return nil, errors.WithStack(domainerrors.ErrMedicineNotFound)
		}

		return nil, errors.Wrap(err, "failed to load medicine")
	}

	return medicine, nil
}

// accessibleMedicine loads a medicine the actor may manage: the patient's own or one of a
// connected patient.
func (s *medicineService) accessibleMedicine(ctx context.Context, actorID, medicineID string) (*entity.Medicine, error) {
	medicine, err := s.findMedicine(ctx, medicineID)
	if err != nil {
		return nil, err
	}
	if err := canView(ctx, s.connectionRepo, actorID, medicine.PatientID); err != nil {
		if errors.Is(err, domainerrors.ErrNotConnected) {
			return nil, errors.WithStack(domainerrors.ErrMedicineNotFound)
		}

		return nil, err
	}

	return medicine, nil
}
