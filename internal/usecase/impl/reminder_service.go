package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"careconnect/config"
	"careconnect/internal/domain/entity"
	"careconnect/internal/domain/reminder"
	"careconnect/internal/domain/repository"
	"careconnect/internal/domain/service"
	"careconnect/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reminderService struct {
	medicineRepo   repository.MedicineRepository
	connectionRepo repository.ConnectionRepository
	classifier     *reminder.Classifier
	tracker        *reminder.Tracker
	notifier       usecase.NotificationUsecase
	metrics        service.MonitorMetrics
	leadWindow     time.Duration
	location       *time.Location
	logger         *slog.Logger
}

// ReminderServiceParams holds dependencies for ReminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	MedicineRepo   repository.MedicineRepository
	ConnectionRepo repository.ConnectionRepository
	Classifier     *reminder.Classifier
	Tracker        *reminder.Tracker
	Notifier       usecase.NotificationUsecase
	Metrics        service.MonitorMetrics
	Config         *config.Config
	Logger         *slog.Logger
}

// NewReminderService creates the reminder monitor.
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	return &reminderService{
		medicineRepo:   params.MedicineRepo,
		connectionRepo: params.ConnectionRepo,
		classifier:     params.Classifier,
		tracker:        params.Tracker,
		notifier:       params.Notifier,
		metrics:        params.Metrics,
		leadWindow:     params.Config.Monitor.LeadWindow,
		location:       params.Config.Monitor.Location(),
		logger:         params.Logger,
	}
}

// Tick is safe to call more often than once a minute: the tracker keeps every reminder to a
// single notification per day.
func (s *reminderService) Tick(ctx context.Context, now time.Time) (*usecase.TickSummary, error) {
	medicines, err := s.medicineRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active medicines")
	}

	local := now.In(s.location)
	summary := &usecase.TickSummary{Medicines: len(medicines)}

	byPatient := make(map[string][]*entity.Medicine)
	for _, m := range medicines {
		byPatient[m.PatientID] = append(byPatient[m.PatientID], m)
	}

	for patientID, list := range byPatient {
		schedules, taken := entity.MedicineSchedules(list)
		classification := s.classifier.Classify(schedules, local, taken)
		summary.Warnings += len(classification.Warnings)
		for _, w := range classification.Warnings {
			s.logger.Warn("Skipping malformed schedule entry",
				slog.String("medicine_id", w.ScheduleID),
				slog.String("value", w.Value),
			)
		}

		fresh := s.tracker.Surface(patientID, classification.Reminders())
		if len(fresh) == 0 {
			continue
		}

		s.notify(ctx, patientID, list, fresh)
		summary.Surfaced += len(fresh)
	}

	summary.Pruned = s.tracker.Prune(local.Format(reminder.DateLayout))

	if summary.Surfaced > 0 {
		s.logger.Info("Reminder tick",
			slog.Int("medicines", summary.Medicines),
			slog.Int("surfaced", summary.Surfaced),
		)
	}

	return summary, nil
}

// notify sends advance reminders to the patient's caretakers and due reminders to the
// patient.
func (s *reminderService) notify(ctx context.Context, patientID string, medicines []*entity.Medicine, reminders []reminder.Reminder) {
	byID := make(map[string]*entity.Medicine, len(medicines))
	for _, m := range medicines {
		byID[m.ID] = m
	}

	var caretakerIDs []string
	relations, err := caretakersOf(ctx, s.connectionRepo, patientID)
	if err != nil {
		s.logger.Error("Failed to resolve caretakers",
			slog.String("patient_id", patientID),
			slog.Any("error", err),
		)
	}
	for _, relation := range relations {
		caretakerIDs = append(caretakerIDs, relation.CaretakerID)
	}

	for _, r := range reminders {
		medicine, ok := byID[r.ScheduleID]
		if !ok {
			continue
		}
		event := &service.NotificationEvent{
			ReferenceID: r.ScheduleID + "_" + r.Key().String(),
			Data: map[string]string{
				"medicine_id": r.ScheduleID,
				"patient_id":  patientID,
				"date":        r.Date,
				"time":        r.Time,
			},
			OccurredAt: time.Now().UTC(),
		}

		switch r.Kind {
		case reminder.KindAdvance:
			if len(caretakerIDs) == 0 {
				continue
			}
			event.Kind = entity.NotificationReminderAdvance
			event.RecipientIDs = caretakerIDs
			event.Title = "Medicine Reminder: " + medicine.PatientName
			event.Body = fmt.Sprintf("%s - %s. In %d minutes (%s)",
				medicine.Name, medicine.Dosage, int(s.leadWindow/time.Minute), r.Time)
		case reminder.KindDue:
			event.Kind = entity.NotificationReminderDue
			event.RecipientIDs = []string{patientID}
			event.Title = "Medicine Time!"
			event.Body = strings.TrimSpace(fmt.Sprintf("Time to take %s (%s). %s",
				medicine.Name, medicine.Dosage, medicine.Instructions))
		}

		s.metrics.ReminderSurfaced(string(r.Kind))
		s.notifier.Dispatch(ctx, event)
	}
}
