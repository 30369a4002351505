package usecase

import (
	"context"
	"time"

	"careconnect/internal/domain/entity"
	"careconnect/internal/domain/reminder"
)

// MedicineInput creates or edits a medicine
type MedicineInput struct {
	PatientID    string   `json:"patient_id"`
	Name         string   `json:"name"`
	Dosage       string   `json:"dosage"`
	Times        []string `json:"times"`
	Instructions string   `json:"instructions"`
}

// TodaySchedule is the patient's classified schedule for one day
type TodaySchedule struct {
	Date     string                            `json:"date"`
	Entries  []reminder.Entry                  `json:"entries"`
	Warnings []reminder.MalformedScheduleEntry `json:"warnings,omitempty"`
}

// PatientPlan is one patient's part of a caretaker's day plan
type PatientPlan struct {
	PatientID   string           `json:"patient_id"`
	PatientName string           `json:"patient_name"`
	Entries     []reminder.Entry `json:"entries"`
}

// DayPlan is the caretaker's view of today's doses across patients
type DayPlan struct {
	Date     string                            `json:"date"`
	Patients []*PatientPlan                    `json:"patients"`
	Warnings []reminder.MalformedScheduleEntry `json:"warnings,omitempty"`
}

// MedicineUsecase manages medicine schedules
type MedicineUsecase interface {
	// Create adds a medicine for a patient, by the patient or a connected caretaker
	Create(ctx context.Context, actorID string, input *MedicineInput, source entity.MedicineSource) (*entity.Medicine, error)

	// Update edits a medicine
	Update(ctx context.Context, actorID, medicineID string, input *MedicineInput) (*entity.Medicine, error)

	// Deactivate stops reminders for a medicine
	Deactivate(ctx context.Context, actorID, medicineID string) error

	// Delete removes a medicine
	Delete(ctx context.Context, actorID, medicineID string) error

	// ListForPatient lists a patient's medicines
	ListForPatient(ctx context.Context, actorID, patientID string) ([]*entity.Medicine, error)

	// ListForCaretaker lists the medicines of every connected patient
	ListForCaretaker(ctx context.Context, caretakerID string) ([]*entity.Medicine, error)

	// MarkTaken acknowledges one dose
	MarkTaken(ctx context.Context, patientID, medicineID, date, timeOfDay string) error

	// TodaySchedule classifies the patient's doses at now
	TodaySchedule(ctx context.Context, patientID string, now time.Time) (*TodaySchedule, error)

	// DayPlan classifies the doses of all connected patients at now
	DayPlan(ctx context.Context, caretakerID string, now time.Time) (*DayPlan, error)
}
