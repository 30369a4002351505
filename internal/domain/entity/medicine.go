package entity

import (
	"strings"
	"time"

	"careconnect/internal/domain/reminder"
)

// MedicineSource records how a medicine was created.
type MedicineSource string

const (
	MedicineSourceManual    MedicineSource = "MANUAL"
	MedicineSourceAICommand MedicineSource = "AI_COMMAND"
)

// Medicine is a patient's daily medicine schedule.
type Medicine struct {
	ID             string          `json:"id"`
	PatientID      string          `json:"patient_id"`
	PatientName    string          `json:"patient_name"`
	CaretakerID    string          `json:"caretaker_id,omitempty"`
	CreatedBy      string          `json:"created_by"`
	Name           string          `json:"name"`
	Dosage         string          `json:"dosage"`
	Times          []string        `json:"times"`
	Instructions   string          `json:"instructions"`
	Active         bool            `json:"active"`
	Source         MedicineSource  `json:"source"`
	TakenDoses     map[string]bool `json:"taken_doses,omitempty"` // keyed by "YYYY-MM-DD_HH:MM"
	LastModifiedBy string          `json:"last_modified_by,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Schedule converts the medicine for the reminder classifier.
func (m *Medicine) Schedule() reminder.Schedule {
	return reminder.Schedule{
		ID:           m.ID,
		SubjectID:    m.PatientID,
		Name:         m.Name,
		Dosage:       m.Dosage,
		Times:        m.Times,
		Instructions: m.Instructions,
		Active:       m.Active,
	}
}

// AddTaken merges the medicine's acknowledgements into set.
func (m *Medicine) AddTaken(set reminder.TakenSet) {
	for key, taken := range m.TakenDoses {
		if !taken {
			continue
		}
		date, tod, ok := strings.Cut(key, "_")
		if !ok {
			continue
		}
		set.Add(reminder.DoseKey{ScheduleID: m.ID, Date: date, Time: tod})
	}
}

// HasTime reports whether the medicine is scheduled at the given "HH:MM".
func (m *Medicine) HasTime(tod string) bool {
	for _, t := range m.Times {
		if t == tod {
			return true
		}
	}

	return false
}

// MedicineSchedules converts a list of medicines and collects their acknowledgements.
func MedicineSchedules(medicines []*Medicine) ([]reminder.Schedule, reminder.TakenSet) {
	schedules := make([]reminder.Schedule, 0, len(medicines))
	taken := make(reminder.TakenSet)
	for _, m := range medicines {
		schedules = append(schedules, m.Schedule())
		m.AddTaken(taken)
	}

	return schedules, taken
}
