package repository

import (
	"context"

	"careconnect/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrMedicineNotFound is returned when a medicine does not exist.
var ErrMedicineNotFound = errors.New("medicine not found")

// MedicineRepository stores medicine schedules.
type MedicineRepository interface {
	// Create persists a medicine and assigns its ID.
	Create(ctx context.Context, medicine *entity.Medicine) error

	// FindByID retrieves a medicine by ID.
	FindByID(ctx context.Context, id string) (*entity.Medicine, error)

	// Update replaces the editable fields of a medicine.
	Update(ctx context.Context, medicine *entity.Medicine) error

	// Delete removes a medicine.
	Delete(ctx context.Context, id string) error

	// ListByPatient lists a patient's medicines.
	ListByPatient(ctx context.Context, patientID string, activeOnly bool) ([]*entity.Medicine, error)

	// ListActive lists every active medicine. Used by the reminder job.
	ListActive(ctx context.Context) ([]*entity.Medicine, error)

	// MarkTaken records the acknowledgement for key ("YYYY-MM-DD_HH:MM").
	MarkTaken(ctx context.Context, id, key, by string) error
}
