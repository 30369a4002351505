package repository

import (
	"context"

	"careconnect/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrRequestNotFound is returned when a connection request does not exist.
var ErrRequestNotFound = errors.New("connection request not found")

// ConnectionRepository stores caretaker/patient connection requests and their safe zones.
type ConnectionRepository interface {
	// Create persists a new request and assigns its ID.
	Create(ctx context.Context, req *entity.ConnectionRequest) error

	// FindByID retrieves a request by ID.
	FindByID(ctx context.Context, id string) (*entity.ConnectionRequest, error)

	// FindByCaretaker lists requests sent by a caretaker.
	FindByCaretaker(ctx context.Context, caretakerID string) ([]*entity.ConnectionRequest, error)

	// FindByPatientEmail lists requests addressed to a patient email.
	FindByPatientEmail(ctx context.Context, email string) ([]*entity.ConnectionRequest, error)

	// FindAccepted lists every accepted request. Used by scheduled jobs.
	FindAccepted(ctx context.Context) ([]*entity.ConnectionRequest, error)

	// FindAcceptedByPatient lists the accepted requests of one patient.
	FindAcceptedByPatient(ctx context.Context, patientID string) ([]*entity.ConnectionRequest, error)

	// UpdateStatus answers a request, recording the patient that answered it.
	UpdateStatus(ctx context.Context, id string, status entity.RequestStatus, patientID, patientName string) error

	// UpdateSafeZone replaces the request's safe zone.
	UpdateSafeZone(ctx context.Context, id string, zone *entity.SafeZone) error
}
