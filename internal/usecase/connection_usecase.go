package usecase

import (
	"context"

	"careconnect/internal/domain/entity"

	"github.com/paulmach/orb/geojson"
)

// SafeZoneInput sets or moves a safe zone. A nil center means "around the patient".
type SafeZoneInput struct {
	Latitude     *float64 `json:"lat" validate:"omitempty,latitude"`
	Longitude    *float64 `json:"lng" validate:"omitempty,longitude"`
	RadiusMeters float64  `json:"radius"`
}

// ConnectionUsecase manages caretaker/patient relations and their safe zones
type ConnectionUsecase interface {
	// SendRequest asks the patient registered under patientEmail to connect
	SendRequest(ctx context.Context, caretakerID, patientEmail string) (*entity.ConnectionRequest, error)

	// Respond accepts or rejects a pending request addressed to the patient
	Respond(ctx context.Context, patientID, requestID string, status entity.RequestStatus) (*entity.ConnectionRequest, error)

	// ListForPatient returns the requests addressed to the patient
	ListForPatient(ctx context.Context, patientID string) ([]*entity.ConnectionRequest, error)

	// ListForCaretaker returns the requests the caretaker sent
	ListForCaretaker(ctx context.Context, caretakerID string) ([]*entity.ConnectionRequest, error)

	// SetSafeZone creates or replaces the zone of an accepted relation
	SetSafeZone(ctx context.Context, caretakerID, requestID string, input *SafeZoneInput) (*entity.SafeZone, error)

	// ClearSafeZone deactivates the zone of a relation
	ClearSafeZone(ctx context.Context, caretakerID, requestID string) error

	// SafeZoneGeoJSON renders the relation's zone as a polygon feature
	SafeZoneGeoJSON(ctx context.Context, userID, requestID string) (*geojson.Feature, error)

	// InviteQRCode renders the caretaker's invitation as a PNG QR code
	InviteQRCode(ctx context.Context, caretakerID string) ([]byte, error)

	// ConnectedCaretakers lists the caretakers the patient accepted
	ConnectedCaretakers(ctx context.Context, patientID string) ([]entity.Caretaker, error)

	// ConnectedPatients lists the accepted relations of a caretaker
	ConnectedPatients(ctx context.Context, caretakerID string) ([]*entity.ConnectionRequest, error)

	// Relation returns the accepted relation between two users in either direction
	Relation(ctx context.Context, userA, userB string) (*entity.ConnectionRequest, error)
}
