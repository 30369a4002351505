package repository

import (
	"context"
	"time"

	"careconnect/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrTrackingNotFound is returned when a patient has never reported a location.
var ErrTrackingNotFound = errors.New("tracking not found")

// TrackingRepository stores the latest known state of each patient.
type TrackingRepository interface {
	// Upsert replaces the tracking document of tracking.PatientID.
	Upsert(ctx context.Context, tracking *entity.Tracking) error

	// Find returns the latest tracking document of a patient.
	Find(ctx context.Context, patientID string) (*entity.Tracking, error)
}

// LocationHistoryRepository stores the location trail of each patient.
type LocationHistoryRepository interface {
	// Append stores a single location point.
	Append(ctx context.Context, point *entity.LocationPoint) error

	// FindSince returns points recorded at or after since, newest first, at most limit.
	FindSince(ctx context.Context, patientID string, since time.Time, limit int) ([]*entity.LocationPoint, error)

	// DeleteBefore removes points older than before and returns how many were removed.
	DeleteBefore(ctx context.Context, before time.Time) (int64, error)
}
