package usecase

import (
	"context"
	"time"

	"careconnect/internal/domain/entity"
	"careconnect/internal/domain/geofence"
)

// LocationReport is a position sent by a patient's device or wearable
type LocationReport struct {
	Latitude   float64   `json:"lat"`
	Longitude  float64   `json:"lng"`
	ObservedAt time.Time `json:"timestamp"`
	Simulated  bool      `json:"simulated"`
	Source     string    `json:"source"`
}

// ZoneEvaluation is the geofence outcome for one relation
type ZoneEvaluation struct {
	RequestID   string           `json:"request_id"`
	CaretakerID string           `json:"caretaker_id"`
	Outcome     geofence.Outcome `json:"outcome"`
	Distance    float64          `json:"distance"`
	Breached    bool             `json:"breached"`
	AlertID     string           `json:"alert_id,omitempty"`
}

// LocationResult summarizes what a location report triggered
type LocationResult struct {
	Tracking    *entity.Tracking  `json:"tracking"`
	Evaluations []*ZoneEvaluation `json:"evaluations"`
}

// TrackingUsecase ingests positions and runs the geofence monitor
type TrackingUsecase interface {
	// ReportLocation stores the patient's position and evaluates every safe zone around it
	ReportLocation(ctx context.Context, patientID string, report *LocationReport) (*LocationResult, error)

	// GetLocation returns the patient's latest state to the patient or a connected caretaker
	GetLocation(ctx context.Context, viewerID, patientID string) (*entity.Tracking, error)

	// History returns the patient's trail since the given time, newest first
	History(ctx context.Context, viewerID, patientID string, since time.Time, limit int) ([]*entity.LocationPoint, error)

	// PruneHistory drops history older than the retention window
	PruneHistory(ctx context.Context, now time.Time) (int64, error)
}
