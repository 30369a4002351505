package usecase

import (
	"context"
	"time"

	"careconnect/internal/domain/entity"
)

// SnapshotSummary counts what one snapshot run did
type SnapshotSummary struct {
	Relations  int `json:"relations"`
	Snapshots  int `json:"snapshots"`
	RiskAlerts int `json:"risk_alerts"`
	Failures   int `json:"failures"`
}

// SnapshotUsecase produces the scheduled activity snapshots
type SnapshotUsecase interface {
	// Capture raises a snapshot alert for every accepted relation and a risk alert when the
	// patient's recent activity looks abnormal
	Capture(ctx context.Context, now time.Time) (*SnapshotSummary, error)

	// Assess grades the patient's recent activity
	Assess(ctx context.Context, viewerID, patientID string, now time.Time) (*entity.RiskAssessment, error)
}
