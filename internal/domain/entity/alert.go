package entity

import (
	"time"

	"careconnect/internal/domain/geo"
)

// AlertType classifies caretaker alerts.
type AlertType string

const (
	AlertGeofenceBreach    AlertType = "GEOFENCE_BREACH"
	AlertAutomatedSnapshot AlertType = "AUTOMATED_SNAPSHOT"
	AlertRiskAnalysis      AlertType = "RISK_ANALYSIS"
)

// Alert is a notification addressed to one caretaker about one patient.
type Alert struct {
	ID          string     `json:"id"`
	CaretakerID string     `json:"caretaker_id"`
	PatientID   string     `json:"patient_id"`
	PatientName string     `json:"patient_name"`
	Type        AlertType  `json:"type"`
	Message     string     `json:"message"`
	Coordinates *geo.Point `json:"coordinates,omitempty"`
	Distance    float64    `json:"distance,omitempty"`
	RiskLevel   RiskLevel  `json:"risk_level,omitempty"`
	ImageKey    string     `json:"image_key,omitempty"`
	Read        bool       `json:"read"`
	CreatedAt   time.Time  `json:"timestamp"`
}
