package entity

import (
	"time"

	"careconnect/internal/domain/geo"

	"github.com/google/uuid"
)

// TrackingStatus describes where a patient's latest location came from.
type TrackingStatus string

const (
	TrackingActive    TrackingStatus = "Active"
	TrackingSimulated TrackingStatus = "Simulated"
)

// Tracking is the latest known state of a patient.
type Tracking struct {
	PatientID   string         `json:"patient_id"`
	Email       string         `json:"email"`
	Name        string         `json:"name"`
	Location    geo.Point      `json:"location"`
	LastActive  time.Time      `json:"last_active"`
	Status      TrackingStatus `json:"status"`
	IsSimulated bool           `json:"is_simulated"`
}

// LocationPoint is one entry of a patient's location history.
type LocationPoint struct {
	ID         uuid.UUID `json:"id"`
	PatientID  string    `json:"patient_id"`
	Latitude   float64   `json:"lat"`
	Longitude  float64   `json:"lng"`
	Simulated  bool      `json:"simulated"`
	Source     string    `json:"source"`
	RecordedAt time.Time `json:"timestamp"`
}

// Point returns the history entry as a geo.Point.
func (p LocationPoint) Point() geo.Point {
	return geo.Point{Lat: p.Latitude, Lng: p.Longitude}
}
