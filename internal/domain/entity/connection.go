package entity

import (
	"time"

	"careconnect/internal/domain/geo"
	"careconnect/internal/domain/geofence"
)

// RequestStatus is the lifecycle state of a caretaker's connection request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

// IsValid checks if the status is a known value.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestPending, RequestAccepted, RequestRejected:
		return true
	default:
		return false
	}
}

// ConnectionRequest links a caretaker to a patient. Once accepted it is the relation that
// owns the patient's safe zone.
type ConnectionRequest struct {
	ID             string        `json:"id"`
	CaretakerID    string        `json:"caretaker_id"`
	CaretakerEmail string        `json:"caretaker_email"`
	CaretakerName  string        `json:"caretaker_name"`
	PatientEmail   string        `json:"patient_email"`
	PatientID      string        `json:"patient_id,omitempty"`
	PatientName    string        `json:"patient_name,omitempty"`
	Status         RequestStatus `json:"status"`
	SafeZone       *SafeZone     `json:"safe_zone,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// IsAccepted reports whether the patient accepted the request.
func (r *ConnectionRequest) IsAccepted() bool {
	return r != nil && r.Status == RequestAccepted
}

// Zone converts the stored safe zone into the evaluator's representation, or nil.
func (r *ConnectionRequest) Zone() *geofence.Zone {
	if r == nil || r.SafeZone == nil {
		return nil
	}

	return &geofence.Zone{
		RelationID:   r.ID,
		Center:       geo.Point{Lat: r.SafeZone.Latitude, Lng: r.SafeZone.Longitude},
		RadiusMeters: r.SafeZone.RadiusMeters,
		Active:       r.SafeZone.Active,
	}
}

// SafeZone is the circular geofence a caretaker sets for a connected patient.
type SafeZone struct {
	Latitude     float64   `json:"lat"`
	Longitude    float64   `json:"lng"`
	RadiusMeters float64   `json:"radius"`
	Active       bool      `json:"active"`
	UpdatedBy    string    `json:"updated_by,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Center returns the zone center as a geo.Point.
func (z *SafeZone) Center() geo.Point {
	return geo.Point{Lat: z.Latitude, Lng: z.Longitude}
}

// Caretaker is a connected caretaker as seen from the patient.
type Caretaker struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	RequestID string `json:"request_id"`
}
