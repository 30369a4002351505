package firestore

import (
	"testing"
	"time"

	"careconnect/internal/domain/entity"
	"careconnect/internal/domain/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestDocRoundTripKeepsGeofence(t *testing.T) {
	now := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	req := &entity.ConnectionRequest{
		CaretakerID:    "caretaker-1",
		CaretakerEmail: "carol@example.com",
		CaretakerName:  "Carol",
		PatientEmail:   "pat@example.com",
		Status:         entity.RequestAccepted,
		SafeZone: &entity.SafeZone{
			Latitude:     12.9716,
			Longitude:    77.5946,
			RadiusMeters: 500,
			Active:       true,
			UpdatedAt:    now,
		},
		CreatedAt: now,
	}

	doc := fromRequestDomain(req)
	assert.Equal(t, "caretaker-1", doc.From)
	assert.Equal(t, "pat@example.com", doc.To)
	require.NotNil(t, doc.Geofence)
	assert.InDelta(t, 500, doc.Geofence.Radius, 0)

	back := toRequestDomain("req-1", doc)
	assert.Equal(t, "req-1", back.ID)
	assert.Equal(t, req.SafeZone, back.SafeZone)
	assert.Equal(t, entity.RequestAccepted, back.Status)
}

func TestRequestDocWithoutGeofence(t *testing.T) {
	doc := fromRequestDomain(&entity.ConnectionRequest{Status: entity.RequestPending})

	assert.Nil(t, doc.Geofence)
	assert.Nil(t, toRequestDomain("r", doc).SafeZone)
}

func TestAlertDocCoordinates(t *testing.T) {
	alert := &entity.Alert{
		CaretakerID: "c",
		Type:        entity.AlertGeofenceBreach,
		Message:     "Patient exited Safe Zone! Distance: 650m",
		Coordinates: &geo.Point{Lat: 12.97, Lng: 77.60},
		Distance:    650,
	}

	doc := fromAlertDomain(alert)
	require.NotNil(t, doc.Coordinates)
	assert.Equal(t, "GEOFENCE_BREACH", doc.Type)

	back := toAlertDomain("a-1", doc)
	assert.Equal(t, alert.Coordinates, back.Coordinates)
	assert.Equal(t, "a-1", back.ID)

	noCoords := toAlertDomain("a-2", fromAlertDomain(&entity.Alert{Type: entity.AlertAutomatedSnapshot}))
	assert.Nil(t, noCoords.Coordinates)
}

func TestMedicineDocKeepsTakenDoses(t *testing.T) {
	med := &entity.Medicine{
		PatientID:  "p",
		Name:       "Metformin",
		Times:      []string{"08:00", "20:00"},
		Active:     true,
		Source:     entity.MedicineSourceAICommand,
		TakenDoses: map[string]bool{"2026-03-14_08:00": true},
	}

	back := toMedicineDomain("m-1", fromMedicineDomain(med))

	assert.Equal(t, "m-1", back.ID)
	assert.Equal(t, med.Times, back.Times)
	assert.True(t, back.TakenDoses["2026-03-14_08:00"])
	assert.Equal(t, entity.MedicineSourceAICommand, back.Source)
}

func TestTrackingDocLocation(t *testing.T) {
	tr := &entity.Tracking{PatientID: "p", Location: geo.Point{Lat: 1.5, Lng: 2.5}, Status: entity.TrackingSimulated, IsSimulated: true}

	back := toTrackingDomain("p", fromTrackingDomain(tr))

	assert.Equal(t, tr, back)
}
