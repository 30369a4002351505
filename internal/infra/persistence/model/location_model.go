package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationPointModel is the GORM-specific struct for the 'location_history' table.
type LocationPointModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PatientID  string    `gorm:"type:varchar(128);not null;index:idx_location_history_patient_time,priority:1"`
	Latitude   float64   `gorm:"type:decimal(10,8);not null"`
	Longitude  float64   `gorm:"type:decimal(11,8);not null"`
	Simulated  bool      `gorm:"not null;default:false"`
	Source     string    `gorm:"type:varchar(16);not null"`
	RecordedAt time.Time `gorm:"not null;index:idx_location_history_patient_time,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (LocationPointModel) TableName() string {
	return "location_history"
}
