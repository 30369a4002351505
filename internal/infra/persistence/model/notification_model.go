package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationLogModel is the GORM-specific struct for the 'notification_logs' table.
// One row per device a push was attempted on.
type NotificationLogModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       string    `gorm:"type:varchar(128);not null;index"`
	DeviceID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind         string    `gorm:"type:varchar(32);not null"`
	ReferenceID  string    `gorm:"type:varchar(128);not null;index"`
	Status       string    `gorm:"type:text;not null;default:'sent'"`
	FCMMessageID string    `gorm:"type:text"`
	ErrorMessage string    `gorm:"type:text"`
	SentAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationLogModel) TableName() string {
	return "notification_logs"
}
