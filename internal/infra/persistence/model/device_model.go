package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDeviceModel is a push registration. UserID is the Firebase uid of the owner; profiles
// themselves live in Firestore. Breach and reminder fan-out reads by (user_id, is_active);
// registration upserts on (user_id, device_id).
type UserDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    string    `gorm:"type:varchar(128);not null;index:idx_user_devices_fanout,priority:1;uniqueIndex:idx_user_devices_owner,priority:1,where:deleted_at IS NULL"`
	FCMToken  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_devices_fcm_token,where:deleted_at IS NULL"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_devices_owner,priority:2,where:deleted_at IS NULL"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	IsActive  bool      `gorm:"not null;default:true;index:idx_user_devices_fanout,priority:2"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}
