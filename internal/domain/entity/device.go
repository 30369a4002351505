// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice represents a user's device registered for push notifications.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`         // Device record id.
	UserID    string    `json:"user_id"`    // Owner uid.
	FCMToken  string    `json:"fcm_token"`  // Firebase Cloud Messaging registration token.
	DeviceID  string    `json:"device_id"`  // Client-side device identifier.
	Platform  string    `json:"platform"`   // web, ios or android.
	IsActive  bool      `json:"is_active"`  // Cleared when FCM reports the token as invalid.
	CreatedAt time.Time `json:"created_at"` // Registration time.
	UpdatedAt time.Time `json:"updated_at"` // Last modification.
}
