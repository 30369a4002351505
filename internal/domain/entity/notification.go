package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind groups push notifications by what triggered them.
type NotificationKind string

const (
	NotificationGeofenceBreach  NotificationKind = "geofence_breach"
	NotificationReminderAdvance NotificationKind = "reminder_advance"
	NotificationReminderDue     NotificationKind = "reminder_due"
	NotificationSnapshot        NotificationKind = "snapshot"
	NotificationRisk            NotificationKind = "risk"
	NotificationChat            NotificationKind = "chat"
)

// Urgent reports whether the kind needs the patient's or caretaker's attention right away.
func (k NotificationKind) Urgent() bool {
	switch k {
	case NotificationGeofenceBreach, NotificationReminderDue, NotificationRisk:
		return true
	default:
		return false
	}
}

// PushMessage is the content of a push notification.
type PushMessage struct {
	Kind  NotificationKind  `json:"kind"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// NotificationLog records one delivery attempt to one device.
type NotificationLog struct {
	ID           uuid.UUID        `json:"id"`
	UserID       string           `json:"user_id"`
	DeviceID     uuid.UUID        `json:"device_id"`
	Kind         NotificationKind `json:"kind"`
	ReferenceID  string           `json:"reference_id"` // alert id or dose key
	Status       string           `json:"status"`       // sent or failed
	FCMMessageID string           `json:"fcm_message_id"`
	ErrorMessage string           `json:"error_message"`
	SentAt       time.Time        `json:"sent_at"`
}

// DeliverySummary counts the outcome of a fan-out.
type DeliverySummary struct {
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Devices int `json:"devices"`
}
