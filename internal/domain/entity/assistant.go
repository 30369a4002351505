package entity

import "time"

// AssistantRole is the author of an assistant conversation turn.
type AssistantRole string

const (
	AssistantRoleUser  AssistantRole = "user"
	AssistantRoleModel AssistantRole = "model"
)

// HealthChatSession is a conversation with the health assistant.
type HealthChatSession struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Role         Role      `json:"role"`
	Title        string    `json:"title"`
	CreatedAt    time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}

// HealthChatMessage is one turn of an assistant conversation.
type HealthChatMessage struct {
	ID        string        `json:"id"`
	SessionID string        `json:"session_id"`
	Role      AssistantRole `json:"role"`
	Type      MessageType   `json:"type"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"created_at"`
}

// RiskLevel is the outcome of an activity analysis.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// IsValid checks if the level is a known value.
func (l RiskLevel) IsValid() bool {
	switch l {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	default:
		return false
	}
}

// RiskAssessment is the analyzer's verdict on recent activity.
type RiskAssessment struct {
	RiskLevel RiskLevel `json:"riskLevel"`
	Alert     *string   `json:"alert"`
}

// ActivitySample summarizes a patient's recent activity for analysis.
type ActivitySample struct {
	PatientID       string          `json:"patientId"`
	LastActive      time.Time       `json:"lastActive"`
	Status          TrackingStatus  `json:"status"`
	Locations       []LocationPoint `json:"locations"`
	MissedDoses     int             `json:"missedDoses"`
	DistanceMeters  float64         `json:"distanceMeters"`
	ObservedFrom    time.Time       `json:"observedFrom"`
	ObservedUntil   time.Time       `json:"observedUntil"`
	OutsideSafeZone bool            `json:"outsideSafeZone"`
}
