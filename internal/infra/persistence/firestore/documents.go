// Package firestore stores the document-shaped data (profiles, connections, tracking,
// alerts, medicines and conversations) in Cloud Firestore.
package firestore

import (
	"time"

	"careconnect/internal/domain/entity"
	"careconnect/internal/domain/geo"
)

// Collection names. Field names follow the web and Android clients that read the same
// documents directly.
const (
	collectionUsers       = "users"
	collectionRequests    = "requests"
	collectionTracking    = "tracking"
	collectionAlerts      = "alerts"
	collectionMedicines   = "medicines"
	collectionChats       = "chats"
	collectionHealthChats = "health_chats"
	collectionMessages    = "messages"
)

type userDoc struct {
	Email     string    `firestore:"email"`
	Name      string    `firestore:"name"`
	Role      string    `firestore:"role"`
	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

func toUserDomain(id string, d *userDoc) *entity.User {
	return &entity.User{
		ID:        id,
		Email:     d.Email,
		Name:      d.Name,
		Role:      entity.Role(d.Role),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func fromUserDomain(u *entity.User) *userDoc {
	return &userDoc{
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type latLngDoc struct {
	Lat float64 `firestore:"lat"`
	Lng float64 `firestore:"lng"`
}

type geofenceDoc struct {
	Lat       float64   `firestore:"lat"`
	Lng       float64   `firestore:"lng"`
	Radius    float64   `firestore:"radius"`
	Active    bool      `firestore:"active"`
	UpdatedBy string    `firestore:"updatedBy,omitempty"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

type requestDoc struct {
	From        string       `firestore:"from"`
	FromEmail   string       `firestore:"fromEmail"`
	FromName    string       `firestore:"fromName"`
	To          string       `firestore:"to"`
	PatientID   string       `firestore:"patientId,omitempty"`
	PatientName string       `firestore:"patientName,omitempty"`
	Status      string       `firestore:"status"`
	Geofence    *geofenceDoc `firestore:"geofence,omitempty"`
	CreatedAt   time.Time    `firestore:"createdAt"`
	UpdatedAt   time.Time    `firestore:"updatedAt"`
}

func toRequestDomain(id string, d *requestDoc) *entity.ConnectionRequest {
	req := &entity.ConnectionRequest{
		ID:             id,
		CaretakerID:    d.From,
		CaretakerEmail: d.FromEmail,
		CaretakerName:  d.FromName,
		PatientEmail:   d.To,
		PatientID:      d.PatientID,
		PatientName:    d.PatientName,
		Status:         entity.RequestStatus(d.Status),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
	if d.Geofence != nil {
		req.SafeZone = toSafeZoneDomain(d.Geofence)
	}

	return req
}

func fromRequestDomain(r *entity.ConnectionRequest) *requestDoc {
	return &requestDoc{
		From:        r.CaretakerID,
		FromEmail:   r.CaretakerEmail,
		FromName:    r.CaretakerName,
		To:          r.PatientEmail,
		PatientID:   r.PatientID,
		PatientName: r.PatientName,
		Status:      string(r.Status),
		Geofence:    fromSafeZoneDomain(r.SafeZone),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toSafeZoneDomain(d *geofenceDoc) *entity.SafeZone {
	return &entity.SafeZone{
		Latitude:     d.Lat,
		Longitude:    d.Lng,
		RadiusMeters: d.Radius,
		Active:       d.Active,
		UpdatedBy:    d.UpdatedBy,
		UpdatedAt:    d.UpdatedAt,
	}
}

func fromSafeZoneDomain(z *entity.SafeZone) *geofenceDoc {
	if z == nil {
		return nil
	}

	return &geofenceDoc{
		Lat:       z.Latitude,
		Lng:       z.Longitude,
		Radius:    z.RadiusMeters,
		Active:    z.Active,
		UpdatedBy: z.UpdatedBy,
		UpdatedAt: z.UpdatedAt,
	}
}

type trackingDoc struct {
	Email       string    `firestore:"email"`
	Name        string    `firestore:"name"`
	Location    latLngDoc `firestore:"location"`
	LastActive  time.Time `firestore:"lastActive"`
	Status      string    `firestore:"status"`
	IsSimulated bool      `firestore:"isSimulated"`
}

func toTrackingDomain(patientID string, d *trackingDoc) *entity.Tracking {
	return &entity.Tracking{
		PatientID:   patientID,
		Email:       d.Email,
		Name:        d.Name,
		Location:    geo.Point{Lat: d.Location.Lat, Lng: d.Location.Lng},
		LastActive:  d.LastActive,
		Status:      entity.TrackingStatus(d.Status),
		IsSimulated: d.IsSimulated,
	}
}

func fromTrackingDomain(t *entity.Tracking) *trackingDoc {
	return &trackingDoc{
		Email:       t.Email,
		Name:        t.Name,
		Location:    latLngDoc{Lat: t.Location.Lat, Lng: t.Location.Lng},
		LastActive:  t.LastActive,
		Status:      string(t.Status),
		IsSimulated: t.IsSimulated,
	}
}

type alertDoc struct {
	CaretakerID string     `firestore:"caretakerId"`
	PatientID   string     `firestore:"patientId"`
	PatientName string     `firestore:"patientName"`
	Type        string     `firestore:"type"`
	Message     string     `firestore:"message"`
	Coordinates *latLngDoc `firestore:"coordinates,omitempty"`
	Distance    float64    `firestore:"distance,omitempty"`
	RiskLevel   string     `firestore:"riskLevel,omitempty"`
	ImageKey    string     `firestore:"imageKey,omitempty"`
	Read        bool       `firestore:"read"`
	Timestamp   time.Time  `firestore:"timestamp"`
}

func toAlertDomain(id string, d *alertDoc) *entity.Alert {
	a := &entity.Alert{
		ID:          id,
		CaretakerID: d.CaretakerID,
		PatientID:   d.PatientID,
		PatientName: d.PatientName,
		Type:        entity.AlertType(d.Type),
		Message:     d.Message,
		Distance:    d.Distance,
		RiskLevel:   entity.RiskLevel(d.RiskLevel),
		ImageKey:    d.ImageKey,
		Read:        d.Read,
		CreatedAt:   d.Timestamp,
	}
	if d.Coordinates != nil {
		a.Coordinates = &geo.Point{Lat: d.Coordinates.Lat, Lng: d.Coordinates.Lng}
	}

	return a
}

func fromAlertDomain(a *entity.Alert) *alertDoc {
	d := &alertDoc{
		CaretakerID: a.CaretakerID,
		PatientID:   a.PatientID,
		PatientName: a.PatientName,
		Type:        string(a.Type),
		Message:     a.Message,
		Distance:    a.Distance,
		RiskLevel:   string(a.RiskLevel),
		ImageKey:    a.ImageKey,
		Read:        a.Read,
		Timestamp:   a.CreatedAt,
	}
	if a.Coordinates != nil {
		d.Coordinates = &latLngDoc{Lat: a.Coordinates.Lat, Lng: a.Coordinates.Lng}
	}

	return d
}

type medicineDoc struct {
	PatientID      string          `firestore:"patientId"`
	PatientName    string          `firestore:"patientName"`
	CaretakerID    string          `firestore:"caretakerId,omitempty"`
	CreatedBy      string          `firestore:"createdBy"`
	Name           string          `firestore:"name"`
	Dosage         string          `firestore:"dosage"`
	Times          []string        `firestore:"times"`
	Instructions   string          `firestore:"instructions"`
	Active         bool            `firestore:"active"`
	Source         string          `firestore:"source"`
	TakenDoses     map[string]bool `firestore:"takenDoses,omitempty"`
	LastModifiedBy string          `firestore:"lastModifiedBy,omitempty"`
	CreatedAt      time.Time       `firestore:"createdAt"`
	UpdatedAt      time.Time       `firestore:"updatedAt"`
}

func toMedicineDomain(id string, d *medicineDoc) *entity.Medicine {
	return &entity.Medicine{
		ID:             id,
		PatientID:      d.PatientID,
		PatientName:    d.PatientName,
		CaretakerID:    d.CaretakerID,
		CreatedBy:      d.CreatedBy,
		Name:           d.Name,
		Dosage:         d.Dosage,
		Times:          d.Times,
		Instructions:   d.Instructions,
		Active:         d.Active,
		Source:         entity.MedicineSource(d.Source),
		TakenDoses:     d.TakenDoses,
		LastModifiedBy: d.LastModifiedBy,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func fromMedicineDomain(m *entity.Medicine) *medicineDoc {
	return &medicineDoc{
		PatientID:      m.PatientID,
		PatientName:    m.PatientName,
		CaretakerID:    m.CaretakerID,
		CreatedBy:      m.CreatedBy,
		Name:           m.Name,
		Dosage:         m.Dosage,
		Times:          m.Times,
		Instructions:   m.Instructions,
		Active:         m.Active,
		Source:         string(m.Source),
		TakenDoses:     m.TakenDoses,
		LastModifiedBy: m.LastModifiedBy,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

type chatMessageDoc struct {
	SenderID    string    `firestore:"senderId"`
	Type        string    `firestore:"type"`
	Text        string    `firestore:"text,omitempty"`
	MediaURL    string    `firestore:"mediaUrl,omitempty"`
	IsAutomated bool      `firestore:"isAutomated"`
	CreatedAt   time.Time `firestore:"createdAt"`
}

func toChatMessageDomain(chatID, id string, d *chatMessageDoc) *entity.ChatMessage {
	return &entity.ChatMessage{
		ID:          id,
		ChatID:      chatID,
		SenderID:    d.SenderID,
		Type:        entity.MessageType(d.Type),
		Text:        d.Text,
		MediaURL:    d.MediaURL,
		IsAutomated: d.IsAutomated,
		CreatedAt:   d.CreatedAt,
	}
}

func fromChatMessageDomain(m *entity.ChatMessage) *chatMessageDoc {
	return &chatMessageDoc{
		SenderID:    m.SenderID,
		Type:        string(m.Type),
		Text:        m.Text,
		MediaURL:    m.MediaURL,
		IsAutomated: m.IsAutomated,
		CreatedAt:   m.CreatedAt,
	}
}

type sessionDoc struct {
	UserID       string    `firestore:"userId"`
	Role         string    `firestore:"role"`
	Title        string    `firestore:"title"`
	CreatedAt    time.Time `firestore:"createdAt"`
	LastModified time.Time `firestore:"lastModified"`
}

type healthMessageDoc struct {
	Role      string    `firestore:"role"`
	Type      string    `firestore:"type"`
	Content   string    `firestore:"content"`
	CreatedAt time.Time `firestore:"createdAt"`
}

func toSessionDomain(id string, d *sessionDoc) *entity.HealthChatSession {
	return &entity.HealthChatSession{
		ID:           id,
		UserID:       d.UserID,
		Role:         entity.Role(d.Role),
		Title:        d.Title,
		CreatedAt:    d.CreatedAt,
		LastModified: d.LastModified,
	}
}

func toHealthMessageDomain(sessionID, id string, d *healthMessageDoc) *entity.HealthChatMessage {
	return &entity.HealthChatMessage{
		ID:        id,
		SessionID: sessionID,
		Role:      entity.AssistantRole(d.Role),
		Type:      entity.MessageType(d.Type),
		Content:   d.Content,
		CreatedAt: d.CreatedAt,
	}
}
