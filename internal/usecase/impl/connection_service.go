package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"careconnect/config"
	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/geo"
	"careconnect/internal/domain/geofence"
	"careconnect/internal/domain/repository"
	"careconnect/internal/domain/service"
	"careconnect/internal/usecase"

	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type connectionService struct {
	userRepo       repository.UserRepository
	connectionRepo repository.ConnectionRepository
	trackingRepo   repository.TrackingRepository
	states         *geofence.StateTable
	qrCodeSvc      service.QRCodeService
	monitorCfg     config.MonitorConfig
	logger         *slog.Logger
}

// ConnectionServiceParams holds dependencies for ConnectionService, injected by Fx.
type ConnectionServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	ConnectionRepo repository.ConnectionRepository
	TrackingRepo   repository.TrackingRepository
	States         *geofence.StateTable
	QRCodeSvc      service.QRCodeService
	Config         *config.Config
	Logger         *slog.Logger
}

// NewConnectionService creates the connection use case.
func NewConnectionService(params ConnectionServiceParams) usecase.ConnectionUsecase {
	return &connectionService{
		userRepo:       params.UserRepo,
		connectionRepo: params.ConnectionRepo,
		trackingRepo:   params.TrackingRepo,
		states:         params.States,
		qrCodeSvc:      params.QRCodeSvc,
		monitorCfg:     params.Config.Monitor,
		logger:         params.Logger,
	}
}

func (s *connectionService) SendRequest(ctx context.Context, caretakerID, patientEmail string) (*entity.ConnectionRequest, error) {
	caretaker, err := loadUserWithRole(ctx, s.userRepo, caretakerID, entity.RoleCaretaker)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(patientEmail))
	if email == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "patient email is required")
	}
	if email == caretaker.Email {
		return nil, errors.WithStack(domainerrors.ErrSelfConnection)
	}

	patient, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "no patient registered with this email")
		}

		return nil, errors.Wrap(err, "failed to look up patient")
	}
	if !patient.IsPatient() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "the account is not a patient")
	}

	existing, err := s.connectionRepo.FindByCaretaker(ctx, caretakerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list caretaker requests")
	}
	for _, req := range existing {
		if req.PatientEmail == email && req.Status != entity.RequestRejected {
			return nil, errors.WithStack(domainerrors.ErrRequestAlreadyExists)
		}
	}

	now := time.Now().UTC()
	req := &entity.ConnectionRequest{
		CaretakerID:    caretaker.ID,
		CaretakerEmail: caretaker.Email,
		CaretakerName:  caretaker.Name,
		PatientEmail:   email,
		Status:         entity.RequestPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.connectionRepo.Create(ctx, req); err != nil {
		return nil, errors.Wrap(err, "failed to create connection request")
	}

	requestLogger(ctx, s.logger).Info("Connection request sent",
		slog.String("request_id", req.ID),
		slog.String("caretaker_id", caretakerID),
	)

	return req, nil
}

func (s *connectionService) Respond(ctx context.Context, patientID, requestID string, status entity.RequestStatus) (*entity.ConnectionRequest, error) {
	if status != entity.RequestAccepted && status != entity.RequestRejected {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "status must be accepted or rejected")
	}

	patient, err := loadUserWithRole(ctx, s.userRepo, patientID, entity.RolePatient)
	if err != nil {
		return nil, err
	}

	req, err := s.findRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.PatientEmail != patient.Email {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "request addressed to another patient")
	}
	if req.Status != entity.RequestPending {
		return nil, errors.WithStack(domainerrors.ErrRequestNotPending)
	}

	if err := s.connectionRepo.UpdateStatus(ctx, req.ID, status, patient.ID, patient.Name); err != nil {
		return nil, errors.Wrap(err, "failed to answer connection request")
	}

	req.Status = status
	req.PatientID = patient.ID
	req.PatientName = patient.Name
	req.UpdatedAt = time.Now().UTC()

	return req, nil
}

func (s *connectionService) ListForPatient(ctx context.Context, patientID string) ([]*entity.ConnectionRequest, error) {
	patient, err := loadUserWithRole(ctx, s.userRepo, patientID, entity.RolePatient)
	if err != nil {
		return nil, err
	}

	return s.connectionRepo.FindByPatientEmail(ctx, patient.Email)
}

func (s *connectionService) ListForCaretaker(ctx context.Context, caretakerID string) ([]*entity.ConnectionRequest, error) {
	return s.connectionRepo.FindByCaretaker(ctx, caretakerID)
}

// SetSafeZone validates the radius against the configured bounds. Without an explicit center
// the zone is placed on the patient's last known location, or on the fallback location.
func (s *connectionService) SetSafeZone(ctx context.Context, caretakerID, requestID string, input *usecase.SafeZoneInput) (*entity.SafeZone, error) {
	req, err := s.ownedAcceptedRequest(ctx, caretakerID, requestID)
	if err != nil {
		return nil, err
	}

	radius := input.RadiusMeters
	if radius == 0 {
		radius = s.monitorCfg.DefaultRadius
	}
	if math.IsNaN(radius) || radius < s.monitorCfg.MinRadius || radius > s.monitorCfg.MaxRadius {
		return nil, errors.WithStack(domainerrors.ErrInvalidSafeZone.WithDetails(
			"radius must be between the configured minimum and maximum"))
	}

	center, err := s.zoneCenter(ctx, req.PatientID, input)
	if err != nil {
		return nil, err
	}

	zone := &entity.SafeZone{
		Latitude:     center.Lat,
		Longitude:    center.Lng,
		RadiusMeters: radius,
		Active:       true,
		UpdatedBy:    caretakerID,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := s.connectionRepo.UpdateSafeZone(ctx, req.ID, zone); err != nil {
		return nil, errors.Wrap(err, "failed to save safe zone")
	}
	s.states.Reset(req.ID)

	requestLogger(ctx, s.logger).Info("Safe zone updated",
		slog.String("request_id", req.ID),
		slog.Float64("radius", radius),
	)

	return zone, nil
}

func (s *connectionService) zoneCenter(ctx context.Context, patientID string, input *usecase.SafeZoneInput) (geo.Point, error) {
	if input.Latitude != nil && input.Longitude != nil {
		center := geo.Point{Lat: *input.Latitude, Lng: *input.Longitude}
		if err := center.Validate(); err != nil {
			return geo.Point{}, errors.Wrap(domainerrors.ErrInvalidCoordinate, err.Error())
		}

		return center, nil
	}

	tracking, err := s.trackingRepo.Find(ctx, patientID)
	switch {
	case err == nil && tracking.Location.Validate() == nil:
		return tracking.Location, nil
	case err != nil && !errors.Is(err, repository.ErrTrackingNotFound):
		return geo.Point{}, errors.Wrap(err, "failed to load patient location")
	}

	fallback := s.monitorCfg.SimulatedLocation

	return geo.Point{Lat: fallback.Lat, Lng: fallback.Lng}, nil
}

func (s *connectionService) ClearSafeZone(ctx context.Context, caretakerID, requestID string) error {
	req, err := s.ownedAcceptedRequest(ctx, caretakerID, requestID)
	if err != nil {
		return err
	}
	if req.SafeZone == nil {
		return errors.WithStack(domainerrors.ErrNoSafeZone)
	}

	zone := *req.SafeZone
	zone.Active = false
	zone.UpdatedBy = caretakerID
	zone.UpdatedAt = time.Now().UTC()
	if err := s.connectionRepo.UpdateSafeZone(ctx, req.ID, &zone); err != nil {
		return errors.Wrap(err, "failed to deactivate safe zone")
	}
	s.states.Reset(req.ID)

	return nil
}

func (s *connectionService) SafeZoneGeoJSON(ctx context.Context, userID, requestID string) (*geojson.Feature, error) {
	req, err := s.findRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if userID != req.CaretakerID && userID != req.PatientID {
		return nil, errors.WithStack(domainerrors.ErrNotConnected)
	}
	if req.SafeZone == nil {
		return nil, errors.WithStack(domainerrors.ErrNoSafeZone)
	}

	return geo.CircleFeature(req.SafeZone.Center(), req.SafeZone.RadiusMeters, map[string]any{
		"request_id":   req.ID,
		"patient_id":   req.PatientID,
		"patient_name": req.PatientName,
		"active":       req.SafeZone.Active,
	}), nil
}

func (s *connectionService) InviteQRCode(ctx context.Context, caretakerID string) ([]byte, error) {
	if _, err := loadUserWithRole(ctx, s.userRepo, caretakerID, entity.RoleCaretaker); err != nil {
		return nil, err
	}

	png, err := s.qrCodeSvc.GenerateInviteQR(caretakerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invitation QR code")
	}

	return png, nil
}

func (s *connectionService) ConnectedCaretakers(ctx context.Context, patientID string) ([]entity.Caretaker, error) {
	relations, err := caretakersOf(ctx, s.connectionRepo, patientID)
	if err != nil {
		return nil, err
	}

	caretakers := make([]entity.Caretaker, 0, len(relations))
	for _, req := range relations {
		caretakers = append(caretakers, entity.Caretaker{
			ID:        req.CaretakerID,
			Name:      req.CaretakerName,
			RequestID: req.ID,
		})
	}

	return caretakers, nil
}

func (s *connectionService) ConnectedPatients(ctx context.Context, caretakerID string) ([]*entity.ConnectionRequest, error) {
	requests, err := s.connectionRepo.FindByCaretaker(ctx, caretakerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list caretaker requests")
	}

	accepted := make([]*entity.ConnectionRequest, 0, len(requests))
	for _, req := range requests {
		if req.IsAccepted() {
			accepted = append(accepted, req)
		}
	}

	return accepted, nil
}

func (s *connectionService) Relation(ctx context.Context, userA, userB string) (*entity.ConnectionRequest, error) {
	req, err := acceptedRelation(ctx, s.connectionRepo, userA, userB)
	if err == nil {
		return req, nil
	}
	if !errors.Is(err, domainerrors.ErrNotConnected) {
		return nil, err
	}

	return acceptedRelation(ctx, s.connectionRepo, userB, userA)
}

func (s *connectionService) findRequest(ctx context.Context, requestID string) (*entity.ConnectionRequest, error) {
	req, err := s.connectionRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, errors.WithStack(domainerrors.ErrRequestNotFound)
		}

		return nil, errors.Wrap(err, "failed to load connection request")
	}

	return req, nil
}

func (s *connectionService) ownedAcceptedRequest(ctx context.Context, caretakerID, requestID string) (*entity.ConnectionRequest, error) {
	req, err := s.findRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.CaretakerID != caretakerID || !req.IsAccepted() {
		return nil, errors.WithStack(domainerrors.ErrNotConnected)
	}

	return req, nil
}
