package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"

	"careconnect/config"
	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/geo"
	"careconnect/internal/domain/geofence"
	"careconnect/internal/domain/repository"
	"careconnect/internal/domain/service"
	"careconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultHistoryLimit = 200
	maxHistoryLimit     = 1000

	snapshotContentType = "application/geo+json"
)

type trackingService struct {
	userRepo       repository.UserRepository
	connectionRepo repository.ConnectionRepository
	trackingRepo   repository.TrackingRepository
	historyRepo    repository.LocationHistoryRepository
	alertRepo      repository.AlertRepository
	monitor        *geofence.Monitor
	snapshots      service.SnapshotStore
	realtime       service.RealtimePublisher
	notifier       usecase.NotificationUsecase
	metrics        service.MonitorMetrics
	retention      time.Duration
	logger         *slog.Logger
}

// TrackingServiceParams holds dependencies for TrackingService, injected by Fx.
type TrackingServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	ConnectionRepo repository.ConnectionRepository
	TrackingRepo   repository.TrackingRepository
	HistoryRepo    repository.LocationHistoryRepository
	AlertRepo      repository.AlertRepository
	Monitor        *geofence.Monitor
	Snapshots      service.SnapshotStore
	Realtime       service.RealtimePublisher
	Notifier       usecase.NotificationUsecase
	Metrics        service.MonitorMetrics
	Config         *config.Config
	Logger         *slog.Logger
}

// NewTrackingService creates the tracking use case.
func NewTrackingService(params TrackingServiceParams) usecase.TrackingUsecase {
	return &trackingService{
		userRepo:       params.UserRepo,
		connectionRepo: params.ConnectionRepo,
		trackingRepo:   params.TrackingRepo,
		historyRepo:    params.HistoryRepo,
		alertRepo:      params.AlertRepo,
		monitor:        params.Monitor,
		snapshots:      params.Snapshots,
		realtime:       params.Realtime,
		notifier:       params.Notifier,
		metrics:        params.Metrics,
		retention:      params.Config.Monitor.HistoryRetention,
		logger:         params.Logger,
	}
}

// ReportLocation stores the position first and evaluates the zones afterwards, so a failing
// relation never loses the patient's location.
func (s *trackingService) ReportLocation(ctx context.Context, patientID string, report *usecase.LocationReport) (*usecase.LocationResult, error) {
	logger := requestLogger(ctx, s.logger)

	point := geo.Point{Lat: report.Latitude, Lng: report.Longitude}
	if err := point.Validate(); err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidCoordinate, err.Error())
	}

	patient, err := loadUserWithRole(ctx, s.userRepo, patientID, entity.RolePatient)
	if err != nil {
		return nil, err
	}

	observedAt := report.ObservedAt
	if observedAt.IsZero() {
		observedAt = time.Now().UTC()
	}

	status := entity.TrackingActive
	if report.Simulated {
		status = entity.TrackingSimulated
	}

	tracking := &entity.Tracking{
		PatientID:   patient.ID,
		Email:       patient.Email,
		Name:        patient.Name,
		Location:    point,
		LastActive:  observedAt,
		Status:      status,
		IsSimulated: report.Simulated,
	}
	if err := s.trackingRepo.Upsert(ctx, tracking); err != nil {
		return nil, errors.Wrap(err, "failed to save tracking")
	}
	s.metrics.LocationReported(report.Simulated)

	if err := s.historyRepo.Append(ctx, &entity.LocationPoint{
		ID:         uuid.New(),
		PatientID:  patient.ID,
		Latitude:   point.Lat,
		Longitude:  point.Lng,
		Simulated:  report.Simulated,
		Source:     report.Source,
		RecordedAt: observedAt,
	}); err != nil {
		logger.Warn("Failed to append location history",
			slog.String("patient_id", patient.ID),
			slog.Any("error", err),
		)
	}

	relations, err := caretakersOf(ctx, s.connectionRepo, patient.ID)
	if err != nil {
		return nil, err
	}

	s.broadcastLocation(ctx, tracking, relations)

	pos := geo.Position{Point: point, ObservedAt: observedAt}
	evaluations := make([]*usecase.ZoneEvaluation, 0, len(relations))
	for _, relation := range relations {
		evaluation, err := s.evaluate(ctx, patient, relation, pos)
		if err != nil {
			logger.Error("Geofence evaluation failed",
				slog.String("request_id", relation.ID),
				slog.Any("error", err),
			)

			continue
		}
		evaluations = append(evaluations, evaluation)
	}

	return &usecase.LocationResult{
		Tracking:    tracking,
		Evaluations: evaluations,
	}, nil
}

func (s *trackingService) evaluate(ctx context.Context, patient *entity.User, relation *entity.ConnectionRequest, pos geo.Position) (*usecase.ZoneEvaluation, error) {
	result, err := s.monitor.Observe(relation.ID, pos, relation.Zone())
	if err != nil {
		return nil, errors.Wrap(err, "failed to evaluate safe zone")
	}
	s.metrics.GeofenceEvaluated(string(result.Outcome))

	evaluation := &usecase.ZoneEvaluation{
		RequestID:   relation.ID,
		CaretakerID: relation.CaretakerID,
		Outcome:     result.Outcome,
		Distance:    result.Distance,
		Breached:    result.Breached,
	}
	if !result.Breached {
		return evaluation, nil
	}

	s.metrics.BreachDetected()
	alert, err := s.raiseBreach(ctx, patient, relation, result.Event)
	if err != nil {
		return nil, err
	}
	evaluation.AlertID = alert.ID

	return evaluation, nil
}

func (s *trackingService) raiseBreach(ctx context.Context, patient *entity.User, relation *entity.ConnectionRequest, event *geofence.BreachEvent) (*entity.Alert, error) {
	logger := requestLogger(ctx, s.logger)

	position := event.Position
	alert := &entity.Alert{
		CaretakerID: relation.CaretakerID,
		PatientID:   patient.ID,
		PatientName: patient.Name,
		Type:        entity.AlertGeofenceBreach,
		Message:     fmt.Sprintf("Patient exited Safe Zone! Distance: %dm", int(math.Round(event.Distance))),
		Coordinates: &position,
		Distance:    event.Distance,
		CreatedAt:   event.Timestamp.UTC(),
	}

	key := snapshotKey(relation.ID, event.ObservedAt)
	if data, err := breachSnapshot(event, patient); err != nil {
		logger.Warn("Failed to render breach snapshot", slog.Any("error", err))
	} else if err := s.snapshots.Put(ctx, key, data, snapshotContentType); err != nil {
		logger.Warn("Failed to store breach snapshot", slog.String("key", key), slog.Any("error", err))
	} else {
		alert.ImageKey = key
	}

	if err := s.alertRepo.Create(ctx, alert); err != nil {
		return nil, errors.Wrap(err, "failed to create breach alert")
	}

	logger.Warn("Safe zone breached",
		slog.String("request_id", relation.ID),
		slog.String("patient_id", patient.ID),
		slog.Float64("distance", event.Distance),
		slog.Float64("radius", event.RadiusMeters),
	)

	s.notifier.Dispatch(ctx, &service.NotificationEvent{
		Kind:         entity.NotificationGeofenceBreach,
		ReferenceID:  alert.ID,
		RecipientIDs: []string{relation.CaretakerID},
		Title:        "Safe zone alert: " + patient.Name,
		Body:         alert.Message,
		Data: map[string]string{
			"alert_id":   alert.ID,
			"patient_id": patient.ID,
		},
		OccurredAt: event.Timestamp,
	})

	return alert, nil
}

// breachSnapshot renders the zone and the offending position as a GeoJSON collection.
func breachSnapshot(event *geofence.BreachEvent, patient *entity.User) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	fc.Append(geo.CircleFeature(event.Center, event.RadiusMeters, map[string]any{
		"kind": "safe_zone",
	}))

	position := geojson.NewFeature(event.Position.Orb())
	position.Properties["kind"] = "position"
	position.Properties["patient_id"] = patient.ID
	position.Properties["distance"] = event.Distance
	position.Properties["observed_at"] = event.ObservedAt.UTC().Format(time.RFC3339)
	fc.Append(position)

	data, err := json.Marshal(fc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode snapshot")
	}

	return data, nil
}

func snapshotKey(relationID string, at time.Time) string {
	return fmt.Sprintf("%s/%d.geojson", relationID, at.UTC().UnixMilli())
}

func (s *trackingService) broadcastLocation(ctx context.Context, tracking *entity.Tracking, relations []*entity.ConnectionRequest) {
	data, err := json.Marshal(tracking)
	if err != nil {
		return
	}

	for _, relation := range relations {
		err := s.realtime.Publish(ctx, service.RealtimeEvent{
			Type:  service.RealtimeLocation,
			Topic: service.UserTopic(relation.CaretakerID),
			Data:  data,
		})
		if err != nil {
			requestLogger(ctx, s.logger).Debug("Location broadcast skipped",
				slog.String("caretaker_id", relation.CaretakerID),
				slog.Any("error", err),
			)
		}
	}
}

func (s *trackingService) GetLocation(ctx context.Context, viewerID, patientID string) (*entity.Tracking, error) {
	if err := canView(ctx, s.connectionRepo, viewerID, patientID); err != nil {
		return nil, err
	}

	tracking, err := s.trackingRepo.Find(ctx, patientID)
	if err != nil {
		if errors.Is(err, repository.ErrTrackingNotFound) {
			return nil, errors.WithStack(domainerrors.ErrLocationUnavailable)
		}

		return nil, errors.Wrap(err, "failed to load tracking")
	}

	return tracking, nil
}

func (s *trackingService) History(ctx context.Context, viewerID, patientID string, since time.Time, limit int) ([]*entity.LocationPoint, error) {
	if err := canView(ctx, s.connectionRepo, viewerID, patientID); err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	points, err := s.historyRepo.FindSince(ctx, patientID, since, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load location history")
	}

	return points, nil
}

func (s *trackingService) PruneHistory(ctx context.Context, now time.Time) (int64, error) {
	cutoff := now.Add(-s.retention)

	removed, err := s.historyRepo.DeleteBefore(ctx, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "failed to prune location history")
	}

	s.logger.Info("Location history pruned",
		slog.Int64("removed", removed),
		slog.Time("cutoff", cutoff),
	)

	return removed, nil
}
