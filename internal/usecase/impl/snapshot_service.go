package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"careconnect/config"
	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/geo"
	"careconnect/internal/domain/reminder"
	"careconnect/internal/domain/repository"
	"careconnect/internal/domain/service"
	"careconnect/internal/usecase"

	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	analysisSampleLimit = 500
	analysisPointLimit  = 50

	defaultRiskMessage = "Unusual activity detected"
)

type snapshotService struct {
	connectionRepo repository.ConnectionRepository
	trackingRepo   repository.TrackingRepository
	historyRepo    repository.LocationHistoryRepository
	medicineRepo   repository.MedicineRepository
	alertRepo      repository.AlertRepository
	analyzer       service.ActivityAnalyzer
	snapshots      service.SnapshotStore
	notifier       usecase.NotificationUsecase
	classifier     *reminder.Classifier
	window         time.Duration
	location       *time.Location
	logger         *slog.Logger
}

// SnapshotServiceParams holds dependencies for SnapshotService, injected by Fx.
type SnapshotServiceParams struct {
	fx.In

	ConnectionRepo repository.ConnectionRepository
	TrackingRepo   repository.TrackingRepository
	HistoryRepo    repository.LocationHistoryRepository
	MedicineRepo   repository.MedicineRepository
	AlertRepo      repository.AlertRepository
	Analyzer       service.ActivityAnalyzer
	Snapshots      service.SnapshotStore
	Notifier       usecase.NotificationUsecase
	Classifier     *reminder.Classifier
	Config         *config.Config
	Logger         *slog.Logger
}

// NewSnapshotService creates the scheduled snapshot use case.
func NewSnapshotService(params SnapshotServiceParams) usecase.SnapshotUsecase {
	return &snapshotService{
		connectionRepo: params.ConnectionRepo,
		trackingRepo:   params.TrackingRepo,
		historyRepo:    params.HistoryRepo,
		medicineRepo:   params.MedicineRepo,
		alertRepo:      params.AlertRepo,
		analyzer:       params.Analyzer,
		snapshots:      params.Snapshots,
		notifier:       params.Notifier,
		classifier:     params.Classifier,
		window:         params.Config.Monitor.AnalysisWindow,
		location:       params.Config.Monitor.Location(),
		logger:         params.Logger,
	}
}

// Capture analyzes each patient once per run even when several caretakers follow them.
func (s *snapshotService) Capture(ctx context.Context, now time.Time) (*usecase.SnapshotSummary, error) {
	relations, err := s.connectionRepo.FindAccepted(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list relations")
	}

	summary := &usecase.SnapshotSummary{Relations: len(relations)}
	byPatient := make(map[string][]*entity.ConnectionRequest)
	var order []string
	for _, relation := range relations {
		if _, seen := byPatient[relation.PatientID]; !seen {
			order = append(order, relation.PatientID)
		}
		byPatient[relation.PatientID] = append(byPatient[relation.PatientID], relation)
	}

	for _, patientID := range order {
		patientRelations := byPatient[patientID]

		tracking, err := s.trackingRepo.Find(ctx, patientID)
		if err != nil {
			if !errors.Is(err, repository.ErrTrackingNotFound) {
				summary.Failures++
				s.logger.Error("Failed to load tracking", slog.String("patient_id", patientID), slog.Any("error", err))
			}

			continue
		}

		for _, relation := range patientRelations {
			if err := s.snapshot(ctx, relation, tracking, now); err != nil {
				summary.Failures++
				s.logger.Error("Snapshot failed", slog.String("request_id", relation.ID), slog.Any("error", err))

				continue
			}
			summary.Snapshots++
		}

		assessment, err := s.assess(ctx, tracking, patientRelations, now)
		if err != nil {
			summary.Failures++
			s.logger.Warn("Risk analysis failed", slog.String("patient_id", patientID), slog.Any("error", err))

			continue
		}
		if assessment.RiskLevel == entity.RiskLow {
			continue
		}

		for _, relation := range patientRelations {
			if err := s.raiseRisk(ctx, relation, tracking, assessment, now); err != nil {
				summary.Failures++
				s.logger.Error("Risk alert failed", slog.String("request_id", relation.ID), slog.Any("error", err))

				continue
			}
			summary.RiskAlerts++
		}
	}

	s.logger.Info("Snapshot run finished",
		slog.Int("relations", summary.Relations),
		slog.Int("snapshots", summary.Snapshots),
		slog.Int("risk_alerts", summary.RiskAlerts),
		slog.Int("failures", summary.Failures),
	)

	return summary, nil
}

func (s *snapshotService) snapshot(ctx context.Context, relation *entity.ConnectionRequest, tracking *entity.Tracking, now time.Time) error {
	location := tracking.Location
	alert := &entity.Alert{
		CaretakerID: relation.CaretakerID,
		PatientID:   relation.PatientID,
		PatientName: relation.PatientName,
		Type:        entity.AlertAutomatedSnapshot,
		Message: fmt.Sprintf("Automated snapshot: last seen at %.5f, %.5f (%s)",
			location.Lat, location.Lng, tracking.LastActive.In(s.location).Format("Jan 2 15:04")),
		Coordinates: &location,
		CreatedAt:   now.UTC(),
	}

	key := snapshotKey(relation.ID, now)
	if data, err := positionSnapshot(relation, tracking); err == nil {
		if err := s.snapshots.Put(ctx, key, data, snapshotContentType); err != nil {
			s.logger.Warn("Failed to store snapshot", slog.String("key", key), slog.Any("error", err))
		} else {
			alert.ImageKey = key
		}
	}

	if err := s.alertRepo.Create(ctx, alert); err != nil {
		return errors.Wrap(err, "failed to create snapshot alert")
	}

	s.notifier.Dispatch(ctx, &service.NotificationEvent{
		Kind:         entity.NotificationSnapshot,
		ReferenceID:  alert.ID,
		RecipientIDs: []string{relation.CaretakerID},
		Title:        "Automated Snapshot: " + relation.PatientName,
		Body:         alert.Message,
		Data:         map[string]string{"alert_id": alert.ID, "patient_id": relation.PatientID},
		OccurredAt:   now,
	})

	return nil
}

func positionSnapshot(relation *entity.ConnectionRequest, tracking *entity.Tracking) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	if zone := relation.SafeZone; zone != nil && zone.Active {
		fc.Append(geo.CircleFeature(zone.Center(), zone.RadiusMeters, map[string]any{"kind": "safe_zone"}))
	}

	position := geojson.NewFeature(tracking.Location.Orb())
	position.Properties["kind"] = "position"
	position.Properties["patient_id"] = tracking.PatientID
	position.Properties["status"] = string(tracking.Status)
	position.Properties["observed_at"] = tracking.LastActive.UTC().Format(time.RFC3339)
	fc.Append(position)

	data, err := json.Marshal(fc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode snapshot")
	}

	return data, nil
}

func (s *snapshotService) raiseRisk(ctx context.Context, relation *entity.ConnectionRequest, tracking *entity.Tracking, assessment *entity.RiskAssessment, now time.Time) error {
	message := defaultRiskMessage
	if assessment.Alert != nil && *assessment.Alert != "" {
		message = *assessment.Alert
	}

	location := tracking.Location
	alert := &entity.Alert{
		CaretakerID: relation.CaretakerID,
		PatientID:   relation.PatientID,
		PatientName: relation.PatientName,
		Type:        entity.AlertRiskAnalysis,
		Message:     message,
		Coordinates: &location,
		RiskLevel:   assessment.RiskLevel,
		CreatedAt:   now.UTC(),
	}
	if err := s.alertRepo.Create(ctx, alert); err != nil {
		return errors.Wrap(err, "failed to create risk alert")
	}

	s.notifier.Dispatch(ctx, &service.NotificationEvent{
		Kind:         entity.NotificationRisk,
		ReferenceID:  alert.ID,
		RecipientIDs: []string{relation.CaretakerID},
		Title:        fmt.Sprintf("Risk %s: %s", assessment.RiskLevel, relation.PatientName),
		Body:         message,
		Data: map[string]string{
			"alert_id":   alert.ID,
			"patient_id": relation.PatientID,
			"risk_level": string(assessment.RiskLevel),
		},
		OccurredAt: now,
	})

	return nil
}

func (s *snapshotService) Assess(ctx context.Context, viewerID, patientID string, now time.Time) (*entity.RiskAssessment, error) {
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

	relations, err := caretakersOf(ctx, s.connectionRepo, patientID)
	if err != nil {
		return nil, err
	}

	assessment, err := s.assess(ctx, tracking, relations, now)
	if err != nil {
		if errors.Is(err, service.ErrModelUnavailable) {
			return nil, errors.Wrap(domainerrors.ErrAssistantUnavailable, err.Error())
		}

		return nil, err
	}

	return assessment, nil
}

func (s *snapshotService) assess(ctx context.Context, tracking *entity.Tracking, relations []*entity.ConnectionRequest, now time.Time) (*entity.RiskAssessment, error) {
	sample, err := s.sample(ctx, tracking, relations, now)
	if err != nil {
		return nil, err
	}

	assessment, err := s.analyzer.Analyze(ctx, sample)
	if err != nil {
		return nil, errors.Wrap(err, "activity analysis failed")
	}

	return assessment, nil
}

// sample summarizes the analysis window: the trail, the distance covered, doses missed so
// far today and whether the patient is outside any active zone.
func (s *snapshotService) sample(ctx context.Context, tracking *entity.Tracking, relations []*entity.ConnectionRequest, now time.Time) (*entity.ActivitySample, error) {
	from := now.Add(-s.window)
	points, err := s.historyRepo.FindSince(ctx, tracking.PatientID, from, analysisSampleLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load location history")
	}

	sample := &entity.ActivitySample{
		PatientID:     tracking.PatientID,
		LastActive:    tracking.LastActive,
		Status:        tracking.Status,
		ObservedFrom:  from,
		ObservedUntil: now,
	}

	for i := 1; i < len(points); i++ {
		d, err := geo.DistanceMeters(points[i-1].Point(), points[i].Point())
		if err == nil {
			sample.DistanceMeters += d
		}
	}
	for i := 0; i < len(points) && i < analysisPointLimit; i++ {
		sample.Locations = append(sample.Locations, *points[i])
	}

	for _, relation := range relations {
		zone := relation.Zone()
		if !zone.Valid() || !zone.Active {
			continue
		}
		d, err := geo.DistanceMeters(tracking.Location, zone.Center)
		if err == nil && d > zone.RadiusMeters {
			sample.OutsideSafeZone = true
		}
	}

	medicines, err := s.medicineRepo.ListByPatient(ctx, tracking.PatientID, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list medicines")
	}
	schedules, taken := entity.MedicineSchedules(medicines)
	for _, entry := range s.classifier.Classify(schedules, now.In(s.location), taken).Entries {
		if entry.Status == reminder.StatusMissed {
			sample.MissedDoses++
		}
	}

	return sample, nil
}
