package impl

import (
	"context"
	"log/slog"

	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/repository"
	"careconnect/internal/domain/service"
	"careconnect/internal/usecase"

	"github.com/pkg/errors"
)

const (
	defaultAlertLimit = 50
	maxAlertLimit     = 200
)

type alertService struct {
	alertRepo repository.AlertRepository
	snapshots service.SnapshotStore
	logger    *slog.Logger
}

// NewAlertService creates the alert use case.
func NewAlertService(alertRepo repository.AlertRepository, snapshots service.SnapshotStore, logger *slog.Logger) usecase.AlertUsecase {
	return &alertService{
		alertRepo: alertRepo,
		snapshots: snapshots,
		logger:    logger,
	}
}

func (s *alertService) List(ctx context.Context, caretakerID string, limit int) ([]*entity.Alert, error) {
	switch {
	case limit <= 0:
		limit = defaultAlertLimit
	case limit > maxAlertLimit:
		limit = maxAlertLimit
	}

	alerts, err := s.alertRepo.ListByCaretaker(ctx, caretakerID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list alerts")
	}

	return alerts, nil
}

func (s *alertService) UnreadCount(ctx context.Context, caretakerID string) (int, error) {
	count, err := s.alertRepo.CountUnread(ctx, caretakerID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread alerts")
	}

	return count, nil
}

func (s *alertService) MarkRead(ctx context.Context, caretakerID, alertID string) error {
	alert, err := s.ownedAlert(ctx, caretakerID, alertID)
	if err != nil {
		return err
	}
	if alert.Read {
		return nil
	}

	if err := s.alertRepo.MarkRead(ctx, alert.ID); err != nil {
		return errors.Wrap(err, "failed to mark alert as read")
	}

	return nil
}

func (s *alertService) Dismiss(ctx context.Context, caretakerID, alertID string) error {
	alert, err := s.ownedAlert(ctx, caretakerID, alertID)
	if err != nil {
		return err
	}

	if err := s.alertRepo.Delete(ctx, alert.ID); err != nil {
		return errors.Wrap(err, "failed to delete alert")
	}

	requestLogger(ctx, s.logger).Info("Alert dismissed", slog.String("alert_id", alert.ID))

	return nil
}

func (s *alertService) Snapshot(ctx context.Context, caretakerID, alertID string) ([]byte, string, error) {
	alert, err := s.ownedAlert(ctx, caretakerID, alertID)
	if err != nil {
		return nil, "", err
	}
	if alert.ImageKey == "" {
		return nil, "", errors.Wrap(domainerrors.ErrNotFound, "alert has no snapshot")
	}

	data, contentType, err := s.snapshots.Get(ctx, alert.ImageKey)
	if err != nil {
		if errors.Is(err, service.ErrSnapshotNotFound) {
			return nil, "", errors.Wrap(domainerrors.ErrNotFound, "snapshot expired")
		}

		return nil, "", errors.Wrap(err, "failed to read snapshot")
	}

	return data, contentType, nil
}

// ownedAlert hides alerts of other caretakers behind a not-found error.
func (s *alertService) ownedAlert(ctx context.Context, caretakerID, alertID string) (*entity.Alert, error) {
	alert, err := s.alertRepo.FindByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return nil, errors.WithStack(domainerrors.ErrAlertNotFound)
		}

		return nil, errors.Wrap(err, "failed to load alert")
	}
	if alert.CaretakerID != caretakerID {
		return nil, errors.WithStack(domainerrors.ErrAlertNotFound)
	}

	return alert, nil
}
