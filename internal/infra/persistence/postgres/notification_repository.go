package postgres

import (
	"context"

	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/repository"
	"careconnect/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const notificationLogBatchSize = 100

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotificationLog persists a single notification log entry.
func (repo *notificationRepository) CreateNotificationLog(ctx context.Context, log *entity.NotificationLog) error {
	logM := fromNotificationLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification log information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification log")
	}

	log.ID = logM.ID
	log.SentAt = logM.SentAt

	return nil
}

// BatchCreateNotificationLogs persists multiple notification log entries in batches.
func (repo *notificationRepository) BatchCreateNotificationLogs(ctx context.Context, logs []*entity.NotificationLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.NotificationLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromNotificationLogDomain(log))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(logModels, notificationLogBatchSize).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification log information in batch")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create notification logs")
	}

	for i, logM := range logModels {
		logs[i].ID = logM.ID
		logs[i].SentAt = logM.SentAt
	}

	return nil
}

// FindLogsByReference lists the deliveries made for an alert or dose key, newest first.
func (repo *notificationRepository) FindLogsByReference(ctx context.Context, referenceID string) ([]*entity.NotificationLog, error) {
	var logModels []*model.NotificationLogModel

	if err := repo.db.WithContext(ctx).
		Where("reference_id = ?", referenceID).
		Order("sent_at DESC").
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notification logs")
	}

	logs := make([]*entity.NotificationLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toNotificationLogDomain(logM))
	}

	return logs, nil
}

// --- Mapper Functions ---

func toNotificationLogDomain(data *model.NotificationLogModel) *entity.NotificationLog {
	if data == nil {
		return nil
	}

	return &entity.NotificationLog{
		ID:           data.ID,
		UserID:       data.UserID,
		DeviceID:     data.DeviceID,
		Kind:         entity.NotificationKind(data.Kind),
		ReferenceID:  data.ReferenceID,
		Status:       data.Status,
		FCMMessageID: data.FCMMessageID,
		ErrorMessage: data.ErrorMessage,
		SentAt:       data.SentAt,
	}
}

func fromNotificationLogDomain(data *entity.NotificationLog) *model.NotificationLogModel {
	if data == nil {
		return nil
	}

	return &model.NotificationLogModel{
		ID:           data.ID,
		UserID:       data.UserID,
		DeviceID:     data.DeviceID,
		Kind:         string(data.Kind),
		ReferenceID:  data.ReferenceID,
		Status:       data.Status,
		FCMMessageID: data.FCMMessageID,
		ErrorMessage: data.ErrorMessage,
		SentAt:       data.SentAt,
	}
}
