package postgres

import (
	"context"

	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/repository"
	"careconnect/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// UpsertDevice registers device for its owner. A client re-registering under the same
// device_id keeps its row; a token seen under any other registration is released first,
// since a handset that changes accounts must stop receiving the previous owner's alerts.
func (repo *deviceRepository) UpsertDevice(ctx context.Context, device *entity.UserDevice) (*entity.UserDevice, error) {
	deviceM := fromDeviceDomain(device)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := releaseToken(tx, deviceM.FCMToken, deviceM.UserID, deviceM.DeviceID); err != nil {
			return err
		}

		return tx.Clauses(clause.OnConflict{
			Columns:     []clause.Column{{Name: "user_id"}, {Name: "device_id"}},
			TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "deleted_at IS NULL"}}},
			DoUpdates:   clause.Assignments(map[string]any{"fcm_token": deviceM.FCMToken, "platform": deviceM.Platform, "is_active": true, "updated_at": gorm.Expr("now()")}),
		}).Create(deviceM).Error
	})
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}
		if isUniqueConstraintViolation(err) {
			return nil, repository.ErrDuplicateDevice
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	var stored model.UserDeviceModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND device_id = ?", deviceM.UserID, deviceM.DeviceID).
		First(&stored).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload device")
	}

	return toDeviceDomain(&stored), nil
}

// releaseToken soft-deletes registrations holding token other than (userID, deviceID).
func releaseToken(tx *gorm.DB, token, userID, deviceID string) error {
	err := tx.Where("fcm_token = ? AND NOT (user_id = ? AND device_id = ?)", token, userID, deviceID).
		Delete(&model.UserDeviceModel{}).Error

	return errors.Wrap(err, "failed to release fcm token")
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var deviceM model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDevicesByUser retrieves all devices for a specific user (including inactive, excluding soft-deleted).
func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID string) ([]*entity.UserDevice, error) {
	var deviceModels []*model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	return toDeviceDomains(deviceModels), nil
}

// FindActiveDevicesByUsers retrieves the active devices of every user in userIDs.
func (repo *deviceRepository) FindActiveDevicesByUsers(ctx context.Context, userIDs []string) ([]*entity.UserDevice, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var deviceModels []*model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ? AND is_active = ?", userIDs, true).
		Order("user_id, created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by users")
	}

	return toDeviceDomains(deviceModels), nil
}

// UpdateFCMToken rotates the token of an existing device and re-activates it.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var deviceM model.UserDeviceModel
		if err := tx.Where("id = ?", deviceID).First(&deviceM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrDeviceNotFound
			}

			return errors.Wrap(err, "failed to find device by ID")
		}

		if err := releaseToken(tx, fcmToken, deviceM.UserID, deviceM.DeviceID); err != nil {
			return err
		}

		err := tx.Model(&deviceM).Updates(map[string]any{
			"fcm_token": fcmToken,
			"is_active": true,
		}).Error
		if err != nil {
			if isUniqueConstraintViolation(err) {
				return repository.ErrDuplicateDevice
			}

			return errors.Wrap(err, "failed to update FCM token")
		}

		return nil
	})
}

// DeactivateByTokens marks every device holding one of tokens as inactive.
func (repo *deviceRepository) DeactivateByTokens(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("fcm_token IN ? AND is_active = ?", tokens, true).
		Update("is_active", false)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate devices")
	}

	return result.RowsAffected, nil
}

// DeleteDevice removes a device by its ID (soft delete).
func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserDeviceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toDeviceDomains(models []*model.UserDeviceModel) []*entity.UserDevice {
	devices := make([]*entity.UserDevice, 0, len(models))
	for _, deviceM := range models {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices
}

// toDeviceDomain converts a GORM UserDeviceModel to a domain UserDevice entity.
func toDeviceDomain(data *model.UserDeviceModel) *entity.UserDevice {
	if data == nil {
		return nil
	}

	return &entity.UserDevice{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain UserDevice entity to a GORM UserDeviceModel.
func fromDeviceDomain(data *entity.UserDevice) *model.UserDeviceModel {
	if data == nil {
		return nil
	}

	return &model.UserDeviceModel{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
