package postgres

import (
	"context"
	"time"

	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/repository"
	"careconnect/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultHistoryLimit = 500

type locationHistoryRepository struct {
	db *gorm.DB
}

// NewLocationHistoryRepository is the constructor for the location trail store.
func NewLocationHistoryRepository(db *gorm.DB) repository.LocationHistoryRepository {
	return &locationHistoryRepository{db: db}
}

func (repo *locationHistoryRepository) Append(ctx context.Context, point *entity.LocationPoint) error {
	pointM := fromLocationPointDomain(point)

	if err := repo.db.WithContext(ctx).Create(pointM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidCoordinate.WrapMessage("location point rejected by store")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append location point")
	}

	point.ID = pointM.ID

	return nil
}

func (repo *locationHistoryRepository) FindSince(ctx context.Context, patientID string, since time.Time, limit int) ([]*entity.LocationPoint, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	var pointModels []*model.LocationPointModel

	if err := repo.db.WithContext(ctx).
		Where("patient_id = ? AND recorded_at >= ?", patientID, since).
		Order("recorded_at DESC").
		Limit(limit).
		Find(&pointModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find location history")
	}

	points := make([]*entity.LocationPoint, 0, len(pointModels))
	for _, pointM := range pointModels {
		points = append(points, toLocationPointDomain(pointM))
	}

	return points, nil
}

func (repo *locationHistoryRepository) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("recorded_at < ?", before).
		Delete(&model.LocationPointModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to prune location history")
	}

	return result.RowsAffected, nil
}

func toLocationPointDomain(data *model.LocationPointModel) *entity.LocationPoint {
	return &entity.LocationPoint{
		ID:         data.ID,
		PatientID:  data.PatientID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Simulated:  data.Simulated,
		Source:     data.Source,
		RecordedAt: data.RecordedAt,
	}
}

func fromLocationPointDomain(data *entity.LocationPoint) *model.LocationPointModel {
	return &model.LocationPointModel{
		ID:         data.ID,
		PatientID:  data.PatientID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Simulated:  data.Simulated,
		Source:     data.Source,
		RecordedAt: data.RecordedAt,
	}
}
