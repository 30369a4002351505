package firestore

import (
	"context"

	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/repository"

	gcfirestore "cloud.google.com/go/firestore"
)

type trackingRepository struct {
	client *gcfirestore.Client
}

// NewTrackingRepository is the constructor for the latest-position store.
func NewTrackingRepository(client *gcfirestore.Client) repository.TrackingRepository {
	return &trackingRepository{client: client}
}

func (repo *trackingRepository) Upsert(ctx context.Context, tracking *entity.Tracking) error {
	ref := repo.client.Collection(collectionTracking).Doc(tracking.PatientID)
	if _, err := ref.Set(ctx, fromTrackingDomain(tracking)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save tracking")
	}

	return nil
}

func (repo *trackingRepository) Find(ctx context.Context, patientID string) (*entity.Tracking, error) {
	doc, err := getOne[trackingDoc](ctx, repo.client.Collection(collectionTracking).Doc(patientID), repository.ErrTrackingNotFound)
	if err != nil {
		return nil, err
	}

	return toTrackingDomain(patientID, doc), nil
}
