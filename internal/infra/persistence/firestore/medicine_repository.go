package firestore

import (
	"context"
	"time"

	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/repository"

	gcfirestore "cloud.google.com/go/firestore"
)

type medicineRepository struct {
	client *gcfirestore.Client
}

// NewMedicineRepository is the constructor for the medicine schedule store.
func NewMedicineRepository(client *gcfirestore.Client) repository.MedicineRepository {
	return &medicineRepository{client: client}
}

func (repo *medicineRepository) medicines() *gcfirestore.CollectionRef {
	return repo.client.Collection(collectionMedicines)
}

func (repo *medicineRepository) Create(ctx context.Context, medicine *entity.Medicine) error {
	ref := repo.medicines().NewDoc()
	if _, err := ref.Create(ctx, fromMedicineDomain(medicine)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create medicine")
	}
	medicine.ID = ref.ID

	return nil
}

func (repo *medicineRepository) FindByID(ctx context.Context, id string) (*entity.Medicine, error) {
	doc, err := getOne[medicineDoc](ctx, repo.medicines().Doc(id), repository.ErrMedicineNotFound)
	if err != nil {
		return nil, err
	}

	return toMedicineDomain(id, doc), nil
}

// Update rewrites the editable fields; acknowledgements and ownership are left alone.
func (repo *medicineRepository) Update(ctx context.Context, medicine *entity.Medicine) error {
	return update(ctx, repo.medicines().Doc(medicine.ID), repository.ErrMedicineNotFound,
		gcfirestore.Update{Path: "name", Value: medicine.Name},
		gcfirestore.Update{Path: "dosage", Value: medicine.Dosage},
		gcfirestore.Update{Path: "times", Value: medicine.Times},
		gcfirestore.Update{Path: "instructions", Value: medicine.Instructions},
		gcfirestore.Update{Path: "active", Value: medicine.Active},
		gcfirestore.Update{Path: "lastModifiedBy", Value: medicine.LastModifiedBy},
		gcfirestore.Update{Path: "updatedAt", Value: medicine.UpdatedAt},
	)
}

func (repo *medicineRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.medicines().Doc(id).Delete(ctx, gcfirestore.Exists); err != nil {
		if isNotFound(err) {
			return repository.ErrMedicineNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete medicine")
	}

	return nil
}

func (repo *medicineRepository) ListByPatient(ctx context.Context, patientID string, activeOnly bool) ([]*entity.Medicine, error) {
	q := repo.medicines().Where("patientId", "==", patientID)
	if activeOnly {
		q = q.Where("active", "==", true)
	}

	return getAll(ctx, q, toMedicineDomain)
}

func (repo *medicineRepository) ListActive(ctx context.Context) ([]*entity.Medicine, error) {
	return getAll(ctx, repo.medicines().Where("active", "==", true), toMedicineDomain)
}

// MarkTaken sets takenDoses[key]. Keys contain ':' so they go through a FieldPath.
func (repo *medicineRepository) MarkTaken(ctx context.Context, id, key, by string) error {
	return update(ctx, repo.medicines().Doc(id), repository.ErrMedicineNotFound,
		gcfirestore.Update{FieldPath: gcfirestore.FieldPath{"takenDoses", key}, Value: true},
		gcfirestore.Update{Path: "lastModifiedBy", Value: by},
		gcfirestore.Update{Path: "updatedAt", Value: time.Now().UTC()},
	)
}
