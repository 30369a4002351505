package firestore

import (
	"context"

	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/repository"

	gcfirestore "cloud.google.com/go/firestore"
)

const defaultAlertLimit = 50

type alertRepository struct {
	client *gcfirestore.Client
}

// NewAlertRepository is the constructor for the caretaker alert store.
func NewAlertRepository(client *gcfirestore.Client) repository.AlertRepository {
	return &alertRepository{client: client}
}

func (repo *alertRepository) alerts() *gcfirestore.CollectionRef {
	return repo.client.Collection(collectionAlerts)
}

func (repo *alertRepository) Create(ctx context.Context, alert *entity.Alert) error {
	ref := repo.alerts().NewDoc()
	if _, err := ref.Create(ctx, fromAlertDomain(alert)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert")
	}
	alert.ID = ref.ID

	return nil
}

func (repo *alertRepository) FindByID(ctx context.Context, id string) (*entity.Alert, error) {
	doc, err := getOne[alertDoc](ctx, repo.alerts().Doc(id), repository.ErrAlertNotFound)
	if err != nil {
		return nil, err
	}

	return toAlertDomain(id, doc), nil
}

func (repo *alertRepository) ListByCaretaker(ctx context.Context, caretakerID string, limit int) ([]*entity.Alert, error) {
	if limit <= 0 {
		limit = defaultAlertLimit
	}

	q := repo.alerts().
		Where("caretakerId", "==", caretakerID).
		OrderBy("timestamp", gcfirestore.Desc).
		Limit(limit)

	return getAll(ctx, q, toAlertDomain)
}

func (repo *alertRepository) CountUnread(ctx context.Context, caretakerID string) (int, error) {
	q := repo.alerts().
		Where("caretakerId", "==", caretakerID).
		Where("read", "==", false).
		Select()

	ids, err := getAll(ctx, q, func(id string, _ *struct{}) string { return id })
	if err != nil {
		return 0, err
	}

	return len(ids), nil
}

func (repo *alertRepository) MarkRead(ctx context.Context, id string) error {
	return update(ctx, repo.alerts().Doc(id), repository.ErrAlertNotFound,
		gcfirestore.Update{Path: "read", Value: true},
	)
}

func (repo *alertRepository) Delete(ctx context.Context, id string) error {
	ref := repo.alerts().Doc(id)
	if _, err := ref.Delete(ctx, gcfirestore.Exists); err != nil {
		if isNotFound(err) {
			return repository.ErrAlertNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete alert")
	}

	return nil
}
