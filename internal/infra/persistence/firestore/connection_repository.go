package firestore

import (
	"context"
	"strings"
	"time"

	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/repository"

	gcfirestore "cloud.google.com/go/firestore"
)

type connectionRepository struct {
	client *gcfirestore.Client
}

// NewConnectionRepository is the constructor for the connection request store.
func NewConnectionRepository(client *gcfirestore.Client) repository.ConnectionRepository {
	return &connectionRepository{client: client}
}

func (repo *connectionRepository) requests() *gcfirestore.CollectionRef {
	return repo.client.Collection(collectionRequests)
}

func (repo *connectionRepository) Create(ctx context.Context, req *entity.ConnectionRequest) error {
	req.PatientEmail = strings.ToLower(strings.TrimSpace(req.PatientEmail))

	ref := repo.requests().NewDoc()
	if _, err := ref.Create(ctx, fromRequestDomain(req)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create connection request")
	}
	req.ID = ref.ID

	return nil
}

func (repo *connectionRepository) FindByID(ctx context.Context, id string) (*entity.ConnectionRequest, error) {
	doc, err := getOne[requestDoc](ctx, repo.requests().Doc(id), repository.ErrRequestNotFound)
	if err != nil {
		return nil, err
	}

	return toRequestDomain(id, doc), nil
}

func (repo *connectionRepository) FindByCaretaker(ctx context.Context, caretakerID string) ([]*entity.ConnectionRequest, error) {
	q := repo.requests().Where("from", "==", caretakerID).OrderBy("createdAt", gcfirestore.Desc)

	return getAll(ctx, q, toRequestDomain)
}

func (repo *connectionRepository) FindByPatientEmail(ctx context.Context, email string) ([]*entity.ConnectionRequest, error) {
	q := repo.requests().
		Where("to", "==", strings.ToLower(strings.TrimSpace(email))).
		OrderBy("createdAt", gcfirestore.Desc)

	return getAll(ctx, q, toRequestDomain)
}

func (repo *connectionRepository) FindAccepted(ctx context.Context) ([]*entity.ConnectionRequest, error) {
	q := repo.requests().Where("status", "==", string(entity.RequestAccepted))

	return getAll(ctx, q, toRequestDomain)
}

func (repo *connectionRepository) FindAcceptedByPatient(ctx context.Context, patientID string) ([]*entity.ConnectionRequest, error) {
	q := repo.requests().
		Where("patientId", "==", patientID).
		Where("status", "==", string(entity.RequestAccepted))

	return getAll(ctx, q, toRequestDomain)
}

func (repo *connectionRepository) UpdateStatus(ctx context.Context, id string, status entity.RequestStatus, patientID, patientName string) error {
	return update(ctx, repo.requests().Doc(id), repository.ErrRequestNotFound,
		gcfirestore.Update{Path: "status", Value: string(status)},
		gcfirestore.Update{Path: "patientId", Value: patientID},
		gcfirestore.Update{Path: "patientName", Value: patientName},
		gcfirestore.Update{Path: "updatedAt", Value: time.Now().UTC()},
	)
}

// UpdateSafeZone replaces the geofence; a nil zone removes the field.
func (repo *connectionRepository) UpdateSafeZone(ctx context.Context, id string, zone *entity.SafeZone) error {
	var value any = gcfirestore.Delete
	if zone != nil {
		value = fromSafeZoneDomain(zone)
	}

	return update(ctx, repo.requests().Doc(id), repository.ErrRequestNotFound,
		gcfirestore.Update{Path: "geofence", Value: value},
		gcfirestore.Update{Path: "updatedAt", Value: time.Now().UTC()},
	)
}
