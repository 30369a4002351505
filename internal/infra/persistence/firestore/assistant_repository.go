package firestore

import (
	"context"
	"slices"

	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/repository"

	gcfirestore "cloud.google.com/go/firestore"
)

type assistantRepository struct {
	client *gcfirestore.Client
}

// NewAssistantRepository is the constructor for the health assistant session store.
func NewAssistantRepository(client *gcfirestore.Client) repository.AssistantRepository {
	return &assistantRepository{client: client}
}

func (repo *assistantRepository) sessions() *gcfirestore.CollectionRef {
	return repo.client.Collection(collectionHealthChats)
}

func (repo *assistantRepository) CreateSession(ctx context.Context, session *entity.HealthChatSession) error {
	ref := repo.sessions().NewDoc()
	doc := &sessionDoc{
		UserID:       session.UserID,
		Role:         string(session.Role),
		Title:        session.Title,
		CreatedAt:    session.CreatedAt,
		LastModified: session.LastModified,
	}
	if _, err := ref.Create(ctx, doc); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create assistant session")
	}
	session.ID = ref.ID

	return nil
}

func (repo *assistantRepository) FindSession(ctx context.Context, id string) (*entity.HealthChatSession, error) {
	doc, err := getOne[sessionDoc](ctx, repo.sessions().Doc(id), repository.ErrSessionNotFound)
	if err != nil {
		return nil, err
	}

	return toSessionDomain(id, doc), nil
}

func (repo *assistantRepository) ListSessions(ctx context.Context, userID string) ([]*entity.HealthChatSession, error) {
	q := repo.sessions().Where("userId", "==", userID).OrderBy("lastModified", gcfirestore.Desc)

	return getAll(ctx, q, toSessionDomain)
}

func (repo *assistantRepository) DeleteSession(ctx context.Context, id string) error {
	ref := repo.sessions().Doc(id)
	if _, err := deleteQuery(ctx, repo.client, ref.Collection(collectionMessages).Query); err != nil {
		return err
	}
	if _, err := ref.Delete(ctx, gcfirestore.Exists); err != nil {
		if isNotFound(err) {
			return repository.ErrSessionNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete assistant session")
	}

	return nil
}

func (repo *assistantRepository) AddMessage(ctx context.Context, msg *entity.HealthChatMessage) error {
	session := repo.sessions().Doc(msg.SessionID)
	ref := session.Collection(collectionMessages).NewDoc()

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *gcfirestore.Transaction) error {
		if err := tx.Create(ref, &healthMessageDoc{
			Role:      string(msg.Role),
			Type:      string(msg.Type),
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		}); err != nil {
			return err
		}

		return tx.Update(session, []gcfirestore.Update{{Path: "lastModified", Value: msg.CreatedAt}})
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrSessionNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add assistant message")
	}
	msg.ID = ref.ID

	return nil
}

func (repo *assistantRepository) ListMessages(ctx context.Context, sessionID string, limit int) ([]*entity.HealthChatMessage, error) {
	if limit <= 0 {
		limit = defaultMessageLimit
	}

	q := repo.sessions().Doc(sessionID).Collection(collectionMessages).
		OrderBy("createdAt", gcfirestore.Desc).
		Limit(limit)

	msgs, err := getAll(ctx, q, func(id string, d *healthMessageDoc) *entity.HealthChatMessage {
		return toHealthMessageDomain(sessionID, id, d)
	})
	if err != nil {
		return nil, err
	}
	slices.Reverse(msgs)

	return msgs, nil
}
