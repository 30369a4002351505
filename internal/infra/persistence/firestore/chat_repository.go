package firestore

import (
	"context"
	"slices"

	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/repository"

	gcfirestore "cloud.google.com/go/firestore"
)

const defaultMessageLimit = 100

type chatRepository struct {
	client *gcfirestore.Client
}

// NewChatRepository is the constructor for the patient/caretaker conversation store.
func NewChatRepository(client *gcfirestore.Client) repository.ChatRepository {
	return &chatRepository{client: client}
}

func (repo *chatRepository) messages(chatID string) *gcfirestore.CollectionRef {
	return repo.client.Collection(collectionChats).Doc(chatID).Collection(collectionMessages)
}

func (repo *chatRepository) AddMessage(ctx context.Context, msg *entity.ChatMessage) error {
	ref := repo.messages(msg.ChatID).NewDoc()
	if _, err := ref.Create(ctx, fromChatMessageDomain(msg)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to add chat message")
	}
	msg.ID = ref.ID

	return nil
}

func (repo *chatRepository) ListMessages(ctx context.Context, chatID string, limit int) ([]*entity.ChatMessage, error) {
	if limit <= 0 {
		limit = defaultMessageLimit
	}

	q := repo.messages(chatID).OrderBy("createdAt", gcfirestore.Desc).Limit(limit)
	msgs, err := getAll(ctx, q, func(id string, d *chatMessageDoc) *entity.ChatMessage {
		return toChatMessageDomain(chatID, id, d)
	})
	if err != nil {
		return nil, err
	}

	// newest-first window, returned oldest first
	slices.Reverse(msgs)

	return msgs, nil
}

func (repo *chatRepository) LatestMessage(ctx context.Context, chatID string) (*entity.ChatMessage, error) {
	msgs, err := repo.ListMessages(ctx, chatID, 1)
	if err != nil || len(msgs) == 0 {
		return nil, err
	}

	return msgs[0], nil
}

func (repo *chatRepository) Clear(ctx context.Context, chatID string) (int, error) {
	return deleteQuery(ctx, repo.client, repo.messages(chatID).Query)
}
