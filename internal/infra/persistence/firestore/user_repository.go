package firestore

import (
	"context"
	"strings"

	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/repository"

	gcfirestore "cloud.google.com/go/firestore"
)

type userRepository struct {
	client *gcfirestore.Client
}

// NewUserRepository is the constructor for the Firestore backed profile store.
func NewUserRepository(client *gcfirestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (repo *userRepository) Upsert(ctx context.Context, user *entity.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	if _, err := repo.client.Collection(collectionUsers).Doc(user.ID).Set(ctx, fromUserDomain(user)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save user")
	}

	return nil
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := getOne[userDoc](ctx, repo.client.Collection(collectionUsers).Doc(id), repository.ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	return toUserDomain(id, doc), nil
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	q := repo.client.Collection(collectionUsers).
		Where("email", "==", strings.ToLower(strings.TrimSpace(email))).
		Limit(1)

	users, err := getAll(ctx, q, toUserDomain)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, repository.ErrUserNotFound
	}

	return users[0], nil
}
