// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"careconnect/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrUserNotFound is returned when a user profile does not exist.
var ErrUserNotFound = errors.New("user not found")

// UserRepository stores user profiles.
type UserRepository interface {
	// Upsert creates or replaces the profile keyed by user.ID.
	Upsert(ctx context.Context, user *entity.User) error

	// FindByID retrieves a profile by uid.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a profile by its lower-cased email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
