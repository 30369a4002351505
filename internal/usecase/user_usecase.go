// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"careconnect/internal/domain/entity"
	"careconnect/internal/domain/service"
)

// RegisterInput is the profile a signed-in user completes after authentication.
// An empty role falls back to the token's role claim.
type RegisterInput struct {
	Name string      `json:"name" validate:"max=100"`
	Role entity.Role `json:"role" validate:"omitempty,max=20"`
}

// UserUsecase defines the interface for profile use cases
type UserUsecase interface {
	// Register creates or updates the caller's profile
	Register(ctx context.Context, identity *service.Identity, input *RegisterInput) (*entity.User, error)

	// GetProfile returns a profile by uid
	GetProfile(ctx context.Context, userID string) (*entity.User, error)
}
