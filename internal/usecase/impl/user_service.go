package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/repository"
	"careconnect/internal/domain/service"
	"careconnect/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register creates the profile on first sign-in and refreshes name and role afterwards.
// The email always comes from the verified identity.
func (srv *userService) Register(ctx context.Context, identity *service.Identity, input *usecase.RegisterInput) (*entity.User, error) {
	if identity == nil || identity.UserID == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}
	role, ok := entity.ParseRole(string(input.Role))
	if input.Role == "" {
		role, ok = entity.RoleFromClaims(identity.Roles)
	}
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "role must be patient or caretaker")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = identity.Name
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:        identity.UserID,
		Email:     strings.ToLower(strings.TrimSpace(identity.Email)),
		Name:      name,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	existing, err := srv.userRepo.FindByID(ctx, identity.UserID)
	switch {
	case err == nil:
		user.CreatedAt = existing.CreatedAt
		if user.Email == "" {
			user.Email = existing.Email
		}
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to load existing profile")
	}

	if err := srv.userRepo.Upsert(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to save profile")
	}

	requestLogger(ctx, srv.logger).Info("Profile registered",
		slog.String("user_id", user.ID),
		slog.String("role", user.Role.String()),
		slog.Bool("created", existing == nil),
	)

	return user, nil
}

// GetProfile returns a profile by uid.
func (srv *userService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return loadUser(ctx, srv.userRepo, userID)
}
