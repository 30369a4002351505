// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "careconnect/internal/delivery/context"
	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/repository"

	"github.com/pkg/errors"
)

// requestLogger returns a request-scoped logger if available, otherwise fallback.
func requestLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}

// loadUser reads a profile, mapping a missing one to the domain error.
func loadUser(ctx context.Context, users repository.UserRepository, userID string) (*entity.User, error) {
	user, err := users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrUserNotFound, "user %s", userID)
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}

// loadUserWithRole reads a profile and requires it to hold role.
func loadUserWithRole(ctx context.Context, users repository.UserRepository, userID string, role entity.Role) (*entity.User, error) {
	user, err := loadUser(ctx, users, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != role {
		return nil, errors.Wrapf(domainerrors.ErrRoleRequired, "%s only", role)
	}

	return user, nil
}

// acceptedRelation finds the accepted request linking caretakerID to patientID.
func acceptedRelation(ctx context.Context, connections repository.ConnectionRepository, caretakerID, patientID string) (*entity.ConnectionRequest, error) {
	requests, err := connections.FindByCaretaker(ctx, caretakerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list caretaker requests")
	}
	for _, req := range requests {
		if req.IsAccepted() && req.PatientID == patientID {
			return req, nil
		}
	}

	return nil, errors.WithStack(domainerrors.ErrNotConnected)
}

// canView reports whether viewerID may see patientID's data: the patient itself or a
// connected caretaker.
func canView(ctx context.Context, connections repository.ConnectionRepository, viewerID, patientID string) error {
	if viewerID == patientID {
		return nil
	}
	_, err := acceptedRelation(ctx, connections, viewerID, patientID)

	return err
}

// caretakersOf lists the accepted relations of the patient.
func caretakersOf(ctx context.Context, connections repository.ConnectionRepository, patientID string) ([]*entity.ConnectionRequest, error) {
	relations, err := connections.FindAcceptedByPatient(ctx, patientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list patient relations")
	}

	return relations, nil
}
