// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"careconnect/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when a token is still held by a concurrent registration.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// UpsertDevice registers a device under (user_id, device_id), releasing its token from
	// any other registration, and returns the stored row.
	UpsertDevice(ctx context.Context, device *entity.UserDevice) (*entity.UserDevice, error)

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindDevicesByUser retrieves all devices for a user, including inactive ones.
	FindDevicesByUser(ctx context.Context, userID string) ([]*entity.UserDevice, error)

	// FindActiveDevicesByUsers retrieves the active devices of several users at once.
	FindActiveDevicesByUsers(ctx context.Context, userIDs []string) ([]*entity.UserDevice, error)

	// UpdateFCMToken rotates the token of a device, releasing it from any other registration.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// DeactivateByTokens marks every device holding one of tokens as inactive.
	DeactivateByTokens(ctx context.Context, tokens []string) (int64, error)

	// DeleteDevice soft-deletes a device by its ID.
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
