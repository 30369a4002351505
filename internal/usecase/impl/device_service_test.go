package impl

import (
	"context"
	"testing"

	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/repository"
	mockRepo "careconnect/internal/mocks/repository"
	"careconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return deviceServiceFixtures{
		service:    NewDeviceService(deviceRepo),
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	deviceInfo := &usecase.DeviceInfo{FCMToken: "fcm-token", DeviceID: "pixel-7", Platform: "android"}
	stored := &entity.UserDevice{ID: uuid.New(), UserID: "caretaker-1", FCMToken: "fcm-token", DeviceID: "pixel-7", Platform: "android", IsActive: true}

	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.MatchedBy(func(d *entity.UserDevice) bool {
			return d.UserID == "caretaker-1" && d.FCMToken == "fcm-token" && d.DeviceID == "pixel-7" && d.IsActive
		})).
		Return(stored, nil)

	device, err := fx.service.RegisterDevice(ctx, "caretaker-1", deviceInfo)

	require.NoError(t, err)
	assert.Same(t, stored, device)
}

func TestDeviceService_RegisterDevice_TokenContended(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().UpsertDevice(ctx, mock.Anything).Return(nil, repository.ErrDuplicateDevice)

	_, err := fx.service.RegisterDevice(ctx, "caretaker-1", &usecase.DeviceInfo{FCMToken: "new", DeviceID: "pixel-7", Platform: "android"})

	assert.ErrorIs(t, err, repository.ErrDuplicateDevice)
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("owner", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, id).Return(&entity.UserDevice{ID: id, UserID: "patient-1"}, nil)
		fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, id, "fresh").Return(nil)

		require.NoError(t, fx.service.UpdateFCMToken(ctx, "patient-1", id, "fresh"))
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, id).Return(nil, repository.ErrDeviceNotFound)

		err := fx.service.UpdateFCMToken(ctx, "patient-1", id, "fresh")
		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})

	t.Run("another user's device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, id).Return(&entity.UserDevice{ID: id, UserID: "caretaker-1"}, nil)

		err := fx.service.UpdateFCMToken(ctx, "patient-1", id, "fresh")
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	expected := []*entity.UserDevice{{ID: uuid.New(), UserID: "patient-1"}, {ID: uuid.New(), UserID: "patient-1"}}

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, "patient-1").Return(expected, nil)

	devices, err := fx.service.GetUserDevices(ctx, "patient-1")

	require.NoError(t, err)
	assert.Equal(t, expected, devices)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, id).Return(&entity.UserDevice{ID: id, UserID: "patient-1"}, nil)
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, id).Return(nil)

	require.NoError(t, fx.service.DeactivateDevice(ctx, "patient-1", id))
}
