package impl

import (
	"context"
	"testing"

	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/repository"
	"careconnect/internal/domain/service"
	mockRepo "careconnect/internal/mocks/repository"
	mockSvc "careconnect/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertService_List_ClampsLimit(t *testing.T) {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	svc := NewAlertService(alertRepo, mockSvc.NewMockSnapshotStore(t), newDiscardLogger())
	ctx := context.Background()

	alertRepo.EXPECT().ListByCaretaker(ctx, "caretaker-1", 50).Return([]*entity.Alert{{ID: "a1"}}, nil).Once()
	alertRepo.EXPECT().ListByCaretaker(ctx, "caretaker-1", 200).Return(nil, nil).Once()

	alerts, err := svc.List(ctx, "caretaker-1", 0)
	require.NoError(t, err)
	assert.Len(t, alerts, 1)

	_, err = svc.List(ctx, "caretaker-1", 1000)
	require.NoError(t, err)
}

func TestAlertService_MarkRead(t *testing.T) {
	ctx := context.Background()

	t.Run("unread alert", func(t *testing.T) {
		alertRepo := mockRepo.NewMockAlertRepository(t)
		svc := NewAlertService(alertRepo, mockSvc.NewMockSnapshotStore(t), newDiscardLogger())
		alertRepo.EXPECT().FindByID(ctx, "a1").Return(&entity.Alert{ID: "a1", CaretakerID: "caretaker-1"}, nil)
		alertRepo.EXPECT().MarkRead(ctx, "a1").Return(nil)

		require.NoError(t, svc.MarkRead(ctx, "caretaker-1", "a1"))
	})

	t.Run("already read is a no-op", func(t *testing.T) {
		alertRepo := mockRepo.NewMockAlertRepository(t)
		svc := NewAlertService(alertRepo, mockSvc.NewMockSnapshotStore(t), newDiscardLogger())
		alertRepo.EXPECT().FindByID(ctx, "a1").Return(&entity.Alert{ID: "a1", CaretakerID: "caretaker-1", Read: true}, nil)

		require.NoError(t, svc.MarkRead(ctx, "caretaker-1", "a1"))
	})

	t.Run("other caretaker's alert", func(t *testing.T) {
		alertRepo := mockRepo.NewMockAlertRepository(t)
		svc := NewAlertService(alertRepo, mockSvc.NewMockSnapshotStore(t), newDiscardLogger())
		alertRepo.EXPECT().FindByID(ctx, "a1").Return(&entity.Alert{ID: "a1", CaretakerID: "caretaker-2"}, nil)

		err := svc.MarkRead(ctx, "caretaker-1", "a1")
		assert.ErrorIs(t, err, domainerrors.ErrAlertNotFound)
	})
}

func TestAlertService_Dismiss(t *testing.T) {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	svc := NewAlertService(alertRepo, mockSvc.NewMockSnapshotStore(t), newDiscardLogger())
	ctx := context.Background()

	alertRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrAlertNotFound)
	alertRepo.EXPECT().FindByID(ctx, "a1").Return(&entity.Alert{ID: "a1", CaretakerID: "caretaker-1"}, nil)
	alertRepo.EXPECT().Delete(ctx, "a1").Return(nil)

	assert.ErrorIs(t, svc.Dismiss(ctx, "caretaker-1", "missing"), domainerrors.ErrAlertNotFound)
	require.NoError(t, svc.Dismiss(ctx, "caretaker-1", "a1"))
}

func TestAlertService_Snapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("returns stored artifact", func(t *testing.T) {
		alertRepo := mockRepo.NewMockAlertRepository(t)
		store := mockSvc.NewMockSnapshotStore(t)
		svc := NewAlertService(alertRepo, store, newDiscardLogger())
		alertRepo.EXPECT().FindByID(ctx, "a1").Return(&entity.Alert{ID: "a1", CaretakerID: "caretaker-1", ImageKey: "req-1/1.geojson"}, nil)
		store.EXPECT().Get(ctx, "req-1/1.geojson").Return([]byte(`{}`), "application/geo+json", nil)

		data, contentType, err := svc.Snapshot(ctx, "caretaker-1", "a1")

		require.NoError(t, err)
		assert.Equal(t, []byte(`{}`), data)
		assert.Equal(t, "application/geo+json", contentType)
	})

	t.Run("alert without snapshot", func(t *testing.T) {
		alertRepo := mockRepo.NewMockAlertRepository(t)
		svc := NewAlertService(alertRepo, mockSvc.NewMockSnapshotStore(t), newDiscardLogger())
		alertRepo.EXPECT().FindByID(ctx, "a1").Return(&entity.Alert{ID: "a1", CaretakerID: "caretaker-1"}, nil)

		_, _, err := svc.Snapshot(ctx, "caretaker-1", "a1")
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("expired artifact", func(t *testing.T) {
		alertRepo := mockRepo.NewMockAlertRepository(t)
		store := mockSvc.NewMockSnapshotStore(t)
		svc := NewAlertService(alertRepo, store, newDiscardLogger())
		alertRepo.EXPECT().FindByID(ctx, "a1").Return(&entity.Alert{ID: "a1", CaretakerID: "caretaker-1", ImageKey: "k"}, nil)
		store.EXPECT().Get(ctx, "k").Return(nil, "", errors.WithStack(service.ErrSnapshotNotFound))

		_, _, err := svc.Snapshot(ctx, "caretaker-1", "a1")
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}
