package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrSnapshotNotFound is returned when no object exists under the key.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore keeps the images attached to alerts.
type SnapshotStore interface {
	// Put stores data under key.
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// Get returns the stored bytes and their content type.
	Get(ctx context.Context, key string) ([]byte, string, error)
}
