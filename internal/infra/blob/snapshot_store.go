// Package blob stores alert snapshot images in a gocloud.dev bucket.
package blob

import (
	"context"
	"log/slog"
	"strings"

	"careconnect/config"
	"careconnect/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Supported bucket schemes.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

type snapshotStore struct {
	bucket *blob.Bucket
}

// NewSnapshotStore wraps an open bucket.
func NewSnapshotStore(bucket *blob.Bucket) service.SnapshotStore {
	return &snapshotStore{bucket: bucket}
}

func (s *snapshotStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("snapshot key is required")
	}

	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrapf(err, "failed to write snapshot %s", key)
	}

	return nil
}

func (s *snapshotStore) Get(ctx context.Context, key string) ([]byte, string, error) {
	attrs, err := s.bucket.Attributes(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", errors.WithStack(service.ErrSnapshotNotFound)
		}

		return nil, "", errors.Wrapf(err, "failed to stat snapshot %s", key)
	}

	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed to read snapshot %s", key)
	}

	return data, attrs.ContentType, nil
}

// BucketParams holds dependencies for the bucket, injected by Fx
type BucketParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// OpenBucket opens the configured bucket URL, scoped to the configured prefix.
func OpenBucket(params BucketParams) (*blob.Bucket, error) {
	cfg := params.Config.Blob

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}
	if cfg.Prefix != "" {
		bucket = blob.PrefixedBucket(bucket, strings.TrimSuffix(cfg.Prefix, "/")+"/")
	}

	params.Logger.Info("Snapshot bucket opened", slog.String("bucket_url", cfg.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return bucket, nil
}

// Module provides the snapshot store
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		OpenBucket,
		NewSnapshotStore,
	),
)
