package firestore

import (
	"context"

	domainerrors "careconnect/internal/domain/errors"

	gcfirestore "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// getAll runs q and converts every document with conv.
func getAll[T any, R any](ctx context.Context, q gcfirestore.Query, conv func(id string, doc *T) R) ([]R, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []R
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to iterate documents")
		}

		var doc T
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode document %s", snap.Ref.ID)
		}
		out = append(out, conv(snap.Ref.ID, &doc))
	}

	return out, nil
}

// getOne reads a single document. notFound is returned when it does not exist.
func getOne[T any](ctx context.Context, ref *gcfirestore.DocumentRef, notFound error) (*T, error) {
	snap, err := ref.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to read document "+ref.ID)
	}

	var doc T
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode document %s", ref.ID)
	}

	return &doc, nil
}

// update applies updates, mapping a missing document to notFound.
func update(ctx context.Context, ref *gcfirestore.DocumentRef, notFound error, updates ...gcfirestore.Update) error {
	if _, err := ref.Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return notFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update document "+ref.ID)
	}

	return nil
}

// deleteQuery removes every document matched by q and returns how many were removed.
func deleteQuery(ctx context.Context, client *gcfirestore.Client, q gcfirestore.Query) (int, error) {
	iter := q.Select().Documents(ctx)
	defer iter.Stop()

	var refs []*gcfirestore.DocumentRef
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return 0, domainerrors.NewDatabaseExecuteError(err, "failed to list documents for deletion")
		}
		refs = append(refs, snap.Ref)
	}
	if len(refs) == 0 {
		return 0, nil
	}

	bw := client.BulkWriter(ctx)
	jobs := make([]*gcfirestore.BulkWriterJob, 0, len(refs))
	for _, ref := range refs {
		job, err := bw.Delete(ref)
		if err != nil {
			bw.End()

			return 0, errors.Wrap(err, "failed to enqueue delete")
		}
		jobs = append(jobs, job)
	}
	bw.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete document")
		}
	}

	return len(refs), nil
}

// Module provides the Firestore repositories
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewUserRepository,
		NewConnectionRepository,
		NewTrackingRepository,
		NewAlertRepository,
		NewMedicineRepository,
		NewChatRepository,
		NewAssistantRepository,
	),
)
