// Package repo defines the document store contract the HTTP layer is built
// against. Documents are addressed by collection name only; there is no
// per-entity repository because every operation is a plain insert or an
// exact-match find.
package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

type Store interface {
	// Insert persists one document and returns the generated identifier as a
	// hex string. Returns models.ErrStorageUnavailable when no store is
	// configured.
	Insert(ctx context.Context, collection string, doc any) (string, error)

	// Find returns up to limit raw documents matching an exact-match filter,
	// in store-native order. An unavailable store or an empty collection
	// yields an empty slice, never an error.
	Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)

	// Count reports the number of documents matching the filter. Zero when
	// the store is unavailable.
	Count(ctx context.Context, collection string, filter bson.M) (int64, error)

	// CollectionNames lists the collections present in the store. Used only
	// by diagnostics.
	CollectionNames(ctx context.Context) ([]string, error)

	// Available reports whether a store connection is configured.
	Available() bool
}
