package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/imagine-ke/imagine-api/internal/models"
	"github.com/imagine-ke/imagine-api/internal/repo"
)

type store struct {
	db *mongo.Database
}

// NewStore wraps a mongo database as a repo.Store. db may be nil when no
// DATABASE_URL is configured; the store then degrades to empty reads and
// failing writes instead of breaking startup.
func NewStore(db *mongo.Database) repo.Store {
	return &store{db: db}
}

func (s *store) Available() bool {
	return s.db != nil
}

func (s *store) Insert(ctx context.Context, collection string, doc any) (string, error) {
	if s.db == nil {
		return "", models.ErrStorageUnavailable
	}

	result, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("invalid inserted id: %T %+v", result.InsertedID, result.InsertedID)
	}

	return oid.Hex(), nil
}

func (s *store) Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if s.db == nil {
		return []bson.M{}, nil
	}
	if filter == nil {
		filter = bson.M{}
	}

	opts := options.Find().SetLimit(limit)
	cursor, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode documents from %s: %w", collection, err)
	}
	return docs, nil
}

func (s *store) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	if s.db == nil {
		return 0, nil
	}
	if filter == nil {
		filter = bson.M{}
	}
	return s.db.Collection(collection).CountDocuments(ctx, filter)
}

func (s *store) CollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return []string{}, nil
	}
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}
