// Package memory holds an in-memory repo.Store used by unit tests. It runs
// documents through bson marshalling so tag handling matches the real store.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/imagine-ke/imagine-api/internal/models"
)

type Store struct {
	mu          sync.RWMutex
	collections map[string][]bson.M
	unavailable bool
}

func NewStore() *Store {
	return &Store{collections: make(map[string][]bson.M)}
}

// NewUnavailableStore mimics a process started without DATABASE_URL.
func NewUnavailableStore() *Store {
	return &Store{collections: make(map[string][]bson.M), unavailable: true}
}

func (s *Store) Available() bool {
	return !s.unavailable
}

func (s *Store) Insert(_ context.Context, collection string, doc any) (string, error) {
	if s.unavailable {
		return "", models.ErrStorageUnavailable
	}

	raw, err := toRaw(doc)
	if err != nil {
		return "", err
	}
	id := primitive.NewObjectID()
	raw["_id"] = id

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], raw)
	return id.Hex(), nil
}

func (s *Store) Find(_ context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if s.unavailable {
		return []bson.M{}, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []bson.M{}
	for _, doc := range s.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		out = append(out, clone(doc))
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

func (s *Store) Count(_ context.Context, collection string, filter bson.M) (int64, error) {
	if s.unavailable {
		return 0, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			n++
		}
	}
	return n, nil
}

func (s *Store) CollectionNames(context.Context) ([]string, error) {
	if s.unavailable {
		return []string{}, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func toRaw(doc any) (bson.M, error) {
	data, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	var raw bson.M
	if err := bson.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	return raw, nil
}

func matches(doc, filter bson.M) bool {
	for key, want := range filter {
		if fmt.Sprintf("%v", doc[key]) != fmt.Sprintf("%v", want) {
			return false
		}
	}
	return true
}

func clone(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
