package database

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemStore is an in-memory Store used by the tests and for running the backend
// without a MongoDB instance. It mirrors the MongoStore contract: equality
// filters, generated hex ObjectIDs, insert-if-absent upserts.
type MemStore struct {
	mu          sync.Mutex
	name        string
	collections map[string][]bson.M
}

func NewMemStore(name string) *MemStore {
	return &MemStore{
		name:        name,
		collections: make(map[string][]bson.M),
	}
}

func (s *MemStore) Connected() bool { return true }

func (s *MemStore) Name() string { return s.name }

func (s *MemStore) CreateDocument(_ context.Context, collection string, doc any) (string, error) {
	fields, err := toDocument(doc)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := bson.NewObjectID()
	fields["_id"] = id
	s.collections[collection] = append(s.collections[collection], fields)
	return id.Hex(), nil
}

func (s *MemStore) GetDocuments(_ context.Context, collection string, filter bson.M) ([]bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := make([]bson.M, 0)
	for _, d := range s.collections[collection] {
		if matches(d, filter) {
			docs = append(docs, d)
		}
	}
	return docs, nil
}

func (s *MemStore) FindOne(_ context.Context, collection string, filter bson.M) (bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.collections[collection] {
		if matches(d, filter) {
			return d, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) CountDocuments(_ context.Context, collection string, filter bson.M) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, d := range s.collections[collection] {
		if matches(d, filter) {
			count++
		}
	}
	return count, nil
}

func (s *MemStore) UpsertDocument(_ context.Context, collection string, filter bson.M, doc any) (bool, error) {
	fields, err := toDocument(doc)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.collections[collection] {
		if matches(d, filter) {
			return false, nil
		}
	}
	fields["_id"] = bson.NewObjectID()
	s.collections[collection] = append(s.collections[collection], fields)
	return true, nil
}

func (s *MemStore) ListCollectionNames(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// InsertRaw places a document into a collection as-is, bypassing the bson
// roundtrip. Tests use it to model sparse documents written by other clients.
func (s *MemStore) InsertRaw(collection string, doc bson.M) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], doc)
}

func matches(doc bson.M, filter bson.M) bool {
	for key, want := range filter {
		got, ok := doc[key]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
