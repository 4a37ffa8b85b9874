package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	UserCollection    = "user"
	ProductCollection = "product"
	OrderCollection   = "order"
)

// Collections lists every collection this backend persists to.
func Collections() []string {
	return []string{UserCollection, ProductCollection, OrderCollection}
}

var (
	// ErrStoreUnavailable means no database connection is established.
	ErrStoreUnavailable = errors.New("database not available")
	// ErrNotFound means no document matched the filter.
	ErrNotFound = errors.New("document not found")
)

// Store is the document-store contract the services are written against.
// MongoStore backs it in production, MemStore in tests.
type Store interface {
	CreateDocument(ctx context.Context, collection string, doc any) (string, error)
	GetDocuments(ctx context.Context, collection string, filter bson.M) ([]bson.M, error)
	FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error)
	CountDocuments(ctx context.Context, collection string, filter bson.M) (int64, error)
	// UpsertDocument inserts doc only if nothing matches filter. Reports
	// whether an insert actually happened.
	UpsertDocument(ctx context.Context, collection string, filter bson.M, doc any) (bool, error)
	ListCollectionNames(ctx context.Context) ([]string, error)
	Name() string
	Connected() bool
}

// MongoStore owns the single mongo client for the process. A MongoStore with a
// nil db is degraded: every operation returns ErrStoreUnavailable, but the
// process keeps serving so the diagnostics endpoint can report the state.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect builds the process-wide store from DATABASE_URL and DATABASE_NAME.
// Connection failures never abort startup; they yield a degraded store.
func Connect() *MongoStore {
	uri := os.Getenv("DATABASE_URL")
	if uri == "" {
		log.Warn().Msg("DATABASE_URL not set, store is degraded")
		return Disconnected()
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)
	client, err := mongo.Connect(opts)
	if err != nil {
		log.Error().Err(err).Msg("mongo connect failed, store is degraded")
		return Disconnected()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Error().Err(err).Msg("mongo ping failed, store is degraded")
		return Disconnected()
	}

	name := os.Getenv("DATABASE_NAME")
	if name == "" {
		name = "helioskin"
	}
	log.Info().Str("database", name).Msg("connected to MongoDB")
	return &MongoStore{client: client, db: client.Database(name)}
}

// Disconnected returns a store that is permanently degraded.
func Disconnected() *MongoStore {
	return &MongoStore{}
}

func (s *MongoStore) Connected() bool {
	return s.db != nil
}

func (s *MongoStore) Name() string {
	if s.db == nil {
		return ""
	}
	return s.db.Name()
}

func (s *MongoStore) CreateDocument(ctx context.Context, collection string, doc any) (string, error) {
	if s.db == nil {
		return "", ErrStoreUnavailable
	}
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

func (s *MongoStore) GetDocuments(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}
	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	docs := make([]bson.M, 0)
	for cursor.Next(ctx) {
		var d bson.M
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", collection, err)
		}
		docs = append(docs, d)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor on %s: %w", collection, err)
	}
	return docs, nil
}

func (s *MongoStore) FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}
	var d bson.M
	err := s.db.Collection(collection).FindOne(ctx, filter).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find one in %s: %w", collection, err)
	}
	return d, nil
}

func (s *MongoStore) CountDocuments(ctx context.Context, collection string, filter bson.M) (int64, error) {
	if s.db == nil {
		return 0, ErrStoreUnavailable
	}
	count, err := s.db.Collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return count, nil
}

func (s *MongoStore) UpsertDocument(ctx context.Context, collection string, filter bson.M, doc any) (bool, error) {
	if s.db == nil {
		return false, ErrStoreUnavailable
	}
	fields, err := toDocument(doc)
	if err != nil {
		return false, fmt.Errorf("encode %s document: %w", collection, err)
	}
	update := bson.M{"$setOnInsert": fields}
	opts := options.UpdateOne().SetUpsert(true)
	res, err := s.db.Collection(collection).UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return false, fmt.Errorf("upsert into %s: %w", collection, err)
	}
	return res.UpsertedCount == 1, nil
}

func (s *MongoStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

// toDocument flattens any bson-taggable value into a bson.M.
func toDocument(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
