package blobstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

type mongoDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Name      string        `bson:"name"`
	Body      []byte        `bson:"body"`
	CreatedAt time.Time     `bson:"createdAt"`
}

// MongoStore keeps document versions in a collection as {name, body, createdAt}.
type MongoStore struct {
	col *mongo.Collection
	log *zap.Logger
}

var _ Store = (*MongoStore)(nil)

func NewMongoStore(col *mongo.Collection, log *zap.Logger) *MongoStore {
	return &MongoStore{col: col, log: log}
}

func (m *MongoStore) Get(ctx context.Context, name string) ([]byte, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	var doc mongoDocument
	if err := m.col.FindOne(ctx, bson.M{"name": name}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find %s: %w", name, err)
	}
	return doc.Body, nil
}

func (m *MongoStore) Put(ctx context.Context, name string, body []byte) error {
	res, err := m.col.DeleteMany(ctx, bson.M{"name": name})
	if err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}

	_, err = m.col.InsertOne(ctx, mongoDocument{
		Name:      name,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("insert %s: %w", name, err)
	}
	m.log.Debug("document stored", zap.String("name", name), zap.Int64("replaced", res.DeletedCount))
	return nil
}

// EnsureIndexes creates the lookup index used by Get.
func (m *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := m.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	return nil
}
