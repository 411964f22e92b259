package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const submittedAtField = "submittedAt"

// MongoStore appends documents to collections of one MongoDB database.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
	now    func() time.Time
}

// ConnectMongo dials uri and verifies the connection.
func ConnectMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}
	return &MongoStore{client: client, db: client.Database(database), now: time.Now}, nil
}

func (s *MongoStore) Append(ctx context.Context, collection string, fields map[string]interface{}) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, buildDocument(fields, s.now()))
	if err != nil {
		return "", fmt.Errorf("failed to append to %s: %w", collection, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// buildDocument copies fields and adds the server timestamp. A caller
// supplied submittedAt is overwritten.
func buildDocument(fields map[string]interface{}, now time.Time) bson.M {
	doc := make(bson.M, len(fields)+1)
	for k, v := range fields {
		doc[k] = v
	}
	doc[submittedAtField] = primitive.NewDateTimeFromTime(now.UTC())
	return doc
}
