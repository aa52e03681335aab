// path: database/mongo.go
package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pcgaming-glitch/SafeNet-Blacklist/models"
)

const mongoOpTimeout = 8 * time.Second

// MongoStore backs the record collection with a MongoDB collection.
// Same contract as JSONStore; inserts are individually durable so no
// extra locking is needed here.
type MongoStore struct {
	client *mongo.Client
	col    *mongo.Collection
}

// OpenMongo connects, pings, and ensures the createdAt index used by
// the newest-first listing.
func OpenMongo(ctx context.Context, uri, dbname string) (*MongoStore, error) {
	start := time.Now()

	dctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	c, err := mongo.Connect(dctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err = c.Ping(dctx, nil); err != nil {
		_ = c.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	col := c.Database(dbname).Collection("reports")
	if _, err := col.Indexes().CreateOne(dctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	}); err != nil {
		log.Printf("mongo: index creation warning: %v", err)
	}

	log.Printf("mongo: connected ok in %s", time.Since(start).Round(time.Millisecond))
	return &MongoStore{client: c, col: col}, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) Append(ctx context.Context, r models.Report) error {
	octx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()
	if _, err := s.col.InsertOne(octx, r); err != nil {
		return &StorageError{Op: "insert", Err: err}
	}
	return nil
}

func (s *MongoStore) All(ctx context.Context) ([]models.Report, error) {
	octx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.col.Find(octx, bson.M{}, opts)
	if err != nil {
		return nil, &StorageError{Op: "find", Err: err}
	}
	defer cur.Close(octx)

	var reports []models.Report
	for cur.Next(octx) {
		var r models.Report
		if err := cur.Decode(&r); err != nil {
			return nil, &StorageError{Op: "decode", Err: err}
		}
		reports = append(reports, r)
	}
	if err := cur.Err(); err != nil {
		return nil, &StorageError{Op: "cursor", Err: err}
	}
	return reports, nil
}
