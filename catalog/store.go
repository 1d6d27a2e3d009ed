package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/raushankrgupta/fitly-ai/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no option matches a (category, value) pair.
var ErrNotFound = errors.New("option not found")

// ErrDuplicate is returned when an insert races with another creator of the
// same (category, value). Callers treat it as "already exists" and re-lookup.
var ErrDuplicate = errors.New("option already exists")

// Store is the persistence handle the catalog works against. The mongo
// implementation below is the production one; tests inject an in-memory fake.
type Store interface {
	FindOne(ctx context.Context, category, value string) (*models.Option, error)
	Find(ctx context.Context, category string, limit int) ([]models.Option, error)
	Insert(ctx context.Context, opt *models.Option) error
	Replace(ctx context.Context, opt *models.Option) error
	IncrementUsage(ctx context.Context, category, value string) error
}

// MongoStore backs the catalog with a MongoDB collection.
type MongoStore struct {
	col *mongo.Collection
}

// NewMongoStore wraps a collection handle, typically
// utils.GetCollection(config.DBName, "prompt_options").
func NewMongoStore(col *mongo.Collection) *MongoStore {
	return &MongoStore{col: col}
}

func (s *MongoStore) FindOne(ctx context.Context, category, value string) (*models.Option, error) {
	var opt models.Option
	err := s.col.FindOne(ctx, bson.M{"category": category, "value": value}).Decode(&opt)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load option %s:%s: %v", category, value, err)
	}
	return &opt, nil
}

// Find returns active options for a category, most used first, label as
// tie-break so pickers render in a stable order.
func (s *MongoStore) Find(ctx context.Context, category string, limit int) ([]models.Option, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "usage_count", Value: -1}, {Key: "label", Value: 1}})
	if limit > 0 {
		findOpts = findOpts.SetLimit(int64(limit))
	}

	cursor, err := s.col.Find(ctx, bson.M{"category": category, "is_active": true}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to query options for %s: %v", category, err)
	}
	defer cursor.Close(ctx)

	var opts []models.Option
	if err := cursor.All(ctx, &opts); err != nil {
		return nil, fmt.Errorf("failed to decode options for %s: %v", category, err)
	}
	return opts, nil
}

func (s *MongoStore) Insert(ctx context.Context, opt *models.Option) error {
	_, err := s.col.InsertOne(ctx, opt)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to insert option %s:%s: %v", opt.Category, opt.Value, err)
	}
	return nil
}

func (s *MongoStore) Replace(ctx context.Context, opt *models.Option) error {
	opt.UpdatedAt = time.Now()
	_, err := s.col.ReplaceOne(ctx, bson.M{"category": opt.Category, "value": opt.Value}, opt)
	if err != nil {
		return fmt.Errorf("failed to update option %s:%s: %v", opt.Category, opt.Value, err)
	}
	return nil
}

func (s *MongoStore) IncrementUsage(ctx context.Context, category, value string) error {
	now := time.Now()
	_, err := s.col.UpdateOne(ctx,
		bson.M{"category": category, "value": value},
		bson.M{
			"$inc": bson.M{"usage_count": 1},
			"$set": bson.M{"last_used": now, "updated_at": now},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to bump usage for %s:%s: %v", category, value, err)
	}
	return nil
}

// EnsureIndexes creates the unique (category, value) index and the ranking
// index. Called once at startup.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "value", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "category", Value: 1}, {Key: "usage_count", Value: -1}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create option indexes: %v", err)
	}
	return nil
}
