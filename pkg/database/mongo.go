package database

import (
	"context"
	"fmt"
	"time"

	"github.com/shripad-gm/inceptrix/pkg/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMongoClient connects to MongoDB and verifies the connection with
// a ping before returning.
func NewMongoClient(cfg *config.Config) (*mongo.Client, error) {
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("mongo connection URI is empty")
	}

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).
		SetMaxPoolSize(50).
		SetMinPoolSize(10).
		SetConnectTimeout(5 * time.Second).
		SetSocketTimeout(10 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	ctxPing, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancelPing()

	if err := client.Ping(ctxPing, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the indexes the application relies on. The
// unique index on admin_contents.originalPost is what keeps the
// curation sweep idempotent under concurrent runs.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	users := db.Collection("users")
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetName("user_username").SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create users.username index: %w", err)
	}

	posts := db.Collection("posts")
	if _, err := posts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("post_created_at"),
	}); err != nil {
		return fmt.Errorf("failed to create posts.createdAt index: %w", err)
	}

	adminContents := db.Collection("admincontents")
	if _, err := adminContents.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "originalPost", Value: 1}},
		Options: options.Index().SetName("admin_content_original_post").SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create admincontents.originalPost index: %w", err)
	}

	return nil
}
