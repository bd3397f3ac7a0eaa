package main

import (
	"context"
	"fmt"
	"time"

	"github.com/shripad-gm/inceptrix/internal/entity"
	"github.com/shripad-gm/inceptrix/internal/model"
	"github.com/shripad-gm/inceptrix/internal/repo/persistent"
	"github.com/shripad-gm/inceptrix/pkg/config"
	"github.com/shripad-gm/inceptrix/pkg/database"
	"github.com/shripad-gm/inceptrix/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()

	client, err := database.NewMongoClient(cfg)
	if err != nil {
		log.Error("Failed to connect to MongoDB: %v", err)
		panic(err)
	}
	db := client.Database(cfg.MongoDBName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer client.Disconnect(context.Background())

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Error("Failed to create indexes: %v", err)
		panic(err)
	}

	if err := seedDatabase(ctx, db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(ctx context.Context, db *mongo.Database, log *logger.Logger) error {
	users := db.Collection(model.UserCollection)

	count, err := users.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		log.Info("Users already present, skipping seed")
		return nil
	}

	testUsers := []struct {
		email    string
		username string
		password string
		role     string
	}{
		{"admin@test.com", "admin", "admin123", entity.RoleAdmin},
		{"alice@test.com", "alice", "password123", entity.RoleUser},
		{"bob@test.com", "bob", "password123", entity.RoleUser},
		{"charlie@test.com", "charlie", "password123", entity.RoleUser},
	}

	now := time.Now().UTC()
	userIDs := make(map[string]primitive.ObjectID, len(testUsers))
	for _, u := range testUsers {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		doc := model.UserModel{
			ID:         primitive.NewObjectID(),
			Username:   u.username,
			Email:      u.email,
			Password:   string(hashed),
			Role:       u.role,
			Following:  []primitive.ObjectID{},
			LikedPosts: []primitive.ObjectID{},
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if _, err := users.InsertOne(ctx, doc); err != nil {
			return fmt.Errorf("failed to insert user %s: %w", u.username, err)
		}
		userIDs[u.username] = doc.ID
		log.Info("Created user %s", u.username)
	}

	// Alice follows Bob and Charlie so the following feed has content
	if _, err := users.UpdateOne(ctx, bson.M{"_id": userIDs["alice"]}, bson.M{
		"$set": bson.M{"following": []primitive.ObjectID{userIDs["bob"], userIDs["charlie"]}},
	}); err != nil {
		return fmt.Errorf("failed to set following: %w", err)
	}

	postRepo := persistent.NewPostRepository(db)
	userRepo := persistent.NewUserRepository(db)

	seedPosts := []struct {
		author   string
		text     string
		location string
		sos      bool
	}{
		{"bob", "First day at the new makerspace, come say hi", "Bengaluru", false},
		{"charlie", "Flood water rising near the old bridge, need sandbags", "Riverside", true},
		{"alice", "Sunset from the rooftop garden", "Bengaluru", false},
	}

	postIDs := make([]string, 0, len(seedPosts))
	for _, p := range seedPosts {
		post := &entity.Post{
			AuthorID: userIDs[p.author].Hex(),
			Text:     p.text,
			Location: p.location,
			SOS:      p.sos,
		}
		if err := postRepo.Create(ctx, post); err != nil {
			return fmt.Errorf("failed to insert post: %w", err)
		}
		postIDs = append(postIDs, post.ID)
		log.Info("Created post %s by %s", post.ID, p.author)
	}

	// Alice likes Bob's post so the curation sweep has a popular candidate
	aliceID := userIDs["alice"].Hex()
	if err := postRepo.AddLike(ctx, postIDs[0], aliceID); err != nil {
		return fmt.Errorf("failed to like post: %w", err)
	}
	if err := userRepo.AddLikedPost(ctx, aliceID, postIDs[0]); err != nil {
		return fmt.Errorf("failed to record liked post: %w", err)
	}

	return nil
}
