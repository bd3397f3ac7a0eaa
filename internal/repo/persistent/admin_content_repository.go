package persistent

import (
	"context"
	"fmt"
	"time"

	"github.com/shripad-gm/inceptrix/internal/entity"
	"github.com/shripad-gm/inceptrix/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AdminContentRepository interface {
	ExistsForPost(ctx context.Context, postID string) (bool, error)
	Create(ctx context.Context, curatorID, postID string) (*entity.AdminContent, error)
	GetAll(ctx context.Context) ([]*entity.AdminContent, error)
}

type adminContentRepository struct {
	col *mongo.Collection
}

func NewAdminContentRepository(db *mongo.Database) AdminContentRepository {
	return &adminContentRepository{col: db.Collection(model.AdminContentCollection)}
}

func (r *adminContentRepository) ExistsForPost(ctx context.Context, postID string) (bool, error) {
	post, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return false, fmt.Errorf("invalid post id: %w", err)
	}

	count, err := r.col.CountDocuments(ctx, bson.M{"originalPost": post})
	if err != nil {
		return false, fmt.Errorf("failed to check curated post: %w", err)
	}
	return count > 0, nil
}

// Create inserts a curation entry. A duplicate-key error from the
// unique originalPost index is reported as entity.ErrAlreadyCurated so
// concurrent sweeps racing on the same post stay idempotent.
func (r *adminContentRepository) Create(ctx context.Context, curatorID, postID string) (*entity.AdminContent, error) {
	curator, err := primitive.ObjectIDFromHex(curatorID)
	if err != nil {
		return nil, fmt.Errorf("invalid curator id: %w", err)
	}
	post, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, fmt.Errorf("invalid post id: %w", err)
	}

	now := time.Now().UTC()
	contentModel := &model.AdminContentModel{
		ID:           primitive.NewObjectID(),
		User:         curator,
		OriginalPost: post,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := r.col.InsertOne(ctx, contentModel); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, entity.ErrAlreadyCurated
		}
		return nil, fmt.Errorf("failed to insert admin content: %w", err)
	}

	return ToAdminContentEntity(contentModel), nil
}

func (r *adminContentRepository) GetAll(ctx context.Context) ([]*entity.AdminContent, error) {
	cursor, err := r.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query admin content: %w", err)
	}
	defer cursor.Close(ctx)

	var contentModels []model.AdminContentModel
	if err := cursor.All(ctx, &contentModels); err != nil {
		return nil, fmt.Errorf("failed to decode admin content: %w", err)
	}

	entries := make([]*entity.AdminContent, len(contentModels))
	for i := range contentModels {
		entries[i] = ToAdminContentEntity(&contentModels[i])
	}
	return entries, nil
}
