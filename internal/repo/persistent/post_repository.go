package persistent

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shripad-gm/inceptrix/internal/entity"
	"github.com/shripad-gm/inceptrix/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	Delete(ctx context.Context, id string) error
	AddComment(ctx context.Context, postID, authorID, text string) (*entity.Post, error)
	AddLike(ctx context.Context, postID, userID string) error
	RemoveLike(ctx context.Context, postID, userID string) error
	GetAll(ctx context.Context) ([]*entity.Post, error)
	GetByAuthor(ctx context.Context, authorID string) ([]*entity.Post, error)
	GetByAuthors(ctx context.Context, authorIDs []string) ([]*entity.Post, error)
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Post, error)
	FindPopular(ctx context.Context, minLikes int) ([]*entity.Post, error)
	FindSOS(ctx context.Context) ([]*entity.Post, error)
}

type postRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) PostRepository {
	return &postRepository{col: db.Collection(model.PostCollection)}
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	author, err := primitive.ObjectIDFromHex(post.AuthorID)
	if err != nil {
		return fmt.Errorf("invalid author id: %w", err)
	}

	now := time.Now().UTC()
	postModel := &model.PostModel{
		ID:        primitive.NewObjectID(),
		User:      author,
		Text:      post.Text,
		Img:       post.ImageURL,
		ImgKey:    post.ImageKey,
		SOS:       post.SOS,
		Location:  post.Location,
		Likes:     []primitive.ObjectID{},
		Comments:  []model.CommentModel{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.col.InsertOne(ctx, postModel); err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, entity.ErrPostNotFound
	}

	var postModel model.PostModel
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&postModel); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, entity.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}

	return ToPostEntity(&postModel), nil
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return entity.ErrPostNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return entity.ErrPostNotFound
	}
	return nil
}

func (r *postRepository) AddComment(ctx context.Context, postID, authorID, text string) (*entity.Post, error) {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, entity.ErrPostNotFound
	}
	author, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, fmt.Errorf("invalid author id: %w", err)
	}

	update := bson.M{
		"$push": bson.M{"comments": model.CommentModel{User: author, Text: text}},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}

	var postModel model.PostModel
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&postModel)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, entity.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	return ToPostEntity(&postModel), nil
}

func (r *postRepository) AddLike(ctx context.Context, postID, userID string) error {
	return r.updateLikes(ctx, postID, userID, "$addToSet")
}

func (r *postRepository) RemoveLike(ctx context.Context, postID, userID string) error {
	return r.updateLikes(ctx, postID, userID, "$pull")
}

func (r *postRepository) updateLikes(ctx context.Context, postID, userID, op string) error {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return entity.ErrPostNotFound
	}
	user, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{op: bson.M{"likes": user}})
	if err != nil {
		return fmt.Errorf("failed to update liker set: %w", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrPostNotFound
	}
	return nil
}

func (r *postRepository) GetAll(ctx context.Context) ([]*entity.Post, error) {
	return r.find(ctx, bson.M{}, newestFirst())
}

func (r *postRepository) GetByAuthor(ctx context.Context, authorID string) ([]*entity.Post, error) {
	author, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, entity.ErrUserNotFound
	}
	return r.find(ctx, bson.M{"user": author}, newestFirst())
}

func (r *postRepository) GetByAuthors(ctx context.Context, authorIDs []string) ([]*entity.Post, error) {
	return r.find(ctx, bson.M{"user": bson.M{"$in": hexToOIDs(authorIDs)}}, newestFirst())
}

func (r *postRepository) GetByIDs(ctx context.Context, ids []string) ([]*entity.Post, error) {
	return r.find(ctx, bson.M{"_id": bson.M{"$in": hexToOIDs(ids)}}, nil)
}

// FindPopular matches posts whose liker set has at least minLikes
// entries, using an index-on-existence check against the array
// position minLikes-1.
func (r *postRepository) FindPopular(ctx context.Context, minLikes int) ([]*entity.Post, error) {
	if minLikes < 1 {
		minLikes = 1
	}
	filter := bson.M{"likes." + strconv.Itoa(minLikes-1): bson.M{"$exists": true}}
	return r.find(ctx, filter, nil)
}

func (r *postRepository) FindSOS(ctx context.Context) ([]*entity.Post, error) {
	return r.find(ctx, bson.M{"sos": true}, nil)
}

func (r *postRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*entity.Post, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.col.Find(ctx, filter, opts)
	} else {
		cursor, err = r.col.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer cursor.Close(ctx)

	var postModels []model.PostModel
	if err := cursor.All(ctx, &postModels); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}
