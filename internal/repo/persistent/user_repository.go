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
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error)
	AddLikedPost(ctx context.Context, userID, postID string) error
	RemoveLikedPost(ctx context.Context, userID, postID string) error
}

type userRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{col: db.Collection(model.UserCollection)}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now().UTC()
	userModel := &model.UserModel{
		ID:         primitive.NewObjectID(),
		Username:   user.Username,
		Email:      user.Email,
		Role:       user.Role,
		Following:  hexToOIDs(user.Following),
		LikedPosts: hexToOIDs(user.LikedPostIDs),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if userModel.Role == "" {
		userModel.Role = entity.RoleUser
	}

	if _, err := r.col.InsertOne(ctx, userModel); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, entity.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *userRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.col.FindOne(ctx, filter).Decode(&userModel); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, entity.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return ToUserEntity(&userModel), nil
}

// GetByIDs fetches the given users keyed by hex id; unknown ids are
// simply absent from the result.
func (r *userRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	if len(ids) == 0 {
		return map[string]*entity.User{}, nil
	}

	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": hexToOIDs(ids)}})
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer cursor.Close(ctx)

	var userModels []model.UserModel
	if err := cursor.All(ctx, &userModels); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	users := make(map[string]*entity.User, len(userModels))
	for i := range userModels {
		u := ToUserEntity(&userModels[i])
		users[u.ID] = u
	}
	return users, nil
}

func (r *userRepository) AddLikedPost(ctx context.Context, userID, postID string) error {
	return r.updateLikedPosts(ctx, userID, postID, "$addToSet")
}

func (r *userRepository) RemoveLikedPost(ctx context.Context, userID, postID string) error {
	return r.updateLikedPosts(ctx, userID, postID, "$pull")
}

func (r *userRepository) updateLikedPosts(ctx context.Context, userID, postID, op string) error {
	user, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return entity.ErrUserNotFound
	}
	post, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return fmt.Errorf("invalid post id: %w", err)
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": user}, bson.M{op: bson.M{"likedPosts": post}})
	if err != nil {
		return fmt.Errorf("failed to update liked posts: %w", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrUserNotFound
	}
	return nil
}
