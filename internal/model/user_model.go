package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const UserCollection = "users"

type UserModel struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty"`
	Username   string               `bson:"username"`
	Email      string               `bson:"email,omitempty"`
	Password   string               `bson:"password,omitempty"`
	Role       string               `bson:"role"`
	Following  []primitive.ObjectID `bson:"following"`
	LikedPosts []primitive.ObjectID `bson:"likedPosts"`
	CreatedAt  time.Time            `bson:"createdAt"`
	UpdatedAt  time.Time            `bson:"updatedAt"`
}
