package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const PostCollection = "posts"

type CommentModel struct {
	User primitive.ObjectID `bson:"user"`
	Text string             `bson:"text"`
}

type PostModel struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	User      primitive.ObjectID   `bson:"user"`
	Text      string               `bson:"text,omitempty"`
	Img       string               `bson:"img,omitempty"`
	ImgKey    string               `bson:"imgKey,omitempty"`
	SOS       bool                 `bson:"sos"`
	Location  string               `bson:"location,omitempty"`
	Likes     []primitive.ObjectID `bson:"likes"`
	Comments  []CommentModel       `bson:"comments"`
	CreatedAt time.Time            `bson:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt"`
}
