package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const NotificationCollection = "notifications"

type NotificationModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	From      primitive.ObjectID `bson:"from"`
	To        primitive.ObjectID `bson:"to"`
	Type      string             `bson:"type"`
	Read      bool               `bson:"read"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}
