package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const AdminContentCollection = "admincontents"

// AdminContentModel carries a unique index on originalPost (see
// pkg/database.EnsureIndexes), so a post can be curated at most once.
type AdminContentModel struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	User         primitive.ObjectID `bson:"user"`
	OriginalPost primitive.ObjectID `bson:"originalPost"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}
