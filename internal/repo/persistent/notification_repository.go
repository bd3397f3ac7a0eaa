package persistent

import (
	"context"
	"fmt"
	"time"

	"github.com/shripad-gm/inceptrix/internal/entity"
	"github.com/shripad-gm/inceptrix/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type NotificationRepository interface {
	Create(ctx context.Context, fromID, toID, notificationType string) (*entity.Notification, error)
}

type notificationRepository struct {
	col *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) NotificationRepository {
	return &notificationRepository{col: db.Collection(model.NotificationCollection)}
}

func (r *notificationRepository) Create(ctx context.Context, fromID, toID, notificationType string) (*entity.Notification, error) {
	from, err := primitive.ObjectIDFromHex(fromID)
	if err != nil {
		return nil, fmt.Errorf("invalid sender id: %w", err)
	}
	to, err := primitive.ObjectIDFromHex(toID)
	if err != nil {
		return nil, fmt.Errorf("invalid recipient id: %w", err)
	}

	now := time.Now().UTC()
	notificationModel := &model.NotificationModel{
		ID:        primitive.NewObjectID(),
		From:      from,
		To:        to,
		Type:      notificationType,
		Read:      false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.col.InsertOne(ctx, notificationModel); err != nil {
		return nil, fmt.Errorf("failed to insert notification: %w", err)
	}

	return ToNotificationEntity(notificationModel), nil
}
