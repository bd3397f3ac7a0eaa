package entity

import "time"

const (
	NotificationTypeLike   = "like"
	NotificationTypeFollow = "follow"
)

// Notification is an append-only record; it is created as a side
// effect of a like and never updated.
type Notification struct {
	ID        string    `json:"id"`
	FromID    string    `json:"from"`
	ToID      string    `json:"to"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
