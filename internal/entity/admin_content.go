package entity

import "time"

// AdminContent mirrors a qualifying post into the admin moderation
// queue. At most one entry exists per post, enforced by a unique
// index on the original post id.
type AdminContent struct {
	ID             string    `json:"id"`
	CuratorID      string    `json:"user_id"`
	Curator        *User     `json:"user,omitempty"`
	OriginalPostID string    `json:"original_post_id"`
	OriginalPost   *Post     `json:"original_post,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
