package entity

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User never carries credentials; the password stays in the
// persistence model and is dropped by the mapper.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	Role         string    `json:"role"`
	Following    []string  `json:"following,omitempty"`
	LikedPostIDs []string  `json:"liked_posts,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
