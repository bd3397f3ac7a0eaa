package entity

import "time"

// Comment is embedded in its post; append order is chronological.
type Comment struct {
	AuthorID string `json:"author_id"`
	Author   *User  `json:"author,omitempty"`
	Text     string `json:"text"`
}

type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Author    *User     `json:"author,omitempty"`
	Text      string    `json:"text,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	ImageKey  string    `json:"-"`
	SOS       bool      `json:"sos"`
	Location  string    `json:"location,omitempty"`
	LikerIDs  []string  `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasContent reports whether the post carries text or an image.
func (p *Post) HasContent() bool {
	return p.Text != "" || p.ImageURL != ""
}

// LikedBy reports whether userID is in the liker set.
func (p *Post) LikedBy(userID string) bool {
	for _, id := range p.LikerIDs {
		if id == userID {
			return true
		}
	}
	return false
}
