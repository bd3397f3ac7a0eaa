package entity

import "errors"

var (
	ErrPostNotFound   = errors.New("post not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrNotPostOwner   = errors.New("not authorized to delete this post")
	ErrEmptyPost      = errors.New("post must have text or image")
	ErrEmptyComment   = errors.New("text field is required")
	ErrAlreadyCurated = errors.New("post already curated")
)
