package entity

import "time"

// Like and SavedPost are toggle records: created on toggle-on, deleted on
// toggle-off, at most one per (post, user) pair. No soft delete, no history.

type Like struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type SavedPost struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeState is the viewer-scoped like view of a post. Count is a display
// counter backed by a cache, not re-verified against the store per toggle.
type LikeState struct {
	Liked bool  `json:"liked"`
	Count int64 `json:"count"`
}

type SaveState struct {
	Saved bool `json:"saved"`
}
