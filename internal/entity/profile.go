package entity

import "time"

// Profile holds the public fields of an identity, one row per user. All
// fields are optional and mutable only by the owner.
type Profile struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username,omitempty"`
	FullName  string    `json:"full_name,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileUpdate carries a partial profile edit, same pointer semantics as
// PostUpdate.
type ProfileUpdate struct {
	Username  *string
	FullName  *string
	Bio       *string
	AvatarURL *string
}
