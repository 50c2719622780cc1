package entity

import (
	"io"
	"time"
)

type Post struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Location  string     `json:"location,omitempty"`
	ImageURL  string     `json:"image_url,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Author    AuthorInfo `json:"profiles"`
}

// AuthorInfo is the read-side projection of the author's profile joined
// onto a post. A post whose author has no profile row carries the Unknown
// placeholder with empty fields; it is never null.
type AuthorInfo struct {
	Known     bool   `json:"known"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func KnownAuthor(username, fullName, avatarURL string) AuthorInfo {
	return AuthorInfo{
		Known:     true,
		Username:  username,
		FullName:  fullName,
		AvatarURL: avatarURL,
	}
}

func UnknownAuthor() AuthorInfo {
	return AuthorInfo{}
}

// ImageSource is the image attached to a new or edited post: either an
// uploaded file or an external URL, never both. A zero ImageSource means
// no image.
type ImageSource struct {
	File        io.Reader
	Filename    string
	ContentType string
	URL         string
}

func (s ImageSource) HasFile() bool {
	return s.File != nil
}

func (s ImageSource) IsZero() bool {
	return s.File == nil && s.URL == ""
}

// PostUpdate carries a partial edit. Nil fields are left unchanged; a
// pointer to the empty string persists the column as NULL (an explicitly
// cleared location or image is absent, not "").
type PostUpdate struct {
	Title    *string
	Content  *string
	Location *string
	ImageURL *string
}
