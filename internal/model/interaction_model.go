package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikeModel and SavedPostModel are hard-deleted toggle records. The unique
// composite index is the only consistency guard: a second insert for the
// same (post, user) pair is rejected by the store, not pre-checked.

type LikeModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_post_user_like" json:"post_id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_post_user_like" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (LikeModel) TableName() string {
	return "post_likes"
}

func (l *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

type SavedPostModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_post_user_save" json:"post_id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_post_user_save" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (SavedPostModel) TableName() string {
	return "saved_posts"
}

func (s *SavedPostModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
