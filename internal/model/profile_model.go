package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Username  *string   `gorm:"type:varchar(100)" json:"username"`
	FullName  *string   `gorm:"type:varchar(255)" json:"full_name"`
	Bio       *string   `gorm:"type:text" json:"bio"`
	AvatarURL *string   `gorm:"type:varchar(500)" json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}

func (p *ProfileModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
