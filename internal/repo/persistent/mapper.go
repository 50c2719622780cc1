package persistent

import (
	"github.com/h9rms/wanderlust-grid-bloom/internal/entity"
	"github.com/h9rms/wanderlust-grid-bloom/internal/model"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Content:   m.Content,
		Location:  strVal(m.Location),
		ImageURL:  strVal(m.ImageURL),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Author:    entity.UnknownAuthor(),
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:        e.ID,
		UserID:    e.UserID,
		Title:     e.Title,
		Content:   e.Content,
		Location:  strPtr(e.Location),
		ImageURL:  strPtr(e.ImageURL),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToProfileEntity(m *model.ProfileModel) *entity.Profile {
	if m == nil {
		return nil
	}

	return &entity.Profile{
		ID:        m.ID,
		UserID:    m.UserID,
		Username:  strVal(m.Username),
		FullName:  strVal(m.FullName),
		Bio:       strVal(m.Bio),
		AvatarURL: strVal(m.AvatarURL),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToProfileModel(e *entity.Profile) *model.ProfileModel {
	if e == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:        e.ID,
		UserID:    e.UserID,
		Username:  strPtr(e.Username),
		FullName:  strPtr(e.FullName),
		Bio:       strPtr(e.Bio),
		AvatarURL: strPtr(e.AvatarURL),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		Password:  m.Password,
		Role:      entity.UserRole(m.Role),
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Email:     e.Email,
		Password:  e.Password,
		Role:      string(e.Role),
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// Nullable columns are empty strings on the entity side.

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
