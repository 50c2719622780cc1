package persistent

import (
	"github.com/h9rms/wanderlust-grid-bloom/internal/model"

	"gorm.io/gorm"
)

// InteractionRepository persists like and save toggle records. Inserts are
// not pre-checked against the unique (post_id, user_id) index; a duplicate
// surfaces as gorm.ErrDuplicatedKey and the caller decides what that means.
type InteractionRepository interface {
	CreateLike(postID, userID string) error
	DeleteLike(postID, userID string) error
	IsLiked(postID, userID string) (bool, error)
	CountLikes(postID string) (int64, error)
	CreateSave(postID, userID string) error
	DeleteSave(postID, userID string) error
	IsSaved(postID, userID string) (bool, error)
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) CreateLike(postID, userID string) error {
	like := &model.LikeModel{PostID: postID, UserID: userID}
	return r.db.Create(like).Error
}

func (r *interactionRepository) DeleteLike(postID, userID string) error {
	return r.db.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&model.LikeModel{}).Error
}

func (r *interactionRepository) IsLiked(postID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error
	return count > 0, err
}

func (r *interactionRepository) CountLikes(postID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *interactionRepository) CreateSave(postID, userID string) error {
	saved := &model.SavedPostModel{PostID: postID, UserID: userID}
	return r.db.Create(saved).Error
}

func (r *interactionRepository) DeleteSave(postID, userID string) error {
	return r.db.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&model.SavedPostModel{}).Error
}

func (r *interactionRepository) IsSaved(postID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.SavedPostModel{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error
	return count > 0, err
}
