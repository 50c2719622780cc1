package persistent

import (
	"github.com/h9rms/wanderlust-grid-bloom/internal/entity"
	"github.com/h9rms/wanderlust-grid-bloom/internal/model"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	List() ([]*entity.Post, error)
	ListByUserID(userID string) ([]*entity.Post, error)
	ListLikedBy(userID string) ([]*entity.Post, error)
	ListSavedBy(userID string) ([]*entity.Post, error)
	Update(id string, update entity.PostUpdate) error
	Delete(id string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}

	// Hand the server-assigned id and timestamps back to the caller.
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) List() ([]*entity.Post, error) {
	var postModels []model.PostModel
	if err := r.db.Order("created_at DESC").Find(&postModels).Error; err != nil {
		return nil, err
	}
	return toPostEntities(postModels), nil
}

func (r *postRepository) ListByUserID(userID string) ([]*entity.Post, error) {
	var postModels []model.PostModel
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&postModels).Error; err != nil {
		return nil, err
	}
	return toPostEntities(postModels), nil
}

func (r *postRepository) ListLikedBy(userID string) ([]*entity.Post, error) {
	var postModels []model.PostModel
	err := r.db.Model(&model.PostModel{}).
		Joins("INNER JOIN post_likes ON posts.id = post_likes.post_id").
		Where("post_likes.user_id = ?", userID).
		Order("post_likes.created_at DESC").
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}
	return toPostEntities(postModels), nil
}

func (r *postRepository) ListSavedBy(userID string) ([]*entity.Post, error) {
	var postModels []model.PostModel
	err := r.db.Model(&model.PostModel{}).
		Joins("INNER JOIN saved_posts ON posts.id = saved_posts.post_id").
		Where("saved_posts.user_id = ?", userID).
		Order("saved_posts.created_at DESC").
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}
	return toPostEntities(postModels), nil
}

// Update applies a partial edit. Nil fields stay untouched; a pointer to
// the empty string writes NULL so a cleared location or image is absent,
// not the literal "".
func (r *postRepository) Update(id string, update entity.PostUpdate) error {
	values := map[string]interface{}{}

	if update.Title != nil {
		values["title"] = *update.Title
	}
	if update.Content != nil {
		values["content"] = *update.Content
	}
	if update.Location != nil {
		values["location"] = nullable(*update.Location)
	}
	if update.ImageURL != nil {
		values["image_url"] = nullable(*update.ImageURL)
	}

	if len(values) == 0 {
		return nil
	}

	return r.db.Model(&model.PostModel{}).Where("id = ?", id).Updates(values).Error
}

func (r *postRepository) Delete(id string) error {
	return r.db.Delete(&model.PostModel{}, "id = ?", id).Error
}

func toPostEntities(postModels []model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
