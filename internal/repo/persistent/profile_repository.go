package persistent

import (
	"github.com/h9rms/wanderlust-grid-bloom/internal/entity"
	"github.com/h9rms/wanderlust-grid-bloom/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(profile *entity.Profile) error
	GetByUserID(userID string) (*entity.Profile, error)
	GetByUserIDs(userIDs []string) ([]*entity.Profile, error)
	Update(userID string, update entity.ProfileUpdate) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(profile *entity.Profile) error {
	profileModel := ToProfileModel(profile)
	if err := r.db.Create(profileModel).Error; err != nil {
		return err
	}
	*profile = *ToProfileEntity(profileModel)
	return nil
}

func (r *profileRepository) GetByUserID(userID string) (*entity.Profile, error) {
	var profileModel model.ProfileModel
	if err := r.db.Where("user_id = ?", userID).First(&profileModel).Error; err != nil {
		return nil, err
	}
	return ToProfileEntity(&profileModel), nil
}

// GetByUserIDs is the batched author lookup for the read-side profile
// join: one IN query for the distinct authors of a page of posts.
func (r *profileRepository) GetByUserIDs(userIDs []string) ([]*entity.Profile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var profileModels []model.ProfileModel
	if err := r.db.Where("user_id IN ?", userIDs).Find(&profileModels).Error; err != nil {
		return nil, err
	}

	profiles := make([]*entity.Profile, len(profileModels))
	for i := range profileModels {
		profiles[i] = ToProfileEntity(&profileModels[i])
	}
	return profiles, nil
}

func (r *profileRepository) Update(userID string, update entity.ProfileUpdate) error {
	values := map[string]interface{}{}

	if update.Username != nil {
		values["username"] = nullable(*update.Username)
	}
	if update.FullName != nil {
		values["full_name"] = nullable(*update.FullName)
	}
	if update.Bio != nil {
		values["bio"] = nullable(*update.Bio)
	}
	if update.AvatarURL != nil {
		values["avatar_url"] = nullable(*update.AvatarURL)
	}

	if len(values) == 0 {
		return nil
	}

	return r.db.Model(&model.ProfileModel{}).Where("user_id = ?", userID).Updates(values).Error
}
