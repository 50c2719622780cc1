package usecase

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/h9rms/wanderlust-grid-bloom/internal/entity"
	"github.com/h9rms/wanderlust-grid-bloom/internal/repo/persistent"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileUseCase interface {
	GetProfile(userID string) (*entity.Profile, error)
	UpdateProfile(viewerID string, update entity.ProfileUpdate) (*entity.Profile, error)
	UploadAvatar(viewerID string, file io.Reader, filename, contentType string) (*entity.Profile, error)
}

type profileUseCase struct {
	profileRepo persistent.ProfileRepository
	images      ImageStore
	logger      *logger.Logger
}

func NewProfileUseCase(profileRepo persistent.ProfileRepository, images ImageStore, logger *logger.Logger) ProfileUseCase {
	return &profileUseCase{
		profileRepo: profileRepo,
		images:      images,
		logger:      logger,
	}
}

func (uc *profileUseCase) GetProfile(userID string) (*entity.Profile, error) {
	profile, err := uc.profileRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: profile for user %s", entity.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("%w: %s", entity.ErrStore, err)
	}
	return profile, nil
}

func (uc *profileUseCase) UpdateProfile(viewerID string, update entity.ProfileUpdate) (*entity.Profile, error) {
	if viewerID == "" {
		return nil, fmt.Errorf("%w: editing a profile needs a signed-in user", entity.ErrAuthRequired)
	}

	if err := uc.profileRepo.Update(viewerID, update); err != nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrStore, err)
	}

	return uc.GetProfile(viewerID)
}

func (uc *profileUseCase) UploadAvatar(viewerID string, file io.Reader, filename, contentType string) (*entity.Profile, error) {
	if viewerID == "" {
		return nil, fmt.Errorf("%w: uploading an avatar needs a signed-in user", entity.ErrAuthRequired)
	}

	if contentType == "" {
		contentType = "image/jpeg"
	}

	key := fmt.Sprintf("avatars/%s/%s%s", viewerID, uuid.New().String(), filepath.Ext(filename))
	avatarURL, err := uc.images.UploadFile(key, file, contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrStore, err)
	}

	profile, err := uc.UpdateProfile(viewerID, entity.ProfileUpdate{AvatarURL: &avatarURL})
	if err != nil {
		if delErr := uc.images.DeleteFile(key); delErr != nil {
			uc.logger.Error("Failed to clean up orphaned avatar %s: %v", key, delErr)
		}
		return nil, err
	}

	return profile, nil
}
