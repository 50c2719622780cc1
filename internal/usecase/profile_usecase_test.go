package usecase

import (
	"errors"
	"strings"
	"testing"

	"github.com/h9rms/wanderlust-grid-bloom/internal/entity"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGetProfile_NotFound(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	uc := NewProfileUseCase(profileRepo, new(MockImageStore), logger.New())

	profileRepo.On("GetByUserID", "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.GetProfile("missing")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestUpdateProfile_AuthRequired(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	uc := NewProfileUseCase(profileRepo, new(MockImageStore), logger.New())

	bio := "Unterwegs in Asien"
	_, err := uc.UpdateProfile("", entity.ProfileUpdate{Bio: &bio})

	assert.ErrorIs(t, err, entity.ErrAuthRequired)
	profileRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUploadAvatar_UpdatesProfileWithURL(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	images := new(MockImageStore)
	uc := NewProfileUseCase(profileRepo, images, logger.New())

	images.On("UploadFile", mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "avatars/user-1/")
	}), mock.Anything, "image/png").Return("https://cdn.example.com/avatar.png", nil)
	profileRepo.On("Update", "user-1", mock.MatchedBy(func(update entity.ProfileUpdate) bool {
		return update.AvatarURL != nil && *update.AvatarURL == "https://cdn.example.com/avatar.png"
	})).Return(nil)
	profileRepo.On("GetByUserID", "user-1").
		Return(&entity.Profile{UserID: "user-1", AvatarURL: "https://cdn.example.com/avatar.png"}, nil)

	profile, err := uc.UploadAvatar("user-1", strings.NewReader("png bytes"), "me.png", "image/png")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/avatar.png", profile.AvatarURL)
	images.AssertExpectations(t)
	profileRepo.AssertExpectations(t)
}

func TestUploadAvatar_UpdateFails_UploadIsCleanedUp(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	images := new(MockImageStore)
	uc := NewProfileUseCase(profileRepo, images, logger.New())

	var uploadedKey string
	images.On("UploadFile", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { uploadedKey = args.String(0) }).
		Return("https://cdn.example.com/avatar.jpg", nil)
	profileRepo.On("Update", "user-1", mock.Anything).Return(errors.New("update failed"))
	images.On("DeleteFile", mock.MatchedBy(func(key string) bool {
		return key == uploadedKey
	})).Return(nil)

	_, err := uc.UploadAvatar("user-1", strings.NewReader("jpg bytes"), "me.jpg", "")

	assert.ErrorIs(t, err, entity.ErrStore)
	images.AssertCalled(t, "DeleteFile", uploadedKey)
}
