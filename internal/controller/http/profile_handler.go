package http

import (
	"net/http"

	"github.com/h9rms/wanderlust-grid-bloom/internal/entity"
	"github.com/h9rms/wanderlust-grid-bloom/internal/usecase"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUseCase usecase.ProfileUseCase
	logger         *logger.Logger
}

func NewProfileHandler(profileUseCase usecase.ProfileUseCase, logger *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		logger:         logger,
	}
}

// GetProfile godoc
// @Summary      Get a user's profile
// @Tags         profiles
// @Produce      json
// @Param        user_id path string true "User ID"
// @Success      200  {object}  entity.Profile
// @Failure      404  {object}  map[string]string
// @Router       /profiles/{user_id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileUseCase.GetProfile(c.Param("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary      Update the viewer's profile
// @Description  Partially update the signed-in user's own profile. Omitted fields stay unchanged.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body object true "Fields to update (username, full_name, bio, avatar_url)"
// @Success      200  {object}  entity.Profile
// @Failure      401  {object}  map[string]string
// @Router       /profiles/me [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req struct {
		Username  *string `json:"username"`
		FullName  *string `json:"full_name"`
		Bio       *string `json:"bio"`
		AvatarURL *string `json:"avatar_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileUseCase.UpdateProfile(c.GetString("user_id"), entity.ProfileUpdate{
		Username:  req.Username,
		FullName:  req.FullName,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		h.logger.Error("Failed to update profile: %v", err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UploadAvatar godoc
// @Summary      Upload an avatar
// @Description  Uploads an avatar image and sets it on the viewer's profile
// @Tags         profiles
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        avatar formData file true "Avatar image file"
// @Success      200  {object}  entity.Profile
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /profiles/me/avatar [post]
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	header, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Avatar file is required"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read avatar file"})
		return
	}
	defer file.Close()

	profile, err := h.profileUseCase.UploadAvatar(c.GetString("user_id"), file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		h.logger.Error("Failed to upload avatar: %v", err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
