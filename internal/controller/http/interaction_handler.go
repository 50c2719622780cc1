package http

import (
	"net/http"

	"github.com/h9rms/wanderlust-grid-bloom/internal/usecase"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/logger"

	"github.com/gin-gonic/gin"
)

type InteractionHandler struct {
	interactionUseCase usecase.InteractionUseCase
	logger             *logger.Logger
}

func NewInteractionHandler(interactionUseCase usecase.InteractionUseCase, logger *logger.Logger) *InteractionHandler {
	return &InteractionHandler{
		interactionUseCase: interactionUseCase,
		logger:             logger,
	}
}

// GetLikeState godoc
// @Summary      Get like state of a post
// @Description  Returns the like count and whether the signed-in viewer liked the post. Anonymous viewers always read liked=false.
// @Tags         interactions
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.LikeState
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id}/likes [get]
func (h *InteractionHandler) GetLikeState(c *gin.Context) {
	state, err := h.interactionUseCase.GetLikeState(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// ToggleLike godoc
// @Summary      Toggle a like
// @Description  Likes the post if the viewer has not liked it, unlikes it otherwise. Returns the resulting state.
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.LikeState
// @Failure      401  {object}  map[string]string
// @Router       /posts/{id}/like [post]
func (h *InteractionHandler) ToggleLike(c *gin.Context) {
	postID := c.Param("id")

	state, err := h.interactionUseCase.ToggleLike(c.Request.Context(), postID, c.GetString("user_id"))
	if err != nil {
		h.logger.Error("Failed to toggle like on post %s: %v", postID, err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// GetSaveState godoc
// @Summary      Get save state of a post
// @Tags         interactions
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.SaveState
// @Router       /posts/{id}/saves [get]
func (h *InteractionHandler) GetSaveState(c *gin.Context) {
	state, err := h.interactionUseCase.GetSaveState(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// ToggleSave godoc
// @Summary      Toggle a save
// @Description  Saves the post to the viewer's collection, or removes it again.
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.SaveState
// @Failure      401  {object}  map[string]string
// @Router       /posts/{id}/save [post]
func (h *InteractionHandler) ToggleSave(c *gin.Context) {
	postID := c.Param("id")

	state, err := h.interactionUseCase.ToggleSave(c.Request.Context(), postID, c.GetString("user_id"))
	if err != nil {
		h.logger.Error("Failed to toggle save on post %s: %v", postID, err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}
