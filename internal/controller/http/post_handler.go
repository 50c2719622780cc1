package http

import (
	"mime/multipart"
	"net/http"

	"github.com/h9rms/wanderlust-grid-bloom/internal/entity"
	"github.com/h9rms/wanderlust-grid-bloom/internal/usecase"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

type CreatePostRequest struct {
	Title    string `form:"title" binding:"required"`
	Content  string `form:"content" binding:"required"`
	Location string `form:"location"`
	ImageURL string `form:"image_url"`
}

// ListPosts godoc
// @Summary      List all posts
// @Description  List every published post, newest first, with the author's profile joined onto each entry
// @Tags         posts
// @Produce      json
// @Success      200  {array}   entity.Post
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postUseCase.ListPosts()
	if err != nil {
		h.logger.Error("Failed to list posts: %v", err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetPost godoc
// @Summary      Get post by ID
// @Description  Get a single post with its author profile
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUseCase.GetPost(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// CreatePost godoc
// @Summary      Create a new post
// @Description  Create a post with an optional image. Send either an image file (multipart) or an external image_url, not both.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Post title"
// @Param        content formData string true "Post content"
// @Param        location formData string false "Location"
// @Param        image formData file false "Image file (jpg/jpeg/png/webp)"
// @Param        image_url formData string false "External image URL, stored verbatim"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, file, err := imageSourceFromForm(c, req.ImageURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image file"})
		return
	}
	if file != nil {
		defer file.Close()
	}

	post, err := h.postUseCase.CreatePost(userID, req.Title, req.Content, req.Location, image)
	if err != nil {
		h.logger.Error("Failed to create post: %v", err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// UpdatePost godoc
// @Summary      Update a post
// @Description  Partially update a post you own. Omitted fields stay unchanged; sending location as an empty string clears it.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        title formData string false "New title"
// @Param        content formData string false "New content"
// @Param        location formData string false "New location (empty string clears it)"
// @Param        image formData file false "Replacement image file"
// @Param        image_url formData string false "Replacement external image URL"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("id")

	update := entity.PostUpdate{}
	if title, ok := c.GetPostForm("title"); ok {
		update.Title = &title
	}
	if content, ok := c.GetPostForm("content"); ok {
		update.Content = &content
	}
	if location, ok := c.GetPostForm("location"); ok {
		update.Location = &location
	}

	imageURL := c.PostForm("image_url")
	image, file, err := imageSourceFromForm(c, imageURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image file"})
		return
	}
	if file != nil {
		defer file.Close()
	}

	post, err := h.postUseCase.UpdatePost(postID, userID, update, image)
	if err != nil {
		h.logger.Error("Failed to update post %s: %v", postID, err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Delete a post you own
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("id")

	if err := h.postUseCase.DeletePost(postID, userID); err != nil {
		h.logger.Error("Failed to delete post %s: %v", postID, err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// GetUserPosts godoc
// @Summary      List a user's posts
// @Description  List every post a given user authored, newest first
// @Tags         posts
// @Produce      json
// @Param        user_id path string true "User ID"
// @Success      200  {array}   entity.Post
// @Failure      500  {object}  map[string]string
// @Router       /posts/user/{user_id} [get]
func (h *PostHandler) GetUserPosts(c *gin.Context) {
	posts, err := h.postUseCase.GetUserPosts(c.Param("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetLikedPosts godoc
// @Summary      List posts the viewer liked
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Post
// @Failure      401  {object}  map[string]string
// @Router       /posts/liked [get]
func (h *PostHandler) GetLikedPosts(c *gin.Context) {
	posts, err := h.postUseCase.GetLikedPosts(c.GetString("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetSavedPosts godoc
// @Summary      List posts the viewer saved
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Post
// @Failure      401  {object}  map[string]string
// @Router       /posts/saved [get]
func (h *PostHandler) GetSavedPosts(c *gin.Context) {
	posts, err := h.postUseCase.GetSavedPosts(c.GetString("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// imageSourceFromForm reads the optional "image" multipart file, falling
// back to the external URL. The returned file, when non-nil, must be
// closed by the caller after the use case consumed it.
func imageSourceFromForm(c *gin.Context, imageURL string) (entity.ImageSource, multipart.File, error) {
	header, err := c.FormFile("image")
	if err != nil {
		// No file attached; an external URL may still be present.
		return entity.ImageSource{URL: imageURL}, nil, nil
	}

	file, err := header.Open()
	if err != nil {
		return entity.ImageSource{}, nil, err
	}

	return entity.ImageSource{
		File:        file,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	}, file, nil
}
