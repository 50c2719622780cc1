package usecase

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/h9rms/wanderlust-grid-bloom/internal/entity"
	"github.com/h9rms/wanderlust-grid-bloom/internal/repo/persistent"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/logger"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/queue"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImageStore is the object-storage capability posts need: upload a file,
// get its public URL back, delete it again when an insert fails after the
// upload already happened.
type ImageStore interface {
	UploadFile(key string, file io.Reader, contentType string) (string, error)
	DeleteFile(key string) error
	KeyFromURL(url string) (string, bool)
}

type PostUseCase interface {
	ListPosts() ([]*entity.Post, error)
	GetPost(postID string) (*entity.Post, error)
	CreatePost(viewerID, title, content, location string, image entity.ImageSource) (*entity.Post, error)
	UpdatePost(postID, viewerID string, update entity.PostUpdate, image entity.ImageSource) (*entity.Post, error)
	DeletePost(postID, viewerID string) error
	GetUserPosts(userID string) ([]*entity.Post, error)
	GetLikedPosts(viewerID string) ([]*entity.Post, error)
	GetSavedPosts(viewerID string) ([]*entity.Post, error)
}

type postUseCase struct {
	postRepo    persistent.PostRepository
	profileRepo persistent.ProfileRepository
	images      ImageStore
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	profileRepo persistent.ProfileRepository,
	images ImageStore,
	queueClient *queue.Client,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:    postRepo,
		profileRepo: profileRepo,
		images:      images,
		queueClient: queueClient,
		logger:      logger,
	}
}

func (uc *postUseCase) ListPosts() ([]*entity.Post, error) {
	posts, err := uc.postRepo.List()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrStore, err)
	}
	return uc.attachAuthors(posts)
}

func (uc *postUseCase) GetPost(postID string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post %s", entity.ErrNotFound, postID)
		}
		return nil, fmt.Errorf("%w: %s", entity.ErrStore, err)
	}

	posts, err := uc.attachAuthors([]*entity.Post{post})
	if err != nil {
		return nil, err
	}
	return posts[0], nil
}

func (uc *postUseCase) CreatePost(viewerID, title, content, location string, image entity.ImageSource) (*entity.Post, error) {
	if viewerID == "" {
		return nil, fmt.Errorf("%w: creating a post needs a signed-in user", entity.ErrAuthRequired)
	}

	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", entity.ErrValidation)
	}
	if content == "" {
		return nil, fmt.Errorf("%w: content must not be empty", entity.ErrValidation)
	}

	// The image is resolved before the insert: a file must be fully
	// uploaded and yield a URL first, so a failed upload never leaves a
	// half-created post behind.
	imageURL, uploadedKey, err := uc.resolveImage(viewerID, image)
	if err != nil {
		return nil, err
	}

	post := &entity.Post{
		UserID:   viewerID,
		Title:    title,
		Content:  content,
		Location: strings.TrimSpace(location),
		ImageURL: imageURL,
	}

	if err := uc.postRepo.Create(post); err != nil {
		// Compensating delete: the upload succeeded but the record did
		// not, so the stored object would be orphaned.
		if uploadedKey != "" {
			if delErr := uc.images.DeleteFile(uploadedKey); delErr != nil {
				uc.logger.Error("Failed to clean up orphaned upload %s: %v", uploadedKey, delErr)
			}
		}
		return nil, fmt.Errorf("%w: %s", entity.ErrStore, err)
	}

	post.Author = uc.lookupAuthor(viewerID)

	if uc.queueClient != nil {
		go uc.publishPostCreated(post)
	}

	return post, nil
}

func (uc *postUseCase) UpdatePost(postID, viewerID string, update entity.PostUpdate, image entity.ImageSource) (*entity.Post, error) {
	if viewerID == "" {
		return nil, fmt.Errorf("%w: editing a post needs a signed-in user", entity.ErrAuthRequired)
	}

	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post %s", entity.ErrNotFound, postID)
		}
		return nil, fmt.Errorf("%w: %s", entity.ErrStore, err)
	}

	if post.UserID != viewerID {
		return nil, fmt.Errorf("%w: you can only edit your own posts", entity.ErrForbidden)
	}

	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return nil, fmt.Errorf("%w: title must not be empty", entity.ErrValidation)
	}
	if update.Content != nil && strings.TrimSpace(*update.Content) == "" {
		return nil, fmt.Errorf("%w: content must not be empty", entity.ErrValidation)
	}

	var uploadedKey string
	if image.HasFile() {
		imageURL, key, err := uc.resolveImage(viewerID, image)
		if err != nil {
			return nil, err
		}
		update.ImageURL = &imageURL
		uploadedKey = key
	} else if image.URL != "" {
		url := image.URL
		update.ImageURL = &url
	}

	if err := uc.postRepo.Update(postID, update); err != nil {
		if uploadedKey != "" {
			if delErr := uc.images.DeleteFile(uploadedKey); delErr != nil {
				uc.logger.Error("Failed to clean up orphaned upload %s: %v", uploadedKey, delErr)
			}
		}
		return nil, fmt.Errorf("%w: %s", entity.ErrStore, err)
	}

	return uc.GetPost(postID)
}

func (uc *postUseCase) DeletePost(postID, viewerID string) error {
	if viewerID == "" {
		return fmt.Errorf("%w: deleting a post needs a signed-in user", entity.ErrAuthRequired)
	}

	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: post %s", entity.ErrNotFound, postID)
		}
		return fmt.Errorf("%w: %s", entity.ErrStore, err)
	}

	if post.UserID != viewerID {
		return fmt.Errorf("%w: you can only delete your own posts", entity.ErrForbidden)
	}

	if err := uc.postRepo.Delete(postID); err != nil {
		return fmt.Errorf("%w: %s", entity.ErrStore, err)
	}
	return nil
}

func (uc *postUseCase) GetUserPosts(userID string) ([]*entity.Post, error) {
	posts, err := uc.postRepo.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrStore, err)
	}
	return uc.attachAuthors(posts)
}

func (uc *postUseCase) GetLikedPosts(viewerID string) ([]*entity.Post, error) {
	if viewerID == "" {
		return nil, fmt.Errorf("%w: liked posts need a signed-in user", entity.ErrAuthRequired)
	}

	posts, err := uc.postRepo.ListLikedBy(viewerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrStore, err)
	}
	return uc.attachAuthors(posts)
}

func (uc *postUseCase) GetSavedPosts(viewerID string) ([]*entity.Post, error) {
	if viewerID == "" {
		return nil, fmt.Errorf("%w: saved posts need a signed-in user", entity.ErrAuthRequired)
	}

	posts, err := uc.postRepo.ListSavedBy(viewerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrStore, err)
	}
	return uc.attachAuthors(posts)
}

// attachAuthors joins each post with its author's profile using one
// batched lookup over the distinct author ids. Posts whose author has no
// profile row keep the Unknown placeholder; a failed join never fails the
// whole fetch downstream of the lookup itself.
func (uc *postUseCase) attachAuthors(posts []*entity.Post) ([]*entity.Post, error) {
	if len(posts) == 0 {
		return posts, nil
	}

	seen := make(map[string]bool)
	userIDs := make([]string, 0, len(posts))
	for _, post := range posts {
		if !seen[post.UserID] {
			seen[post.UserID] = true
			userIDs = append(userIDs, post.UserID)
		}
	}

	profiles, err := uc.profileRepo.GetByUserIDs(userIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrStore, err)
	}

	byUserID := make(map[string]*entity.Profile, len(profiles))
	for _, profile := range profiles {
		byUserID[profile.UserID] = profile
	}

	for _, post := range posts {
		if profile, ok := byUserID[post.UserID]; ok {
			post.Author = entity.KnownAuthor(profile.Username, profile.FullName, profile.AvatarURL)
		} else {
			post.Author = entity.UnknownAuthor()
		}
	}

	return posts, nil
}

func (uc *postUseCase) lookupAuthor(userID string) entity.AuthorInfo {
	profile, err := uc.profileRepo.GetByUserID(userID)
	if err != nil {
		return entity.UnknownAuthor()
	}
	return entity.KnownAuthor(profile.Username, profile.FullName, profile.AvatarURL)
}

// resolveImage turns an ImageSource into the final image URL. Files are
// uploaded under a key namespaced by the uploading user; the key is
// returned so a later insert failure can compensate. External URLs are
// stored verbatim.
func (uc *postUseCase) resolveImage(viewerID string, image entity.ImageSource) (imageURL, uploadedKey string, err error) {
	if image.HasFile() {
		contentType := image.ContentType
		if contentType == "" {
			contentType = "image/jpeg"
		}

		key := fmt.Sprintf("posts/%s/%s%s", viewerID, uuid.New().String(), filepath.Ext(image.Filename))
		url, err := uc.images.UploadFile(key, image.File, contentType)
		if err != nil {
			return "", "", fmt.Errorf("%w: %s", entity.ErrStore, err)
		}
		return url, key, nil
	}

	return image.URL, "", nil
}

func (uc *postUseCase) publishPostCreated(post *entity.Post) {
	task := map[string]interface{}{
		"type":    "new_post",
		"post_id": post.ID,
		"user_id": post.UserID,
		"title":   post.Title,
	}

	if err := uc.queueClient.PublishNotificationTask(task); err != nil {
		uc.logger.Error("Failed to publish new_post notification for %s: %v", post.ID, err)
	}
}
