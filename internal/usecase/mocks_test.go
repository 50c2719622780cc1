package usecase

import (
	"context"
	"io"

	"github.com/h9rms/wanderlust-grid-bloom/internal/entity"
	"github.com/h9rms/wanderlust-grid-bloom/internal/repo/persistent"
	"github.com/h9rms/wanderlust-grid-bloom/internal/relay"

	"github.com/stretchr/testify/mock"
)

// MockPostRepository is a mock implementation of persistent.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *entity.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(id string) (*entity.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) List() ([]*entity.Post, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostRepository) ListByUserID(userID string) ([]*entity.Post, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostRepository) ListLikedBy(userID string) ([]*entity.Post, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostRepository) ListSavedBy(userID string) ([]*entity.Post, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostRepository) Update(id string, update entity.PostUpdate) error {
	args := m.Called(id, update)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.PostRepository = (*MockPostRepository)(nil)

// MockProfileRepository is a mock implementation of persistent.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(profile *entity.Profile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByUserID(userID string) (*entity.Profile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByUserIDs(userIDs []string) ([]*entity.Profile, error) {
	args := m.Called(userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Profile), args.Error(1)
}

func (m *MockProfileRepository) Update(userID string, update entity.ProfileUpdate) error {
	args := m.Called(userID, update)
	return args.Error(0)
}

var _ persistent.ProfileRepository = (*MockProfileRepository)(nil)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

// MockInteractionRepository is a mock implementation of persistent.InteractionRepository
type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) CreateLike(postID, userID string) error {
	args := m.Called(postID, userID)
	return args.Error(0)
}

func (m *MockInteractionRepository) DeleteLike(postID, userID string) error {
	args := m.Called(postID, userID)
	return args.Error(0)
}

func (m *MockInteractionRepository) IsLiked(postID, userID string) (bool, error) {
	args := m.Called(postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) CountLikes(postID string) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInteractionRepository) CreateSave(postID, userID string) error {
	args := m.Called(postID, userID)
	return args.Error(0)
}

func (m *MockInteractionRepository) DeleteSave(postID, userID string) error {
	args := m.Called(postID, userID)
	return args.Error(0)
}

func (m *MockInteractionRepository) IsSaved(postID, userID string) (bool, error) {
	args := m.Called(postID, userID)
	return args.Bool(0), args.Error(1)
}

var _ persistent.InteractionRepository = (*MockInteractionRepository)(nil)

// MockImageStore is a mock implementation of ImageStore
type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) UploadFile(key string, file io.Reader, contentType string) (string, error) {
	args := m.Called(key, file, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockImageStore) DeleteFile(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockImageStore) KeyFromURL(url string) (string, bool) {
	args := m.Called(url)
	return args.String(0), args.Bool(1)
}

var _ ImageStore = (*MockImageStore)(nil)

// MockCompleter is a mock implementation of relay.Completer
type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, message string, conversation []entity.ChatMessage) (*entity.ChatReply, error) {
	args := m.Called(ctx, message, conversation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChatReply), args.Error(1)
}

var _ relay.Completer = (*MockCompleter)(nil)

// memoryLikeCounter is an in-memory LikeCounter for tests.
type memoryLikeCounter struct {
	counts map[string]int64
	warmed map[string]bool
}

func newMemoryLikeCounter() *memoryLikeCounter {
	return &memoryLikeCounter{
		counts: make(map[string]int64),
		warmed: make(map[string]bool),
	}
}

func (c *memoryLikeCounter) Get(ctx context.Context, postID string) (int64, bool, error) {
	if !c.warmed[postID] {
		return 0, false, nil
	}
	return c.counts[postID], true, nil
}

func (c *memoryLikeCounter) Set(ctx context.Context, postID string, count int64) error {
	c.counts[postID] = count
	c.warmed[postID] = true
	return nil
}

func (c *memoryLikeCounter) Incr(ctx context.Context, postID string) error {
	c.counts[postID]++
	c.warmed[postID] = true
	return nil
}

func (c *memoryLikeCounter) Decr(ctx context.Context, postID string) error {
	c.counts[postID]--
	c.warmed[postID] = true
	return nil
}

var _ LikeCounter = (*memoryLikeCounter)(nil)
