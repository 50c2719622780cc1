package http

import (
	"context"

	"github.com/h9rms/wanderlust-grid-bloom/internal/entity"
	"github.com/h9rms/wanderlust-grid-bloom/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// MockPostUseCase is a mock implementation of usecase.PostUseCase
type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) ListPosts() ([]*entity.Post, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) GetPost(postID string) (*entity.Post, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) CreatePost(viewerID, title, content, location string, image entity.ImageSource) (*entity.Post, error) {
	args := m.Called(viewerID, title, content, location, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) UpdatePost(postID, viewerID string, update entity.PostUpdate, image entity.ImageSource) (*entity.Post, error) {
	args := m.Called(postID, viewerID, update, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) DeletePost(postID, viewerID string) error {
	args := m.Called(postID, viewerID)
	return args.Error(0)
}

func (m *MockPostUseCase) GetUserPosts(userID string) ([]*entity.Post, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) GetLikedPosts(viewerID string) ([]*entity.Post, error) {
	args := m.Called(viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) GetSavedPosts(viewerID string) ([]*entity.Post, error) {
	args := m.Called(viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

// MockInteractionUseCase is a mock implementation of usecase.InteractionUseCase
type MockInteractionUseCase struct {
	mock.Mock
}

func (m *MockInteractionUseCase) GetLikeState(ctx context.Context, postID, viewerID string) (*entity.LikeState, error) {
	args := m.Called(ctx, postID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LikeState), args.Error(1)
}

func (m *MockInteractionUseCase) GetSaveState(ctx context.Context, postID, viewerID string) (*entity.SaveState, error) {
	args := m.Called(ctx, postID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SaveState), args.Error(1)
}

func (m *MockInteractionUseCase) ToggleLike(ctx context.Context, postID, viewerID string) (*entity.LikeState, error) {
	args := m.Called(ctx, postID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LikeState), args.Error(1)
}

func (m *MockInteractionUseCase) ToggleSave(ctx context.Context, postID, viewerID string) (*entity.SaveState, error) {
	args := m.Called(ctx, postID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SaveState), args.Error(1)
}

var _ usecase.InteractionUseCase = (*MockInteractionUseCase)(nil)

// MockChatUseCase is a mock implementation of usecase.ChatUseCase
type MockChatUseCase struct {
	mock.Mock
}

func (m *MockChatUseCase) Chat(ctx context.Context, message string, conversation []entity.ChatMessage) (*entity.ChatReply, error) {
	args := m.Called(ctx, message, conversation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChatReply), args.Error(1)
}

var _ usecase.ChatUseCase = (*MockChatUseCase)(nil)
