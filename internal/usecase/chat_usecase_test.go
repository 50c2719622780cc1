package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/h9rms/wanderlust-grid-bloom/internal/entity"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChat_EmptyMessage(t *testing.T) {
	completer := new(MockCompleter)
	uc := NewChatUseCase(completer, logger.New())

	_, err := uc.Chat(context.Background(), "   ", nil)

	assert.ErrorIs(t, err, entity.ErrValidation)
	completer.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
}

func TestChat_PassesConversationThrough(t *testing.T) {
	completer := new(MockCompleter)
	uc := NewChatUseCase(completer, logger.New())

	conversation := []entity.ChatMessage{
		{Role: "user", Content: "Wohin im Oktober?"},
		{Role: "assistant", Content: "Portugal ist im Oktober ideal."},
	}
	completer.On("Complete", mock.Anything, "Und im November?", conversation).
		Return(&entity.ChatReply{Message: "Im November empfiehlt sich Marokko."}, nil)

	reply, err := uc.Chat(context.Background(), "Und im November?", conversation)

	require.NoError(t, err)
	assert.Equal(t, "Im November empfiehlt sich Marokko.", reply.Message)
	completer.AssertExpectations(t)
}

func TestChat_UpstreamFailure(t *testing.T) {
	completer := new(MockCompleter)
	uc := NewChatUseCase(completer, logger.New())

	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("deepseek: "+entity.ErrUpstream.Error()))

	_, err := uc.Chat(context.Background(), "Hallo", nil)
	assert.Error(t, err)
}
