package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/h9rms/wanderlust-grid-bloom/internal/entity"
	"github.com/h9rms/wanderlust-grid-bloom/internal/relay"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/logger"
)

type ChatUseCase interface {
	Chat(ctx context.Context, message string, conversation []entity.ChatMessage) (*entity.ChatReply, error)
}

type chatUseCase struct {
	completer relay.Completer
	logger    *logger.Logger
}

func NewChatUseCase(completer relay.Completer, logger *logger.Logger) ChatUseCase {
	return &chatUseCase{
		completer: completer,
		logger:    logger,
	}
}

func (uc *chatUseCase) Chat(ctx context.Context, message string, conversation []entity.ChatMessage) (*entity.ChatReply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message is required", entity.ErrValidation)
	}

	reply, err := uc.completer.Complete(ctx, message, conversation)
	if err != nil {
		uc.logger.Error("Chat completion failed: %v", err)
		return nil, err
	}

	return reply, nil
}
