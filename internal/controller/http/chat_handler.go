package http

import (
	"net/http"

	"github.com/h9rms/wanderlust-grid-bloom/internal/entity"
	"github.com/h9rms/wanderlust-grid-bloom/internal/usecase"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatUseCase usecase.ChatUseCase
	logger      *logger.Logger
}

func NewChatHandler(chatUseCase usecase.ChatUseCase, logger *logger.Logger) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
		logger:      logger,
	}
}

type ChatRequest struct {
	Message      string               `json:"message" binding:"required"`
	Conversation []entity.ChatMessage `json:"conversation"`
}

// Chat godoc
// @Summary      Ask the travel assistant
// @Description  Relays the message plus prior conversation turns to the assistant and returns its reply. Nothing is persisted.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request body ChatRequest true "Message and optional conversation history"
// @Success      200  {object}  entity.ChatReply
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.chatUseCase.Chat(c.Request.Context(), req.Message, req.Conversation)
	if err != nil {
		h.logger.Error("Chat request failed: %v", err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, reply)
}
