package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/h9rms/wanderlust-grid-bloom/internal/entity"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/config"
)

// systemPrompt is the fixed instruction prepended to every conversation.
const systemPrompt = "Du bist ein hilfreicher AI-Assistent für einen Travel Blog. " +
	"Antworte freundlich und hilfsbereit auf Deutsch. Du kannst Fragen über Reisen, " +
	"Destinations und die Blog-Inhalte beantworten."

// Completer produces one assistant reply for a message plus the prior
// turn sequence.
type Completer interface {
	Complete(ctx context.Context, message string, conversation []entity.ChatMessage) (*entity.ChatReply, error)
}

// DeepseekClient forwards conversations to the Deepseek chat-completions
// API. Stateless: no retry, no streaming, no session memory.
type DeepseekClient struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

func NewDeepseekClient(cfg *config.Config) *DeepseekClient {
	return &DeepseekClient{
		apiKey:     cfg.DeepseekAPIKey,
		apiURL:     cfg.DeepseekAPIURL,
		httpClient: http.DefaultClient,
	}
}

type completionRequest struct {
	Model       string               `json:"model"`
	Messages    []entity.ChatMessage `json:"messages"`
	MaxTokens   int                  `json:"max_tokens"`
	Temperature float64              `json:"temperature"`
	Stream      bool                 `json:"stream"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage map[string]interface{} `json:"usage"`
}

func (c *DeepseekClient) Complete(ctx context.Context, message string, conversation []entity.ChatMessage) (*entity.ChatReply, error) {
	// The credential is checked per call; a missing key fails this request
	// only, not the process.
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: DEEPSEEK_API_KEY is not configured", entity.ErrConfig)
	}

	messages := make([]entity.ChatMessage, 0, len(conversation)+2)
	messages = append(messages, entity.ChatMessage{Role: "system", Content: systemPrompt})
	messages = append(messages, conversation...)
	messages = append(messages, entity.ChatMessage{Role: "user", Content: message})

	payload, err := json.Marshal(completionRequest{
		Model:       "deepseek-chat",
		Messages:    messages,
		MaxTokens:   1000,
		Temperature: 0.7,
		Stream:      false,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: deepseek API error: %d %s", entity.ErrUpstream, resp.StatusCode, string(body))
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("%w: no response from deepseek API", entity.ErrUpstream)
	}

	return &entity.ChatReply{
		Message: completion.Choices[0].Message.Content,
		Usage:   completion.Usage,
	}, nil
}
