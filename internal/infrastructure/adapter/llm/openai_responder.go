// Package llm implements the Responder port on any OpenAI-compatible chat
// completion API, OpenRouter included.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/gateway"
)

// Sampling defaults used when the configuration leaves them empty
const (
	DefaultBaseURL     = "https://openrouter.ai/api/v1"
	DefaultTemperature = 0.95
	DefaultMaxTokens   = 120
	presencePenalty    = 0.6
	frequencyPenalty   = 0.3
)

// ErrEmptyReply is returned when the model produced no text
var ErrEmptyReply = errors.New("responder returned an empty reply")

// Config holds the chat completion settings
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int
}

// OpenAIResponder implements gateway.Responder
type OpenAIResponder struct {
	client *openai.Client
	config Config
	logger coreport.Logger
}

// NewOpenAIResponder creates a responder
func NewOpenAIResponder(cfg Config, logger coreport.Logger) (*OpenAIResponder, error) {
	if cfg.Model == "" {
		return nil, errors.New("responder model is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &OpenAIResponder{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
		logger: logger,
	}, nil
}

var _ gateway.Responder = (*OpenAIResponder)(nil)

// Reply sends the directive as the system message followed by the turns
func (r *OpenAIResponder) Reply(ctx context.Context, directive string, turns []gateway.Turn) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(turns)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: directive,
	})
	for _, t := range turns {
		role := openai.ChatMessageRoleUser
		if t.Sender == entity.SenderAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: t.Content})
	}

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:            r.config.Model,
		Messages:         messages,
		Temperature:      r.config.Temperature,
		MaxTokens:        r.config.MaxTokens,
		PresencePenalty:  presencePenalty,
		FrequencyPenalty: frequencyPenalty,
	})
	if err != nil {
		r.logger.Warn("Chat completion failed", map[string]any{
			"model": r.config.Model,
			"error": err.Error(),
		})
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyReply
	}
	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		return "", ErrEmptyReply
	}

	r.logger.Debug("Chat completion succeeded", map[string]any{
		"model":             r.config.Model,
		"prompt_tokens":     resp.Usage.PromptTokens,
		"completion_tokens": resp.Usage.CompletionTokens,
	})
	return reply, nil
}
