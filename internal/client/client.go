package client

import (
	"context"
	"fmt"
	"time"

	"apichat/internal/config"
	"apichat/internal/models"
	"apichat/internal/util"
)

// ChatClient sends a full message sequence to a chat-completion runtime
// and returns its single, non-streamed reply.
type ChatClient interface {
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
	Health(ctx context.Context) (bool, error)
}

// ChatRequest represents a chat completion request (Ollama-compatible)
type ChatRequest struct {
	Model    string           `json:"model"`
	Messages []models.Message `json:"messages"`
	Stream   bool             `json:"stream"`
}

// ChatResponse represents a chat completion response (Ollama-compatible)
type ChatResponse struct {
	Model     string         `json:"model"`
	CreatedAt time.Time      `json:"created_at"`
	Message   models.Message `json:"message"`
	Done      bool           `json:"done"`

	PromptEvalCount int   `json:"prompt_eval_count,omitempty"`
	EvalCount       int   `json:"eval_count,omitempty"`
	TotalDuration   int64 `json:"total_duration,omitempty"` // nanoseconds
}

// New creates the chat client selected by cfg.LLMBackend.
// Both backends target the same fixed local runtime.
func New(cfg *config.Config) (ChatClient, error) {
	switch cfg.LLMBackend {
	case util.BackendOllama, "":
		return NewOllamaClient(util.OllamaHost, cfg.LLMTimeout), nil
	case util.BackendOpenAI:
		return NewOpenAIClient(util.OllamaHost, cfg.LLMTimeout), nil
	default:
		return nil, fmt.Errorf("unknown llm backend %q", cfg.LLMBackend)
	}
}
