package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"apichat/internal/models"
)

// ollamaAPIKey is required by the OpenAI client but ignored by Ollama.
const ollamaAPIKey = "ollama"

// OpenAIClient talks to the OpenAI-compatible endpoint exposed by the runtime under /v1
type OpenAIClient struct {
	client *openai.Client
}

// NewOpenAIClient creates a client for {baseURL}/v1. A zero timeout waits indefinitely.
func NewOpenAIClient(baseURL string, timeout time.Duration) *OpenAIClient {
	cfg := openai.DefaultConfig(ollamaAPIKey)
	cfg.BaseURL = strings.TrimRight(baseURL, "/") + "/v1"
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
	}
}

// Chat maps the request onto a chat completion call and returns the first choice
func (oc *OpenAIClient) Chat(ctx context.Context, chatReq *ChatRequest) (*ChatResponse, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(chatReq.Messages))
	for _, msg := range chatReq.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	resp, err := oc.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    chatReq.Model,
		Messages: messages,
	})
	if err != nil {
		return nil, fmt.Errorf("openai api call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from openai endpoint")
	}

	choice := resp.Choices[0]
	return &ChatResponse{
		Model:     resp.Model,
		CreatedAt: time.Unix(resp.Created, 0).UTC(),
		Message: models.Message{
			Role:    choice.Message.Role,
			Content: choice.Message.Content,
		},
		Done:            true,
		PromptEvalCount: resp.Usage.PromptTokens,
		EvalCount:       resp.Usage.CompletionTokens,
	}, nil
}

// Health lists models to confirm the endpoint answers
func (oc *OpenAIClient) Health(ctx context.Context) (bool, error) {
	if _, err := oc.client.ListModels(ctx); err != nil {
		return false, fmt.Errorf("failed to check health: %w", err)
	}
	return true, nil
}
