package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"apichat/internal/models"
)

// OllamaClient handles communication with the Ollama native chat API
type OllamaClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewOllamaClient creates a new Ollama client. A zero timeout waits indefinitely.
func NewOllamaClient(baseURL string, timeout time.Duration) *OllamaClient {
	return &OllamaClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Chat posts the messages to /api/chat and waits for the complete reply
func (oc *OllamaClient) Chat(ctx context.Context, chatReq *ChatRequest) (*ChatResponse, error) {
	url := fmt.Sprintf("%s/api/chat", oc.baseURL)

	// Ollama streams by default
	payload := *chatReq
	payload.Stream = false

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := oc.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call ollama: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama chat failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var apiResp struct {
		Model           string          `json:"model"`
		CreatedAt       time.Time       `json:"created_at"`
		Message         *models.Message `json:"message"`
		Done            bool            `json:"done"`
		PromptEvalCount int             `json:"prompt_eval_count"`
		EvalCount       int             `json:"eval_count"`
		TotalDuration   int64           `json:"total_duration"`
		Error           string          `json:"error"`
	}

	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if apiResp.Error != "" {
		return nil, fmt.Errorf("ollama chat failed: %s", apiResp.Error)
	}

	if apiResp.Message == nil {
		return nil, fmt.Errorf("ollama response missing message field")
	}

	return &ChatResponse{
		Model:           apiResp.Model,
		CreatedAt:       apiResp.CreatedAt,
		Message:         *apiResp.Message,
		Done:            apiResp.Done,
		PromptEvalCount: apiResp.PromptEvalCount,
		EvalCount:       apiResp.EvalCount,
		TotalDuration:   apiResp.TotalDuration,
	}, nil
}

// Health checks if the Ollama server is reachable
func (oc *OllamaClient) Health(ctx context.Context) (bool, error) {
	url := fmt.Sprintf("%s/api/version", oc.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := oc.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to check health: %w", err)
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}
