package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apichat/internal/models"
	"apichat/internal/util"
)

func TestOpenAIClient_Chat(t *testing.T) {
	var got struct {
		Model    string           `json:"model"`
		Messages []models.Message `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer "+ollamaAPIKey, r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1767322800,
			"model": "llama3.2:3b",
			"choices": [
				{"index": 0, "message": {"role": "assistant", "content": "primera"}, "finish_reason": "stop"},
				{"index": 1, "message": {"role": "assistant", "content": "segunda"}, "finish_reason": "stop"}
			],
			"usage": {"prompt_tokens": 20, "completion_tokens": 3, "total_tokens": 23}
		}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient(srv.URL, 0)
	resp, err := c.Chat(context.Background(), &ChatRequest{
		Model: util.OllamaModel,
		Messages: []models.Message{
			{Role: util.RoleSystem, Content: "sys"},
			{Role: util.RoleUser, Content: "hola"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, util.OllamaModel, got.Model)
	assert.Equal(t, []models.Message{
		{Role: util.RoleSystem, Content: "sys"},
		{Role: util.RoleUser, Content: "hola"},
	}, got.Messages)

	assert.Equal(t, "primera", resp.Message.Content)
	assert.Equal(t, util.RoleAssistant, resp.Message.Role)
	assert.Equal(t, 20, resp.PromptEvalCount)
	assert.Equal(t, 3, resp.EvalCount)
	assert.Equal(t, int64(1767322800), resp.CreatedAt.Unix())
}

func TestOpenAIClient_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","model":"m","choices":[]}`))
	}))
	defer srv.Close()

	_, err := NewOpenAIClient(srv.URL, 0).Chat(context.Background(), &ChatRequest{Model: "m"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no response")
}

func TestOpenAIClient_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"message":"model \"x\" not found","type":"api_error"}}`))
	}))
	defer srv.Close()

	_, err := NewOpenAIClient(srv.URL, 0).Chat(context.Background(), &ChatRequest{Model: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai api call failed")
}

func TestOpenAIClient_Health(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/models", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"list","data":[{"id":"llama3.2:3b","object":"model"}]}`))
	}))
	defer srv.Close()

	healthy, err := NewOpenAIClient(srv.URL, 0).Health(context.Background())
	require.NoError(t, err)
	assert.True(t, healthy)
}
