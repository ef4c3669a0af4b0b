package service

import (
	"context"
	"fmt"
	"time"

	"apichat/internal/client"
	"apichat/internal/models"
	"apichat/internal/observability"
	"apichat/internal/prompts"
	"apichat/internal/util"
)

// CallLLM sends the history to the model with the system prompt prepended
// and returns the text of the reply.
// The history must not contain the system prompt; it is added here.
func CallLLM(ctx context.Context, llm client.ChatClient, messages []models.Message) (string, error) {
	resp, err := llm.Chat(ctx, &client.ChatRequest{
		Model:    util.OllamaModel,
		Messages: prompts.WithSystemPrompt(messages),
	})
	if err != nil {
		return "", err
	}

	return resp.Message.Content, nil
}

// LLMService forwards conversations to the local LLM runtime
type LLMService struct {
	client client.ChatClient
	logger *util.Logger
}

// NewLLMService creates a new LLM service
func NewLLMService(llm client.ChatClient) *LLMService {
	return &LLMService{
		client: llm,
		logger: util.NewLogger("LLMService"),
	}
}

// Model returns the model every conversation is sent to
func (s *LLMService) Model() string {
	return util.OllamaModel
}

// Chat forwards a conversation history and returns the assistant reply
func (s *LLMService) Chat(ctx context.Context, messages []models.Message) (string, error) {
	s.logger.Start("Chat")
	defer s.logger.End("Chat")

	ctx, span := observability.StartLLMSpan(ctx, util.OllamaModel, len(messages)+1)
	defer span.End()

	s.logger.KeyValue("model", util.OllamaModel, "history_len", len(messages))

	var usage *client.ChatResponse
	start := time.Now()
	reply, err := CallLLM(ctx, usageRecorder{ChatClient: s.client, last: &usage}, messages)
	elapsed := time.Since(start)

	observability.ObserveLLM(util.OllamaModel, err, elapsed)
	if err != nil {
		observability.RecordError(span, err)
		s.logger.Error("Failed to generate response", err)
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	if usage != nil {
		observability.RecordLLMResult(span, usage.PromptEvalCount, usage.EvalCount, elapsed)
	}

	s.logger.Success(fmt.Sprintf("Response generated in %s", elapsed.Round(time.Millisecond)))
	return reply, nil
}

// usageRecorder keeps the raw response of a call so token counts can be traced
type usageRecorder struct {
	client.ChatClient
	last **client.ChatResponse
}

func (u usageRecorder) Chat(ctx context.Context, req *client.ChatRequest) (*client.ChatResponse, error) {
	resp, err := u.ChatClient.Chat(ctx, req)
	*u.last = resp
	return resp, err
}
