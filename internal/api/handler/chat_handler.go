package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"apichat/internal/api/middleware"
	"apichat/internal/models"
	"apichat/internal/util"
)

// Chatter forwards a conversation history to the model
type Chatter interface {
	Chat(ctx context.Context, messages []models.Message) (string, error)
	Model() string
}

// ChatHandler handles chat API requests
type ChatHandler struct {
	llm Chatter
}

// NewChatHandler creates a new chat handler
func NewChatHandler(llm Chatter) *ChatHandler {
	return &ChatHandler{
		llm: llm,
	}
}

// Handle handles chat requests
// @Summary Chat with the assistant
// @Description Send the conversation history (without system prompt) and get the assistant reply
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Conversation history"
// @Success 200 {object} models.APIResponse{data=models.ChatResponse}
// @Failure 400 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /api/chat [post]
func (h *ChatHandler) Handle(c *gin.Context) {
	var req models.ChatRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, util.ErrCodeInvalidRequest, "Invalid request format", err.Error())
		return
	}

	reply, err := h.llm.Chat(c.Request.Context(), req.Messages)
	if err != nil {
		_ = c.Error(err)
		h.respondError(c, http.StatusInternalServerError, util.ErrCodeLLM, "Failed to get a reply from the model", err.Error())
		return
	}

	h.respondSuccess(c, http.StatusOK, models.ChatResponse{
		Response: reply,
		Model:    h.llm.Model(),
	})
}

// Helper methods

func (h *ChatHandler) respondSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, models.APIResponse{
		Success:  true,
		Data:     data,
		Metadata: metadata(c),
	})
}

func (h *ChatHandler) respondError(c *gin.Context, statusCode int, code string, message string, details interface{}) {
	c.JSON(statusCode, models.APIResponse{
		Success: false,
		Error: &models.ErrorInfo{
			Code:    code,
			Message: message,
			Details: details,
		},
		Metadata: metadata(c),
	})
}

func metadata(c *gin.Context) models.Metadata {
	return models.Metadata{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: c.GetString(middleware.RequestIDKey),
	}
}
