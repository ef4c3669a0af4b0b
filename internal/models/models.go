package models

// ===== Chat Models =====

// Message represents a single conversation turn
type Message struct {
	Role    string `json:"role" example:"user"` // "system", "user", "assistant"
	Content string `json:"content" example:"Explícame qué es Docker en pocas líneas."`
}

// ChatRequest represents a chat request carrying the conversation history.
// The history never includes the system prompt; it is added server side.
type ChatRequest struct {
	Messages []Message `json:"messages" binding:"required"`
}

// ChatResponse represents the assistant reply returned to the caller
type ChatResponse struct {
	Response string `json:"response"`
	Model    string `json:"model"`
}

// ===== API Response Wrappers =====

// APIResponse represents a standard API response wrapper
type APIResponse struct {
	Success  bool        `json:"success"`
	Data     interface{} `json:"data,omitempty"`
	Error    *ErrorInfo  `json:"error,omitempty"`
	Metadata Metadata    `json:"metadata"`
}

// ErrorInfo represents error details in API response
type ErrorInfo struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Metadata represents response metadata
type Metadata struct {
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id"`
}
