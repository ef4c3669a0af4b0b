package util

// Log message constants
const (
	LogStart   = "=== %s START ==="
	LogEnd     = "=== %s END ==="
	LogSection = "--- %s ---"
)

// Service constants
const (
	ServiceName    = "apichat"
	ServiceVersion = "1.0.0"
	HealthMessage  = "Greetings from API Chat AI (DAS 2026)"
)

// LLM runtime, not configurable
const (
	OllamaHost  = "http://localhost:11434"
	OllamaModel = "llama3.2:3b" // configured from the Ollama Web UI
)

// Message roles
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// LLM backends
const (
	BackendOllama = "ollama"
	BackendOpenAI = "openai"
)

// Error codes
const (
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodeLLM            = "LLM_ERROR"
)
