package prompts

import (
	"apichat/internal/models"
	"apichat/internal/util"
)

// ===== System Prompts =====

// ChatSystemPrompt is the instruction sent ahead of every conversation.
const ChatSystemPrompt = "Eres un asistente útil que responde en español."

// SystemMessages returns the turns prepended to every history sent to the model.
// A fresh slice is returned on each call so callers may append to it.
func SystemMessages() []models.Message {
	return []models.Message{
		{Role: util.RoleSystem, Content: ChatSystemPrompt},
	}
}

// WithSystemPrompt returns the system turns followed by history, in order.
// history is not modified.
func WithSystemPrompt(history []models.Message) []models.Message {
	system := SystemMessages()
	messages := make([]models.Message, 0, len(system)+len(history))
	messages = append(messages, system...)
	messages = append(messages, history...)
	return messages
}
