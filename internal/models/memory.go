package models

import (
	"time"
)

// ConversationMessage is one turn of a channel's AI conversation history
type ConversationMessage struct {
	// Role is the chat role, "user" or "assistant"
	Role string `json:"role"`

	// Content is the message text
	Content string `json:"content"`

	// CreatedAt is when the turn was recorded
	CreatedAt time.Time `json:"created_at"`
}

// KeywordMemory is a permanently remembered answer with its embedding vector,
// matched against incoming questions by cosine similarity
type KeywordMemory struct {
	// Keyword is the primary identifier for the memory
	Keyword string `json:"keyword"`

	// Answer is the remembered response text
	Answer string `json:"answer"`

	// Embedding is the stored embedding vector for the keyword
	Embedding []float32 `json:"embedding"`

	// TaughtBy is the Discord user ID who stored the memory
	TaughtBy string `json:"taught_by"`

	// CreatedAt is when the memory was stored
	CreatedAt time.Time `json:"created_at"`
}
