package ai

import (
	"github.com/arcadebot/arcadebot/internal/metrics"
	"github.com/arcadebot/arcadebot/internal/models"
)

// Config holds configuration for the AI service
type Config struct {
	// APIKey authenticates against the OpenAI-compatible endpoint
	APIKey string

	// BaseURL is the chat-completion endpoint base URL
	BaseURL string

	// Model is the chat-completion model name
	Model string

	// EmbeddingBaseURL is the embedding endpoint base URL; defaults to BaseURL
	EmbeddingBaseURL string

	// EmbeddingModel is the embedding model name
	EmbeddingModel string

	// MaxRetries bounds question-pair generation attempts; defaults to 3
	MaxRetries int

	// SimilarityThreshold rejects option pairs at or above this cosine
	// similarity; defaults to 0.8
	SimilarityThreshold float64

	// MaxTokens caps completion length
	MaxTokens int

	// Temperature controls completion sampling
	Temperature float32

	// Metrics counts inference calls when set
	Metrics *metrics.Metrics
}

// ChatInput contains a prompt with optional system message and history
type ChatInput struct {
	// System is the system message, optional
	System string

	// History is prior conversation turns, oldest first, optional
	History []*models.ConversationMessage

	// Prompt is the user message
	Prompt string
}

// ChatOutput contains the model's reply
type ChatOutput struct {
	// Content is the reply text
	Content string
}

// EmbedInput contains the text to embed
type EmbedInput struct {
	// Text is the input text
	Text string
}

// EmbedOutput contains the embedding vector
type EmbedOutput struct {
	// Vector is the fixed-length embedding
	Vector []float32
}

// GenerateQuestionPairInput contains parameters for pair generation
type GenerateQuestionPairInput struct{}

// GenerateQuestionPairOutput contains a distinct option pair
type GenerateQuestionPairOutput struct {
	// OptionA and OptionB are the two cleaned options
	OptionA string
	OptionB string
}
