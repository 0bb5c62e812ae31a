package ai

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/arcadebot/arcadebot/internal/services/ai Service

// Service wraps the external chat-completion and embedding endpoints
type Service interface {
	// Chat sends a prompt with optional history and returns the model's reply
	Chat(ctx context.Context, input *ChatInput) (*ChatOutput, error)

	// Embed returns the embedding vector for a piece of text
	Embed(ctx context.Context, input *EmbedInput) (*EmbedOutput, error)

	// GenerateQuestionPair synthesizes a would-you-rather option pair whose two
	// options are semantically distinct, retrying a bounded number of times
	GenerateQuestionPair(ctx context.Context, input *GenerateQuestionPairInput) (*GenerateQuestionPairOutput, error)
}
