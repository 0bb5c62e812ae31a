package memory

import (
	"context"

	"github.com/arcadebot/arcadebot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/arcadebot/arcadebot/internal/repositories/memory Repository

// Repository defines storage for AI conversation history and keyword memories
type Repository interface {
	// AppendConversation appends a turn to a channel's history, trimming to the
	// configured bound
	AppendConversation(ctx context.Context, input *AppendConversationInput) error

	// GetConversation returns a channel's history, oldest first. Corrupt turns
	// are skipped with a warning.
	GetConversation(ctx context.Context, input *GetConversationInput) (*GetConversationOutput, error)

	// SaveMemory stores a keyword memory, overwriting any previous version
	SaveMemory(ctx context.Context, input *SaveMemoryInput) error

	// GetMemory retrieves a keyword memory by keyword
	GetMemory(ctx context.Context, input *GetMemoryInput) (*models.KeywordMemory, error)

	// ListMemories returns all stored keyword memories
	ListMemories(ctx context.Context, input *ListMemoriesInput) (*ListMemoriesOutput, error)
}
