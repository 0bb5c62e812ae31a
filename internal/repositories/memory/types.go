package memory

import (
	"github.com/arcadebot/arcadebot/internal/models"
	"github.com/redis/go-redis/v9"
)

// Config holds configuration for the Redis memory repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// MaxConversationTurns bounds each channel's stored history
	MaxConversationTurns int
}

// AppendConversationInput contains a turn to record
type AppendConversationInput struct {
	// ChannelID is the Discord channel the conversation belongs to
	ChannelID string

	// Message is the turn to append
	Message *models.ConversationMessage
}

// GetConversationInput identifies the channel to look up
type GetConversationInput struct {
	// ChannelID is the Discord channel
	ChannelID string
}

// GetConversationOutput contains the channel's history, oldest first
type GetConversationOutput struct {
	// Messages is the bounded conversation history
	Messages []*models.ConversationMessage
}

// SaveMemoryInput contains the memory to persist
type SaveMemoryInput struct {
	// Memory is the keyword memory to store
	Memory *models.KeywordMemory
}

// GetMemoryInput identifies the memory to look up
type GetMemoryInput struct {
	// Keyword is the memory's primary identifier
	Keyword string
}

// ListMemoriesInput contains parameters for listing all memories
type ListMemoriesInput struct{}

// ListMemoriesOutput contains every stored keyword memory
type ListMemoriesOutput struct {
	// Memories holds all stored keyword memories
	Memories []*models.KeywordMemory
}
