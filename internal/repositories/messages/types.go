package messages

import (
	"github.com/arcadebot/arcadebot/internal/models"
	"github.com/redis/go-redis/v9"
)

// Config holds configuration for the Redis messages repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// SaveRecordInput contains the record to persist
type SaveRecordInput struct {
	// Record is the message record to store
	Record *models.MessageRecord
}

// GetRecordInput identifies the record to look up
type GetRecordInput struct {
	// MessageID is the Discord message ID
	MessageID string
}

// DeleteRecordInput identifies the record to remove
type DeleteRecordInput struct {
	// MessageID is the Discord message ID
	MessageID string
}
