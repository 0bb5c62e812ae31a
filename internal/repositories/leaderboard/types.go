package leaderboard

import (
	"github.com/arcadebot/arcadebot/internal/models"
	"github.com/redis/go-redis/v9"
)

// Config holds configuration for the Redis leaderboard repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// GetRecentWinnersInput contains parameters for reading the winners list
type GetRecentWinnersInput struct{}

// GetRecentWinnersOutput contains the current winners list, oldest first
type GetRecentWinnersOutput struct {
	// Entries is the bounded recent-winners list
	Entries []*models.LeaderboardEntry
}

// SaveRecentWinnersInput contains the full list to persist
type SaveRecentWinnersInput struct {
	// Entries replaces the stored winners list
	Entries []*models.LeaderboardEntry
}

// GetLastPublishedMessageInput identifies the channel to look up
type GetLastPublishedMessageInput struct {
	// ChannelID is the Discord channel the leaderboard was published to
	ChannelID string
}

// GetLastPublishedMessageOutput contains the tracked message, if any
type GetLastPublishedMessageOutput struct {
	// MessageID is the tracked leaderboard message, empty when none is tracked
	MessageID string
}

// SetLastPublishedMessageInput tracks a published leaderboard message
type SetLastPublishedMessageInput struct {
	// ChannelID is the Discord channel the leaderboard was published to
	ChannelID string

	// MessageID is the published message to track
	MessageID string
}
