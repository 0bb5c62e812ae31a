package points

import (
	"github.com/arcadebot/arcadebot/internal/models"
	"github.com/redis/go-redis/v9"
)

// Config holds configuration for the Redis points repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// AwardPointsInput contains parameters for awarding points
type AwardPointsInput struct {
	// UserID is the Discord user ID to credit
	UserID string

	// Amount is the number of points to add, must be positive
	Amount int
}

// AwardPointsOutput contains the user's new total
type AwardPointsOutput struct {
	// Total is the user's point total after the award
	Total int
}

// GetPointsInput identifies the user to look up
type GetPointsInput struct {
	// UserID is the Discord user ID
	UserID string
}

// GetPointsOutput contains the user's current total
type GetPointsOutput struct {
	// Total is the user's point total, zero when the user has none
	Total int
}

// TopNInput contains parameters for reading the top of the ledger
type TopNInput struct {
	// N is the maximum number of entries to return
	N int
}

// TopNOutput contains the highest totals, descending
type TopNOutput struct {
	// Entries holds the top point totals
	Entries []*models.PointsEntry
}

// ResetInput contains parameters for clearing the ledger
type ResetInput struct{}
