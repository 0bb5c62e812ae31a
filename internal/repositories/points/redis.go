package points

import (
	"context"
	"errors"
	"fmt"

	"github.com/arcadebot/arcadebot/internal/models"
	"github.com/redis/go-redis/v9"
)

// Key for the points sorted set
const ledgerKey = "points:ledger"

// ErrInvalidAmount is returned when a non-positive award is requested
var ErrInvalidAmount = errors.New("award amount must be positive")

// redisRepository implements the Repository interface using a Redis sorted set
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed points repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// AwardPoints adds amount to the user's total and returns the new total
func (r *redisRepository) AwardPoints(ctx context.Context, input *AwardPointsInput) (*AwardPointsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	total, err := r.client.ZIncrBy(ctx, ledgerKey, float64(input.Amount), input.UserID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to award points: %w", err)
	}

	return &AwardPointsOutput{Total: int(total)}, nil
}

// GetPoints returns the user's current total
func (r *redisRepository) GetPoints(ctx context.Context, input *GetPointsInput) (*GetPointsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	total, err := r.client.ZScore(ctx, ledgerKey, input.UserID).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetPointsOutput{Total: 0}, nil
		}
		return nil, fmt.Errorf("failed to get points: %w", err)
	}

	return &GetPointsOutput{Total: int(total)}, nil
}

// TopN returns the n highest totals, descending. Redis orders equal scores
// lexicographically by member, which gives the stable tie-break the callers rely on.
func (r *redisRepository) TopN(ctx context.Context, input *TopNInput) (*TopNOutput, error) {
	if input == nil || input.N <= 0 {
		return nil, errors.New("input and N must be positive")
	}

	members, err := r.client.ZRevRangeWithScores(ctx, ledgerKey, 0, int64(input.N-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read top points: %w", err)
	}

	entries := make([]*models.PointsEntry, 0, len(members))
	for _, member := range members {
		userID, ok := member.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, &models.PointsEntry{
			UserID: userID,
			Points: int(member.Score),
		})
	}

	return &TopNOutput{Entries: entries}, nil
}

// Reset clears the entire ledger
func (r *redisRepository) Reset(ctx context.Context, input *ResetInput) error {
	if err := r.client.Del(ctx, ledgerKey).Err(); err != nil {
		return fmt.Errorf("failed to reset points ledger: %w", err)
	}

	return nil
}
