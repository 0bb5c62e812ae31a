package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/arcadebot/arcadebot/internal/models"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const (
	// Key for the shared recent-winners list
	recentWinnersKey = "leaderboard:recent_winners"

	// Key prefix for tracked leaderboard messages
	lastMessageKeyPrefix = "leaderboard:last_message:"
)

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed leaderboard repository
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

// GetRecentWinners retrieves the winners list from Redis. A missing key or an
// unreadable value is reported as an empty list so a corrupt store can never
// take the games down.
func (r *redisRepository) GetRecentWinners(ctx context.Context, input *GetRecentWinnersInput) (*GetRecentWinnersOutput, error) {
	raw, err := r.client.Get(ctx, recentWinnersKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetRecentWinnersOutput{Entries: []*models.LeaderboardEntry{}}, nil
		}
		return nil, fmt.Errorf("failed to get recent winners: %w", err)
	}

	var entries []*models.LeaderboardEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.WithError(err).Warn("recent winners record is corrupt, treating as empty")
		return &GetRecentWinnersOutput{Entries: []*models.LeaderboardEntry{}}, nil
	}

	return &GetRecentWinnersOutput{Entries: entries}, nil
}

// SaveRecentWinners persists the winners list to Redis
func (r *redisRepository) SaveRecentWinners(ctx context.Context, input *SaveRecentWinnersInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	entries := input.Entries
	if entries == nil {
		entries = []*models.LeaderboardEntry{}
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal recent winners: %w", err)
	}

	if err := r.client.Set(ctx, recentWinnersKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save recent winners: %w", err)
	}

	return nil
}

// GetLastPublishedMessage retrieves the tracked leaderboard message for a channel
func (r *redisRepository) GetLastPublishedMessage(ctx context.Context, input *GetLastPublishedMessageInput) (*GetLastPublishedMessageOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", lastMessageKeyPrefix, input.ChannelID)
	messageID, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetLastPublishedMessageOutput{}, nil
		}
		return nil, fmt.Errorf("failed to get last published message: %w", err)
	}

	return &GetLastPublishedMessageOutput{MessageID: messageID}, nil
}

// SetLastPublishedMessage tracks the leaderboard message posted to a channel
func (r *redisRepository) SetLastPublishedMessage(ctx context.Context, input *SetLastPublishedMessageInput) error {
	if input == nil || input.ChannelID == "" || input.MessageID == "" {
		return errors.New("input, channel ID and message ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", lastMessageKeyPrefix, input.ChannelID)
	if err := r.client.Set(ctx, key, input.MessageID, 0).Err(); err != nil {
		return fmt.Errorf("failed to set last published message: %w", err)
	}

	return nil
}
