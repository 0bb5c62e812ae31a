package messages

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/arcadebot/arcadebot/internal/models"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Key prefix for composer message records
const recordKeyPrefix = "composer:message:"

// ErrRecordNotFound is returned when a message record is not found
var ErrRecordNotFound = errors.New("message record not found")

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed messages repository
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

// SaveRecord persists a message record to Redis
func (r *redisRepository) SaveRecord(ctx context.Context, input *SaveRecordInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record
	if record.MessageID == "" {
		return errors.New("message ID cannot be empty")
	}

	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal message record: %w", err)
	}

	key := fmt.Sprintf("%s%s", recordKeyPrefix, record.MessageID)
	if err := r.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save message record: %w", err)
	}

	return nil
}

// GetRecord retrieves a message record by message ID. A corrupt record is
// reported as not found, with a warning, rather than failing the caller.
func (r *redisRepository) GetRecord(ctx context.Context, input *GetRecordInput) (*models.MessageRecord, error) {
	if input == nil || input.MessageID == "" {
		return nil, errors.New("input and message ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", recordKeyPrefix, input.MessageID)
	raw, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get message record: %w", err)
	}

	var record models.MessageRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		log.WithError(err).WithField("message_id", input.MessageID).
			Warn("message record is corrupt, treating as missing")
		return nil, ErrRecordNotFound
	}

	return &record, nil
}

// DeleteRecord removes a message record
func (r *redisRepository) DeleteRecord(ctx context.Context, input *DeleteRecordInput) error {
	if input == nil || input.MessageID == "" {
		return errors.New("input and message ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", recordKeyPrefix, input.MessageID)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete message record: %w", err)
	}

	return nil
}
