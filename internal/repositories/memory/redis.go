package memory

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
	// Key prefix for per-channel conversation history lists
	conversationKeyPrefix = "memory:conversation:"

	// Key prefix for keyword memory records
	memoryKeyPrefix = "memory:keyword:"

	// Key for the set indexing all stored keywords
	memoryIndexKey = "memory:keywords"

	// defaultMaxConversationTurns bounds history when the config leaves it unset
	defaultMaxConversationTurns = 20
)

// ErrMemoryNotFound is returned when a keyword memory is not found
var ErrMemoryNotFound = errors.New("keyword memory not found")

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client   *redis.Client
	maxTurns int
}

// NewRedis creates a new Redis-backed memory repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	maxTurns := cfg.MaxConversationTurns
	if maxTurns <= 0 {
		maxTurns = defaultMaxConversationTurns
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client:   cfg.RedisClient,
		maxTurns: maxTurns,
	}, nil
}

// AppendConversation appends a turn to a channel's history and trims to the bound
func (r *redisRepository) AppendConversation(ctx context.Context, input *AppendConversationInput) error {
	if input == nil || input.ChannelID == "" || input.Message == nil {
		return errors.New("input, channel ID and message cannot be empty")
	}

	raw, err := json.Marshal(input.Message)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation message: %w", err)
	}

	key := fmt.Sprintf("%s%s", conversationKeyPrefix, input.ChannelID)

	pipe := r.client.Pipeline()
	pipe.RPush(ctx, key, raw)
	pipe.LTrim(ctx, key, int64(-r.maxTurns), -1)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append conversation message: %w", err)
	}

	return nil
}

// GetConversation returns a channel's history, oldest first
func (r *redisRepository) GetConversation(ctx context.Context, input *GetConversationInput) (*GetConversationOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", conversationKeyPrefix, input.ChannelID)
	raws, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation history: %w", err)
	}

	messages := make([]*models.ConversationMessage, 0, len(raws))
	for _, raw := range raws {
		var message models.ConversationMessage
		if err := json.Unmarshal([]byte(raw), &message); err != nil {
			log.WithError(err).WithField("channel_id", input.ChannelID).
				Warn("conversation turn is corrupt, skipping")
			continue
		}
		messages = append(messages, &message)
	}

	return &GetConversationOutput{Messages: messages}, nil
}

// SaveMemory stores a keyword memory and indexes its keyword
func (r *redisRepository) SaveMemory(ctx context.Context, input *SaveMemoryInput) error {
	if input == nil || input.Memory == nil {
		return errors.New("input and memory cannot be nil")
	}

	memory := input.Memory
	if memory.Keyword == "" {
		return errors.New("keyword cannot be empty")
	}

	raw, err := json.Marshal(memory)
	if err != nil {
		return fmt.Errorf("failed to marshal keyword memory: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%s", memoryKeyPrefix, memory.Keyword), raw, 0)
	pipe.SAdd(ctx, memoryIndexKey, memory.Keyword)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save keyword memory: %w", err)
	}

	return nil
}

// GetMemory retrieves a keyword memory by keyword
func (r *redisRepository) GetMemory(ctx context.Context, input *GetMemoryInput) (*models.KeywordMemory, error) {
	if input == nil || input.Keyword == "" {
		return nil, errors.New("input and keyword cannot be empty")
	}

	raw, err := r.client.Get(ctx, fmt.Sprintf("%s%s", memoryKeyPrefix, input.Keyword)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrMemoryNotFound
		}
		return nil, fmt.Errorf("failed to get keyword memory: %w", err)
	}

	var memory models.KeywordMemory
	if err := json.Unmarshal([]byte(raw), &memory); err != nil {
		log.WithError(err).WithField("keyword", input.Keyword).
			Warn("keyword memory is corrupt, treating as missing")
		return nil, ErrMemoryNotFound
	}

	return &memory, nil
}

// ListMemories returns all stored keyword memories using a pipelined fetch
func (r *redisRepository) ListMemories(ctx context.Context, input *ListMemoriesInput) (*ListMemoriesOutput, error) {
	keywords, err := r.client.SMembers(ctx, memoryIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list keywords: %w", err)
	}

	if len(keywords) == 0 {
		return &ListMemoriesOutput{Memories: []*models.KeywordMemory{}}, nil
	}

	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(keywords))
	for _, keyword := range keywords {
		commands[keyword] = pipe.Get(ctx, fmt.Sprintf("%s%s", memoryKeyPrefix, keyword))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to fetch keyword memories: %w", err)
	}

	memories := make([]*models.KeywordMemory, 0, len(keywords))
	for keyword, cmd := range commands {
		raw, err := cmd.Result()
		if err != nil {
			continue
		}

		var memory models.KeywordMemory
		if err := json.Unmarshal([]byte(raw), &memory); err != nil {
			log.WithError(err).WithField("keyword", keyword).
				Warn("keyword memory is corrupt, skipping")
			continue
		}
		memories = append(memories, &memory)
	}

	return &ListMemoriesOutput{Memories: memories}, nil
}
