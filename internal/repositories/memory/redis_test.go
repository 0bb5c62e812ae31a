package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/arcadebot/arcadebot/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient:          s.client,
		MaxConversationTurns: 4,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) appendTurn(channelID, role, content string) {
	err := s.repo.AppendConversation(context.Background(), &AppendConversationInput{
		ChannelID: channelID,
		Message: &models.ConversationMessage{
			Role:      role,
			Content:   content,
			CreatedAt: s.testNow,
		},
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestConversationRoundTrip() {
	s.appendTurn("channel-1", "user", "hello")
	s.appendTurn("channel-1", "assistant", "hi there")

	out, err := s.repo.GetConversation(context.Background(), &GetConversationInput{
		ChannelID: "channel-1",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Messages, 2)
	s.Equal("user", out.Messages[0].Role)
	s.Equal("hello", out.Messages[0].Content)
	s.Equal("assistant", out.Messages[1].Role)
}

func (s *RedisRepositoryTestSuite) TestConversationTrimsToBound() {
	for i := 0; i < 7; i++ {
		s.appendTurn("channel-1", "user", fmt.Sprintf("turn-%d", i))
	}

	out, err := s.repo.GetConversation(context.Background(), &GetConversationInput{
		ChannelID: "channel-1",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Messages, 4)

	// The most recent turns are kept
	s.Equal("turn-3", out.Messages[0].Content)
	s.Equal("turn-6", out.Messages[3].Content)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetMemory() {
	memory := &models.KeywordMemory{
		Keyword:   "server rules",
		Answer:    "Be kind, no spam.",
		Embedding: []float32{0.1, 0.2, 0.3},
		TaughtBy:  "staff-1",
		CreatedAt: s.testNow,
	}

	err := s.repo.SaveMemory(context.Background(), &SaveMemoryInput{Memory: memory})
	s.Require().NoError(err)

	got, err := s.repo.GetMemory(context.Background(), &GetMemoryInput{
		Keyword: "server rules",
	})
	s.Require().NoError(err)
	s.Equal("Be kind, no spam.", got.Answer)
	s.Require().Len(got.Embedding, 3)
	s.InDelta(0.2, got.Embedding[1], 0.0001)
}

func (s *RedisRepositoryTestSuite) TestGetMissingMemory() {
	_, err := s.repo.GetMemory(context.Background(), &GetMemoryInput{
		Keyword: "nothing",
	})
	s.Require().ErrorIs(err, ErrMemoryNotFound)
}

func (s *RedisRepositoryTestSuite) TestListMemoriesSkipsCorrupt() {
	err := s.repo.SaveMemory(context.Background(), &SaveMemoryInput{
		Memory: &models.KeywordMemory{
			Keyword:   "good",
			Answer:    "valid entry",
			CreatedAt: s.testNow,
		},
	})
	s.Require().NoError(err)

	// Plant a corrupt record behind an indexed keyword
	s.Require().NoError(s.mr.Set(fmt.Sprintf("%s%s", memoryKeyPrefix, "bad"), "not json"))
	_, err = s.client.SAdd(context.Background(), memoryIndexKey, "bad").Result()
	s.Require().NoError(err)

	out, err := s.repo.ListMemories(context.Background(), &ListMemoriesInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Memories, 1)
	s.Equal("good", out.Memories[0].Keyword)
}
