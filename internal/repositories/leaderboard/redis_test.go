package leaderboard

import (
	"context"
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
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
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

func (s *RedisRepositoryTestSuite) TestGetRecentWinnersEmpty() {
	out, err := s.repo.GetRecentWinners(context.Background(), &GetRecentWinnersInput{})
	s.Require().NoError(err)
	s.Require().NotNil(out)
	s.Empty(out.Entries)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetRecentWinners() {
	entries := []*models.LeaderboardEntry{
		{
			UserID:   "user-1",
			Username: "PlayerOne",
			GameKind: models.GameKindNumberGuess,
			HostID:   "host-1",
			HostName: "Host",
			WonAt:    s.testNow,
		},
		{
			UserID:   "user-2",
			Username: "PlayerTwo",
			GameKind: models.GameKindTrivia,
			HostID:   "host-1",
			HostName: "Host",
			WonAt:    s.testNow.Add(time.Minute),
		},
	}

	err := s.repo.SaveRecentWinners(context.Background(), &SaveRecentWinnersInput{
		Entries: entries,
	})
	s.Require().NoError(err)

	out, err := s.repo.GetRecentWinners(context.Background(), &GetRecentWinnersInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 2)

	// Insertion order is preserved
	s.Equal("user-1", out.Entries[0].UserID)
	s.Equal("PlayerOne", out.Entries[0].Username)
	s.Equal(models.GameKindNumberGuess, out.Entries[0].GameKind)
	s.Equal("user-2", out.Entries[1].UserID)
	s.Equal(s.testNow.Add(time.Minute).Unix(), out.Entries[1].WonAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestCorruptRecordTreatedAsEmpty() {
	s.Require().NoError(s.mr.Set(recentWinnersKey, "{not valid json"))

	out, err := s.repo.GetRecentWinners(context.Background(), &GetRecentWinnersInput{})
	s.Require().NoError(err)
	s.Empty(out.Entries)
}

func (s *RedisRepositoryTestSuite) TestSaveEmptyListClears() {
	err := s.repo.SaveRecentWinners(context.Background(), &SaveRecentWinnersInput{
		Entries: []*models.LeaderboardEntry{
			{UserID: "user-1", Username: "PlayerOne", WonAt: s.testNow},
		},
	})
	s.Require().NoError(err)

	err = s.repo.SaveRecentWinners(context.Background(), &SaveRecentWinnersInput{})
	s.Require().NoError(err)

	out, err := s.repo.GetRecentWinners(context.Background(), &GetRecentWinnersInput{})
	s.Require().NoError(err)
	s.Empty(out.Entries)
}

func (s *RedisRepositoryTestSuite) TestLastPublishedMessageRoundTrip() {
	out, err := s.repo.GetLastPublishedMessage(context.Background(), &GetLastPublishedMessageInput{
		ChannelID: "channel-1",
	})
	s.Require().NoError(err)
	s.Empty(out.MessageID)

	err = s.repo.SetLastPublishedMessage(context.Background(), &SetLastPublishedMessageInput{
		ChannelID: "channel-1",
		MessageID: "message-42",
	})
	s.Require().NoError(err)

	out, err = s.repo.GetLastPublishedMessage(context.Background(), &GetLastPublishedMessageInput{
		ChannelID: "channel-1",
	})
	s.Require().NoError(err)
	s.Equal("message-42", out.MessageID)
}
