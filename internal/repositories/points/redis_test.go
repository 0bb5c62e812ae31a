package points

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestAwardPointsAccumulates() {
	out, err := s.repo.AwardPoints(context.Background(), &AwardPointsInput{
		UserID: "user-1",
		Amount: 100,
	})
	s.Require().NoError(err)
	s.Equal(100, out.Total)

	out, err = s.repo.AwardPoints(context.Background(), &AwardPointsInput{
		UserID: "user-1",
		Amount: 20,
	})
	s.Require().NoError(err)
	s.Equal(120, out.Total)
}

func (s *RedisRepositoryTestSuite) TestAwardPointsRejectsNonPositive() {
	_, err := s.repo.AwardPoints(context.Background(), &AwardPointsInput{
		UserID: "user-1",
		Amount: 0,
	})
	s.Require().ErrorIs(err, ErrInvalidAmount)

	_, err = s.repo.AwardPoints(context.Background(), &AwardPointsInput{
		UserID: "user-1",
		Amount: -5,
	})
	s.Require().ErrorIs(err, ErrInvalidAmount)
}

func (s *RedisRepositoryTestSuite) TestGetPointsUnknownUserIsZero() {
	out, err := s.repo.GetPoints(context.Background(), &GetPointsInput{
		UserID: "nobody",
	})
	s.Require().NoError(err)
	s.Equal(0, out.Total)
}

func (s *RedisRepositoryTestSuite) TestTopNSortsDescending() {
	awards := map[string]int{
		"user-1": 40,
		"user-2": 120,
		"user-3": 80,
	}
	for userID, amount := range awards {
		_, err := s.repo.AwardPoints(context.Background(), &AwardPointsInput{
			UserID: userID,
			Amount: amount,
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.TopN(context.Background(), &TopNInput{N: 2})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 2)
	s.Equal("user-2", out.Entries[0].UserID)
	s.Equal(120, out.Entries[0].Points)
	s.Equal("user-3", out.Entries[1].UserID)
	s.Equal(80, out.Entries[1].Points)
}

func (s *RedisRepositoryTestSuite) TestResetClearsLedger() {
	_, err := s.repo.AwardPoints(context.Background(), &AwardPointsInput{
		UserID: "user-1",
		Amount: 50,
	})
	s.Require().NoError(err)

	err = s.repo.Reset(context.Background(), &ResetInput{})
	s.Require().NoError(err)

	out, err := s.repo.GetPoints(context.Background(), &GetPointsInput{
		UserID: "user-1",
	})
	s.Require().NoError(err)
	s.Equal(0, out.Total)
}
