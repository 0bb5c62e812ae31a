package messaging

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/arcadebot/arcadebot/internal/random"
)

type messagingSuite struct {
	suite.Suite
	service *service
}

func (s *messagingSuite) SetupTest() {
	svc, err := New(&Config{
		Random: random.New(&random.Config{Seed: 42}),
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *messagingSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{})
	s.Error(err)
}

func (s *messagingSuite) TestWinnerMessageIncludesNameAndAnswer() {
	out, err := s.service.GetWinnerMessage(context.Background(), &GetWinnerMessageInput{
		Username: "alice",
		Answer:   "42",
	})
	s.Require().NoError(err)
	s.Contains(out.Message, "alice")
	s.Contains(out.Message, "42")
}

func (s *messagingSuite) TestTimeoutMessageIncludesReveal() {
	out, err := s.service.GetTimeoutMessage(context.Background(), &GetTimeoutMessageInput{
		Reveal: "paris",
	})
	s.Require().NoError(err)
	s.Contains(out.Message, "paris")
}

func (s *messagingSuite) TestGameStartedMessageIncludesHostAndGame() {
	out, err := s.service.GetGameStartedMessage(context.Background(), &GetGameStartedMessageInput{
		HostName:  "bob",
		GameLabel: "Trivia",
	})
	s.Require().NoError(err)
	s.Contains(out.Message, "bob")
	s.Contains(out.Message, "Trivia")
}

func (s *messagingSuite) TestMessagesVary() {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		out, err := s.service.GetJoinMessage(context.Background(), &GetJoinMessageInput{
			Username: "carol",
		})
		s.Require().NoError(err)
		s.True(strings.Contains(out.Message, "carol"))
		seen[out.Message] = true
	}
	s.Greater(len(seen), 1)
}

func TestMessagingSuite(t *testing.T) {
	suite.Run(t, new(messagingSuite))
}
