package session

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/arcadebot/arcadebot/internal/games"
	"github.com/arcadebot/arcadebot/internal/models"
)

type runtimeSuite struct {
	suite.Suite
	rt *runtime
}

func (s *runtimeSuite) SetupTest() {
	rules, err := games.RulesFor(models.GameKindTrivia)
	s.Require().NoError(err)

	s.rt = newRuntime(&models.GameSession{
		ID:        "session-1",
		ChannelID: "channel-1",
		Kind:      models.GameKindTrivia,
		State:     models.SessionStateIdle,
	}, rules, nil)
}

// A guess decided just before the close must surface as the round winner
// instead of leaking into the next round's channel.
func (s *runtimeSuite) TestCloseRoundClaimsPendingWinner() {
	s.rt.openRound(&games.Challenge{Prompt: "q", Answers: []string{"a"}})

	s.rt.mu.Lock()
	s.rt.roundOpen = false
	s.rt.winnerCh <- guessEvent{
		messageID: "msg-1",
		userID:    "user-1",
		username:  "alice",
		answer:    "a",
	}
	s.rt.mu.Unlock()

	_, late := s.rt.closeRound()
	s.Require().NotNil(late)
	s.Equal("user-1", late.userID)
	s.Equal("a", late.answer)

	// the channel is clean for the next round
	select {
	case <-s.rt.winnerCh:
		s.Fail("winner channel should be empty after close")
	default:
	}
}

func (s *runtimeSuite) TestCloseRoundWithoutWinner() {
	s.rt.openRound(&games.Challenge{Prompt: "q", Answers: []string{"a"}})

	votes, late := s.rt.closeRound()
	s.Nil(late)
	s.Empty(votes)
}

func (s *runtimeSuite) TestCloseRoundSnapshotsVotes() {
	s.rt.openRound(&games.Challenge{OptionA: "x", OptionB: "y"})

	s.rt.mu.Lock()
	s.rt.votes = append(s.rt.votes, vote{userID: "user-1", username: "alice", option: "a"})
	s.rt.mu.Unlock()

	votes, late := s.rt.closeRound()
	s.Nil(late)
	s.Require().Len(votes, 1)
	s.Equal("user-1", votes[0].userID)
}

func TestRuntimeSuite(t *testing.T) {
	suite.Run(t, new(runtimeSuite))
}
