package games

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/arcadebot/arcadebot/internal/models"
	"github.com/arcadebot/arcadebot/internal/random"
	"github.com/arcadebot/arcadebot/internal/services/ai"
	aimocks "github.com/arcadebot/arcadebot/internal/services/ai/mocks"
)

type GamesTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	mockAI  *aimocks.MockService
	factory *Factory
	ctx     context.Context
}

func (s *GamesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAI = aimocks.NewMockService(s.ctrl)

	factory, err := NewFactory(&FactoryConfig{
		Random:    random.New(&random.Config{Seed: 42}),
		AIService: s.mockAI,
		MaxNumber: 10,
	})
	s.Require().NoError(err)

	s.factory = factory
	s.ctx = context.Background()
}

func (s *GamesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestGamesTestSuite(t *testing.T) {
	suite.Run(t, new(GamesTestSuite))
}

func (s *GamesTestSuite) TestNewFactoryValidatesConfig() {
	_, err := NewFactory(nil)
	s.Require().ErrorIs(err, ErrNilConfig)

	_, err = NewFactory(&FactoryConfig{AIService: s.mockAI})
	s.Require().ErrorIs(err, ErrNilRandom)

	_, err = NewFactory(&FactoryConfig{Random: random.New(nil)})
	s.Require().ErrorIs(err, ErrNilAIService)
}

func (s *GamesTestSuite) TestRulesForEveryKind() {
	kinds := []models.GameKind{
		models.GameKindNumberGuess,
		models.GameKindTrivia,
		models.GameKindScramble,
		models.GameKindRPS,
		models.GameKindLyrics,
		models.GameKindWouldYouRather,
	}

	for _, kind := range kinds {
		rules, err := RulesFor(kind)
		s.Require().NoError(err, "kind %s", kind)
		s.Positive(rules.AnswerWindow, "kind %s", kind)

		if rules.EntryPolicy == EntryMilestone {
			s.Equal(5, rules.SessionWinCap, "kind %s", kind)
		}
	}

	_, err := RulesFor(models.GameKind("checkers"))
	s.Require().ErrorIs(err, ErrUnknownKind)
}

func (s *GamesTestSuite) TestMatchesNormalizes() {
	challenge := &Challenge{Answers: []string{"mars"}}

	s.True(Matches(challenge, "mars"))
	s.True(Matches(challenge, "  MARS "))
	s.False(Matches(challenge, "venus"))
	s.False(Matches(challenge, ""))
	s.False(Matches(nil, "mars"))
}

func (s *GamesTestSuite) TestPoolSourceServesEachChallengeOnce() {
	source, err := s.factory.NewSource(models.GameKindTrivia)
	s.Require().NoError(err)

	seen := make(map[string]bool)
	for i := 0; i < len(triviaPool); i++ {
		challenge, err := source.Next(s.ctx)
		s.Require().NoError(err)
		s.False(seen[challenge.Prompt], "challenge repeated: %s", challenge.Prompt)
		seen[challenge.Prompt] = true
	}

	_, err = source.Next(s.ctx)
	s.Require().ErrorIs(err, ErrExhausted)
}

func (s *GamesTestSuite) TestNumberGuessSingleRound() {
	source, err := s.factory.NewSource(models.GameKindNumberGuess)
	s.Require().NoError(err)

	challenge, err := source.Next(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(challenge.Answers, 1)

	secret, err := strconv.Atoi(challenge.Answers[0])
	s.Require().NoError(err)
	s.GreaterOrEqual(secret, 1)
	s.LessOrEqual(secret, 10)
	s.Len(challenge.Hints, 2)

	_, err = source.Next(s.ctx)
	s.Require().ErrorIs(err, ErrExhausted)
}

func (s *GamesTestSuite) TestRPSCounterMoves() {
	source, err := s.factory.NewSource(models.GameKindRPS)
	s.Require().NoError(err)

	for i := 0; i < 10; i++ {
		challenge, err := source.Next(s.ctx)
		s.Require().NoError(err)

		switch {
		case Matches(challenge, "paper"):
			s.Contains(challenge.Prompt, "rock")
		case Matches(challenge, "scissors"):
			s.Contains(challenge.Prompt, "paper")
			s.True(Matches(challenge, "scissor"))
		case Matches(challenge, "rock"):
			s.Contains(challenge.Prompt, "scissors")
		default:
			s.Fail("challenge accepts no counter move", challenge.Prompt)
		}
	}
}

func (s *GamesTestSuite) TestScrambleAnswersAreRealWords() {
	source, err := s.factory.NewSource(models.GameKindScramble)
	s.Require().NoError(err)

	challenge, err := source.Next(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(challenge.Answers, 1)
	s.Contains(scrambleWords, challenge.Answers[0])
}

func (s *GamesTestSuite) TestWouldYouRatherUsesGenerator() {
	s.mockAI.EXPECT().
		GenerateQuestionPair(s.ctx, &ai.GenerateQuestionPairInput{}).
		Return(&ai.GenerateQuestionPairOutput{OptionA: "fly", OptionB: "swim"}, nil)

	source, err := s.factory.NewSource(models.GameKindWouldYouRather)
	s.Require().NoError(err)

	challenge, err := source.Next(s.ctx)
	s.Require().NoError(err)
	s.Equal("fly", challenge.OptionA)
	s.Equal("swim", challenge.OptionB)
	s.Contains(challenge.Prompt, "fly")
	s.Contains(challenge.Prompt, "swim")
}

func (s *GamesTestSuite) TestWouldYouRatherPropagatesGenerationFailure() {
	s.mockAI.EXPECT().
		GenerateQuestionPair(s.ctx, gomock.Any()).
		Return(nil, ai.ErrQuestionGeneration)

	source, err := s.factory.NewSource(models.GameKindWouldYouRather)
	s.Require().NoError(err)

	_, err = source.Next(s.ctx)
	s.Require().ErrorIs(err, ai.ErrQuestionGeneration)
}
