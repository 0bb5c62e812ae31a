package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/arcadebot/arcadebot/internal/common/clock"
	"github.com/arcadebot/arcadebot/internal/common/uuid"
	"github.com/arcadebot/arcadebot/internal/games"
	"github.com/arcadebot/arcadebot/internal/models"
	"github.com/arcadebot/arcadebot/internal/services/escalation"
	escalationmocks "github.com/arcadebot/arcadebot/internal/services/escalation/mocks"
	"github.com/arcadebot/arcadebot/internal/services/leaderboard"
	leaderboardmocks "github.com/arcadebot/arcadebot/internal/services/leaderboard/mocks"
	"github.com/arcadebot/arcadebot/internal/services/session"
)

const (
	testChannelID = "chan-1"
	testGuildID   = "guild-1"
	testHostID    = "host-1"
)

// scriptedSource serves a fixed challenge sequence then reports exhaustion
type scriptedSource struct {
	mu         sync.Mutex
	challenges []*games.Challenge
	next       int
}

func (s *scriptedSource) Next(_ context.Context) (*games.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.next >= len(s.challenges) {
		return nil, games.ErrExhausted
	}

	challenge := s.challenges[s.next]
	s.next++

	return challenge, nil
}

// fakeFactory hands every session the same scripted source
type fakeFactory struct {
	source games.Source
}

func (f *fakeFactory) NewSource(_ models.GameKind) (games.Source, error) {
	return f.source, nil
}

// fakeNotifier records chat-side calls and signals them over channels so
// tests can synchronize with the round loop goroutine
type fakeNotifier struct {
	mu          sync.Mutex
	winners     []*session.AcknowledgeWinnerInput
	timeouts    []*session.AnnounceTimeoutInput
	voteResults []*session.AnnounceVoteResultInput
	events      []string

	challengeCh chan *session.AnnounceChallengeInput
	endCh       chan *session.AnnounceEndInput
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{
		challengeCh: make(chan *session.AnnounceChallengeInput, 16),
		endCh:       make(chan *session.AnnounceEndInput, 16),
	}
}

func (f *fakeNotifier) AnnounceChallenge(_ context.Context, input *session.AnnounceChallengeInput) (*session.AnnounceChallengeOutput, error) {
	f.mu.Lock()
	f.events = append(f.events, "challenge")
	f.mu.Unlock()
	f.challengeCh <- input
	return &session.AnnounceChallengeOutput{MessageID: "msg-challenge"}, nil
}

func (f *fakeNotifier) AnnounceHint(_ context.Context, _ *session.AnnounceHintInput) error {
	return nil
}

func (f *fakeNotifier) AcknowledgeWinner(_ context.Context, input *session.AcknowledgeWinnerInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.winners = append(f.winners, input)
	f.events = append(f.events, "winner")
	return nil
}

func (f *fakeNotifier) AnnounceTimeout(_ context.Context, input *session.AnnounceTimeoutInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.timeouts = append(f.timeouts, input)
	f.events = append(f.events, "timeout")
	return nil
}

func (f *fakeNotifier) AnnounceVoteResult(_ context.Context, input *session.AnnounceVoteResultInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.voteResults = append(f.voteResults, input)
	f.events = append(f.events, "vote_result")
	return nil
}

func (f *fakeNotifier) AnnounceEnd(_ context.Context, input *session.AnnounceEndInput) error {
	f.mu.Lock()
	f.events = append(f.events, "end")
	f.mu.Unlock()
	f.endCh <- input
	return nil
}

func (f *fakeNotifier) LockChannel(_ context.Context, _ *session.LockChannelInput) error {
	return nil
}

func (f *fakeNotifier) UnlockChannel(_ context.Context, _ *session.UnlockChannelInput) error {
	return nil
}

func (f *fakeNotifier) recordedWinners() []*session.AcknowledgeWinnerInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*session.AcknowledgeWinnerInput(nil), f.winners...)
}

func (f *fakeNotifier) recordedTimeouts() []*session.AnnounceTimeoutInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*session.AnnounceTimeoutInput(nil), f.timeouts...)
}

func (f *fakeNotifier) recordedVoteResults() []*session.AnnounceVoteResultInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*session.AnnounceVoteResultInput(nil), f.voteResults...)
}

func (f *fakeNotifier) recordedEvents() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.events...)
}

type SessionServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockLeaderboard *leaderboardmocks.MockService
	mockEscalation  *escalationmocks.MockService
	notifier        *fakeNotifier
	ctx             context.Context
}

func (s *SessionServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockLeaderboard = leaderboardmocks.NewMockService(s.ctrl)
	s.mockEscalation = escalationmocks.NewMockService(s.ctrl)
	s.notifier = newFakeNotifier()
	s.ctx = context.Background()
}

func (s *SessionServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

func (s *SessionServiceTestSuite) newService(source games.Source) session.Service {
	svc, err := session.New(&session.Config{
		Factory:            &fakeFactory{source: source},
		LeaderboardService: s.mockLeaderboard,
		EscalationService:  s.mockEscalation,
		Notifier:           s.notifier,
		Clock:              clock.New(),
		UUID:               uuid.New(),
	})
	s.Require().NoError(err)
	return svc
}

func (s *SessionServiceTestSuite) waitChallenge() *session.AnnounceChallengeInput {
	select {
	case input := <-s.notifier.challengeCh:
		return input
	case <-time.After(2 * time.Second):
		s.FailNow("timed out waiting for challenge announcement")
		return nil
	}
}

func (s *SessionServiceTestSuite) waitEnd() *session.AnnounceEndInput {
	select {
	case input := <-s.notifier.endCh:
		return input
	case <-time.After(3 * time.Second):
		s.FailNow("timed out waiting for session end")
		return nil
	}
}

func (s *SessionServiceTestSuite) expectEmptyLeaderboard() {
	s.mockLeaderboard.EXPECT().
		ListWinners(gomock.Any(), gomock.Any()).
		Return(&leaderboard.ListWinnersOutput{}, nil).
		AnyTimes()
}

func (s *SessionServiceTestSuite) TestStartRejectsSecondSession() {
	s.expectEmptyLeaderboard()

	source := &scriptedSource{challenges: []*games.Challenge{
		{Prompt: "guess", Answers: []string{"7"}, Reveal: "7"},
	}}
	svc := s.newService(source)

	_, err := svc.Start(s.ctx, &session.StartInput{
		ChannelID: testChannelID,
		GuildID:   testGuildID,
		HostID:    testHostID,
		Kind:      models.GameKindNumberGuess,
		Window:    time.Second,
	})
	s.Require().NoError(err)
	s.waitChallenge()

	_, err = svc.Start(s.ctx, &session.StartInput{
		ChannelID: testChannelID,
		Kind:      models.GameKindNumberGuess,
	})
	s.Require().ErrorIs(err, session.ErrAlreadyActive)

	// a different channel is independent
	_, err = svc.Start(s.ctx, &session.StartInput{
		ChannelID: "chan-2",
		Kind:      models.GameKindNumberGuess,
		Window:    time.Second,
	})
	s.Require().NoError(err)
	s.waitChallenge()

	svc.Stop(s.ctx, &session.StopInput{ChannelID: testChannelID})
	svc.Stop(s.ctx, &session.StopInput{ChannelID: "chan-2"})
	s.waitEnd()
	s.waitEnd()
}

func (s *SessionServiceTestSuite) TestNumberGuessWinEndsSingleRoundSession() {
	s.expectEmptyLeaderboard()

	s.mockLeaderboard.EXPECT().
		AwardPoints(gomock.Any(), &leaderboard.AwardPointsInput{UserID: "user-1", Amount: 10}).
		Return(&leaderboard.AwardPointsOutput{Total: 10}, nil)

	s.mockLeaderboard.EXPECT().
		AddWinner(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *leaderboard.AddWinnerInput) (*leaderboard.AddWinnerOutput, error) {
			s.Equal("user-1", input.UserID)
			s.Equal("alice", input.Username)
			s.Equal(models.GameKindNumberGuess, input.GameKind)
			s.Equal(testHostID, input.HostID)
			return &leaderboard.AddWinnerOutput{Result: leaderboard.ResultAdded}, nil
		})

	source := &scriptedSource{challenges: []*games.Challenge{
		{Prompt: "guess my number", Answers: []string{"7"}, Reveal: "7"},
	}}
	svc := s.newService(source)

	out, err := svc.Start(s.ctx, &session.StartInput{
		ChannelID: testChannelID,
		GuildID:   testGuildID,
		HostID:    testHostID,
		HostName:  "hostess",
		Kind:      models.GameKindNumberGuess,
		Window:    time.Second,
	})
	s.Require().NoError(err)
	s.waitChallenge()

	s.Require().NoError(svc.Join(s.ctx, &session.JoinInput{ChannelID: testChannelID, UserID: "user-1"}))

	guessOut, err := svc.SubmitGuess(s.ctx, &session.SubmitGuessInput{
		ChannelID: testChannelID,
		MessageID: "msg-1",
		UserID:    "user-1",
		Username:  "alice",
		Content:   " 7 ",
	})
	s.Require().NoError(err)
	s.True(guessOut.Consumed)

	s.waitEnd()

	winners := s.notifier.recordedWinners()
	s.Require().Len(winners, 1)
	s.Equal("7", winners[0].Answer)
	s.Equal("msg-1", winners[0].MessageID)

	s.Equal(models.SessionStateEnded, out.Session.State)

	s.Eventually(func() bool {
		getOut, err := svc.Get(s.ctx, &session.GetInput{ChannelID: testChannelID})
		return err == nil && getOut.Session == nil
	}, time.Second, 10*time.Millisecond)
}

func (s *SessionServiceTestSuite) TestSingleWinnerRace() {
	s.expectEmptyLeaderboard()
	s.mockLeaderboard.EXPECT().
		AwardPoints(gomock.Any(), gomock.Any()).
		Return(&leaderboard.AwardPointsOutput{}, nil)
	s.mockLeaderboard.EXPECT().
		AddWinner(gomock.Any(), gomock.Any()).
		Return(&leaderboard.AddWinnerOutput{Result: leaderboard.ResultAdded}, nil).
		Times(1)

	source := &scriptedSource{challenges: []*games.Challenge{
		{Prompt: "guess", Answers: []string{"7"}, Reveal: "7"},
	}}
	svc := s.newService(source)

	_, err := svc.Start(s.ctx, &session.StartInput{
		ChannelID: testChannelID,
		GuildID:   testGuildID,
		HostID:    testHostID,
		Kind:      models.GameKindNumberGuess,
		Window:    time.Second,
	})
	s.Require().NoError(err)
	s.waitChallenge()

	for _, userID := range []string{"user-1", "user-2"} {
		s.Require().NoError(svc.Join(s.ctx, &session.JoinInput{ChannelID: testChannelID, UserID: userID}))
	}

	var consumed int
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, userID := range []string{"user-1", "user-2"} {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()
			out, err := svc.SubmitGuess(s.ctx, &session.SubmitGuessInput{
				ChannelID: testChannelID,
				MessageID: "msg-" + userID,
				UserID:    userID,
				Username:  userID,
				Content:   "7",
			})
			if err == nil && out.Consumed {
				mu.Lock()
				consumed++
				mu.Unlock()
			}
		}(userID)
	}
	wg.Wait()

	s.waitEnd()

	s.Equal(1, consumed)
	s.Len(s.notifier.recordedWinners(), 1)
}

func (s *SessionServiceTestSuite) TestUnjoinedUserIsIgnored() {
	s.expectEmptyLeaderboard()

	source := &scriptedSource{challenges: []*games.Challenge{
		{Prompt: "guess", Answers: []string{"7"}, Reveal: "7"},
	}}
	svc := s.newService(source)

	_, err := svc.Start(s.ctx, &session.StartInput{
		ChannelID: testChannelID,
		Kind:      models.GameKindNumberGuess,
		Window:    300 * time.Millisecond,
	})
	s.Require().NoError(err)
	s.waitChallenge()

	out, err := svc.SubmitGuess(s.ctx, &session.SubmitGuessInput{
		ChannelID: testChannelID,
		UserID:    "user-1",
		Username:  "alice",
		Content:   "7",
	})
	s.Require().NoError(err)
	s.False(out.Consumed)

	s.waitEnd()

	timeouts := s.notifier.recordedTimeouts()
	s.Require().Len(timeouts, 1)
	s.Equal("7", timeouts[0].Reveal)
	s.Empty(s.notifier.recordedWinners())
}

func (s *SessionServiceTestSuite) TestListedUserCannotWinAgain() {
	s.mockLeaderboard.EXPECT().
		ListWinners(gomock.Any(), gomock.Any()).
		Return(&leaderboard.ListWinnersOutput{Entries: []*models.LeaderboardEntry{
			{UserID: "user-1", Username: "alice"},
		}}, nil).
		AnyTimes()
	s.mockLeaderboard.EXPECT().
		AwardPoints(gomock.Any(), gomock.Any()).
		Return(&leaderboard.AwardPointsOutput{}, nil)
	s.mockLeaderboard.EXPECT().
		AddWinner(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *leaderboard.AddWinnerInput) (*leaderboard.AddWinnerOutput, error) {
			s.Equal("user-2", input.UserID)
			return &leaderboard.AddWinnerOutput{Result: leaderboard.ResultAdded}, nil
		})

	source := &scriptedSource{challenges: []*games.Challenge{
		{Prompt: "name the song", Answers: []string{"thriller"}, Reveal: "thriller"},
	}}
	svc := s.newService(source)

	_, err := svc.Start(s.ctx, &session.StartInput{
		ChannelID: testChannelID,
		Kind:      models.GameKindLyrics,
		Window:    time.Second,
	})
	s.Require().NoError(err)
	s.waitChallenge()

	out, err := svc.SubmitGuess(s.ctx, &session.SubmitGuessInput{
		ChannelID: testChannelID,
		UserID:    "user-1",
		Username:  "alice",
		Content:   "thriller",
	})
	s.Require().NoError(err)
	s.False(out.Consumed, "listed user must not resolve the round")

	out, err = svc.SubmitGuess(s.ctx, &session.SubmitGuessInput{
		ChannelID: testChannelID,
		UserID:    "user-2",
		Username:  "bob",
		Content:   "thriller",
	})
	s.Require().NoError(err)
	s.True(out.Consumed)

	s.waitEnd()
	s.Len(s.notifier.recordedWinners(), 1)
}

func (s *SessionServiceTestSuite) TestLeaderboardFullTriggersEscalationOnce() {
	s.expectEmptyLeaderboard()
	s.mockLeaderboard.EXPECT().
		AwardPoints(gomock.Any(), gomock.Any()).
		Return(&leaderboard.AwardPointsOutput{}, nil)
	s.mockLeaderboard.EXPECT().
		AddWinner(gomock.Any(), gomock.Any()).
		Return(&leaderboard.AddWinnerOutput{Result: leaderboard.ResultAdded, NewlyFull: true}, nil)

	s.mockEscalation.EXPECT().
		HandleLeaderboardFull(gomock.Any(), &escalation.HandleLeaderboardFullInput{
			GuildID:       testGuildID,
			GameChannelID: testChannelID,
			HostID:        testHostID,
		}).
		Return(&escalation.HandleLeaderboardFullOutput{}, nil).
		Times(1)

	// two challenges available, but the session must stop after escalation
	source := &scriptedSource{challenges: []*games.Challenge{
		{Prompt: "one", Answers: []string{"a"}, Reveal: "a"},
		{Prompt: "two", Answers: []string{"b"}, Reveal: "b"},
	}}
	svc := s.newService(source)

	_, err := svc.Start(s.ctx, &session.StartInput{
		ChannelID: testChannelID,
		GuildID:   testGuildID,
		HostID:    testHostID,
		Kind:      models.GameKindLyrics,
		Window:    time.Second,
	})
	s.Require().NoError(err)
	s.waitChallenge()

	out, err := svc.SubmitGuess(s.ctx, &session.SubmitGuessInput{
		ChannelID: testChannelID,
		UserID:    "user-10",
		Username:  "tenth",
		Content:   "a",
	})
	s.Require().NoError(err)
	s.True(out.Consumed)

	end := s.waitEnd()
	s.Contains(end.Reason, "leaderboard")
}

func (s *SessionServiceTestSuite) TestRoundsAreSequential() {
	s.expectEmptyLeaderboard()

	source := &scriptedSource{challenges: []*games.Challenge{
		{Prompt: "q1", Answers: []string{"a1"}, Reveal: "a1"},
		{Prompt: "q2", Answers: []string{"a2"}, Reveal: "a2"},
	}}
	svc := s.newService(source)

	_, err := svc.Start(s.ctx, &session.StartInput{
		ChannelID: testChannelID,
		Kind:      models.GameKindTrivia,
		Window:    150 * time.Millisecond,
	})
	s.Require().NoError(err)

	first := s.waitChallenge()
	s.Equal("q1", first.Prompt)
	s.Equal(1, first.RoundIndex)

	second := s.waitChallenge()
	s.Equal("q2", second.Prompt)
	s.Equal(2, second.RoundIndex)

	s.waitEnd()

	s.Equal([]string{"challenge", "timeout", "challenge", "timeout", "end"}, s.notifier.recordedEvents())
}

func (s *SessionServiceTestSuite) TestVoteRoundAwardsByOrder() {
	awarded := make(map[string]int)
	var awardMu sync.Mutex

	s.mockLeaderboard.EXPECT().
		AwardPoints(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *leaderboard.AwardPointsInput) (*leaderboard.AwardPointsOutput, error) {
			awardMu.Lock()
			awarded[input.UserID] = input.Amount
			awardMu.Unlock()
			return &leaderboard.AwardPointsOutput{}, nil
		}).
		Times(2)

	source := &scriptedSource{challenges: []*games.Challenge{
		{Prompt: "would you rather", OptionA: "fly", OptionB: "swim"},
	}}
	svc := s.newService(source)

	_, err := svc.Start(s.ctx, &session.StartInput{
		ChannelID:  testChannelID,
		Kind:       models.GameKindWouldYouRather,
		Window:     400 * time.Millisecond,
		RoundLimit: 1,
	})
	s.Require().NoError(err)

	challenge := s.waitChallenge()
	s.True(challenge.VoteMode)
	s.Equal("fly", challenge.OptionA)

	votes := []struct {
		user   string
		option string
	}{
		{"user-1", "a"},
		{"user-2", "a"},
		{"user-3", "b"},
	}
	for _, v := range votes {
		out, err := svc.SubmitVote(s.ctx, &session.SubmitVoteInput{
			ChannelID: testChannelID,
			UserID:    v.user,
			Username:  v.user,
			Option:    v.option,
		})
		s.Require().NoError(err)
		s.True(out.Recorded)
	}

	// duplicate vote is dropped
	dup, err := svc.SubmitVote(s.ctx, &session.SubmitVoteInput{
		ChannelID: testChannelID,
		UserID:    "user-1",
		Option:    "b",
	})
	s.Require().NoError(err)
	s.False(dup.Recorded)

	s.waitEnd()

	results := s.notifier.recordedVoteResults()
	s.Require().Len(results, 1)
	s.Equal(2, results[0].VotesA)
	s.Equal(1, results[0].VotesB)
	s.Equal("a", results[0].Winner)

	awardMu.Lock()
	defer awardMu.Unlock()
	s.Equal(100, awarded["user-1"])
	s.Equal(95, awarded["user-2"])
	s.Zero(awarded["user-3"])
}

func (s *SessionServiceTestSuite) TestStopIsIdempotent() {
	s.expectEmptyLeaderboard()

	source := &scriptedSource{challenges: []*games.Challenge{
		{Prompt: "q1", Answers: []string{"a1"}, Reveal: "a1"},
	}}
	svc := s.newService(source)

	out, err := svc.Stop(s.ctx, &session.StopInput{ChannelID: testChannelID})
	s.Require().NoError(err)
	s.False(out.Stopped)

	_, err = svc.Start(s.ctx, &session.StartInput{
		ChannelID: testChannelID,
		Kind:      models.GameKindTrivia,
		Window:    time.Second,
	})
	s.Require().NoError(err)
	s.waitChallenge()

	out, err = svc.Stop(s.ctx, &session.StopInput{ChannelID: testChannelID})
	s.Require().NoError(err)
	s.True(out.Stopped)

	end := s.waitEnd()
	s.Contains(end.Reason, "stopped")

	s.Eventually(func() bool {
		getOut, err := svc.Get(s.ctx, &session.GetInput{ChannelID: testChannelID})
		return err == nil && getOut.Session == nil
	}, time.Second, 10*time.Millisecond)

	out, err = svc.Stop(s.ctx, &session.StopInput{ChannelID: testChannelID})
	s.Require().NoError(err)
	s.False(out.Stopped)
}
