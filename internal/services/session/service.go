package session

import (
	"context"
	"errors"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/arcadebot/arcadebot/internal/games"
	"github.com/arcadebot/arcadebot/internal/metrics"
	"github.com/arcadebot/arcadebot/internal/models"
	"github.com/arcadebot/arcadebot/internal/services/escalation"
	"github.com/arcadebot/arcadebot/internal/services/leaderboard"

	"github.com/arcadebot/arcadebot/internal/common/clock"
	"github.com/arcadebot/arcadebot/internal/common/uuid"
)

const (
	// roundWinPoints is the ledger credit for winning an answer-race round
	roundWinPoints = 10

	// vote-mode scoring: 100, 95, 90, ... by vote order, never below 20
	voteBasePoints  = 100
	voteStepPoints  = 5
	voteFloorPoints = 20

	// tiePoints goes to every voter when a vote round ties
	tiePoints = 10
)

// service implements the Service interface
type service struct {
	factory            SourceFactory
	leaderboardService leaderboard.Service
	escalationService  escalation.Service
	notifier           Notifier
	clock              clock.Clock
	uuid               uuid.UUID
	metrics            *metrics.Metrics

	mu       sync.Mutex
	sessions map[string]*runtime
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Factory == nil {
		return nil, ErrNilFactory
	}

	if cfg.LeaderboardService == nil {
		return nil, ErrNilLeaderboardService
	}

	if cfg.EscalationService == nil {
		return nil, ErrNilEscalationService
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	return &service{
		factory:            cfg.Factory,
		leaderboardService: cfg.LeaderboardService,
		escalationService:  cfg.EscalationService,
		notifier:           cfg.Notifier,
		clock:              cfg.Clock,
		uuid:               cfg.UUID,
		metrics:            cfg.Metrics,
		sessions:           make(map[string]*runtime),
	}, nil
}

// Start implements the Service interface
func (s *service) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if input == nil {
		return nil, ErrNilConfig
	}

	if input.ChannelID == "" {
		return nil, ErrEmptyChannelID
	}

	rules, err := games.RulesFor(input.Kind)
	if err != nil {
		return nil, err
	}

	if input.Window > 0 {
		rules.AnswerWindow = input.Window
	}

	if input.RoundLimit > 0 {
		rules.RoundLimit = input.RoundLimit
	}

	source, err := s.factory.NewSource(input.Kind)
	if err != nil {
		return nil, err
	}

	model := &models.GameSession{
		ID:         s.uuid.NewUUID(),
		ChannelID:  input.ChannelID,
		GuildID:    input.GuildID,
		HostID:     input.HostID,
		HostName:   input.HostName,
		Kind:       input.Kind,
		State:      models.SessionStateIdle,
		RoundLimit: rules.RoundLimit,
		CreatedAt:  s.clock.Now(),
	}

	rt := newRuntime(model, rules, source)

	s.mu.Lock()
	if _, exists := s.sessions[input.ChannelID]; exists {
		s.mu.Unlock()
		return nil, ErrAlreadyActive
	}
	s.sessions[input.ChannelID] = rt
	s.mu.Unlock()

	go s.run(rt)

	log.WithFields(log.Fields{
		"channel_id": input.ChannelID,
		"game_kind":  input.Kind,
		"session_id": model.ID,
	}).Info("game session started")

	return &StartOutput{Session: model}, nil
}

// Get implements the Service interface
func (s *service) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrEmptyChannelID
	}

	s.mu.Lock()
	rt := s.sessions[input.ChannelID]
	s.mu.Unlock()

	if rt == nil {
		return &GetOutput{}, nil
	}

	return &GetOutput{Session: rt.model}, nil
}

// Stop implements the Service interface
func (s *service) Stop(_ context.Context, input *StopInput) (*StopOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrEmptyChannelID
	}

	s.mu.Lock()
	rt := s.sessions[input.ChannelID]
	s.mu.Unlock()

	if rt == nil {
		return &StopOutput{Stopped: false}, nil
	}

	rt.signalStop()

	return &StopOutput{Stopped: true}, nil
}

// Join implements the Service interface
func (s *service) Join(_ context.Context, input *JoinInput) error {
	if input == nil || input.ChannelID == "" {
		return ErrEmptyChannelID
	}

	if input.UserID == "" {
		return ErrEmptyUserID
	}

	s.mu.Lock()
	rt := s.sessions[input.ChannelID]
	s.mu.Unlock()

	if rt == nil {
		return nil
	}

	rt.mu.Lock()
	rt.participants[input.UserID] = struct{}{}
	rt.mu.Unlock()

	return nil
}

// SubmitGuess implements the Service interface. The critical section decides
// whether this message wins the round; announcements and persistence happen
// on the round loop goroutine afterwards.
func (s *service) SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrEmptyChannelID
	}

	s.mu.Lock()
	rt := s.sessions[input.ChannelID]
	s.mu.Unlock()

	if rt == nil {
		return &SubmitGuessOutput{}, nil
	}

	rt.mu.Lock()
	defer rt.mu.Unlock()

	if !rt.roundOpen || rt.rules.VoteMode {
		return &SubmitGuessOutput{}, nil
	}

	if !games.Matches(rt.challenge, input.Content) {
		return &SubmitGuessOutput{}, nil
	}

	if !s.eligibleLocked(ctx, rt, input.UserID) {
		return &SubmitGuessOutput{}, nil
	}

	rt.roundOpen = false
	rt.winnerCh <- guessEvent{
		messageID: input.MessageID,
		userID:    input.UserID,
		username:  input.Username,
		answer:    games.Normalize(input.Content),
	}

	return &SubmitGuessOutput{Consumed: true}, nil
}

// eligibleLocked applies the per-kind exclusion rules. Caller holds rt.mu;
// the shared-list read is serialized through that same guard.
func (s *service) eligibleLocked(ctx context.Context, rt *runtime, userID string) bool {
	if userID == "" {
		return false
	}

	if rt.rules.RequiresJoin {
		if _, joined := rt.participants[userID]; !joined {
			return false
		}
	}

	if rt.rules.EntryPolicy == games.EntryMilestone && rt.wins[userID] >= rt.rules.SessionWinCap {
		return false
	}

	if rt.rules.EntryPolicy == games.EntryDirect {
		winnersOut, err := s.leaderboardService.ListWinners(ctx, &leaderboard.ListWinnersInput{})
		if err != nil {
			log.WithError(err).Warn("winner list unavailable, treating guesser as eligible")
			return true
		}

		for _, entry := range winnersOut.Entries {
			if entry.UserID == userID {
				return false
			}
		}
	}

	return true
}

// SubmitVote implements the Service interface
func (s *service) SubmitVote(_ context.Context, input *SubmitVoteInput) (*SubmitVoteOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrEmptyChannelID
	}

	if input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	s.mu.Lock()
	rt := s.sessions[input.ChannelID]
	s.mu.Unlock()

	if rt == nil {
		return &SubmitVoteOutput{}, nil
	}

	rt.mu.Lock()
	defer rt.mu.Unlock()

	if !rt.roundOpen || !rt.rules.VoteMode {
		return &SubmitVoteOutput{}, nil
	}

	if input.Option != "a" && input.Option != "b" {
		return &SubmitVoteOutput{}, nil
	}

	if _, already := rt.voted[input.UserID]; already {
		return &SubmitVoteOutput{}, nil
	}

	rt.voted[input.UserID] = struct{}{}
	rt.votes = append(rt.votes, vote{
		userID:   input.UserID,
		username: input.Username,
		option:   input.Option,
	})

	return &SubmitVoteOutput{Recorded: true}, nil
}

// run drives one session's round loop until an end condition or a stop
func (s *service) run(rt *runtime) {
	ctx := context.Background()
	logger := log.WithFields(log.Fields{
		"channel_id": rt.model.ChannelID,
		"game_kind":  rt.model.Kind,
	})

	if s.metrics != nil {
		s.metrics.ActiveSessions.Inc()
	}

	defer func() {
		s.mu.Lock()
		delete(s.sessions, rt.model.ChannelID)
		s.mu.Unlock()

		if s.metrics != nil {
			s.metrics.ActiveSessions.Dec()
		}

		if rt.model.State != models.SessionStateEnded {
			rt.transition(eventEnd)
		}

		logger.Info("game session ended")
	}()

	for {
		select {
		case <-rt.stopCh:
			s.announceEnd(ctx, rt, "Game stopped.")
			return
		default:
		}

		if rt.rules.RoundLimit > 0 && rt.model.RoundIndex >= rt.rules.RoundLimit {
			s.announceEnd(ctx, rt, "That's all the rounds, thanks for playing!")
			return
		}

		challenge, err := rt.source.Next(ctx)
		if errors.Is(err, games.ErrExhausted) {
			s.announceEnd(ctx, rt, "We've run out of challenges, thanks for playing!")
			return
		}
		if err != nil {
			logger.WithError(err).Error("challenge generation failed, aborting session")
			s.announceEnd(ctx, rt, "I couldn't come up with a new challenge, so the game ends here.")
			return
		}

		rt.transition(eventAnnounce)
		rt.openRound(challenge)

		_, err = s.notifier.AnnounceChallenge(ctx, &AnnounceChallengeInput{
			ChannelID:  rt.model.ChannelID,
			Prompt:     challenge.Prompt,
			RoundIndex: rt.model.RoundIndex + 1,
			RoundLimit: rt.rules.RoundLimit,
			Window:     rt.rules.AnswerWindow,
			VoteMode:   rt.rules.VoteMode,
			OptionA:    challenge.OptionA,
			OptionB:    challenge.OptionB,
		})
		if err != nil {
			logger.WithError(err).Warn("failed to announce challenge")
		}

		rt.transition(eventOpen)

		winner, stopped := s.awaitRound(ctx, rt, challenge)
		votes, late := rt.closeRound()
		if winner == nil && late != nil {
			winner = late
		}
		rt.transition(eventResolve)

		if stopped {
			s.announceEnd(ctx, rt, "Game stopped.")
			return
		}

		var escalated bool
		switch {
		case rt.rules.VoteMode:
			escalated = s.resolveVotes(ctx, rt, challenge, votes)
		case winner != nil:
			escalated = s.resolveWinner(ctx, rt, winner)
		default:
			if err := s.notifier.AnnounceTimeout(ctx, &AnnounceTimeoutInput{
				ChannelID: rt.model.ChannelID,
				Reveal:    challenge.Reveal,
			}); err != nil {
				logger.WithError(err).Warn("failed to announce timeout")
			}
		}

		rt.model.RoundIndex++

		if s.metrics != nil {
			s.metrics.RoundsPlayed.WithLabelValues(string(rt.model.Kind)).Inc()
		}

		if escalated {
			s.announceEnd(ctx, rt, "The leaderboard is full! The game ends here.")
			return
		}

		if rt.rules.LockDuration > 0 && !s.cooldown(ctx, rt) {
			s.announceEnd(ctx, rt, "Game stopped.")
			return
		}
	}
}

// awaitRound waits for the first winner, the deadline, or a stop. Hints are
// released on the hint schedule while waiting.
func (s *service) awaitRound(ctx context.Context, rt *runtime, challenge *games.Challenge) (winner *guessEvent, stopped bool) {
	timer := time.NewTimer(rt.rules.AnswerWindow)
	defer timer.Stop()

	var hintCh <-chan time.Time
	var hintTicker *time.Ticker
	if rt.rules.HintInterval > 0 && len(challenge.Hints) > 0 {
		hintTicker = time.NewTicker(rt.rules.HintInterval)
		hintCh = hintTicker.C
		defer hintTicker.Stop()
	}

	hintIndex := 0

	for {
		select {
		case ev := <-rt.winnerCh:
			return &ev, false
		case <-timer.C:
			// a winner decided just before the deadline still counts
			select {
			case ev := <-rt.winnerCh:
				return &ev, false
			default:
				return nil, false
			}
		case <-rt.stopCh:
			return nil, true
		case <-hintCh:
			if hintIndex >= len(challenge.Hints) {
				continue
			}

			err := s.notifier.AnnounceHint(ctx, &AnnounceHintInput{
				ChannelID: rt.model.ChannelID,
				Hint:      challenge.Hints[hintIndex],
			})
			if err != nil {
				log.WithError(err).Warn("failed to announce hint")
			}
			hintIndex++
		}
	}
}

// resolveWinner records an answer-race win. Returns true when the shared list
// filled and escalation ran.
func (s *service) resolveWinner(ctx context.Context, rt *runtime, winner *guessEvent) bool {
	winCount := rt.recordWin(winner.userID)

	if s.metrics != nil {
		s.metrics.WinsRecorded.WithLabelValues(string(rt.model.Kind)).Inc()
	}

	if err := s.notifier.AcknowledgeWinner(ctx, &AcknowledgeWinnerInput{
		ChannelID: rt.model.ChannelID,
		MessageID: winner.messageID,
		UserID:    winner.userID,
		Username:  winner.username,
		Answer:    winner.answer,
	}); err != nil {
		log.WithError(err).Warn("failed to acknowledge winner")
	}

	if _, err := s.leaderboardService.AwardPoints(ctx, &leaderboard.AwardPointsInput{
		UserID: winner.userID,
		Amount: roundWinPoints,
	}); err != nil {
		log.WithError(err).WithField("user_id", winner.userID).Warn("failed to award points")
	}

	switch rt.rules.EntryPolicy {
	case games.EntryDirect:
		return s.addToSharedList(ctx, rt, winner.userID, winner.username)
	case games.EntryMilestone:
		if winCount == rt.rules.SessionWinCap {
			if err := s.escalationService.AnnounceMilestone(ctx, &escalation.AnnounceMilestoneInput{
				ChannelID: rt.model.ChannelID,
				UserID:    winner.userID,
				Username:  winner.username,
				Wins:      winCount,
			}); err != nil {
				log.WithError(err).Warn("failed to announce milestone")
			}

			return s.addToSharedList(ctx, rt, winner.userID, winner.username)
		}
	}

	return false
}

// resolveVotes tallies a vote round, awards points by vote order, and feeds
// session wins on the majority side. Returns true when escalation ran.
func (s *service) resolveVotes(ctx context.Context, rt *runtime, challenge *games.Challenge, votes []vote) bool {
	var votesA, votesB int
	for _, v := range votes {
		if v.option == "a" {
			votesA++
		} else {
			votesB++
		}
	}

	result := &AnnounceVoteResultInput{
		ChannelID: rt.model.ChannelID,
		OptionA:   challenge.OptionA,
		OptionB:   challenge.OptionB,
		VotesA:    votesA,
		VotesB:    votesB,
	}

	escalated := false

	switch {
	case len(votes) == 0:
		// nobody voted, nothing to award
	case votesA == votesB:
		for _, v := range votes {
			s.awardVotePoints(ctx, v.userID, tiePoints)
			result.Awards = append(result.Awards, VoteAward{
				UserID:   v.userID,
				Username: v.username,
				Points:   tiePoints,
			})
		}
	default:
		winning := "a"
		if votesB > votesA {
			winning = "b"
		}
		result.Winner = winning

		position := 0
		for _, v := range votes {
			if v.option != winning {
				continue
			}

			points := voteBasePoints - voteStepPoints*position
			if points < voteFloorPoints {
				points = voteFloorPoints
			}
			position++

			s.awardVotePoints(ctx, v.userID, points)
			result.Awards = append(result.Awards, VoteAward{
				UserID:   v.userID,
				Username: v.username,
				Points:   points,
			})

			if rt.recordWin(v.userID) == rt.rules.SessionWinCap {
				if err := s.escalationService.AnnounceMilestone(ctx, &escalation.AnnounceMilestoneInput{
					ChannelID: rt.model.ChannelID,
					UserID:    v.userID,
					Username:  v.username,
					Wins:      rt.rules.SessionWinCap,
				}); err != nil {
					log.WithError(err).Warn("failed to announce milestone")
				}

				if s.addToSharedList(ctx, rt, v.userID, v.username) {
					escalated = true
				}
			}
		}
	}

	if err := s.notifier.AnnounceVoteResult(ctx, result); err != nil {
		log.WithError(err).Warn("failed to announce vote result")
	}

	return escalated
}

func (s *service) awardVotePoints(ctx context.Context, userID string, points int) {
	if _, err := s.leaderboardService.AwardPoints(ctx, &leaderboard.AwardPointsInput{
		UserID: userID,
		Amount: points,
	}); err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("failed to award points")
	}
}

// addToSharedList records a winner on the shared list and, when this fills it,
// runs escalation to completion before the loop's next round
func (s *service) addToSharedList(ctx context.Context, rt *runtime, userID, username string) bool {
	addOut, err := s.leaderboardService.AddWinner(ctx, &leaderboard.AddWinnerInput{
		UserID:   userID,
		Username: username,
		GameKind: rt.model.Kind,
		HostID:   rt.model.HostID,
		HostName: rt.model.HostName,
	})
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("failed to record winner")
		return false
	}

	if !addOut.NewlyFull {
		return false
	}

	if s.metrics != nil {
		s.metrics.Escalations.Inc()
	}

	if _, err := s.escalationService.HandleLeaderboardFull(ctx, &escalation.HandleLeaderboardFullInput{
		GuildID:       rt.model.GuildID,
		GameChannelID: rt.model.ChannelID,
		HostID:        rt.model.HostID,
	}); err != nil {
		log.WithError(err).Error("escalation failed")
	}

	return true
}

// cooldown locks the channel between rounds for kinds that want it.
// Returns false when a stop arrived mid-cooldown.
func (s *service) cooldown(ctx context.Context, rt *runtime) bool {
	if err := s.notifier.LockChannel(ctx, &LockChannelInput{
		ChannelID: rt.model.ChannelID,
		GuildID:   rt.model.GuildID,
	}); err != nil {
		log.WithError(err).Warn("failed to lock channel for cooldown")
	}

	defer func() {
		if err := s.notifier.UnlockChannel(ctx, &UnlockChannelInput{
			ChannelID: rt.model.ChannelID,
			GuildID:   rt.model.GuildID,
		}); err != nil {
			log.WithError(err).Warn("failed to unlock channel after cooldown")
		}
	}()

	timer := time.NewTimer(rt.rules.LockDuration)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-rt.stopCh:
		return false
	}
}

// announceEnd posts the closing message and marks the session ended
func (s *service) announceEnd(ctx context.Context, rt *runtime, reason string) {
	rt.mu.Lock()
	rt.roundOpen = false
	rt.mu.Unlock()

	rt.transition(eventEnd)

	if err := s.notifier.AnnounceEnd(ctx, &AnnounceEndInput{
		ChannelID: rt.model.ChannelID,
		Reason:    reason,
	}); err != nil {
		log.WithError(err).Warn("failed to announce session end")
	}
}
