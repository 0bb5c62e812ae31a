package session

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/arcadebot/arcadebot/internal/services/session Service,Notifier

// Service is the per-channel session registry plus the round engine behind it
type Service interface {
	// Start atomically claims the channel and launches the round loop.
	// Returns ErrAlreadyActive when the channel already has a session.
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// Get returns the active session for a channel, if any
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Stop ends the channel's session. Stopping a channel with no session is
	// not an error; the output reports whether anything was stopped.
	Stop(ctx context.Context, input *StopInput) (*StopOutput, error)

	// Join marks a user as a participant for join-gated games
	Join(ctx context.Context, input *JoinInput) error

	// SubmitGuess feeds one chat message into the channel's open round
	SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error)

	// SubmitVote records one button vote in a vote-mode round
	SubmitVote(ctx context.Context, input *SubmitVoteInput) (*SubmitVoteOutput, error)
}

// Notifier is the chat surface the round loop talks through. The Discord
// handler implements it; failures are logged by the loop, never fatal.
type Notifier interface {
	// AnnounceChallenge posts a round's challenge and returns the message ID
	AnnounceChallenge(ctx context.Context, input *AnnounceChallengeInput) (*AnnounceChallengeOutput, error)

	// AnnounceHint posts an extra hint line mid-round
	AnnounceHint(ctx context.Context, input *AnnounceHintInput) error

	// AcknowledgeWinner reacts to the winning message and announces the winner
	AcknowledgeWinner(ctx context.Context, input *AcknowledgeWinnerInput) error

	// AnnounceTimeout reveals the answer after a round with no winner
	AnnounceTimeout(ctx context.Context, input *AnnounceTimeoutInput) error

	// AnnounceVoteResult posts a vote-mode round's tally
	AnnounceVoteResult(ctx context.Context, input *AnnounceVoteResultInput) error

	// AnnounceEnd posts the session's closing message
	AnnounceEnd(ctx context.Context, input *AnnounceEndInput) error

	// LockChannel denies send permission in the channel for the cooldown
	LockChannel(ctx context.Context, input *LockChannelInput) error

	// UnlockChannel restores send permission
	UnlockChannel(ctx context.Context, input *UnlockChannelInput) error
}
