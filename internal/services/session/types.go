package session

import (
	"time"

	"github.com/arcadebot/arcadebot/internal/common/clock"
	"github.com/arcadebot/arcadebot/internal/common/uuid"
	"github.com/arcadebot/arcadebot/internal/games"
	"github.com/arcadebot/arcadebot/internal/metrics"
	"github.com/arcadebot/arcadebot/internal/models"
	"github.com/arcadebot/arcadebot/internal/services/escalation"
	"github.com/arcadebot/arcadebot/internal/services/leaderboard"
)

// SourceFactory builds a fresh challenge source per game start
type SourceFactory interface {
	NewSource(kind models.GameKind) (games.Source, error)
}

// Config holds configuration for the session service
type Config struct {
	// Factory builds per-session challenge sources
	Factory SourceFactory

	// Service dependencies
	LeaderboardService leaderboard.Service
	EscalationService  escalation.Service
	Notifier           Notifier
	Clock              clock.Clock
	UUID               uuid.UUID

	// Metrics instruments the engine when set
	Metrics *metrics.Metrics
}

// StartInput contains parameters for starting a session
type StartInput struct {
	// ChannelID is the channel to claim
	ChannelID string

	// GuildID is the server the channel belongs to
	GuildID string

	// HostID and HostName identify the user starting the game
	HostID   string
	HostName string

	// Kind selects the mini-game
	Kind models.GameKind

	// Window overrides the per-kind answer window when positive
	Window time.Duration

	// RoundLimit overrides the per-kind round limit when positive
	RoundLimit int
}

// StartOutput contains the created session
type StartOutput struct {
	Session *models.GameSession
}

// GetInput identifies the channel to look up
type GetInput struct {
	ChannelID string
}

// GetOutput contains the active session, nil when the channel is idle
type GetOutput struct {
	Session *models.GameSession
}

// StopInput identifies the channel to stop
type StopInput struct {
	ChannelID string
}

// StopOutput reports whether a session was actually stopped
type StopOutput struct {
	Stopped bool
}

// JoinInput registers a participant for join-gated games
type JoinInput struct {
	ChannelID string
	UserID    string
}

// SubmitGuessInput carries one candidate answer from the chat stream
type SubmitGuessInput struct {
	ChannelID string
	MessageID string
	UserID    string
	Username  string
	Content   string
}

// SubmitGuessOutput reports what the engine did with the message
type SubmitGuessOutput struct {
	// Consumed is true when the message matched and was taken as the winner.
	// Matching messages from ineligible users are not consumed.
	Consumed bool
}

// SubmitVoteInput carries one button vote
type SubmitVoteInput struct {
	ChannelID string
	UserID    string
	Username  string

	// Option is "a" or "b"
	Option string
}

// SubmitVoteOutput reports whether the vote was recorded
type SubmitVoteOutput struct {
	// Recorded is false for duplicate votes and closed rounds
	Recorded bool
}

// AnnounceChallengeInput contains a round announcement
type AnnounceChallengeInput struct {
	ChannelID  string
	Prompt     string
	RoundIndex int
	RoundLimit int
	Window     time.Duration

	// VoteMode adds the A/B buttons
	VoteMode bool
	OptionA  string
	OptionB  string
}

// AnnounceChallengeOutput contains the announcement message ID
type AnnounceChallengeOutput struct {
	MessageID string
}

// AnnounceHintInput contains a mid-round hint
type AnnounceHintInput struct {
	ChannelID string
	Hint      string
}

// AcknowledgeWinnerInput identifies the winning message and user
type AcknowledgeWinnerInput struct {
	ChannelID string
	MessageID string
	UserID    string
	Username  string
	Answer    string
}

// AnnounceTimeoutInput reveals the answer after an unanswered round
type AnnounceTimeoutInput struct {
	ChannelID string
	Reveal    string
}

// VoteAward is one voter's outcome in a vote-mode round
type VoteAward struct {
	UserID   string
	Username string
	Points   int
}

// AnnounceVoteResultInput contains a vote round's tally
type AnnounceVoteResultInput struct {
	ChannelID string
	OptionA   string
	OptionB   string
	VotesA    int
	VotesB    int

	// Winner is "a", "b", or "" for a tie
	Winner string

	Awards []VoteAward
}

// AnnounceEndInput contains the session's closing message
type AnnounceEndInput struct {
	ChannelID string
	Reason    string
}

// LockChannelInput identifies the channel to lock
type LockChannelInput struct {
	ChannelID string
	GuildID   string
}

// UnlockChannelInput identifies the channel to unlock
type UnlockChannelInput struct {
	ChannelID string
	GuildID   string
}
