package models

import (
	"time"
)

// GameKind identifies which mini-game variant a session is running
type GameKind string

const (
	// GameKindNumberGuess is the guess-the-number game
	GameKindNumberGuess GameKind = "number_guess"

	// GameKindTrivia is the trivia question game
	GameKindTrivia GameKind = "trivia"

	// GameKindScramble is the word scramble game
	GameKindScramble GameKind = "scramble"

	// GameKindRPS is the rock-paper-scissors counter-move race
	GameKindRPS GameKind = "rps"

	// GameKindLyrics is the lyrics guessing game
	GameKindLyrics GameKind = "lyrics"

	// GameKindWouldYouRather is the AI-backed would-you-rather game
	GameKindWouldYouRather GameKind = "would_you_rather"
)

// SessionState represents the current state of a game session
type SessionState string

const (
	// SessionStateIdle indicates a session was created but no round has started
	SessionStateIdle SessionState = "idle"

	// SessionStateAnnounced indicates a challenge is being announced
	SessionStateAnnounced SessionState = "announced"

	// SessionStateAwaitingAnswer indicates the answer window is open
	SessionStateAwaitingAnswer SessionState = "awaiting_answer"

	// SessionStateRoundResolved indicates the current round has a winner or timed out
	SessionStateRoundResolved SessionState = "round_resolved"

	// SessionStateEnded indicates the session is finished
	SessionStateEnded SessionState = "ended"
)

// GameSession represents one running mini-game bound to a single channel
type GameSession struct {
	// ID is the unique identifier for the session
	ID string

	// ChannelID is the Discord channel the session is bound to
	ChannelID string

	// GuildID is the Discord server the channel belongs to
	GuildID string

	// HostID is the Discord user ID of the user who started the session
	HostID string

	// HostName is the display name of the host
	HostName string

	// Kind identifies which mini-game variant is running
	Kind GameKind

	// State is the current lifecycle state of the session
	State SessionState

	// RoundIndex is the number of rounds announced so far
	RoundIndex int

	// RoundLimit caps the number of rounds; zero means unlimited
	RoundLimit int

	// CreatedAt is when the session was started
	CreatedAt time.Time
}
