package games

import (
	"time"

	"github.com/arcadebot/arcadebot/internal/models"
)

// EntryPolicy controls how a round winner reaches the shared recent-winners list
type EntryPolicy string

const (
	// EntryDirect adds every round winner to the shared list immediately
	EntryDirect EntryPolicy = "direct"

	// EntryMilestone adds a user only once they reach the session win cap
	EntryMilestone EntryPolicy = "milestone"
)

// Challenge is one announced puzzle within a round
type Challenge struct {
	// Prompt is the public text announcing the challenge
	Prompt string

	// Answers are the accepted answers, already normalized
	Answers []string

	// Reveal is shown when the round times out with no winner
	Reveal string

	// Hints are optional extra lines released on the hint schedule
	Hints []string

	// OptionA and OptionB are set for vote-mode challenges only
	OptionA string
	OptionB string
}

// Rules carries the per-kind round parameters
type Rules struct {
	// AnswerWindow is the wall-clock duration of one round
	AnswerWindow time.Duration

	// RoundLimit caps rounds; zero means the pool or the leaderboard ends the session
	RoundLimit int

	// RequiresJoin gates answering behind an explicit join reaction
	RequiresJoin bool

	// EntryPolicy decides when winners reach the shared list
	EntryPolicy EntryPolicy

	// SessionWinCap is the per-user win ceiling for milestone games
	SessionWinCap int

	// LockDuration locks the channel for this long after announcing, zero disables
	LockDuration time.Duration

	// VoteMode resolves rounds by button votes instead of a first-answer race
	VoteMode bool

	// HintInterval spaces hint releases within the answer window, zero disables
	HintInterval time.Duration
}

// RulesFor returns the round parameters for a game kind
func RulesFor(kind models.GameKind) (Rules, error) {
	switch kind {
	case models.GameKindNumberGuess:
		return Rules{
			AnswerWindow: 60 * time.Second,
			RoundLimit:   1,
			RequiresJoin: true,
			EntryPolicy:  EntryDirect,
			HintInterval: 20 * time.Second,
		}, nil
	case models.GameKindTrivia:
		return Rules{
			AnswerWindow:  30 * time.Second,
			EntryPolicy:   EntryMilestone,
			SessionWinCap: 5,
		}, nil
	case models.GameKindScramble:
		return Rules{
			AnswerWindow:  30 * time.Second,
			EntryPolicy:   EntryMilestone,
			SessionWinCap: 5,
		}, nil
	case models.GameKindRPS:
		return Rules{
			AnswerWindow: 10 * time.Second,
			EntryPolicy:  EntryDirect,
			LockDuration: 10 * time.Second,
		}, nil
	case models.GameKindLyrics:
		return Rules{
			AnswerWindow: 45 * time.Second,
			EntryPolicy:  EntryDirect,
		}, nil
	case models.GameKindWouldYouRather:
		return Rules{
			AnswerWindow:  30 * time.Second,
			RoundLimit:    20,
			EntryPolicy:   EntryMilestone,
			SessionWinCap: 5,
			VoteMode:      true,
		}, nil
	default:
		return Rules{}, ErrUnknownKind
	}
}
