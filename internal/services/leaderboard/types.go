package leaderboard

import (
	"github.com/arcadebot/arcadebot/internal/common/clock"
	"github.com/arcadebot/arcadebot/internal/models"
	leaderboardRepo "github.com/arcadebot/arcadebot/internal/repositories/leaderboard"
	pointsRepo "github.com/arcadebot/arcadebot/internal/repositories/points"
)

// AddWinnerResult reports what AddWinner did
type AddWinnerResult string

const (
	// ResultAdded indicates a new entry was recorded
	ResultAdded AddWinnerResult = "added"

	// ResultAlreadyPresent indicates the user already had an entry; nothing changed
	ResultAlreadyPresent AddWinnerResult = "already_present"
)

// Config holds configuration for the leaderboard service
type Config struct {
	// Capacity bounds the shared winners list; defaults to 10
	Capacity int

	// Repository dependencies
	LeaderboardRepo leaderboardRepo.Repository
	PointsRepo      pointsRepo.Repository

	// Service dependencies
	Clock clock.Clock
}

// AddWinnerInput contains parameters for recording a winner
type AddWinnerInput struct {
	// UserID is the Discord user ID of the winner
	UserID string

	// Username is the winner's display name
	Username string

	// GameKind is the mini-game the win came from
	GameKind models.GameKind

	// HostID is the Discord user ID of the session host
	HostID string

	// HostName is the display name of the session host
	HostName string
}

// AddWinnerOutput contains the result of recording a winner
type AddWinnerOutput struct {
	// Result reports whether the entry was added or deduplicated
	Result AddWinnerResult

	// NewlyFull is true only when this call took the list from below
	// capacity to at or above it
	NewlyFull bool

	// Entries is the list after the call, oldest first
	Entries []*models.LeaderboardEntry
}

// ListWinnersInput contains parameters for listing winners
type ListWinnersInput struct{}

// ListWinnersOutput contains the current winners list, oldest first
type ListWinnersOutput struct {
	Entries []*models.LeaderboardEntry
}

// IsFullInput contains parameters for the capacity check
type IsFullInput struct{}

// IsFullOutput reports whether the list has reached capacity
type IsFullOutput struct {
	Full bool
}

// ResetInput contains parameters for clearing the winners list
type ResetInput struct{}

// AwardPointsInput contains parameters for crediting points
type AwardPointsInput struct {
	// UserID is the Discord user ID to credit
	UserID string

	// Amount is the number of points to add, must be positive
	Amount int
}

// AwardPointsOutput contains the user's new total
type AwardPointsOutput struct {
	Total int
}

// GetPointsInput identifies the user to look up
type GetPointsInput struct {
	UserID string
}

// GetPointsOutput contains the user's current total
type GetPointsOutput struct {
	Total int
}

// TopPointsInput contains parameters for reading the top of the ledger
type TopPointsInput struct {
	// N is the maximum number of entries to return
	N int
}

// TopPointsOutput contains the highest totals, descending
type TopPointsOutput struct {
	Entries []*models.PointsEntry
}

// ResetPointsInput contains parameters for clearing the ledger
type ResetPointsInput struct{}

// GetPublishedMessageInput identifies the channel to look up
type GetPublishedMessageInput struct {
	ChannelID string
}

// GetPublishedMessageOutput contains the tracked message, if any
type GetPublishedMessageOutput struct {
	MessageID string
}

// TrackPublishedMessageInput remembers a published leaderboard message
type TrackPublishedMessageInput struct {
	ChannelID string
	MessageID string
}
