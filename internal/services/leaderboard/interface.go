package leaderboard

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/arcadebot/arcadebot/internal/services/leaderboard Service

// Service defines the operations on the shared recent-winners list and the
// cumulative points ledger
type Service interface {
	// AddWinner records a round winner on the shared list, deduplicated by user ID
	AddWinner(ctx context.Context, input *AddWinnerInput) (*AddWinnerOutput, error)

	// ListWinners returns the current list in insertion order, oldest first
	ListWinners(ctx context.Context, input *ListWinnersInput) (*ListWinnersOutput, error)

	// IsFull reports whether the list has reached capacity
	IsFull(ctx context.Context, input *IsFullInput) (*IsFullOutput, error)

	// Reset clears the shared winners list
	Reset(ctx context.Context, input *ResetInput) error

	// AwardPoints credits a user on the cumulative points ledger
	AwardPoints(ctx context.Context, input *AwardPointsInput) (*AwardPointsOutput, error)

	// GetPoints returns a user's point total
	GetPoints(ctx context.Context, input *GetPointsInput) (*GetPointsOutput, error)

	// TopPoints returns the highest point totals, descending
	TopPoints(ctx context.Context, input *TopPointsInput) (*TopPointsOutput, error)

	// ResetPoints clears the points ledger
	ResetPoints(ctx context.Context, input *ResetPointsInput) error

	// GetPublishedMessage returns the tracked leaderboard message for a channel
	GetPublishedMessage(ctx context.Context, input *GetPublishedMessageInput) (*GetPublishedMessageOutput, error)

	// TrackPublishedMessage remembers a published leaderboard message
	TrackPublishedMessage(ctx context.Context, input *TrackPublishedMessageInput) error
}
