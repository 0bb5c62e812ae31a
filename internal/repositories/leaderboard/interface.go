package leaderboard

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/arcadebot/arcadebot/internal/repositories/leaderboard Repository

// Repository defines storage for the shared recent-winners list
type Repository interface {
	// GetRecentWinners returns the current bounded winners list, oldest first.
	// Missing or corrupt storage yields an empty list, never an error.
	GetRecentWinners(ctx context.Context, input *GetRecentWinnersInput) (*GetRecentWinnersOutput, error)

	// SaveRecentWinners overwrites the winners list
	SaveRecentWinners(ctx context.Context, input *SaveRecentWinnersInput) error

	// GetLastPublishedMessage returns the tracked leaderboard message for a channel
	GetLastPublishedMessage(ctx context.Context, input *GetLastPublishedMessageInput) (*GetLastPublishedMessageOutput, error)

	// SetLastPublishedMessage tracks the leaderboard message posted to a channel
	SetLastPublishedMessage(ctx context.Context, input *SetLastPublishedMessageInput) error
}
