package points

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/arcadebot/arcadebot/internal/repositories/points Repository

// Repository defines storage for the cumulative points ledger
type Repository interface {
	// AwardPoints adds amount to a user's total and returns the new total
	AwardPoints(ctx context.Context, input *AwardPointsInput) (*AwardPointsOutput, error)

	// GetPoints returns a user's current total, zero when unknown
	GetPoints(ctx context.Context, input *GetPointsInput) (*GetPointsOutput, error)

	// TopN returns the n highest totals, descending
	TopN(ctx context.Context, input *TopNInput) (*TopNOutput, error)

	// Reset clears the entire ledger
	Reset(ctx context.Context, input *ResetInput) error
}
