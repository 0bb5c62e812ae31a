package messages

import (
	"context"

	"github.com/arcadebot/arcadebot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/arcadebot/arcadebot/internal/repositories/messages Repository

// Repository defines storage for composer message records
type Repository interface {
	// SaveRecord persists a message record, overwriting any previous version
	SaveRecord(ctx context.Context, input *SaveRecordInput) error

	// GetRecord retrieves a message record by message ID
	GetRecord(ctx context.Context, input *GetRecordInput) (*models.MessageRecord, error)

	// DeleteRecord removes a message record
	DeleteRecord(ctx context.Context, input *DeleteRecordInput) error
}
