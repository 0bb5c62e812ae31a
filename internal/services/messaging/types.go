package messaging

import (
	"github.com/arcadebot/arcadebot/internal/models"
	"github.com/arcadebot/arcadebot/internal/random"
)

// Config holds configuration for the messaging service
type Config struct {
	// Random drives phrase selection
	Random *random.Source
}

// GetWinnerMessageInput contains parameters for a winner line
type GetWinnerMessageInput struct {
	// Username is the winner's display name
	Username string

	// Answer is the winning answer text
	Answer string

	// GameKind is the mini-game the win came from
	GameKind models.GameKind
}

// GetWinnerMessageOutput contains the generated line
type GetWinnerMessageOutput struct {
	Message string
}

// GetTimeoutMessageInput contains parameters for a timeout line
type GetTimeoutMessageInput struct {
	// Reveal is the answer nobody found
	Reveal string
}

// GetTimeoutMessageOutput contains the generated line
type GetTimeoutMessageOutput struct {
	Message string
}

// GetJoinMessageInput contains parameters for a join line
type GetJoinMessageInput struct {
	// Username is the joining player's display name
	Username string
}

// GetJoinMessageOutput contains the generated line
type GetJoinMessageOutput struct {
	Message string
}

// GetGameStartedMessageInput contains parameters for a session start line
type GetGameStartedMessageInput struct {
	// HostName is the display name of the user starting the game
	HostName string

	// GameLabel is the human-readable game name
	GameLabel string
}

// GetGameStartedMessageOutput contains the generated line
type GetGameStartedMessageOutput struct {
	Message string
}
