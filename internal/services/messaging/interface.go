package messaging

import "context"

// Service picks varied announcement text for game events so the bot doesn't
// repeat itself every round
type Service interface {
	// GetWinnerMessage returns a congratulation line for a round winner
	GetWinnerMessage(ctx context.Context, input *GetWinnerMessageInput) (*GetWinnerMessageOutput, error)

	// GetTimeoutMessage returns a line for a round nobody answered in time
	GetTimeoutMessage(ctx context.Context, input *GetTimeoutMessageInput) (*GetTimeoutMessageOutput, error)

	// GetJoinMessage returns a line for a player joining a join-gated game
	GetJoinMessage(ctx context.Context, input *GetJoinMessageInput) (*GetJoinMessageOutput, error)

	// GetGameStartedMessage returns a line announcing a fresh session
	GetGameStartedMessage(ctx context.Context, input *GetGameStartedMessageInput) (*GetGameStartedMessageOutput, error)
}
