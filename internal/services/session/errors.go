package session

// SessionError is a custom error type for session errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig             SessionError = "config cannot be nil"
	ErrNilFactory            SessionError = "challenge source factory cannot be nil"
	ErrNilLeaderboardService SessionError = "leaderboard service cannot be nil"
	ErrNilEscalationService  SessionError = "escalation service cannot be nil"
	ErrNilNotifier           SessionError = "notifier cannot be nil"
	ErrNilClock              SessionError = "clock cannot be nil"
	ErrNilUUID               SessionError = "uuid generator cannot be nil"
	ErrEmptyChannelID        SessionError = "channel ID cannot be empty"
	ErrEmptyUserID           SessionError = "user ID cannot be empty"

	// ErrAlreadyActive rejects a start when the channel already has a session
	ErrAlreadyActive SessionError = "a game is already active in this channel"
)
