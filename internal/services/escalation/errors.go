package escalation

// EscalationError is a custom error type for escalation errors
type EscalationError string

// Error implements the error interface
func (e EscalationError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig             EscalationError = "config cannot be nil"
	ErrNilLeaderboardService EscalationError = "leaderboard service cannot be nil"
	ErrNilNotifier           EscalationError = "notifier cannot be nil"
	ErrEmptyLeaderboardChan  EscalationError = "leaderboard channel ID cannot be empty"
	ErrEmptyStaffChannel     EscalationError = "staff channel ID cannot be empty"
	ErrEmptyGuildID          EscalationError = "guild ID cannot be empty"

	// ErrRoleHierarchy is returned by Notifier.EnsureRole when the bot's top
	// role sits at or below the target role
	ErrRoleHierarchy EscalationError = "bot role is not above the target role"
)
