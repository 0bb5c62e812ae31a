package leaderboard

// LeaderboardError is a custom error type for leaderboard-related errors
type LeaderboardError string

// Error implements the error interface
func (e LeaderboardError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig          LeaderboardError = "config cannot be nil"
	ErrNilLeaderboardRepo LeaderboardError = "leaderboard repository cannot be nil"
	ErrNilPointsRepo      LeaderboardError = "points repository cannot be nil"
	ErrNilClock           LeaderboardError = "clock cannot be nil"
	ErrEmptyUserID        LeaderboardError = "user ID cannot be empty"
	ErrEmptyChannelID     LeaderboardError = "channel ID cannot be empty"
	ErrEmptyMessageID     LeaderboardError = "message ID cannot be empty"
	ErrInvalidAmount      LeaderboardError = "point amount must be positive"
)
