package models

import (
	"time"
)

// LeaderboardEntry represents one distinct winner on the shared recent-winners list
type LeaderboardEntry struct {
	// UserID is the Discord user ID of the winner
	UserID string `json:"user_id"`

	// Username is the winner's name at the time of the win
	Username string `json:"username"`

	// GameKind is the mini-game the win came from
	GameKind GameKind `json:"game_kind"`

	// HostID is the Discord user ID of the session host
	HostID string `json:"host_id"`

	// HostName is the display name of the session host
	HostName string `json:"host_name"`

	// WonAt is when the win was recorded
	WonAt time.Time `json:"won_at"`
}

// PointsEntry represents one user's cumulative point total
type PointsEntry struct {
	// UserID is the Discord user ID
	UserID string `json:"user_id"`

	// Points is the accumulated point total, never negative
	Points int `json:"points"`
}
