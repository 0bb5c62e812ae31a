package escalation

import (
	"time"

	"github.com/arcadebot/arcadebot/internal/models"
	"github.com/arcadebot/arcadebot/internal/services/leaderboard"
)

// Config holds configuration for the escalation service
type Config struct {
	// LeaderboardChannelID is the public channel standings are mirrored to
	LeaderboardChannelID string

	// StaffChannelID is the private channel the role prompt goes to
	StaffChannelID string

	// PromptTimeout bounds the role-name prompt; defaults to 60s
	PromptTimeout time.Duration

	// Service dependencies
	LeaderboardService leaderboard.Service
	Notifier           Notifier
}

// HandleLeaderboardFullInput identifies the triggering session
type HandleLeaderboardFullInput struct {
	// GuildID is the server the roles live in
	GuildID string

	// GameChannelID is the channel whose session filled the list
	GameChannelID string

	// HostID is the session host, named in the staff prompt
	HostID string
}

// HandleLeaderboardFullOutput reports what the sequence did
type HandleLeaderboardFullOutput struct {
	// RoleName is the assigned role, empty when assignment was skipped
	RoleName string

	// Assigned counts the members who received the role
	Assigned int

	// Failed counts per-user assignment failures
	Failed int
}

// AnnounceMilestoneInput celebrates a session win-cap achievement
type AnnounceMilestoneInput struct {
	ChannelID string
	UserID    string
	Username  string
	Wins      int
}

// PublishStandingsInput contains parameters for posting standings
type PublishStandingsInput struct {
	// ChannelID is the destination channel
	ChannelID string

	// ExistingMessageID, when set, is edited instead of posting fresh
	ExistingMessageID string

	// Entries is the standings snapshot, oldest first
	Entries []*models.LeaderboardEntry
}

// PublishStandingsOutput contains the posted or edited message ID
type PublishStandingsOutput struct {
	MessageID string
}

// PromptRoleNameInput contains parameters for the staff role prompt
type PromptRoleNameInput struct {
	// ChannelID is the staff channel
	ChannelID string

	// HostID is mentioned in the prompt
	HostID string

	// Timeout bounds the wait for a reply
	Timeout time.Duration
}

// PromptRoleNameOutput contains the staff reply
type PromptRoleNameOutput struct {
	// RoleName is the requested role, empty when skipped
	RoleName string

	// Skipped is true on a "skip" reply or timeout
	Skipped bool
}

// EnsureRoleInput identifies the role to resolve or create
type EnsureRoleInput struct {
	GuildID string
	Name    string
}

// EnsureRoleOutput contains the resolved role
type EnsureRoleOutput struct {
	RoleID string

	// Created is true when the role did not exist before
	Created bool
}

// AssignRoleInput identifies a single member grant
type AssignRoleInput struct {
	GuildID string
	UserID  string
	RoleID  string
}

// AnnounceInput contains a plain status message
type AnnounceInput struct {
	ChannelID string
	Content   string
}
