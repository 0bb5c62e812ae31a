package escalation

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/arcadebot/arcadebot/internal/services/escalation Service,Notifier

// Service runs the leaderboard-full sequence: publish standings, prompt staff
// for a role, assign it to the winners, reset the store
type Service interface {
	// HandleLeaderboardFull runs the full escalation sequence. It blocks until
	// the sequence completes or aborts, and serializes concurrent triggers.
	HandleLeaderboardFull(ctx context.Context, input *HandleLeaderboardFullInput) (*HandleLeaderboardFullOutput, error)

	// AnnounceMilestone celebrates a user reaching the session win cap without
	// touching the shared list
	AnnounceMilestone(ctx context.Context, input *AnnounceMilestoneInput) error
}

// Notifier is the chat-side surface escalation needs. The Discord handler
// implements it; tests substitute a mock.
type Notifier interface {
	// PublishStandings posts the standings to a channel, editing the previous
	// message when one is given, and returns the resulting message ID
	PublishStandings(ctx context.Context, input *PublishStandingsInput) (*PublishStandingsOutput, error)

	// PromptRoleName asks staff for a role name and waits up to the timeout.
	// A "skip" reply or expiry yields Skipped without error.
	PromptRoleName(ctx context.Context, input *PromptRoleNameInput) (*PromptRoleNameOutput, error)

	// EnsureRole resolves a role by exact name, creating it when absent.
	// Returns ErrRoleHierarchy when the bot cannot manage the role.
	EnsureRole(ctx context.Context, input *EnsureRoleInput) (*EnsureRoleOutput, error)

	// AssignRole grants a role to a single member
	AssignRole(ctx context.Context, input *AssignRoleInput) error

	// Announce posts a plain status message to a channel
	Announce(ctx context.Context, input *AnnounceInput) error
}
