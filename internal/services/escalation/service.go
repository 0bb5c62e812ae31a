package escalation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/arcadebot/arcadebot/internal/services/leaderboard"
)

const defaultPromptTimeout = 60 * time.Second

// service implements the Service interface
type service struct {
	leaderboardService leaderboard.Service
	notifier           Notifier

	leaderboardChannelID string
	staffChannelID       string
	promptTimeout        time.Duration

	// mu serializes escalation sequences across all channels
	mu sync.Mutex
}

// New creates a new escalation service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.LeaderboardService == nil {
		return nil, ErrNilLeaderboardService
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	if cfg.LeaderboardChannelID == "" {
		return nil, ErrEmptyLeaderboardChan
	}

	if cfg.StaffChannelID == "" {
		return nil, ErrEmptyStaffChannel
	}

	promptTimeout := cfg.PromptTimeout
	if promptTimeout <= 0 {
		promptTimeout = defaultPromptTimeout
	}

	return &service{
		leaderboardService:   cfg.LeaderboardService,
		notifier:             cfg.Notifier,
		leaderboardChannelID: cfg.LeaderboardChannelID,
		staffChannelID:       cfg.StaffChannelID,
		promptTimeout:        promptTimeout,
	}, nil
}

// HandleLeaderboardFull implements the Service interface
func (s *service) HandleLeaderboardFull(ctx context.Context, input *HandleLeaderboardFullInput) (*HandleLeaderboardFullOutput, error) {
	if input == nil {
		return nil, ErrNilConfig
	}

	if input.GuildID == "" {
		return nil, ErrEmptyGuildID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	winnersOut, err := s.leaderboardService.ListWinners(ctx, &leaderboard.ListWinnersInput{})
	if err != nil {
		return nil, fmt.Errorf("listing winners: %w", err)
	}

	s.publishStandings(ctx, input.GameChannelID, winnersOut)

	output := &HandleLeaderboardFullOutput{}

	promptOut, err := s.notifier.PromptRoleName(ctx, &PromptRoleNameInput{
		ChannelID: s.staffChannelID,
		HostID:    input.HostID,
		Timeout:   s.promptTimeout,
	})
	if err != nil {
		log.WithError(err).Warn("role prompt failed, skipping role assignment")
	} else if promptOut.Skipped || promptOut.RoleName == "" {
		log.Info("role assignment skipped by staff")
	} else {
		s.assignRoleToWinners(ctx, input.GuildID, promptOut.RoleName, winnersOut, output)
	}

	if err := s.leaderboardService.Reset(ctx, &leaderboard.ResetInput{}); err != nil {
		return output, fmt.Errorf("resetting leaderboard: %w", err)
	}

	return output, nil
}

// publishStandings posts the snapshot to the game channel and mirrors it to the
// public leaderboard channel, editing the tracked message there when one exists.
// Chat failures are logged and do not abort the sequence.
func (s *service) publishStandings(ctx context.Context, gameChannelID string, winners *leaderboard.ListWinnersOutput) {
	if gameChannelID != "" && gameChannelID != s.leaderboardChannelID {
		_, err := s.notifier.PublishStandings(ctx, &PublishStandingsInput{
			ChannelID: gameChannelID,
			Entries:   winners.Entries,
		})
		if err != nil {
			log.WithError(err).WithField("channel_id", gameChannelID).
				Warn("failed to publish standings to game channel")
		}
	}

	existingID := ""
	trackedOut, err := s.leaderboardService.GetPublishedMessage(ctx, &leaderboard.GetPublishedMessageInput{
		ChannelID: s.leaderboardChannelID,
	})
	if err != nil {
		log.WithError(err).Warn("failed to look up tracked leaderboard message")
	} else {
		existingID = trackedOut.MessageID
	}

	publishOut, err := s.notifier.PublishStandings(ctx, &PublishStandingsInput{
		ChannelID:         s.leaderboardChannelID,
		ExistingMessageID: existingID,
		Entries:           winners.Entries,
	})
	if err != nil {
		log.WithError(err).Warn("failed to publish standings to leaderboard channel")
		return
	}

	err = s.leaderboardService.TrackPublishedMessage(ctx, &leaderboard.TrackPublishedMessageInput{
		ChannelID: s.leaderboardChannelID,
		MessageID: publishOut.MessageID,
	})
	if err != nil {
		log.WithError(err).Warn("failed to track published leaderboard message")
	}
}

// assignRoleToWinners resolves the role and grants it member by member.
// Per-user failures are reported to the staff channel and skipped.
func (s *service) assignRoleToWinners(ctx context.Context, guildID, roleName string, winners *leaderboard.ListWinnersOutput, output *HandleLeaderboardFullOutput) {
	roleOut, err := s.notifier.EnsureRole(ctx, &EnsureRoleInput{
		GuildID: guildID,
		Name:    roleName,
	})
	if err != nil {
		content := fmt.Sprintf("Could not prepare role %q: %v", roleName, err)
		if errors.Is(err, ErrRoleHierarchy) {
			content = fmt.Sprintf("Cannot assign role %q: my highest role must sit above it.", roleName)
		}

		if announceErr := s.notifier.Announce(ctx, &AnnounceInput{
			ChannelID: s.staffChannelID,
			Content:   content,
		}); announceErr != nil {
			log.WithError(announceErr).Warn("failed to report role resolution failure")
		}

		return
	}

	output.RoleName = roleName

	for _, entry := range winners.Entries {
		err := s.notifier.AssignRole(ctx, &AssignRoleInput{
			GuildID: guildID,
			UserID:  entry.UserID,
			RoleID:  roleOut.RoleID,
		})
		if err != nil {
			output.Failed++
			log.WithError(err).WithField("user_id", entry.UserID).Warn("role assignment failed")

			if announceErr := s.notifier.Announce(ctx, &AnnounceInput{
				ChannelID: s.staffChannelID,
				Content:   fmt.Sprintf("Could not assign %q to %s: %v", roleName, entry.Username, err),
			}); announceErr != nil {
				log.WithError(announceErr).Warn("failed to report assignment failure")
			}

			continue
		}

		output.Assigned++
	}
}

// AnnounceMilestone implements the Service interface
func (s *service) AnnounceMilestone(ctx context.Context, input *AnnounceMilestoneInput) error {
	if input == nil || input.ChannelID == "" {
		return ErrNilConfig
	}

	return s.notifier.Announce(ctx, &AnnounceInput{
		ChannelID: input.ChannelID,
		Content: fmt.Sprintf("🏆 **%s** reached %d wins this session and joins the shared leaderboard!",
			input.Username, input.Wins),
	})
}
