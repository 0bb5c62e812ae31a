package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/arcadebot/arcadebot/internal/models"
	"github.com/arcadebot/arcadebot/internal/services/escalation"
	"github.com/arcadebot/arcadebot/internal/services/leaderboard"
)

// staffCheck reports whether the invoking member may run staff commands
type staffCheck func(i *discordgo.InteractionCreate) bool

// LeaderboardCommand shows and manages the shared recent-winners list
type LeaderboardCommand struct {
	BaseCommand
	leaderboardService leaderboard.Service
	isStaff            staffCheck
}

// NewLeaderboardCommand creates the /leaderboard command
func NewLeaderboardCommand(leaderboardService leaderboard.Service, isStaff staffCheck) *LeaderboardCommand {
	return &LeaderboardCommand{
		BaseCommand: BaseCommand{
			Name:        "leaderboard",
			Description: "The shared recent-winners leaderboard",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "show",
					Description: "Show the current recent winners",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reset",
					Description: "Clear the recent-winners list (staff only)",
				},
			},
		},
		leaderboardService: leaderboardService,
		isStaff:            isStaff,
	}
}

// Handle processes a Discord interaction
func (c *LeaderboardCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return RespondWithError(s, i, "Missing subcommand.")
	}

	ctx := context.Background()

	switch data.Options[0].Name {
	case "show":
		out, err := c.leaderboardService.ListWinners(ctx, &leaderboard.ListWinnersInput{})
		if err != nil {
			log.WithError(err).Error("failed to list winners")
			return RespondWithError(s, i, "Could not load the leaderboard.")
		}
		return RespondWithEmbed(s, i, renderStandings(out.Entries))

	case "reset":
		if !c.isStaff(i) {
			return RespondWithEphemeralMessage(s, i, "Only staff can reset the leaderboard.")
		}

		if err := c.leaderboardService.Reset(ctx, &leaderboard.ResetInput{}); err != nil {
			log.WithError(err).Error("failed to reset leaderboard")
			return RespondWithError(s, i, "Could not reset the leaderboard.")
		}
		return RespondWithMessage(s, i, "Leaderboard cleared. A fresh race begins!")

	default:
		return RespondWithError(s, i, "Unknown subcommand.")
	}
}

// PointsCommand shows and manages the cumulative points ledger
type PointsCommand struct {
	BaseCommand
	leaderboardService leaderboard.Service
	isStaff            staffCheck
}

// NewPointsCommand creates the /points command
func NewPointsCommand(leaderboardService leaderboard.Service, isStaff staffCheck) *PointsCommand {
	return &PointsCommand{
		BaseCommand: BaseCommand{
			Name:        "points",
			Description: "The cumulative points ledger",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "show",
					Description: "Show the top point holders",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "top",
							Description: "How many entries to show",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "me",
					Description: "Show your own point total",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reset",
					Description: "Clear the points ledger (staff only)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "giverole",
					Description: "Give a role to the top point holders (staff only)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionRole,
							Name:        "role",
							Description: "Role to assign",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "top",
							Description: "How many holders get the role; defaults to 3",
						},
					},
				},
			},
		},
		leaderboardService: leaderboardService,
		isStaff:            isStaff,
	}
}

// Handle processes a Discord interaction
func (c *PointsCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return RespondWithError(s, i, "Missing subcommand.")
	}

	ctx := context.Background()
	sub := data.Options[0]

	switch sub.Name {
	case "show":
		n := 10
		if opt, ok := optionMap(sub.Options)["top"]; ok && opt.IntValue() > 0 {
			n = int(opt.IntValue())
		}

		out, err := c.leaderboardService.TopPoints(ctx, &leaderboard.TopPointsInput{N: n})
		if err != nil {
			log.WithError(err).Error("failed to read points ledger")
			return RespondWithError(s, i, "Could not load the points ledger.")
		}

		return RespondWithEmbed(s, i, renderPoints(out.Entries, c.resolveUsernames(s, i.GuildID, out.Entries)))

	case "me":
		userID, username := interactionUser(i)
		out, err := c.leaderboardService.GetPoints(ctx, &leaderboard.GetPointsInput{UserID: userID})
		if err != nil {
			log.WithError(err).Error("failed to read points")
			return RespondWithError(s, i, "Could not load your points.")
		}
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("%s, you have **%d** points.", username, out.Total))

	case "reset":
		if !c.isStaff(i) {
			return RespondWithEphemeralMessage(s, i, "Only staff can reset the points ledger.")
		}

		if err := c.leaderboardService.ResetPoints(ctx, &leaderboard.ResetPointsInput{}); err != nil {
			log.WithError(err).Error("failed to reset points")
			return RespondWithError(s, i, "Could not reset the points ledger.")
		}
		return RespondWithMessage(s, i, "Points ledger cleared.")

	case "giverole":
		return c.handleGiveRole(ctx, s, i, sub.Options)

	default:
		return RespondWithError(s, i, "Unknown subcommand.")
	}
}

// handleGiveRole assigns a role to the top point holders, honoring the same
// hierarchy rule escalation uses
func (c *PointsCommand) handleGiveRole(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	if !c.isStaff(i) {
		return RespondWithEphemeralMessage(s, i, "Only staff can assign point roles.")
	}

	opts := optionMap(options)

	role := opts["role"].RoleValue(s, i.GuildID)
	if role == nil {
		return RespondWithError(s, i, "Role not found.")
	}

	n := 3
	if opt, ok := opts["top"]; ok && opt.IntValue() > 0 {
		n = int(opt.IntValue())
	}

	out, err := c.leaderboardService.TopPoints(ctx, &leaderboard.TopPointsInput{N: n})
	if err != nil {
		log.WithError(err).Error("failed to read points ledger")
		return RespondWithError(s, i, "Could not load the points ledger.")
	}

	if len(out.Entries) == 0 {
		return RespondWithEphemeralMessage(s, i, "Nobody has any points yet.")
	}

	if aboveBot(s, i.GuildID, role) {
		return RespondWithError(s, i, escalation.ErrRoleHierarchy.Error())
	}

	assigned := 0
	for _, entry := range out.Entries {
		if err := s.GuildMemberRoleAdd(i.GuildID, entry.UserID, role.ID); err != nil {
			log.WithError(err).WithField("user_id", entry.UserID).Warn("failed to assign point role")
			continue
		}
		assigned++
	}

	return RespondWithMessage(s, i,
		fmt.Sprintf("Assigned **%s** to %d of the top %d point holders.", role.Name, assigned, len(out.Entries)))
}

// resolveUsernames best-effort resolves member display names for the embed.
// Unresolved entries fall back to a mention in the renderer.
func (c *PointsCommand) resolveUsernames(s *discordgo.Session, guildID string, entries []*models.PointsEntry) map[string]string {
	names := make(map[string]string, len(entries))
	for _, entry := range entries {
		member, err := s.GuildMember(guildID, entry.UserID)
		if err != nil {
			continue
		}
		if member.Nick != "" {
			names[entry.UserID] = member.Nick
		} else if member.User != nil {
			names[entry.UserID] = member.User.Username
		}
	}
	return names
}

// aboveBot reports whether the target role sits at or above the bot's top role
func aboveBot(s *discordgo.Session, guildID string, target *discordgo.Role) bool {
	roles, err := s.GuildRoles(guildID)
	if err != nil {
		return false
	}

	member, err := s.GuildMember(guildID, s.State.User.ID)
	if err != nil {
		return false
	}

	positions := make(map[string]int, len(roles))
	for _, role := range roles {
		positions[role.ID] = role.Position
	}

	top := 0
	for _, roleID := range member.Roles {
		if pos, ok := positions[roleID]; ok && pos > top {
			top = pos
		}
	}

	return target.Position >= top
}
