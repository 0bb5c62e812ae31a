package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// purgeLimit caps how many messages one purge can delete. Discord's bulk
// delete endpoint takes at most 100 IDs per call.
const purgeLimit = 100

// ModerationCommand groups the staff channel-management tools
type ModerationCommand struct {
	BaseCommand
	isStaff staffCheck
}

// NewModerationCommand creates the /mod command
func NewModerationCommand(isStaff staffCheck) *ModerationCommand {
	return &ModerationCommand{
		BaseCommand: BaseCommand{
			Name:        "mod",
			Description: "Moderation tools (staff only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "purge",
					Description: "Delete recent messages in this channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "count",
							Description: "How many messages to delete (1-100)",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "slowmode",
					Description: "Set this channel's slowmode interval",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "seconds",
							Description: "Seconds between messages, 0 to disable",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "lock",
					Description: "Stop members from sending messages here",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "unlock",
					Description: "Let members send messages here again",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "role",
					Description: "Give a member a role",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "member",
							Description: "Member to give the role to",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionRole,
							Name:        "role",
							Description: "Role to give",
							Required:    true,
						},
					},
				},
			},
		},
		isStaff: isStaff,
	}
}

// Handle processes a Discord interaction
func (c *ModerationCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !c.isStaff(i) {
		return RespondWithEphemeralMessage(s, i, "Only staff can use moderation tools.")
	}

	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return RespondWithError(s, i, "Missing subcommand.")
	}

	sub := data.Options[0]

	switch sub.Name {
	case "purge":
		return c.handlePurge(s, i, sub.Options)
	case "slowmode":
		return c.handleSlowmode(s, i, sub.Options)
	case "lock":
		return c.handleLock(s, i, true)
	case "unlock":
		return c.handleLock(s, i, false)
	case "role":
		return c.handleRole(s, i, sub.Options)
	default:
		return RespondWithError(s, i, "Unknown subcommand.")
	}
}

func (c *ModerationCommand) handlePurge(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	count := int(optionMap(options)["count"].IntValue())
	if count < 1 || count > purgeLimit {
		return RespondWithError(s, i, fmt.Sprintf("Count must be between 1 and %d.", purgeLimit))
	}

	msgs, err := s.ChannelMessages(i.ChannelID, count, "", "", "")
	if err != nil {
		log.WithError(err).Error("failed to list messages for purge")
		return RespondWithError(s, i, "Could not read the channel history.")
	}

	ids := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		ids = append(ids, msg.ID)
	}

	if len(ids) == 0 {
		return RespondWithEphemeralMessage(s, i, "Nothing to delete.")
	}

	if err := s.ChannelMessagesBulkDelete(i.ChannelID, ids); err != nil {
		log.WithError(err).Error("failed to bulk delete messages")
		return RespondWithError(s, i, "Could not delete the messages. Bulk delete only works on messages newer than two weeks.")
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Deleted %d messages.", len(ids)))
}

func (c *ModerationCommand) handleSlowmode(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	seconds := int(optionMap(options)["seconds"].IntValue())
	if seconds < 0 {
		return RespondWithError(s, i, "Seconds cannot be negative.")
	}

	_, err := s.ChannelEditComplex(i.ChannelID, &discordgo.ChannelEdit{
		RateLimitPerUser: &seconds,
	})
	if err != nil {
		log.WithError(err).Error("failed to set slowmode")
		return RespondWithError(s, i, "Could not update slowmode.")
	}

	if seconds == 0 {
		return RespondWithMessage(s, i, "Slowmode disabled.")
	}
	return RespondWithMessage(s, i, fmt.Sprintf("Slowmode set to %d seconds.", seconds))
}

func (c *ModerationCommand) handleLock(s *discordgo.Session, i *discordgo.InteractionCreate, lock bool) error {
	var allow, deny int64
	if lock {
		deny = discordgo.PermissionSendMessages
	} else {
		allow = discordgo.PermissionSendMessages
	}

	// The guild ID doubles as the @everyone role ID
	err := s.ChannelPermissionSet(i.ChannelID, i.GuildID,
		discordgo.PermissionOverwriteTypeRole, allow, deny)
	if err != nil {
		log.WithError(err).Error("failed to update channel lock")
		return RespondWithError(s, i, "Could not update the channel permissions.")
	}

	if lock {
		return RespondWithMessage(s, i, "🔒 Channel locked.")
	}
	return RespondWithMessage(s, i, "🔓 Channel unlocked.")
}

func (c *ModerationCommand) handleRole(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	opts := optionMap(options)

	user := opts["member"].UserValue(s)
	role := opts["role"].RoleValue(s, i.GuildID)
	if user == nil || role == nil {
		return RespondWithError(s, i, "Member or role not found.")
	}

	if aboveBot(s, i.GuildID, role) {
		return RespondWithError(s, i, "That role sits above mine, I can't assign it.")
	}

	if err := s.GuildMemberRoleAdd(i.GuildID, user.ID, role.ID); err != nil {
		log.WithError(err).Error("failed to assign role")
		return RespondWithError(s, i, "Could not assign the role.")
	}

	return RespondWithMessage(s, i, fmt.Sprintf("Gave **%s** to %s.", role.Name, user.Mention()))
}
