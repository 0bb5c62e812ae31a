package discord

import (
	"github.com/bwmarrin/discordgo"
)

// HelpCommand lists everything the bot can do
type HelpCommand struct {
	BaseCommand
}

// NewHelpCommand creates the /help command
func NewHelpCommand() *HelpCommand {
	return &HelpCommand{
		BaseCommand: BaseCommand{
			Name:        "help",
			Description: "Show what the bot can do",
		},
	}
}

// Handle processes a Discord interaction
func (c *HelpCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	embed := &discordgo.MessageEmbed{
		Title: "🤖 Arcade Bot",
		Color: colorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "Games",
				Value: "`/game start` — start a mini-game in this channel\n" +
					"`/game stop` — stop the running game\n" +
					"Answer in chat to win rounds. Some games need a reaction to join, " +
					"and Would You Rather uses the vote buttons.",
			},
			{
				Name: "Standings",
				Value: "`/leaderboard show` — the last 10 unique winners\n" +
					"`/points show` — the cumulative points ledger\n" +
					"`/points me` — your own total\n" +
					"When the leaderboard fills up, winners can earn a role!",
			},
			{
				Name: "Chat",
				Value: "`/ask` — ask me anything\n" +
					"`/teach` — (staff) give me a permanent answer",
			},
			{
				Name: "Staff",
				Value: "`/composer send`, `/composer edit` — bilingual announcements\n" +
					"`/mod purge`, `/mod slowmode`, `/mod lock`, `/mod unlock`, `/mod role`\n" +
					"`/leaderboard reset`, `/points reset`, `/points giverole`",
			},
		},
	}

	return RespondWithEmbed(s, i, embed)
}
