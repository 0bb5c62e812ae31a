package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/arcadebot/arcadebot/internal/models"
	"github.com/arcadebot/arcadebot/internal/services/session"
)

const (
	colorPrimary = 0x5865f2
	colorSuccess = 0x00ff00
	colorError   = 0xff0000
	colorGold    = 0xf1c40f
)

// renderStandings builds the shared leaderboard embed
func renderStandings(entries []*models.LeaderboardEntry) *discordgo.MessageEmbed {
	var sb strings.Builder
	if len(entries) == 0 {
		sb.WriteString("No winners yet. Go play something!")
	}

	for idx, entry := range entries {
		sb.WriteString(fmt.Sprintf("%d. **%s** — %s\n", idx+1, entry.Username, gameKindLabel(entry.GameKind)))
	}

	return &discordgo.MessageEmbed{
		Title:       "🏆 Recent Winners",
		Description: sb.String(),
		Color:       colorGold,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d of 10 slots filled", len(entries)),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// renderPoints builds the points ledger embed
func renderPoints(entries []*models.PointsEntry, usernames map[string]string) *discordgo.MessageEmbed {
	var sb strings.Builder
	if len(entries) == 0 {
		sb.WriteString("Nobody has any points yet.")
	}

	for idx, entry := range entries {
		name := usernames[entry.UserID]
		if name == "" {
			name = fmt.Sprintf("<@%s>", entry.UserID)
		}
		sb.WriteString(fmt.Sprintf("%d. **%s** — %d points\n", idx+1, name, entry.Points))
	}

	return &discordgo.MessageEmbed{
		Title:       "💯 Points",
		Description: sb.String(),
		Color:       colorPrimary,
	}
}

// renderChallenge builds a round announcement embed
func renderChallenge(input *session.AnnounceChallengeInput) *discordgo.MessageEmbed {
	title := "🎮 New Round"
	if input.RoundLimit > 0 {
		title = fmt.Sprintf("🎮 Round %d of %d", input.RoundIndex, input.RoundLimit)
	} else if input.RoundIndex > 0 {
		title = fmt.Sprintf("🎮 Round %d", input.RoundIndex)
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: input.Prompt,
		Color:       colorPrimary,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("You have %s to answer", input.Window.Round(time.Second)),
		},
	}
}

// renderVoteResult builds a vote-mode tally embed
func renderVoteResult(input *session.AnnounceVoteResultInput) *discordgo.MessageEmbed {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🅰️ **%s** — %d votes\n", input.OptionA, input.VotesA))
	sb.WriteString(fmt.Sprintf("🅱️ **%s** — %d votes\n\n", input.OptionB, input.VotesB))

	switch input.Winner {
	case "a":
		sb.WriteString(fmt.Sprintf("**%s** wins this round!\n", input.OptionA))
	case "b":
		sb.WriteString(fmt.Sprintf("**%s** wins this round!\n", input.OptionB))
	default:
		if input.VotesA+input.VotesB > 0 {
			sb.WriteString("It's a tie!\n")
		} else {
			sb.WriteString("Nobody voted this round.\n")
		}
	}

	for _, award := range input.Awards {
		sb.WriteString(fmt.Sprintf("• %s +%d points\n", award.Username, award.Points))
	}

	return &discordgo.MessageEmbed{
		Title:       "🗳️ Votes are in",
		Description: sb.String(),
		Color:       colorSuccess,
	}
}

// renderComposed builds the bilingual composer embed in the requested language
func renderComposed(record *models.MessageRecord, hindi bool) *discordgo.MessageEmbed {
	title := record.TitleEN
	description := record.DescriptionEN
	if hindi {
		title = record.TitleHI
		description = record.DescriptionHI
	}

	color := record.Color
	if color == 0 {
		color = colorPrimary
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
	}

	if record.ImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: record.ImageURL}
	}

	if record.ThumbnailURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: record.ThumbnailURL}
	}

	return embed
}

func gameKindLabel(kind models.GameKind) string {
	switch kind {
	case models.GameKindNumberGuess:
		return "Number Guess"
	case models.GameKindTrivia:
		return "Trivia"
	case models.GameKindScramble:
		return "Scramble"
	case models.GameKindRPS:
		return "Rock Paper Scissors"
	case models.GameKindLyrics:
		return "Lyrics"
	case models.GameKindWouldYouRather:
		return "Would You Rather"
	default:
		return string(kind)
	}
}
