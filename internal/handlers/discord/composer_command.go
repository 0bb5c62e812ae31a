package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/arcadebot/arcadebot/internal/models"
	"github.com/arcadebot/arcadebot/internal/repositories/messages"
)

// ButtonTranslate is the custom ID of the translate button on composed embeds
const ButtonTranslate = "composer_translate"

// ComposerCommand builds bilingual announcement embeds with a translate button
type ComposerCommand struct {
	BaseCommand
	messagesRepo messages.Repository
	isStaff      staffCheck
}

// NewComposerCommand creates the /composer command
func NewComposerCommand(messagesRepo messages.Repository, isStaff staffCheck) *ComposerCommand {
	contentOptions := []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "title",
			Description: "Embed title (English)",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "description",
			Description: "Embed body (English)",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "title_hi",
			Description: "Embed title (Hindi)",
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "description_hi",
			Description: "Embed body (Hindi)",
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "color",
			Description: "Hex color like #5865f2",
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "image",
			Description: "Image URL",
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "thumbnail",
			Description: "Thumbnail URL",
		},
	}

	editOptions := append([]*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "message_id",
			Description: "ID of the message to edit",
			Required:    true,
		},
	}, contentOptions...)

	return &ComposerCommand{
		BaseCommand: BaseCommand{
			Name:        "composer",
			Description: "Compose bilingual announcement embeds (staff only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "send",
					Description: "Send a new embed to this channel",
					Options:     contentOptions,
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "edit",
					Description: "Edit a previously composed embed",
					Options:     editOptions,
				},
			},
		},
		messagesRepo: messagesRepo,
		isStaff:      isStaff,
	}
}

// Handle processes a Discord interaction
func (c *ComposerCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !c.isStaff(i) {
		return RespondWithEphemeralMessage(s, i, "Only staff can compose messages.")
	}

	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return RespondWithError(s, i, "Missing subcommand.")
	}

	switch data.Options[0].Name {
	case "send":
		return c.handleSend(s, i, data.Options[0].Options)
	case "edit":
		return c.handleEdit(s, i, data.Options[0].Options)
	default:
		return RespondWithError(s, i, "Unknown subcommand.")
	}
}

func (c *ComposerCommand) handleSend(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	userID, _ := interactionUser(i)

	record := &models.MessageRecord{
		ChannelID: i.ChannelID,
		AuthorID:  userID,
		SentAt:    time.Now().UTC(),
	}
	applyContentOptions(record, optionMap(options))

	msg, err := s.ChannelMessageSendComplex(i.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{renderComposed(record, false)},
		Components: composerComponents(record),
	})
	if err != nil {
		log.WithError(err).Error("failed to send composed message")
		return RespondWithError(s, i, "Could not send the message.")
	}

	record.MessageID = msg.ID

	err = c.messagesRepo.SaveRecord(context.Background(), &messages.SaveRecordInput{
		Record: record,
	})
	if err != nil {
		log.WithError(err).Error("failed to save composer record")
	}

	return RespondWithEphemeralMessage(s, i, "Message sent.")
}

func (c *ComposerCommand) handleEdit(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	opts := optionMap(options)
	messageID := strings.TrimSpace(opts["message_id"].StringValue())

	ctx := context.Background()

	record, err := c.messagesRepo.GetRecord(ctx, &messages.GetRecordInput{MessageID: messageID})
	if err != nil {
		if errors.Is(err, messages.ErrRecordNotFound) {
			return RespondWithEphemeralMessage(s, i, "I didn't compose that message, so I can't edit it.")
		}
		log.WithError(err).Error("failed to load composer record")
		return RespondWithError(s, i, "Could not load that message.")
	}

	applyContentOptions(record, opts)

	_, err = s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:      record.MessageID,
		Channel: record.ChannelID,
		Embeds:  &[]*discordgo.MessageEmbed{renderComposed(record, false)},
	})
	if err != nil {
		log.WithError(err).Error("failed to edit composed message")
		return RespondWithError(s, i, "Could not edit the message.")
	}

	err = c.messagesRepo.SaveRecord(ctx, &messages.SaveRecordInput{Record: record})
	if err != nil {
		log.WithError(err).Error("failed to update composer record")
	}

	return RespondWithEphemeralMessage(s, i, "Message updated.")
}

// applyContentOptions overlays the provided options onto a record, leaving
// absent fields untouched so edits can change one field at a time
func applyContentOptions(record *models.MessageRecord, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	if opt, ok := opts["title"]; ok {
		record.TitleEN = opt.StringValue()
	}
	if opt, ok := opts["description"]; ok {
		record.DescriptionEN = opt.StringValue()
	}
	if opt, ok := opts["title_hi"]; ok {
		record.TitleHI = opt.StringValue()
	}
	if opt, ok := opts["description_hi"]; ok {
		record.DescriptionHI = opt.StringValue()
	}
	if opt, ok := opts["color"]; ok {
		if color, err := parseHexColor(opt.StringValue()); err == nil {
			record.Color = color
		}
	}
	if opt, ok := opts["image"]; ok {
		record.ImageURL = opt.StringValue()
	}
	if opt, ok := opts["thumbnail"]; ok {
		record.ThumbnailURL = opt.StringValue()
	}
}

// composerComponents returns the translate button row when a Hindi version
// exists, and no components otherwise
func composerComponents(record *models.MessageRecord) []discordgo.MessageComponent {
	if record.TitleHI == "" && record.DescriptionHI == "" {
		return nil
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "हिंदी में पढ़ें",
					Style:    discordgo.SecondaryButton,
					CustomID: ButtonTranslate,
					Emoji:    &discordgo.ComponentEmoji{Name: "🌐"},
				},
			},
		},
	}
}

// parseHexColor parses "#rrggbb" or "rrggbb" into an embed color value
func parseHexColor(s string) (int, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return 0, fmt.Errorf("invalid color %q", s)
	}

	value, err := strconv.ParseInt(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return int(value), nil
}
