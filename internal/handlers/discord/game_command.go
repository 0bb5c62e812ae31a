package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/arcadebot/arcadebot/internal/models"
	"github.com/arcadebot/arcadebot/internal/services/messaging"
	"github.com/arcadebot/arcadebot/internal/services/session"
)

// GameCommand starts and stops mini-game sessions
type GameCommand struct {
	BaseCommand
	sessionService   session.Service
	messagingService messaging.Service
	isStaff          staffCheck
}

// NewGameCommand creates the /game command
func NewGameCommand(sessionService session.Service, messagingService messaging.Service, isStaff staffCheck) *GameCommand {
	kindChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Number Guess", Value: string(models.GameKindNumberGuess)},
		{Name: "Trivia", Value: string(models.GameKindTrivia)},
		{Name: "Scramble", Value: string(models.GameKindScramble)},
		{Name: "Rock Paper Scissors", Value: string(models.GameKindRPS)},
		{Name: "Lyrics", Value: string(models.GameKindLyrics)},
		{Name: "Would You Rather", Value: string(models.GameKindWouldYouRather)},
	}

	return &GameCommand{
		BaseCommand: BaseCommand{
			Name:        "game",
			Description: "Start or stop a mini-game in this channel",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a game in this channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "kind",
							Description: "Which game to play",
							Required:    true,
							Choices:     kindChoices,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "seconds",
							Description: "Answer window per round in seconds",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "rounds",
							Description: "Number of rounds to play",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stop",
					Description: "Stop the game running in this channel",
				},
			},
		},
		sessionService:   sessionService,
		messagingService: messagingService,
		isStaff:          isStaff,
	}
}

// Handle processes a Discord interaction
func (c *GameCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return RespondWithError(s, i, "Missing subcommand.")
	}

	switch data.Options[0].Name {
	case "start":
		return c.handleStart(s, i, data.Options[0].Options)
	case "stop":
		return c.handleStop(s, i)
	default:
		return RespondWithError(s, i, "Unknown subcommand.")
	}
}

func (c *GameCommand) handleStart(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	opts := optionMap(options)
	userID, username := interactionUser(i)

	input := &session.StartInput{
		ChannelID: i.ChannelID,
		GuildID:   i.GuildID,
		HostID:    userID,
		HostName:  username,
	}

	if opt, ok := opts["kind"]; ok {
		input.Kind = models.GameKind(opt.StringValue())
	}

	if opt, ok := opts["seconds"]; ok {
		input.Window = time.Duration(opt.IntValue()) * time.Second
	}

	if opt, ok := opts["rounds"]; ok {
		input.RoundLimit = int(opt.IntValue())
	}

	ctx := context.Background()

	out, err := c.sessionService.Start(ctx, input)
	if err != nil {
		if errors.Is(err, session.ErrAlreadyActive) {
			return RespondWithEphemeralMessage(s, i,
				"There's already a game running in this channel. Use `/game stop` first.")
		}
		return RespondWithError(s, i, fmt.Sprintf("Could not start the game: %v", err))
	}

	line, err := c.messagingService.GetGameStartedMessage(ctx, &messaging.GetGameStartedMessageInput{
		HostName:  username,
		GameLabel: gameKindLabel(out.Session.Kind),
	})
	if err != nil {
		return RespondWithMessage(s, i,
			fmt.Sprintf("**%s** started a game of **%s**!", username, gameKindLabel(out.Session.Kind)))
	}

	return RespondWithMessage(s, i, line.Message)
}

func (c *GameCommand) handleStop(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	current, err := c.sessionService.Get(ctx, &session.GetInput{ChannelID: i.ChannelID})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Could not stop the game: %v", err))
	}

	if current.Session == nil {
		return RespondWithEphemeralMessage(s, i, "No active game in this channel.")
	}

	userID, _ := interactionUser(i)
	if !canStopSession(c.isStaff(i), userID, current.Session.HostID) {
		return RespondWithEphemeralMessage(s, i, "Only staff or the game's host can stop it.")
	}

	out, err := c.sessionService.Stop(ctx, &session.StopInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Could not stop the game: %v", err))
	}

	if !out.Stopped {
		return RespondWithEphemeralMessage(s, i, "No active game in this channel.")
	}

	return RespondWithEphemeralMessage(s, i, "Stopping the game.")
}

// canStopSession gates the stop subcommand to staff and the session host
func canStopSession(isStaff bool, callerID, hostID string) bool {
	if isStaff {
		return true
	}

	return callerID != "" && callerID == hostID
}
