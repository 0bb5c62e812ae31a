package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/arcadebot/arcadebot/internal/metrics"
	"github.com/arcadebot/arcadebot/internal/repositories/memory"
	"github.com/arcadebot/arcadebot/internal/repositories/messages"
	"github.com/arcadebot/arcadebot/internal/services/ai"
	"github.com/arcadebot/arcadebot/internal/services/leaderboard"
	"github.com/arcadebot/arcadebot/internal/services/messaging"
	"github.com/arcadebot/arcadebot/internal/services/session"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	notifier   *Notifier
	commands   map[string]CommandHandler
	commandIDs map[string]string // command name -> registered command ID

	sessionService     session.Service
	leaderboardService leaderboard.Service
	aiService          ai.Service
	messagingService   messaging.Service
	memoryRepo         memory.Repository
	messagesRepo       messages.Repository
	metrics            *metrics.Metrics

	config *Config
}

// Config holds the configuration for the bot
type Config struct {
	// ApplicationID for command registration; falls back to the session user
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// StaffRoles may run moderation and reset commands
	StaffRoles []string

	// Discord session, already constructed with the bot token
	Session *discordgo.Session

	// Notifier shared with the round engine and escalation handler
	Notifier *Notifier

	// Service dependencies
	SessionService     session.Service
	LeaderboardService leaderboard.Service
	AIService          ai.Service
	MessagingService   messaging.Service
	MemoryRepo         memory.Repository
	MessagesRepo       messages.Repository

	// Metrics instruments command handling when set
	Metrics *metrics.Metrics
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("discord session cannot be nil")
	}

	if cfg.Notifier == nil {
		return nil, errors.New("notifier cannot be nil")
	}

	if cfg.SessionService == nil {
		return nil, errors.New("session service cannot be nil")
	}

	if cfg.LeaderboardService == nil {
		return nil, errors.New("leaderboard service cannot be nil")
	}

	if cfg.AIService == nil {
		return nil, errors.New("AI service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.MemoryRepo == nil {
		return nil, errors.New("memory repository cannot be nil")
	}

	if cfg.MessagesRepo == nil {
		return nil, errors.New("messages repository cannot be nil")
	}

	bot := &Bot{
		session:            cfg.Session,
		notifier:           cfg.Notifier,
		commands:           make(map[string]CommandHandler),
		commandIDs:         make(map[string]string),
		sessionService:     cfg.SessionService,
		leaderboardService: cfg.LeaderboardService,
		aiService:          cfg.AIService,
		messagingService:   cfg.MessagingService,
		memoryRepo:         cfg.MemoryRepo,
		messagesRepo:       cfg.MessagesRepo,
		metrics:            cfg.Metrics,
		config:             cfg,
	}

	cfg.Session.AddHandler(bot.handleInteraction)
	cfg.Session.AddHandler(bot.handleMessageCreate)
	cfg.Session.AddHandler(bot.handleReactionAdd)
	cfg.Session.AddHandler(bot.handleMessageDelete)

	return bot, nil
}

// Start opens the gateway connection and registers all commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	handlers := []CommandHandler{
		NewGameCommand(b.sessionService, b.messagingService, b.isStaff),
		NewLeaderboardCommand(b.leaderboardService, b.isStaff),
		NewPointsCommand(b.leaderboardService, b.isStaff),
		NewAskCommand(b.aiService, b.memoryRepo),
		NewTeachCommand(b.aiService, b.memoryRepo, b.isStaff),
		NewComposerCommand(b.messagesRepo, b.isStaff),
		NewModerationCommand(b.isStaff),
		NewHelpCommand(),
	}

	for _, cmd := range handlers {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register command %s: %w", cmd.GetName(), err)
		}
	}

	log.Info("bot is running")
	return nil
}

// Stop removes registered commands and closes the gateway connection
func (b *Bot) Stop() error {
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for name, id := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, id); err != nil {
			log.WithError(err).WithField("command", name).Warn("failed to delete command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	created, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = created.ID
	log.WithField("command", cmd.GetName()).Info("registered command")

	return nil
}

// handleInteraction routes slash commands and component presses
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if b.metrics != nil {
			b.metrics.CommandsHandled.WithLabelValues(name).Inc()
		}

		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.WithError(err).WithField("command", name).Error("command failed")
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			log.WithError(err).Error("component interaction failed")
		}
	}
}

// handleComponentInteraction handles button presses
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID
	userID, username := interactionUser(i)

	switch customID {
	case ButtonVoteA, ButtonVoteB:
		option := "a"
		if customID == ButtonVoteB {
			option = "b"
		}
		return b.handleVoteButton(s, i, userID, username, option)
	case ButtonTranslate:
		return b.handleTranslateButton(s, i)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}
}

// handleVoteButton feeds a would-you-rather vote into the round engine
func (b *Bot) handleVoteButton(s *discordgo.Session, i *discordgo.InteractionCreate, userID, username, option string) error {
	out, err := b.sessionService.SubmitVote(context.Background(), &session.SubmitVoteInput{
		ChannelID: i.ChannelID,
		UserID:    userID,
		Username:  username,
		Option:    option,
	})
	if err != nil {
		log.WithError(err).Warn("failed to submit vote")
		return RespondWithEphemeralMessage(s, i, "Something went wrong recording your vote.")
	}

	if !out.Recorded {
		return RespondWithEphemeralMessage(s, i, "Your vote wasn't counted. You may have already voted, or the round is closed.")
	}

	return RespondWithEphemeralMessage(s, i, "Vote counted! 🗳️")
}

// handleTranslateButton re-renders a composed message in the other language
func (b *Bot) handleTranslateButton(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	record, err := b.messagesRepo.GetRecord(context.Background(), &messages.GetRecordInput{
		MessageID: i.Message.ID,
	})
	if err != nil {
		if errors.Is(err, messages.ErrRecordNotFound) {
			return RespondWithEphemeralMessage(s, i, "I don't have a translation for this message anymore.")
		}
		return RespondWithError(s, i, "Could not load the translation.")
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{renderComposed(record, true)},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

// handleMessageCreate feeds chat messages to the role prompt and the round
// engine, in that order
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	if b.notifier.HandleStaffReply(m) {
		return
	}

	username := m.Author.Username
	if m.Member != nil && m.Member.Nick != "" {
		username = m.Member.Nick
	}

	_, err := b.sessionService.SubmitGuess(context.Background(), &session.SubmitGuessInput{
		ChannelID: m.ChannelID,
		MessageID: m.ID,
		UserID:    m.Author.ID,
		Username:  username,
		Content:   m.Content,
	})
	if err != nil {
		log.WithError(err).Warn("failed to submit guess")
	}
}

// handleReactionAdd joins a user into a join-gated game when they react to
// the live challenge message
func (b *Bot) handleReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.UserID == s.State.User.ID {
		return
	}

	if b.notifier.ChallengeMessageID(r.ChannelID) != r.MessageID {
		return
	}

	ctx := context.Background()

	err := b.sessionService.Join(ctx, &session.JoinInput{
		ChannelID: r.ChannelID,
		UserID:    r.UserID,
	})
	if err != nil {
		log.WithError(err).Warn("failed to join user to game")
		return
	}

	b.announceJoin(ctx, s, r)
}

// announceJoin posts a flavor line for the freshly joined player
func (b *Bot) announceJoin(ctx context.Context, s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	member, err := s.GuildMember(r.GuildID, r.UserID)
	if err != nil || member.User == nil {
		return
	}

	username := member.User.Username
	if member.Nick != "" {
		username = member.Nick
	}

	line, err := b.messagingService.GetJoinMessage(ctx, &messaging.GetJoinMessageInput{
		Username: username,
	})
	if err != nil {
		return
	}

	if _, err := s.ChannelMessageSend(r.ChannelID, line.Message); err != nil {
		log.WithError(err).Warn("failed to announce join")
	}
}

// handleMessageDelete drops the composer record for a deleted message
func (b *Bot) handleMessageDelete(_ *discordgo.Session, m *discordgo.MessageDelete) {
	err := b.messagesRepo.DeleteRecord(context.Background(), &messages.DeleteRecordInput{
		MessageID: m.ID,
	})
	if err != nil && !errors.Is(err, messages.ErrRecordNotFound) {
		log.WithError(err).Warn("failed to delete composer record")
	}
}

// isStaff reports whether the invoking member holds a configured staff role
// or administrator permission
func (b *Bot) isStaff(i *discordgo.InteractionCreate) bool {
	if i.Member == nil {
		return false
	}

	if i.Member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}

	return b.notifier.memberHasStaffRole(i.GuildID, i.Member)
}
