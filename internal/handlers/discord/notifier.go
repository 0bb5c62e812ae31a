package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/arcadebot/arcadebot/internal/services/escalation"
	"github.com/arcadebot/arcadebot/internal/services/messaging"
	"github.com/arcadebot/arcadebot/internal/services/session"
)

// Vote button custom IDs
const (
	ButtonVoteA = "wyr_vote_a"
	ButtonVoteB = "wyr_vote_b"
)

const winnerReaction = "✅"

// Notifier adapts discordgo to the chat surfaces the round engine and the
// escalation handler need
type Notifier struct {
	session   *discordgo.Session
	messaging messaging.Service

	// staffRoles may answer the role prompt alongside the session host
	staffRoles []string

	mu         sync.Mutex
	challenges map[string]string      // channelID -> current challenge message ID
	prompts    map[string]chan string // channelID -> pending role prompt reply
	promptFor  map[string]string      // channelID -> host user ID
}

// NotifierConfig holds configuration for the notifier
type NotifierConfig struct {
	Session    *discordgo.Session
	Messaging  messaging.Service
	StaffRoles []string
}

// NewNotifier creates a new chat notifier
func NewNotifier(cfg *NotifierConfig) (*Notifier, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("discord session cannot be nil")
	}

	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	return &Notifier{
		session:    cfg.Session,
		messaging:  cfg.Messaging,
		staffRoles: cfg.StaffRoles,
		challenges: make(map[string]string),
		prompts:    make(map[string]chan string),
		promptFor:  make(map[string]string),
	}, nil
}

// ChallengeMessageID returns the live challenge message for a channel, used
// by the reaction handler to route join reactions
func (n *Notifier) ChallengeMessageID(channelID string) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.challenges[channelID]
}

// AnnounceChallenge implements session.Notifier
func (n *Notifier) AnnounceChallenge(_ context.Context, input *session.AnnounceChallengeInput) (*session.AnnounceChallengeOutput, error) {
	send := &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{renderChallenge(input)},
	}

	if input.VoteMode {
		send.Components = []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    input.OptionA,
						Style:    discordgo.PrimaryButton,
						CustomID: ButtonVoteA,
						Emoji:    &discordgo.ComponentEmoji{Name: "🅰️"},
					},
					discordgo.Button{
						Label:    input.OptionB,
						Style:    discordgo.SecondaryButton,
						CustomID: ButtonVoteB,
						Emoji:    &discordgo.ComponentEmoji{Name: "🅱️"},
					},
				},
			},
		}
	}

	msg, err := n.session.ChannelMessageSendComplex(input.ChannelID, send)
	if err != nil {
		return nil, fmt.Errorf("failed to announce challenge: %w", err)
	}

	n.mu.Lock()
	n.challenges[input.ChannelID] = msg.ID
	n.mu.Unlock()

	return &session.AnnounceChallengeOutput{MessageID: msg.ID}, nil
}

// AnnounceHint implements session.Notifier
func (n *Notifier) AnnounceHint(_ context.Context, input *session.AnnounceHintInput) error {
	_, err := n.session.ChannelMessageSend(input.ChannelID, input.Hint)
	return err
}

// AcknowledgeWinner implements session.Notifier
func (n *Notifier) AcknowledgeWinner(ctx context.Context, input *session.AcknowledgeWinnerInput) error {
	if input.MessageID != "" {
		if err := n.session.MessageReactionAdd(input.ChannelID, input.MessageID, winnerReaction); err != nil {
			log.WithError(err).Warn("failed to react to winning message")
		}
	}

	line, err := n.messaging.GetWinnerMessage(ctx, &messaging.GetWinnerMessageInput{
		Username: input.Username,
		Answer:   input.Answer,
	})
	if err != nil {
		return err
	}

	_, err = n.session.ChannelMessageSend(input.ChannelID, line.Message)
	return err
}

// AnnounceTimeout implements session.Notifier
func (n *Notifier) AnnounceTimeout(ctx context.Context, input *session.AnnounceTimeoutInput) error {
	line, err := n.messaging.GetTimeoutMessage(ctx, &messaging.GetTimeoutMessageInput{
		Reveal: input.Reveal,
	})
	if err != nil {
		return err
	}

	_, err = n.session.ChannelMessageSend(input.ChannelID, line.Message)
	return err
}

// AnnounceVoteResult implements session.Notifier
func (n *Notifier) AnnounceVoteResult(_ context.Context, input *session.AnnounceVoteResultInput) error {
	_, err := n.session.ChannelMessageSendEmbed(input.ChannelID, renderVoteResult(input))
	return err
}

// AnnounceEnd implements session.Notifier
func (n *Notifier) AnnounceEnd(_ context.Context, input *session.AnnounceEndInput) error {
	n.mu.Lock()
	delete(n.challenges, input.ChannelID)
	n.mu.Unlock()

	_, err := n.session.ChannelMessageSend(input.ChannelID, input.Reason)
	return err
}

// LockChannel implements session.Notifier by denying @everyone send permission
func (n *Notifier) LockChannel(_ context.Context, input *session.LockChannelInput) error {
	return n.session.ChannelPermissionSet(input.ChannelID, input.GuildID,
		discordgo.PermissionOverwriteTypeRole, 0, discordgo.PermissionSendMessages)
}

// UnlockChannel implements session.Notifier
func (n *Notifier) UnlockChannel(_ context.Context, input *session.UnlockChannelInput) error {
	return n.session.ChannelPermissionSet(input.ChannelID, input.GuildID,
		discordgo.PermissionOverwriteTypeRole, discordgo.PermissionSendMessages, 0)
}

// PublishStandings implements escalation.Notifier. An existing message is
// edited in place; a missing or deleted one falls back to a fresh post.
func (n *Notifier) PublishStandings(_ context.Context, input *escalation.PublishStandingsInput) (*escalation.PublishStandingsOutput, error) {
	embed := renderStandings(input.Entries)

	if input.ExistingMessageID != "" {
		msg, err := n.session.ChannelMessageEditEmbed(input.ChannelID, input.ExistingMessageID, embed)
		if err == nil {
			return &escalation.PublishStandingsOutput{MessageID: msg.ID}, nil
		}
		log.WithError(err).Warn("failed to edit tracked leaderboard message, posting fresh")
	}

	msg, err := n.session.ChannelMessageSendEmbed(input.ChannelID, embed)
	if err != nil {
		return nil, fmt.Errorf("failed to publish standings: %w", err)
	}

	return &escalation.PublishStandingsOutput{MessageID: msg.ID}, nil
}

// PromptRoleName implements escalation.Notifier. The reply is delivered by
// HandleStaffReply from the message event stream.
func (n *Notifier) PromptRoleName(_ context.Context, input *escalation.PromptRoleNameInput) (*escalation.PromptRoleNameOutput, error) {
	replyCh := make(chan string, 1)

	n.mu.Lock()
	n.prompts[input.ChannelID] = replyCh
	n.promptFor[input.ChannelID] = input.HostID
	n.mu.Unlock()

	defer func() {
		n.mu.Lock()
		delete(n.prompts, input.ChannelID)
		delete(n.promptFor, input.ChannelID)
		n.mu.Unlock()
	}()

	_, err := n.session.ChannelMessageSend(input.ChannelID,
		fmt.Sprintf("<@%s> The leaderboard is full! Type a role name for the winners within %s, or `skip`.",
			input.HostID, input.Timeout.Round(time.Second)))
	if err != nil {
		return nil, fmt.Errorf("failed to send role prompt: %w", err)
	}

	select {
	case reply := <-replyCh:
		if strings.EqualFold(strings.TrimSpace(reply), "skip") {
			return &escalation.PromptRoleNameOutput{Skipped: true}, nil
		}
		return &escalation.PromptRoleNameOutput{RoleName: strings.TrimSpace(reply)}, nil
	case <-time.After(input.Timeout):
		return &escalation.PromptRoleNameOutput{Skipped: true}, nil
	}
}

// HandleStaffReply feeds a chat message into a pending role prompt.
// Returns true when the message was consumed by the prompt.
func (n *Notifier) HandleStaffReply(m *discordgo.MessageCreate) bool {
	n.mu.Lock()
	replyCh, pending := n.prompts[m.ChannelID]
	hostID := n.promptFor[m.ChannelID]
	n.mu.Unlock()

	if !pending {
		return false
	}

	if m.Author.ID != hostID && !n.memberHasStaffRole(m.GuildID, m.Member) {
		return false
	}

	select {
	case replyCh <- m.Content:
		return true
	default:
		return false
	}
}

// EnsureRole implements escalation.Notifier
func (n *Notifier) EnsureRole(_ context.Context, input *escalation.EnsureRoleInput) (*escalation.EnsureRoleOutput, error) {
	roles, err := n.session.GuildRoles(input.GuildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list guild roles: %w", err)
	}

	var target *discordgo.Role
	created := false
	for _, role := range roles {
		if role.Name == input.Name {
			target = role
			break
		}
	}

	if target == nil {
		target, err = n.session.GuildRoleCreate(input.GuildID, &discordgo.RoleParams{Name: input.Name})
		if err != nil {
			return nil, fmt.Errorf("failed to create role: %w", err)
		}
		created = true
	}

	topPosition, err := n.botTopRolePosition(input.GuildID, roles)
	if err != nil {
		return nil, err
	}

	if target.Position >= topPosition {
		return nil, escalation.ErrRoleHierarchy
	}

	return &escalation.EnsureRoleOutput{RoleID: target.ID, Created: created}, nil
}

// botTopRolePosition returns the highest role position the bot holds
func (n *Notifier) botTopRolePosition(guildID string, roles []*discordgo.Role) (int, error) {
	member, err := n.session.GuildMember(guildID, n.session.State.User.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to look up bot member: %w", err)
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

	return top, nil
}

// AssignRole implements escalation.Notifier
func (n *Notifier) AssignRole(_ context.Context, input *escalation.AssignRoleInput) error {
	member, err := n.session.GuildMember(input.GuildID, input.UserID)
	if err != nil {
		return fmt.Errorf("failed to look up member: %w", err)
	}

	for _, roleID := range member.Roles {
		if roleID == input.RoleID {
			return nil
		}
	}

	return n.session.GuildMemberRoleAdd(input.GuildID, input.UserID, input.RoleID)
}

// Announce implements escalation.Notifier
func (n *Notifier) Announce(_ context.Context, input *escalation.AnnounceInput) error {
	_, err := n.session.ChannelMessageSend(input.ChannelID, input.Content)
	return err
}

// memberHasStaffRole reports whether a member holds one of the configured
// staff roles by name
func (n *Notifier) memberHasStaffRole(guildID string, member *discordgo.Member) bool {
	if member == nil || len(n.staffRoles) == 0 {
		return false
	}

	roles, err := n.session.GuildRoles(guildID)
	if err != nil {
		log.WithError(err).Warn("failed to list guild roles for staff check")
		return false
	}

	names := make(map[string]string, len(roles))
	for _, role := range roles {
		names[role.ID] = role.Name
	}

	for _, roleID := range member.Roles {
		for _, staff := range n.staffRoles {
			if names[roleID] == staff {
				return true
			}
		}
	}

	return false
}
