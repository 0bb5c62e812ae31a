package discord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/arcadebot/arcadebot/internal/models"
	"github.com/arcadebot/arcadebot/internal/repositories/memory"
	"github.com/arcadebot/arcadebot/internal/services/ai"
)

// memoryMatchThreshold is the cosine similarity above which a taught memory
// answers the question instead of the chat model
const memoryMatchThreshold = 0.85

const chatSystemPrompt = "You are a friendly community bot for a Discord server. " +
	"Keep answers short, warm, and suitable for a general audience."

// AskCommand answers questions from taught memories or the chat model
type AskCommand struct {
	BaseCommand
	aiService  ai.Service
	memoryRepo memory.Repository
}

// NewAskCommand creates the /ask command
func NewAskCommand(aiService ai.Service, memoryRepo memory.Repository) *AskCommand {
	return &AskCommand{
		BaseCommand: BaseCommand{
			Name:        "ask",
			Description: "Ask the bot a question",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "question",
					Description: "What do you want to know?",
					Required:    true,
				},
			},
		},
		aiService:  aiService,
		memoryRepo: memoryRepo,
	}
}

// Handle processes a Discord interaction
func (c *AskCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	opts := optionMap(i.ApplicationCommandData().Options)

	opt, ok := opts["question"]
	if !ok || strings.TrimSpace(opt.StringValue()) == "" {
		return RespondWithError(s, i, "Ask me something first.")
	}
	question := strings.TrimSpace(opt.StringValue())

	// Model calls can exceed the 3 second interaction deadline
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		return fmt.Errorf("failed to defer response: %w", err)
	}

	ctx := context.Background()

	answer, err := c.answer(ctx, i.ChannelID, question)
	if err != nil {
		log.WithError(err).Error("failed to answer question")
		answer = "I couldn't come up with an answer right now. Try again in a bit."
	}

	_, err = s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &answer,
	})
	return err
}

// answer checks taught memories first, then falls back to the chat model with
// the channel's conversation history
func (c *AskCommand) answer(ctx context.Context, channelID, question string) (string, error) {
	if remembered, ok := c.recallMemory(ctx, question); ok {
		return remembered, nil
	}

	history, err := c.memoryRepo.GetConversation(ctx, &memory.GetConversationInput{
		ChannelID: channelID,
	})
	if err != nil {
		log.WithError(err).Warn("failed to load conversation history")
		history = &memory.GetConversationOutput{}
	}

	out, err := c.aiService.Chat(ctx, &ai.ChatInput{
		System:  chatSystemPrompt,
		History: history.Messages,
		Prompt:  question,
	})
	if err != nil {
		return "", err
	}

	c.recordTurns(ctx, channelID, question, out.Content)

	return out.Content, nil
}

// recallMemory embeds the question and scans taught memories for a close match
func (c *AskCommand) recallMemory(ctx context.Context, question string) (string, bool) {
	memories, err := c.memoryRepo.ListMemories(ctx, &memory.ListMemoriesInput{})
	if err != nil {
		log.WithError(err).Warn("failed to list memories")
		return "", false
	}

	if len(memories.Memories) == 0 {
		return "", false
	}

	embedded, err := c.aiService.Embed(ctx, &ai.EmbedInput{Text: question})
	if err != nil {
		log.WithError(err).Warn("failed to embed question")
		return "", false
	}

	best := ""
	bestScore := 0.0
	for _, mem := range memories.Memories {
		score := ai.CosineSimilarity(embedded.Vector, mem.Embedding)
		if score > bestScore {
			bestScore = score
			best = mem.Answer
		}
	}

	if bestScore < memoryMatchThreshold {
		return "", false
	}

	return best, true
}

// recordTurns appends the question and reply to the channel history.
// Failures are logged and dropped, the user already has their answer.
func (c *AskCommand) recordTurns(ctx context.Context, channelID, question, reply string) {
	now := time.Now().UTC()

	turns := []*models.ConversationMessage{
		{Role: "user", Content: question, CreatedAt: now},
		{Role: "assistant", Content: reply, CreatedAt: now},
	}

	for _, turn := range turns {
		err := c.memoryRepo.AppendConversation(ctx, &memory.AppendConversationInput{
			ChannelID: channelID,
			Message:   turn,
		})
		if err != nil {
			log.WithError(err).Warn("failed to record conversation turn")
			return
		}
	}
}

// TeachCommand stores a keyword memory for later recall by /ask
type TeachCommand struct {
	BaseCommand
	aiService  ai.Service
	memoryRepo memory.Repository
	isStaff    staffCheck
}

// NewTeachCommand creates the /teach command
func NewTeachCommand(aiService ai.Service, memoryRepo memory.Repository, isStaff staffCheck) *TeachCommand {
	return &TeachCommand{
		BaseCommand: BaseCommand{
			Name:        "teach",
			Description: "Teach the bot a permanent answer (staff only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "keyword",
					Description: "Question or phrase to remember",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "answer",
					Description: "Answer to give when it comes up",
					Required:    true,
				},
			},
		},
		aiService:  aiService,
		memoryRepo: memoryRepo,
		isStaff:    isStaff,
	}
}

// Handle processes a Discord interaction
func (c *TeachCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !c.isStaff(i) {
		return RespondWithEphemeralMessage(s, i, "Only staff can teach me things.")
	}

	opts := optionMap(i.ApplicationCommandData().Options)
	keyword := strings.TrimSpace(opts["keyword"].StringValue())
	answer := strings.TrimSpace(opts["answer"].StringValue())

	if keyword == "" || answer == "" {
		return RespondWithError(s, i, "Both keyword and answer are required.")
	}

	ctx := context.Background()
	userID, _ := interactionUser(i)

	embedded, err := c.aiService.Embed(ctx, &ai.EmbedInput{Text: keyword})
	if err != nil {
		log.WithError(err).Error("failed to embed keyword")
		return RespondWithError(s, i, "Could not store that right now.")
	}

	err = c.memoryRepo.SaveMemory(ctx, &memory.SaveMemoryInput{
		Memory: &models.KeywordMemory{
			Keyword:   keyword,
			Answer:    answer,
			Embedding: embedded.Vector,
			TaughtBy:  userID,
			CreatedAt: time.Now().UTC(),
		},
	})
	if err != nil {
		log.WithError(err).Error("failed to save memory")
		return RespondWithError(s, i, "Could not store that right now.")
	}

	return RespondWithEphemeralMessage(s, i,
		fmt.Sprintf("Got it. When someone asks about **%s**, I'll remember.", keyword))
}
