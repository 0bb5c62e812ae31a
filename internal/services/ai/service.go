package ai

import (
	"context"
	"fmt"
	"math"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"

	"github.com/arcadebot/arcadebot/internal/metrics"
)

const (
	defaultMaxRetries          = 3
	defaultSimilarityThreshold = 0.8
	defaultMaxTokens           = 100
	defaultTemperature         = 0.7

	questionSystemMessage = "You are a creative assistant that generates fun " +
		"'Would You Rather' questions and witty explanations. Keep every reply " +
		"extremely brief, no more than two concise sentences."

	questionPrompt = "Generate a highly unique, diverse, and imaginative " +
		"'Would You Rather' question. Ensure the two options are distinct, silly, " +
		"and creative. Separate the options clearly with ' OR '. Do not include " +
		"any extra sentences, introductory phrases, or explanations."
)

// completionAPI is the slice of the OpenAI client the service needs; it exists
// so tests can substitute a fake endpoint
type completionAPI interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	CreateEmbeddings(ctx context.Context, request openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error)
}

// service implements the Service interface
type service struct {
	chatClient  completionAPI
	embedClient completionAPI

	model          string
	embeddingModel string
	maxRetries     int
	threshold      float64
	maxTokens      int
	temperature    float32
	metrics        *metrics.Metrics
}

// countCall records one inference call outcome
func (s *service) countCall(operation string, err error) {
	if s.metrics == nil {
		return
	}

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}

	s.metrics.AICalls.WithLabelValues(operation, outcome).Inc()
}

// New creates a new AI service backed by an OpenAI-compatible endpoint
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.APIKey == "" {
		return nil, ErrEmptyAPIKey
	}

	if cfg.Model == "" {
		return nil, ErrEmptyModel
	}

	chatConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		chatConfig.BaseURL = cfg.BaseURL
	}

	embedConfig := openai.DefaultConfig(cfg.APIKey)
	embedConfig.BaseURL = cfg.EmbeddingBaseURL
	if embedConfig.BaseURL == "" {
		embedConfig.BaseURL = chatConfig.BaseURL
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	threshold := cfg.SimilarityThreshold
	if threshold <= 0 {
		threshold = defaultSimilarityThreshold
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	temperature := cfg.Temperature
	if temperature <= 0 {
		temperature = defaultTemperature
	}

	return &service{
		chatClient:     openai.NewClientWithConfig(chatConfig),
		embedClient:    openai.NewClientWithConfig(embedConfig),
		model:          cfg.Model,
		embeddingModel: cfg.EmbeddingModel,
		maxRetries:     maxRetries,
		threshold:      threshold,
		maxTokens:      maxTokens,
		temperature:    temperature,
		metrics:        cfg.Metrics,
	}, nil
}

// Chat sends a prompt with optional history and returns the model's reply
func (s *service) Chat(ctx context.Context, input *ChatInput) (*ChatOutput, error) {
	if input == nil || input.Prompt == "" {
		return nil, ErrEmptyResponse
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(input.History)+2)
	if input.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: input.System,
		})
	}

	for _, turn := range input.History {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    turn.Role,
			Content: turn.Content,
		})
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: input.Prompt,
	})

	resp, err := s.chatClient.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Messages:    messages,
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	s.countCall("chat", err)
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	return &ChatOutput{Content: strings.TrimSpace(resp.Choices[0].Message.Content)}, nil
}

// Embed returns the embedding vector for a piece of text
func (s *service) Embed(ctx context.Context, input *EmbedInput) (*EmbedOutput, error) {
	if input == nil || input.Text == "" {
		return nil, ErrEmptyResponse
	}

	resp, err := s.embedClient.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(s.embeddingModel),
		Input: []string{input.Text},
	})
	s.countCall("embed", err)
	if err != nil {
		return nil, fmt.Errorf("embedding failed: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, ErrEmptyResponse
	}

	return &EmbedOutput{Vector: resp.Data[0].Embedding}, nil
}

// GenerateQuestionPair synthesizes a distinct would-you-rather option pair,
// retrying when the two generated options embed too close together
func (s *service) GenerateQuestionPair(ctx context.Context, input *GenerateQuestionPairInput) (*GenerateQuestionPairOutput, error) {
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		chatOut, err := s.Chat(ctx, &ChatInput{
			System: questionSystemMessage,
			Prompt: questionPrompt,
		})
		if err != nil {
			log.WithError(err).Warn("question generation attempt failed")
			continue
		}

		optionA, optionB, ok := splitOptions(chatOut.Content)
		if !ok {
			continue
		}

		embedA, err := s.Embed(ctx, &EmbedInput{Text: optionA})
		if err != nil {
			log.WithError(err).Warn("embedding option A failed, retrying generation")
			continue
		}

		embedB, err := s.Embed(ctx, &EmbedInput{Text: optionB})
		if err != nil {
			log.WithError(err).Warn("embedding option B failed, retrying generation")
			continue
		}

		similarity := CosineSimilarity(embedA.Vector, embedB.Vector)
		if similarity >= s.threshold {
			log.WithField("similarity", similarity).Debug("generated options too similar, retrying")
			continue
		}

		return &GenerateQuestionPairOutput{OptionA: optionA, OptionB: optionB}, nil
	}

	return nil, ErrQuestionGeneration
}

// splitOptions parses a raw "A OR B" question into its two cleaned options
func splitOptions(raw string) (string, string, bool) {
	parts := strings.SplitN(raw, " OR ", 2)
	if len(parts) < 2 {
		return "", "", false
	}

	optionA := strings.TrimSpace(parts[0])
	optionB := strings.TrimSpace(parts[1])

	optionA = strings.TrimSpace(strings.TrimPrefix(optionA, "Would you rather..."))
	optionA = strings.TrimSpace(strings.TrimPrefix(optionA, "Would you rather"))
	optionB = strings.TrimSuffix(optionB, "?")
	optionB = strings.TrimSpace(optionB)
	if strings.HasSuffix(optionA, "?") && !strings.HasSuffix(optionB, "?") {
		optionA = strings.TrimSpace(strings.TrimSuffix(optionA, "?"))
	}

	if optionA == "" || optionB == "" {
		return "", "", false
	}

	return optionA, optionB, true
}

// CosineSimilarity computes the cosine similarity of two embedding vectors.
// Mismatched lengths or zero vectors yield 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
