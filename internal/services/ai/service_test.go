package ai

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/suite"
)

// fakeAPI scripts completion and embedding responses for the service under test
type fakeAPI struct {
	completions []string
	completionI int
	embeddings  map[string][]float32
	chatErr     error
}

func (f *fakeAPI) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if f.chatErr != nil {
		return openai.ChatCompletionResponse{}, f.chatErr
	}

	if f.completionI >= len(f.completions) {
		return openai.ChatCompletionResponse{}, errors.New("fake exhausted")
	}

	content := f.completions[f.completionI]
	f.completionI++

	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}, nil
}

func (f *fakeAPI) CreateEmbeddings(ctx context.Context, request openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error) {
	req, ok := request.(openai.EmbeddingRequest)
	if !ok {
		return openai.EmbeddingResponse{}, errors.New("unexpected request type")
	}

	texts, ok := req.Input.([]string)
	if !ok || len(texts) == 0 {
		return openai.EmbeddingResponse{}, errors.New("unexpected input")
	}

	vector, ok := f.embeddings[texts[0]]
	if !ok {
		vector = []float32{1, 0, 0}
	}

	return openai.EmbeddingResponse{
		Data: []openai.Embedding{{Embedding: vector}},
	}, nil
}

type AIServiceTestSuite struct {
	suite.Suite
	fake *fakeAPI
	svc  *service
	ctx  context.Context
}

func (s *AIServiceTestSuite) SetupTest() {
	s.fake = &fakeAPI{embeddings: map[string][]float32{}}
	s.svc = &service{
		chatClient:     s.fake,
		embedClient:    s.fake,
		model:          "test-model",
		embeddingModel: "test-embed",
		maxRetries:     3,
		threshold:      0.8,
		maxTokens:      100,
		temperature:    0.7,
	}
	s.ctx = context.Background()
}

func TestAIServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AIServiceTestSuite))
}

func (s *AIServiceTestSuite) TestCosineSimilarity() {
	s.InDelta(1.0, CosineSimilarity([]float32{1, 0}, []float32{2, 0}), 0.0001)
	s.InDelta(0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 0.0001)
	s.InDelta(-1.0, CosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 0.0001)

	// Degenerate inputs
	s.Zero(CosineSimilarity(nil, nil))
	s.Zero(CosineSimilarity([]float32{1}, []float32{1, 2}))
	s.Zero(CosineSimilarity([]float32{0, 0}, []float32{1, 1}))
}

func (s *AIServiceTestSuite) TestSplitOptions() {
	a, b, ok := splitOptions("Would you rather fly OR breathe underwater?")
	s.True(ok)
	s.Equal("fly", a)
	s.Equal("breathe underwater", b)

	_, _, ok = splitOptions("no separator here")
	s.False(ok)
}

func (s *AIServiceTestSuite) TestGenerateQuestionPairFirstTry() {
	s.fake.completions = []string{"ride a dragon OR befriend a kraken?"}
	s.fake.embeddings["ride a dragon"] = []float32{1, 0, 0}
	s.fake.embeddings["befriend a kraken"] = []float32{0, 1, 0}

	out, err := s.svc.GenerateQuestionPair(s.ctx, &GenerateQuestionPairInput{})
	s.Require().NoError(err)
	s.Equal("ride a dragon", out.OptionA)
	s.Equal("befriend a kraken", out.OptionB)
}

func (s *AIServiceTestSuite) TestGenerateQuestionPairRetriesOnSimilarity() {
	// First pair embeds identically, second is distinct
	s.fake.completions = []string{
		"eat pizza OR eat a pizza?",
		"live underwater OR live on the moon?",
	}
	s.fake.embeddings["eat pizza"] = []float32{1, 0, 0}
	s.fake.embeddings["eat a pizza"] = []float32{1, 0, 0}
	s.fake.embeddings["live underwater"] = []float32{1, 0, 0}
	s.fake.embeddings["live on the moon"] = []float32{0, 0, 1}

	out, err := s.svc.GenerateQuestionPair(s.ctx, &GenerateQuestionPairInput{})
	s.Require().NoError(err)
	s.Equal("live underwater", out.OptionA)
}

func (s *AIServiceTestSuite) TestGenerateQuestionPairExhaustsRetries() {
	s.fake.completions = []string{
		"same OR same?",
		"same OR same?",
		"same OR same?",
	}
	s.fake.embeddings["same"] = []float32{1, 0, 0}

	_, err := s.svc.GenerateQuestionPair(s.ctx, &GenerateQuestionPairInput{})
	s.Require().ErrorIs(err, ErrQuestionGeneration)
}

func (s *AIServiceTestSuite) TestGenerateQuestionPairSurvivesChatErrors() {
	s.fake.chatErr = errors.New("endpoint down")

	_, err := s.svc.GenerateQuestionPair(s.ctx, &GenerateQuestionPairInput{})
	s.Require().ErrorIs(err, ErrQuestionGeneration)
}

func (s *AIServiceTestSuite) TestChatBuildsMessageOrder() {
	s.fake.completions = []string{"  the answer  "}

	out, err := s.svc.Chat(s.ctx, &ChatInput{
		System: "be brief",
		Prompt: "what is up",
	})
	s.Require().NoError(err)
	s.Equal("the answer", out.Content)
}

func (s *AIServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Require().ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Model: "m"})
	s.Require().ErrorIs(err, ErrEmptyAPIKey)

	_, err = New(&Config{APIKey: "k"})
	s.Require().ErrorIs(err, ErrEmptyModel)
}
