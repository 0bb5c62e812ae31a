package games

import (
	"github.com/arcadebot/arcadebot/internal/models"
	"github.com/arcadebot/arcadebot/internal/random"
	"github.com/arcadebot/arcadebot/internal/services/ai"
)

// Factory builds a fresh challenge source for each game start
type Factory struct {
	random    *random.Source
	aiService ai.Service
	maxNumber int
}

// FactoryConfig holds configuration for the factory
type FactoryConfig struct {
	// Random drives challenge selection and shuffling
	Random *random.Source

	// AIService backs the would-you-rather generator
	AIService ai.Service

	// MaxNumber is the number-guess upper bound; defaults to 100
	MaxNumber int
}

// NewFactory creates a new challenge source factory
func NewFactory(cfg *FactoryConfig) (*Factory, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	if cfg.AIService == nil {
		return nil, ErrNilAIService
	}

	return &Factory{
		random:    cfg.Random,
		aiService: cfg.AIService,
		maxNumber: cfg.MaxNumber,
	}, nil
}

// NewSource returns an unused challenge source for the given kind
func (f *Factory) NewSource(kind models.GameKind) (Source, error) {
	switch kind {
	case models.GameKindNumberGuess:
		return newNumberGuessSource(f.random, f.maxNumber), nil
	case models.GameKindTrivia:
		return newTriviaSource(f.random), nil
	case models.GameKindScramble:
		return newScrambleSource(f.random), nil
	case models.GameKindRPS:
		return newRPSSource(f.random), nil
	case models.GameKindLyrics:
		return newLyricsSource(f.random), nil
	case models.GameKindWouldYouRather:
		return newWouldYouRatherSource(f.aiService), nil
	default:
		return nil, ErrUnknownKind
	}
}
