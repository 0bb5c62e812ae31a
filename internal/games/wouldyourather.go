package games

import (
	"context"
	"fmt"

	"github.com/arcadebot/arcadebot/internal/services/ai"
)

// wouldYouRatherSource synthesizes vote challenges through the AI service
type wouldYouRatherSource struct {
	aiService ai.Service
}

func newWouldYouRatherSource(aiService ai.Service) *wouldYouRatherSource {
	return &wouldYouRatherSource{aiService: aiService}
}

// Next implements the Source interface. Generation failures propagate so the
// session can abort with an explanatory message.
func (w *wouldYouRatherSource) Next(ctx context.Context) (*Challenge, error) {
	pair, err := w.aiService.GenerateQuestionPair(ctx, &ai.GenerateQuestionPairInput{})
	if err != nil {
		return nil, fmt.Errorf("generating question pair: %w", err)
	}

	return &Challenge{
		Prompt:  fmt.Sprintf("Would you rather... **%s** OR **%s**?", pair.OptionA, pair.OptionB),
		OptionA: pair.OptionA,
		OptionB: pair.OptionB,
	}, nil
}
