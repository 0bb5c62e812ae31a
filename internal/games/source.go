package games

import (
	"context"
	"strings"

	"github.com/arcadebot/arcadebot/internal/random"
)

// Source yields the challenges for one session. A source is created per game
// start and is not safe for concurrent use; the round loop is its only caller.
type Source interface {
	// Next returns the next unused challenge, or ErrExhausted when the pool is
	// spent. Sources that synthesize challenges may return other errors.
	Next(ctx context.Context) (*Challenge, error)
}

// Normalize prepares a guess for comparison
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Matches reports whether a guess answers the challenge
func Matches(challenge *Challenge, guess string) bool {
	if challenge == nil {
		return false
	}

	normalized := Normalize(guess)
	if normalized == "" {
		return false
	}

	for _, answer := range challenge.Answers {
		if normalized == answer {
			return true
		}
	}

	return false
}

// poolSource walks a fixed challenge pool in shuffled order
type poolSource struct {
	challenges []Challenge
	order      []int
	next       int
}

func newPoolSource(rnd *random.Source, challenges []Challenge) *poolSource {
	order := make([]int, len(challenges))
	for i := range order {
		order[i] = i
	}

	for i := len(order) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}

	return &poolSource{challenges: challenges, order: order}
}

// Next implements the Source interface
func (p *poolSource) Next(_ context.Context) (*Challenge, error) {
	if p.next >= len(p.order) {
		return nil, ErrExhausted
	}

	challenge := p.challenges[p.order[p.next]]
	p.next++

	return &challenge, nil
}
