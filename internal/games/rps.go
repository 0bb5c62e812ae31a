package games

import (
	"context"
	"fmt"

	"github.com/arcadebot/arcadebot/internal/random"
)

var rpsMoves = []string{"rock", "paper", "scissors"}

// rpsCounters maps a shown move to the answers that beat it
var rpsCounters = map[string][]string{
	"rock":     {"paper"},
	"paper":    {"scissors", "scissor"},
	"scissors": {"rock"},
}

// rpsSource announces a move and accepts the move that beats it
type rpsSource struct {
	random *random.Source
}

func newRPSSource(rnd *random.Source) *rpsSource {
	return &rpsSource{random: rnd}
}

// Next implements the Source interface
func (r *rpsSource) Next(_ context.Context) (*Challenge, error) {
	move := rpsMoves[r.random.Intn(len(rpsMoves))]
	counters := rpsCounters[move]

	return &Challenge{
		Prompt:  fmt.Sprintf("I throw **%s**! Type the move that beats it.", move),
		Answers: counters,
		Reveal:  counters[0],
	}, nil
}
