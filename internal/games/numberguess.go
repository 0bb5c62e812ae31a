package games

import (
	"context"
	"fmt"
	"strconv"

	"github.com/arcadebot/arcadebot/internal/random"
)

const defaultMaxNumber = 100

// numberGuessSource produces a single secret-number challenge
type numberGuessSource struct {
	random *random.Source
	max    int
	served bool
}

func newNumberGuessSource(rnd *random.Source, max int) *numberGuessSource {
	if max < 2 {
		max = defaultMaxNumber
	}

	return &numberGuessSource{random: rnd, max: max}
}

// Next implements the Source interface
func (n *numberGuessSource) Next(_ context.Context) (*Challenge, error) {
	if n.served {
		return nil, ErrExhausted
	}
	n.served = true

	secret := n.random.Between(1, n.max)

	parity := "even"
	if secret%2 != 0 {
		parity = "odd"
	}

	lower := secret - secret%10
	if lower < 1 {
		lower = 1
	}
	upper := lower + 10
	if upper > n.max {
		upper = n.max
	}

	return &Challenge{
		Prompt: fmt.Sprintf("I'm thinking of a number between 1 and %d. First correct guess wins!", n.max),
		Answers: []string{
			strconv.Itoa(secret),
		},
		Reveal: strconv.Itoa(secret),
		Hints: []string{
			fmt.Sprintf("Hint: the number is %s.", parity),
			fmt.Sprintf("Hint: it's between %d and %d.", lower, upper),
		},
	}, nil
}
