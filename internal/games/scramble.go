package games

import (
	"fmt"

	"github.com/arcadebot/arcadebot/internal/random"
)

var scrambleWords = []string{
	"galaxy",
	"penguin",
	"volcano",
	"harmony",
	"lantern",
	"whisper",
	"journey",
	"crystal",
	"thunder",
	"blossom",
	"horizon",
	"mystery",
	"caravan",
	"diamond",
	"festival",
}

func newScrambleSource(rnd *random.Source) *poolSource {
	challenges := make([]Challenge, 0, len(scrambleWords))
	for _, word := range scrambleWords {
		challenges = append(challenges, Challenge{
			Prompt:  fmt.Sprintf("Unscramble this word: **%s**", rnd.ScrambleWord(word)),
			Answers: []string{word},
			Reveal:  word,
		})
	}

	return newPoolSource(rnd, challenges)
}
