package games

import (
	"fmt"

	"github.com/arcadebot/arcadebot/internal/random"
)

type triviaQuestion struct {
	question string
	answers  []string
}

var triviaPool = []triviaQuestion{
	{"What planet is known as the Red Planet?", []string{"mars"}},
	{"How many continents are there on Earth?", []string{"7", "seven"}},
	{"What is the largest ocean on Earth?", []string{"pacific", "pacific ocean", "the pacific ocean"}},
	{"Which gas do plants absorb from the atmosphere?", []string{"carbon dioxide", "co2"}},
	{"What is the chemical symbol for gold?", []string{"au"}},
	{"How many sides does a hexagon have?", []string{"6", "six"}},
	{"What is the capital city of Japan?", []string{"tokyo"}},
	{"Which animal is the tallest in the world?", []string{"giraffe"}},
	{"What is the hardest natural substance on Earth?", []string{"diamond"}},
	{"How many colors are in a rainbow?", []string{"7", "seven"}},
	{"What is the smallest prime number?", []string{"2", "two"}},
	{"Which planet has the most moons?", []string{"saturn"}},
	{"What do bees collect from flowers?", []string{"nectar", "pollen"}},
	{"What is the largest mammal?", []string{"blue whale", "the blue whale"}},
	{"In which country would you find the Eiffel Tower?", []string{"france"}},
}

func newTriviaSource(rnd *random.Source) *poolSource {
	challenges := make([]Challenge, 0, len(triviaPool))
	for _, q := range triviaPool {
		challenges = append(challenges, Challenge{
			Prompt:  fmt.Sprintf("Trivia time! %s", q.question),
			Answers: q.answers,
			Reveal:  q.answers[0],
		})
	}

	return newPoolSource(rnd, challenges)
}
