package random

import (
	"math/rand"
	"strings"
	"time"
)

// Source provides the randomness used by challenge selection
type Source struct {
	random *rand.Rand
}

// Config for the random source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new random source
func New(cfg *Config) *Source {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Source{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a random int in [0, n)
func (s *Source) Intn(n int) int {
	if n < 1 {
		return 0
	}
	return s.random.Intn(n)
}

// Between returns a random int in [low, high] inclusive
func (s *Source) Between(low, high int) int {
	if high <= low {
		return low
	}
	return low + s.random.Intn(high-low+1)
}

// Pick returns a random element of items, or the empty string for an empty slice
func (s *Source) Pick(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[s.random.Intn(len(items))]
}

// ScrambleWord shuffles the letters of word until the result differs from the
// input. Words whose letters admit only one ordering are returned unchanged.
func (s *Source) ScrambleWord(word string) string {
	letters := strings.Split(word, "")
	if len(letters) < 2 {
		return word
	}

	for attempts := 0; attempts < 10; attempts++ {
		s.random.Shuffle(len(letters), func(i, j int) {
			letters[i], letters[j] = letters[j], letters[i]
		})
		if scrambled := strings.Join(letters, ""); scrambled != word {
			return scrambled
		}
	}

	return word
}
