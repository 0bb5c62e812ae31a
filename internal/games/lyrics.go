package games

import (
	"fmt"

	"github.com/arcadebot/arcadebot/internal/random"
)

type lyricLine struct {
	line    string
	answers []string
}

var lyricsPool = []lyricLine{
	{"Is this the real life? Is this just fantasy?", []string{"bohemian rhapsody"}},
	{"Hello darkness, my old friend", []string{"the sound of silence", "sound of silence"}},
	{"We don't need no education", []string{"another brick in the wall"}},
	{"I see a little silhouetto of a man", []string{"bohemian rhapsody"}},
	{"Just a small town girl, livin' in a lonely world", []string{"don't stop believin", "don't stop believin'", "dont stop believin"}},
	{"Buddy, you're a boy, make a big noise", []string{"we will rock you"}},
	{"It's close to midnight and something evil's lurking in the dark", []string{"thriller"}},
	{"I've been running through the jungle, I've been crying with the wolves", []string{"jungle"}},
	{"Cause baby, you're a firework", []string{"firework"}},
	{"I'm beggin', beggin' you", []string{"beggin", "beggin'"}},
}

func newLyricsSource(rnd *random.Source) *poolSource {
	challenges := make([]Challenge, 0, len(lyricsPool))
	for _, l := range lyricsPool {
		challenges = append(challenges, Challenge{
			Prompt:  fmt.Sprintf("Name the song: “%s”", l.line),
			Answers: l.answers,
			Reveal:  l.answers[0],
		})
	}

	return newPoolSource(rnd, challenges)
}
