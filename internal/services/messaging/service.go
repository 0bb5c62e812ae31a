package messaging

import (
	"context"
	"errors"
	"fmt"
)

// service implements the Service interface
type service struct {
	random phrasePicker
}

// phrasePicker is the slice of the random source the service needs
type phrasePicker interface {
	Pick(items []string) string
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Random == nil {
		return nil, errors.New("random source cannot be nil")
	}

	return &service{
		random: cfg.Random,
	}, nil
}

// GetWinnerMessage returns a congratulation line for a round winner
func (s *service) GetWinnerMessage(_ context.Context, input *GetWinnerMessageInput) (*GetWinnerMessageOutput, error) {
	templates := []string{
		"🎉 **%s** takes the round with **%s**!",
		"⚡ Lightning fast! **%s** got it: **%s**.",
		"🏅 **%s** nailed it! The answer was **%s**.",
		"👑 Bow to **%s**, who answered **%s** first.",
		"🎯 Bullseye! **%s** wins with **%s**.",
	}

	return &GetWinnerMessageOutput{
		Message: fmt.Sprintf(s.random.Pick(templates), input.Username, input.Answer),
	}, nil
}

// GetTimeoutMessage returns a line for a round nobody answered in time
func (s *service) GetTimeoutMessage(_ context.Context, input *GetTimeoutMessageInput) (*GetTimeoutMessageOutput, error) {
	templates := []string{
		"⏰ Time's up! The answer was **%s**.",
		"⏰ Nobody got it! It was **%s**. Better luck next round.",
		"⏰ Crickets... The answer you were all looking for: **%s**.",
		"⏰ Round over! **%s** was the answer. Too slow, folks!",
	}

	return &GetTimeoutMessageOutput{
		Message: fmt.Sprintf(s.random.Pick(templates), input.Reveal),
	}, nil
}

// GetJoinMessage returns a line for a player joining a join-gated game
func (s *service) GetJoinMessage(_ context.Context, input *GetJoinMessageInput) (*GetJoinMessageOutput, error) {
	templates := []string{
		"**%s** is in! Get ready.",
		"A new challenger! Welcome, **%s**.",
		"**%s** joined the fray. May the odds be with you.",
		"Look who showed up! **%s** is playing.",
	}

	return &GetJoinMessageOutput{
		Message: fmt.Sprintf(s.random.Pick(templates), input.Username),
	}, nil
}

// GetGameStartedMessage returns a line announcing a fresh session
func (s *service) GetGameStartedMessage(_ context.Context, input *GetGameStartedMessageInput) (*GetGameStartedMessageOutput, error) {
	templates := []string{
		"**%s** started a game of **%s**! First round coming up.",
		"Game on! **%s** kicked off **%s**.",
		"**%s** wants to play **%s**. Who's in?",
	}

	return &GetGameStartedMessageOutput{
		Message: fmt.Sprintf(s.random.Pick(templates), input.HostName, input.GameLabel),
	}, nil
}
