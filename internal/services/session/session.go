package session

import (
	"context"
	"sync"

	"github.com/looplab/fsm"
	log "github.com/sirupsen/logrus"

	"github.com/arcadebot/arcadebot/internal/games"
	"github.com/arcadebot/arcadebot/internal/models"
)

const (
	eventAnnounce = "announce"
	eventOpen     = "open"
	eventResolve  = "resolve"
	eventEnd      = "end"
)

// guessEvent is one winning answer handed from a chat callback to the loop
type guessEvent struct {
	messageID string
	userID    string
	username  string
	answer    string
}

// vote is one recorded button vote, in arrival order
type vote struct {
	userID   string
	username string
	option   string
}

// runtime is the live state behind one session. The mutex guards the winner
// decision and the per-user bookkeeping the decision reads; the round loop
// goroutine owns everything else.
type runtime struct {
	model   *models.GameSession
	rules   games.Rules
	source  games.Source
	machine *fsm.FSM

	mu           sync.Mutex
	challenge    *games.Challenge
	roundOpen    bool
	participants map[string]struct{}
	wins         map[string]int
	votes        []vote
	voted        map[string]struct{}

	winnerCh chan guessEvent
	stopCh   chan struct{}
	stopOnce sync.Once
}

func newRuntime(model *models.GameSession, rules games.Rules, source games.Source) *runtime {
	rt := &runtime{
		model:        model,
		rules:        rules,
		source:       source,
		participants: make(map[string]struct{}),
		wins:         make(map[string]int),
		winnerCh:     make(chan guessEvent, 1),
		stopCh:       make(chan struct{}),
	}

	rt.machine = fsm.NewFSM(
		string(models.SessionStateIdle),
		fsm.Events{
			{Name: eventAnnounce, Src: []string{string(models.SessionStateIdle), string(models.SessionStateRoundResolved)}, Dst: string(models.SessionStateAnnounced)},
			{Name: eventOpen, Src: []string{string(models.SessionStateAnnounced)}, Dst: string(models.SessionStateAwaitingAnswer)},
			{Name: eventResolve, Src: []string{string(models.SessionStateAwaitingAnswer)}, Dst: string(models.SessionStateRoundResolved)},
			{Name: eventEnd, Src: []string{
				string(models.SessionStateIdle),
				string(models.SessionStateAnnounced),
				string(models.SessionStateAwaitingAnswer),
				string(models.SessionStateRoundResolved),
			}, Dst: string(models.SessionStateEnded)},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				rt.model.State = models.SessionState(e.Dst)
			},
		},
	)

	return rt
}

// transition fires a state machine event. A refused transition is a
// programming error, logged loudly rather than silently swallowed.
func (rt *runtime) transition(event string) {
	if err := rt.machine.Event(context.Background(), event); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"channel_id": rt.model.ChannelID,
			"event":      event,
			"state":      rt.machine.Current(),
		}).Error("refused session state transition")
	}
}

// signalStop asks the round loop to wind down. Safe to call more than once.
func (rt *runtime) signalStop() {
	rt.stopOnce.Do(func() {
		close(rt.stopCh)
	})
}

// openRound publishes the new challenge to the chat callbacks
func (rt *runtime) openRound(challenge *games.Challenge) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	rt.challenge = challenge
	rt.roundOpen = true
	rt.votes = nil
	rt.voted = make(map[string]struct{})
}

// closeRound shuts the answer window and snapshots the vote tally. A guess
// consumed between the deadline's drain and this close has already been
// promised to its author, so it is returned here as the round winner.
func (rt *runtime) closeRound() ([]vote, *guessEvent) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	rt.roundOpen = false
	votes := rt.votes
	rt.votes = nil

	select {
	case ev := <-rt.winnerCh:
		return votes, &ev
	default:
	}

	return votes, nil
}

// recordWin bumps the winner's session counter and returns the new count
func (rt *runtime) recordWin(userID string) int {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	rt.wins[userID]++
	return rt.wins[userID]
}
