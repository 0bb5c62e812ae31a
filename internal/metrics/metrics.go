package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the bot's Prometheus instruments
type Metrics struct {
	ActiveSessions  prometheus.Gauge
	RoundsPlayed    *prometheus.CounterVec
	WinsRecorded    *prometheus.CounterVec
	Escalations     prometheus.Counter
	AICalls         *prometheus.CounterVec
	CommandsHandled *prometheus.CounterVec
}

// New creates the instrument set and registers it on the given registerer
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "arcadebot",
			Name:      "active_sessions",
			Help:      "Number of game sessions currently running.",
		}),
		RoundsPlayed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arcadebot",
			Name:      "rounds_played_total",
			Help:      "Rounds resolved, by game kind.",
		}, []string{"game_kind"}),
		WinsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arcadebot",
			Name:      "wins_recorded_total",
			Help:      "Round wins recorded, by game kind.",
		}, []string{"game_kind"}),
		Escalations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "arcadebot",
			Name:      "escalations_total",
			Help:      "Leaderboard-full escalation sequences run.",
		}),
		AICalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arcadebot",
			Name:      "ai_calls_total",
			Help:      "Calls to the inference endpoint, by operation and outcome.",
		}, []string{"operation", "outcome"}),
		CommandsHandled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arcadebot",
			Name:      "commands_handled_total",
			Help:      "Slash commands handled, by command name.",
		}, []string{"command"}),
	}

	reg.MustRegister(
		m.ActiveSessions,
		m.RoundsPlayed,
		m.WinsRecorded,
		m.Escalations,
		m.AICalls,
		m.CommandsHandled,
	)

	return m
}
