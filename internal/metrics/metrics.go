package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Action results
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

var (
	// ActionsTotal tracks roster and settings actions by action and result
	ActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rotation_actions_total",
			Help: "Total rotation actions by action and result",
		},
		[]string{"action", "result"},
	)

	// StateDecodeFailures tracks URL parameters that could not be decoded
	StateDecodeFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rotation_state_decode_failures_total",
			Help: "Total URL state parameters that failed to decode, by parameter",
		},
		[]string{"param"},
	)

	// SlashCommandsTotal tracks Slack slash commands by command type
	SlashCommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rotation_slash_commands_total",
			Help: "Total Slack slash commands handled, by command",
		},
		[]string{"command"},
	)
)

func RecordAction(action, result string) {
	ActionsTotal.WithLabelValues(action, result).Inc()
}

func RecordDecodeFailure(param string) {
	StateDecodeFailures.WithLabelValues(param).Inc()
}

func RecordSlashCommand(command string) {
	SlashCommandsTotal.WithLabelValues(command).Inc()
}
