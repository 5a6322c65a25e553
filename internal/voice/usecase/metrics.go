package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"voice-task-tracker/internal/voice"
)

var (
	parsedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voice_commands_parsed_total",
			Help: "Transcripts interpreted, by resulting priority and status",
		},
		[]string{"priority", "status"},
	)

	rejectedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "voice_commands_rejected_total",
			Help: "Transcripts rejected as empty",
		},
	)

	dueDateTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "voice_commands_with_due_date_total",
			Help: "Transcripts that resolved to a due date",
		},
	)

	autoCreateTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "voice_commands_auto_create_total",
			Help: "Transcripts that asked for immediate creation",
		},
	)
)

func observe(cmd voice.ParsedCommand) {
	parsedTotal.WithLabelValues(string(cmd.Priority), string(cmd.Status)).Inc()
	if cmd.DueDate != nil {
		dueDateTotal.Inc()
	}
	if cmd.AutoCreate {
		autoCreateTotal.Inc()
	}
}
