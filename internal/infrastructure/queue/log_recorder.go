package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bizlink/portal-api/internal/core/ports"
)

// LogRecorder writes audit events to the structured log. Used when no
// MongoDB catalog is configured.
type LogRecorder struct {
	log zerolog.Logger
}

func NewLogRecorder(log zerolog.Logger) *LogRecorder {
	return &LogRecorder{log: log}
}

func (r *LogRecorder) Record(_ context.Context, event ports.AuthEvent) error {
	r.log.Info().
		Str("event_type", event.Type).
		Str("email", event.Email).
		Str("role", string(event.Role)).
		Str("outcome", event.Outcome).
		Time("at", event.At).
		Msg("auth event")
	return nil
}
