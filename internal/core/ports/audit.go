package ports

import (
	"context"
	"time"

	"github.com/bizlink/portal-api/internal/core/domain"
)

// Auth event types recorded by the audit pipeline.
const (
	AuthEventRegister      = "register"
	AuthEventLogin         = "login"
	AuthEventSimulateLogin = "simulate_login"
	AuthEventLogout        = "logout"
)

// AuthEvent describes one identity operation for the audit trail.
type AuthEvent struct {
	Type    string      `json:"type"`
	Email   string      `json:"email,omitempty"`
	Role    domain.Role `json:"role,omitempty"`
	Outcome string      `json:"outcome"` // "success" or a failure reason
	At      time.Time   `json:"at"`
}

// AuditRecorder persists auth events. Recording is best-effort: failures
// are logged by the caller and never block an identity operation.
type AuditRecorder interface {
	Record(ctx context.Context, event AuthEvent) error
}
