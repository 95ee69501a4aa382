package ports

import (
	"context"

	"github.com/bizlink/portal-api/internal/core/domain"
)

// RegisterInput carries the fields collected by the registration screen.
// The account email is derived from DisplayName, never supplied directly.
type RegisterInput struct {
	DisplayName      string
	PhoneNumber      string
	Password         string
	BusinessCategory string
	Role             domain.Role
	AvatarRef        string
}

// Credentials is the login form payload.
type Credentials struct {
	Email    string
	Password string
}

// AuthResult is the structured outcome of every identity operation.
// Domain failures (bad phone, duplicate account, missing seed user) are
// reported here with Success=false and a user-facing Message; they are
// never surfaced as Go errors.
type AuthResult struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user,omitempty"`
	Message string       `json:"message"`

	// Reason holds the sentinel behind a failed result so transport
	// layers can pick a status code. Not part of the wire shape.
	Reason error `json:"-"`
}

// IdentityService is the mock identity provider. Methods return a non-nil
// AuthResult for every domain outcome; the error return is reserved for
// infrastructure failure (catalog or session storage unreachable).
type IdentityService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, creds Credentials) (*AuthResult, error)
	SimulateLogin(ctx context.Context, role domain.Role) (*AuthResult, error)
	Logout(ctx context.Context) (*AuthResult, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	CurrentSession(ctx context.Context) (*domain.Session, error)
}
