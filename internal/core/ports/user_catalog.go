package ports

import (
	"context"

	"github.com/bizlink/portal-api/internal/core/domain"
)

// UserCatalog persists the ordered list of portal accounts.
type UserCatalog interface {
	// FindByEmail returns domain.ErrUserNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FirstByRole returns the earliest-created account with the given
	// role, or domain.ErrNoSeedUser when none exists.
	FirstByRole(ctx context.Context, role domain.Role) (*domain.User, error)
	// Create appends a new account. domain.ErrDuplicateUser on email collision.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// List returns a snapshot of the catalog in insertion order.
	List(ctx context.Context) ([]domain.User, error)
}
