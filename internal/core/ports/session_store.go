package ports

import (
	"context"

	"github.com/bizlink/portal-api/internal/core/domain"
)

// SessionStore holds the single active session slot.
//
// Contracts every backend must honour:
//   - Load before any Save returns (nil, nil).
//   - Save then Load round-trips: the loaded session is deep-equal to
//     what was saved.
//   - Clear then Load is (nil, nil) regardless of prior state, and Clear
//     is idempotent.
//   - A persisted value that cannot be decoded into a well-formed
//     session loads as (nil, nil): corruption degrades to "logged out",
//     it never reaches callers as an error.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session) error
	Load(ctx context.Context) (*domain.Session, error)
	Clear(ctx context.Context) error
}
