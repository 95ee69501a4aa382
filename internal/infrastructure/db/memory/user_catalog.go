package memory

import (
	"context"
	"sync"

	"github.com/bizlink/portal-api/internal/core/domain"
)

// UserCatalog is the in-memory account list. Insertion order is
// preserved so FirstByRole is deterministic (seed users come first).
type UserCatalog struct {
	mu    sync.RWMutex
	users []domain.User
}

func NewUserCatalog() *UserCatalog {
	return &UserCatalog{}
}

func (c *UserCatalog) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.users {
		if c.users[i].Email == email {
			u := c.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (c *UserCatalog) FirstByRole(_ context.Context, role domain.Role) (*domain.User, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.users {
		if c.users[i].Role == role {
			u := c.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrNoSeedUser
}

func (c *UserCatalog) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.users {
		if c.users[i].Email == user.Email {
			return nil, domain.ErrDuplicateUser
		}
	}
	c.users = append(c.users, *user)
	u := *user
	return &u, nil
}

func (c *UserCatalog) List(_ context.Context) ([]domain.User, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snapshot := make([]domain.User, len(c.users))
	copy(snapshot, c.users)
	return snapshot, nil
}
