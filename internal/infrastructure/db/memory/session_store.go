package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/bizlink/portal-api/internal/api/metrics"
	"github.com/bizlink/portal-api/internal/core/domain"
)

// SessionStore keeps the single session slot in process memory. The slot
// is mutex-guarded: the original runtime was single-threaded, but HTTP
// handlers are not, so concurrent Save/Clear must not race.
type SessionStore struct {
	mu   sync.RWMutex
	slot []byte // JSON-encoded session, nil when empty
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (s *SessionStore) Save(_ context.Context, session *domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.slot = raw
	s.mu.Unlock()
	metrics.SessionsActive.Set(1)
	return nil
}

func (s *SessionStore) Load(_ context.Context) (*domain.Session, error) {
	s.mu.RLock()
	raw := s.slot
	s.mu.RUnlock()
	if raw == nil {
		return nil, nil
	}

	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil || !sess.Wellformed() {
		// Corrupt slot degrades to "logged out".
		metrics.SessionsActive.Set(0)
		return nil, nil
	}
	return &sess, nil
}

func (s *SessionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	s.slot = nil
	s.mu.Unlock()
	metrics.SessionsActive.Set(0)
	return nil
}

// Corrupt overwrites the slot with an arbitrary payload. Test hook for
// the fail-open decode path.
func (s *SessionStore) Corrupt(raw []byte) {
	s.mu.Lock()
	s.slot = raw
	s.mu.Unlock()
}
