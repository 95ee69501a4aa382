package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/bizlink/portal-api/internal/api/metrics"
	"github.com/bizlink/portal-api/internal/core/domain"
)

// DefaultSessionKey is the well-known key of the single session slot.
const DefaultSessionKey = "portal:session"

// SessionStore persists the active session as a JSON value under one
// fixed key. A payload that fails to decode into a well-formed session
// is deleted and reported as absent, never as an error.
type SessionStore struct {
	client *redis.Client
	key    string
	log    zerolog.Logger
}

// NewSessionStore wraps a Redis client. An empty key selects
// DefaultSessionKey.
func NewSessionStore(client *redis.Client, key string, log zerolog.Logger) *SessionStore {
	if key == "" {
		key = DefaultSessionKey
	}
	return &SessionStore{client: client, key: key, log: log}
}

func (s *SessionStore) Save(ctx context.Context, session *domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	// Sessions have no TTL: they live until an explicit logout.
	if err := s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	metrics.SessionsActive.Set(1)
	return nil
}

func (s *SessionStore) Load(ctx context.Context) (*domain.Session, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		metrics.SessionsActive.Set(0)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	sess, ok := decodeSession(raw)
	if !ok {
		metrics.SessionCorruptionTotal.Inc()
		s.log.Warn().Str("key", s.key).Msg("corrupt persisted session discarded")
		_ = s.client.Del(ctx, s.key).Err()
		metrics.SessionsActive.Set(0)
		return nil, nil
	}
	// The gauge follows the store, not the handlers: after a restart the
	// first read restores it to what Redis actually holds.
	metrics.SessionsActive.Set(1)
	return sess, nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	metrics.SessionsActive.Set(0)
	return nil
}

// decodeSession parses a persisted payload. The bool result is the only
// failure signal: anything unreadable or shape-invalid maps to absent.
func decodeSession(raw []byte) (*domain.Session, bool) {
	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, false
	}
	if !sess.Wellformed() {
		return nil, false
	}
	return &sess, true
}
