package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const defaultTimeout = 5 * time.Second

// Config captures the settings of the Redis-backed session slot.
type Config struct {
	Addr string
	DB   int
	// SessionKey names the single slot; empty selects DefaultSessionKey.
	SessionKey string
	// Timeout bounds the connectivity probe on startup.
	Timeout time.Duration
}

// Open connects to Redis, verifies connectivity, and returns the session
// store bound to the configured slot key. The raw client is returned
// alongside it for the readiness probe and for shutdown.
func Open(ctx context.Context, cfg Config, log zerolog.Logger) (*SessionStore, *redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}

	return NewSessionStore(client, cfg.SessionKey, log), client, nil
}
