package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings of the portal's MongoDB backend, which
// holds the user catalog and the auth event log.
type Config struct {
	URI      string
	Database string
	// Timeout bounds connect, ping, and index bootstrap on startup.
	Timeout time.Duration
}

// Conn bundles the client with the portal database so callers shut down
// and probe through one handle.
type Conn struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// Open establishes the MongoDB connection, verifies it with a ping, and
// creates the unique-email index the user catalog relies on for
// duplicate registration detection.
func Open(ctx context.Context, cfg Config) (*Conn, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	conn := &Conn{Client: client, DB: client.Database(cfg.Database)}
	if err := NewUserCatalog(conn.DB).EnsureIndexes(connectCtx); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, fmt.Errorf("mongo indexes: %w", err)
	}
	return conn, nil
}

// Close disconnects the underlying client.
func (c *Conn) Close(ctx context.Context) error {
	return c.Client.Disconnect(ctx)
}
