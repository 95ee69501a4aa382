package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Backend names accepted by SessionBackend and CatalogBackend.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SessionBackend selects where the single session slot lives:
	// "memory" (default) or "redis".
	SessionBackend string `env:"SESSION_BACKEND, default=memory"`
	// CatalogBackend selects the users catalog store: "memory" or "mongo".
	CatalogBackend string `env:"CATALOG_BACKEND, default=memory"`
	// SessionKey is the well-known key of the persisted session slot.
	SessionKey string `env:"SESSION_KEY, default=portal:session"`

	// SeedUsers loads the fixed demo catalog at startup.
	SeedUsers bool `env:"SEED_USERS, default=true"`
	// SimulatedLatency delays identity operations to mimic the original
	// mock provider. Zero disables it.
	SimulatedLatency time.Duration `env:"SIMULATED_LATENCY, default=0"`

	AuditWorkers int `env:"AUDIT_WORKERS, default=4"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=business_portal"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
