package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	redislib "github.com/redis/go-redis/v9"
	mongolib "go.mongodb.org/mongo-driver/mongo"

	"github.com/bizlink/portal-api/internal/api"
	"github.com/bizlink/portal-api/internal/core/domain"
	"github.com/bizlink/portal-api/internal/core/ports"
	"github.com/bizlink/portal-api/internal/core/service"
	"github.com/bizlink/portal-api/internal/infrastructure/config"
	"github.com/bizlink/portal-api/internal/infrastructure/db/memory"
	"github.com/bizlink/portal-api/internal/infrastructure/db/mongo"
	"github.com/bizlink/portal-api/internal/infrastructure/db/redis"
	"github.com/bizlink/portal-api/internal/infrastructure/queue"
	"github.com/bizlink/portal-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Users catalog ---
	var (
		catalog ports.UserCatalog
		mongoDB *mongolib.Database
	)
	switch cfg.CatalogBackend {
	case config.BackendMongo:
		conn, err := mongo.Open(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() { _ = conn.Close(context.Background()) }()

		catalog = mongo.NewUserCatalog(conn.DB)
		mongoDB = conn.DB
	default:
		catalog = memory.NewUserCatalog()
	}

	// --- Session store ---
	var (
		sessions ports.SessionStore
		rdb      *redislib.Client
	)
	switch cfg.SessionBackend {
	case config.BackendRedis:
		store, client, err := redis.Open(ctx, redis.Config{
			Addr:       cfg.Redis.Addr,
			DB:         cfg.Redis.DB,
			SessionKey: cfg.SessionKey,
		}, logger.For("session_store"))
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = client.Close() }()

		sessions = store
		rdb = client
	default:
		sessions = memory.NewSessionStore()
	}

	if cfg.SeedUsers {
		seedCatalog(ctx, catalog)
	}

	// --- Audit pipeline ---
	var recorder ports.AuditRecorder
	if mongoDB != nil {
		recorder = mongo.NewAuditRepository(mongoDB)
	} else {
		recorder = queue.NewLogRecorder(logger.For("audit"))
	}
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, recorder, logger.For("audit"))
	dispatcher.Start(ctx)

	identity := service.NewIdentityService(
		catalog,
		sessions,
		dispatcher,
		cfg.SimulatedLatency,
		logger.For("identity"),
	)

	e := api.NewRouter(api.Deps{
		Identity: identity,
		Sessions: sessions,
		Mongo:    mongoDB,
		Redis:    rdb,
		Log:      log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().
		Str("port", cfg.Port).
		Str("session_backend", cfg.SessionBackend).
		Str("catalog_backend", cfg.CatalogBackend).
		Msg("portal api started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// seedCatalog loads the fixed demo accounts, skipping any that already
// exist so restarts are safe.
func seedCatalog(ctx context.Context, catalog ports.UserCatalog) {
	log := logger.For("seed")
	for _, u := range domain.SeedUsers() {
		user := u
		if _, err := catalog.Create(ctx, &user); err != nil {
			if err == domain.ErrDuplicateUser {
				continue
			}
			log.Warn().Err(err).Str("email", u.Email).Msg("seed user not created")
			continue
		}
		log.Debug().Str("email", u.Email).Str("role", string(u.Role)).Msg("seed user created")
	}
}
