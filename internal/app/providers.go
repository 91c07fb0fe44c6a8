package app

import (
	"context"
	"time"

	"github.com/carousell/ct-go/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"github.com/imagine-ke/imagine-api/internal/config"
)

// newMongoDatabase returns the shared database handle, or nil when no
// DATABASE_URL is configured. A missing or unreachable store must not fail
// startup: read endpoints degrade to empty results and /seed reports 500.
func newMongoDatabase(lc fx.Lifecycle, cfg *config.Config) (*mongo.Database, error) {
	log := logger.MustNamed("mongo")

	if cfg.Database.URL == "" {
		log.Warnw("DATABASE_URL not set, running without a document store")
		return nil, nil
	}

	opts := options.Client().
		SetAppName("imagine-api").
		ApplyURI(cfg.Database.URL).
		SetTimeout(10 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Warnw("mongo connect failed, running without a document store", "error", err)
		return nil, nil
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx, nil); err != nil {
				// keep serving; store calls surface their own errors
				log.Warnw("mongo ping failed", "error", err)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	return client.Database(cfg.Database.Name), nil
}
