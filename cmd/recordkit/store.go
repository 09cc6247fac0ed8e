package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/recordkit/pkg/httpserver"
	"github.com/dmitrymomot/recordkit/pkg/logger"
	"github.com/dmitrymomot/recordkit/pkg/mongo"
	"github.com/dmitrymomot/recordkit/pkg/pg"
	"github.com/dmitrymomot/recordkit/pkg/redis"
	"github.com/dmitrymomot/recordkit/pkg/registry"
)

// backend is an opened schema store with its readiness checks.
type backend struct {
	store  registry.Store
	checks map[string]httpserver.Check
	close  func()
}

func openStore(ctx context.Context, cfg appConfig, log *slog.Logger) (*backend, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	defer cancel()

	b := &backend{checks: make(map[string]httpserver.Check), close: func() {}}
	log = log.With(logger.Store(cfg.Store))

	switch cfg.Store {
	case storeMemory:
		b.store = registry.NewMemoryStore()

	case storeDir:
		s, err := registry.NewDirStore(cfg.SchemaDir, registry.WithDirLogger(log))
		if err != nil {
			return nil, err
		}
		b.store = s

	case storeRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		b.store = registry.NewRedisStore(client, cfg.Redis.KeyPrefix)
		b.checks["redis"] = redis.Healthcheck(client)
		b.close = func() { _ = client.Close() }

	case storePostgres:
		pool, err := pg.Connect(ctx, cfg.PG)
		if err != nil {
			return nil, err
		}
		if err := registry.MigratePostgres(ctx, pool, cfg.PG.MigrationsTable, log); err != nil {
			pool.Close()
			return nil, err
		}
		b.store = registry.NewPostgresStore(pool)
		b.checks["postgres"] = pg.Healthcheck(pool)
		b.close = pool.Close

	case storeMongo:
		client, err := mongo.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		b.store = registry.NewMongoStore(client.Database(cfg.Mongo.Database), cfg.MongoCollection)
		b.checks["mongo"] = mongo.Healthcheck(client)
		b.close = func() { _ = client.Disconnect(context.Background()) }

	case storeSQLite:
		s, err := registry.OpenSQLiteStore(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		b.store = s
		b.checks["sqlite"] = s.Ping
		b.close = func() { _ = s.Close() }

	default:
		return nil, errors.New("unsupported schema store " + cfg.Store)
	}

	log.InfoContext(ctx, "schema store ready")
	return b, nil
}

// newRegistry wraps the backend store and starts the optional cache
// maintenance: directory watching and scheduled purges.
func newRegistry(ctx context.Context, cfg appConfig, b *backend, log *slog.Logger) (*registry.Registry, error) {
	reg := registry.New(b.store,
		registry.WithCacheSize(cfg.CacheSize),
		registry.WithLogger(log),
	)
	if dir, ok := b.store.(*registry.DirStore); ok && cfg.Watch {
		if err := dir.Watch(ctx, func(name string) { reg.Invalidate(name) }); err != nil {
			return nil, err
		}
	}
	if cfg.CacheRefresh != "" {
		if err := reg.RefreshOn(ctx, cfg.CacheRefresh); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
