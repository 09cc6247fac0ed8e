package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/recordkit/pkg/config"
	"github.com/dmitrymomot/recordkit/pkg/httpserver"
	"github.com/dmitrymomot/recordkit/pkg/logger"
	"github.com/dmitrymomot/recordkit/pkg/mongo"
	"github.com/dmitrymomot/recordkit/pkg/pg"
	"github.com/dmitrymomot/recordkit/pkg/redis"
	"github.com/dmitrymomot/recordkit/pkg/requestid"
)

// Schema store backends selectable with SCHEMA_STORE.
const (
	storeMemory   = "memory"
	storeDir      = "dir"
	storeRedis    = "redis"
	storePostgres = "postgres"
	storeMongo    = "mongo"
	storeSQLite   = "sqlite"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Name     string `env:"APP_NAME" envDefault:"recordkit"`
	LogLevel string `env:"LOG_LEVEL"`

	Store        string        `env:"SCHEMA_STORE" envDefault:"dir"`
	SchemaDir    string        `env:"SCHEMA_DIR" envDefault:"./schemas"`
	Watch        bool          `env:"SCHEMA_WATCH" envDefault:"true"`
	CacheSize    int           `env:"SCHEMA_CACHE_SIZE" envDefault:"128"`
	CacheRefresh string        `env:"SCHEMA_CACHE_REFRESH"`
	StoreTimeout time.Duration `env:"SCHEMA_STORE_TIMEOUT" envDefault:"30s"`

	SQLitePath      string `env:"SQLITE_PATH" envDefault:"./data/recordkit.db"`
	MongoCollection string `env:"MONGODB_COLLECTION" envDefault:"record_schemas"`

	HTTP  httpserver.Config
	Redis redis.Config
	PG    pg.Config
	Mongo mongo.Config
}

func loadConfig() (appConfig, error) {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return cfg, err
	}
	switch cfg.Store {
	case storeMemory, storeDir, storeRedis, storePostgres, storeMongo, storeSQLite:
	default:
		return cfg, fmt.Errorf("unsupported SCHEMA_STORE %q", cfg.Store)
	}
	return cfg, nil
}

func newLogger(cfg appConfig, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithOutput(w),
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		lvl, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(lvl))
	}
	return logger.New(opts...), nil
}
