package kvstore

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/migration"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
)

const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
	DriverRedis  = "redis"
)

// CloseFunc releases whatever the backend holds open.
type CloseFunc func() error

func noopClose() error { return nil }

// Open builds the backend selected by cfg.Driver. SQL backends are migrated
// to the latest schema before use.
func Open(ctx context.Context, cfg *config.StorageConfig, log logger.Interface) (Store, CloseFunc, error) {
	log = log.With("driver", cfg.Driver)

	switch cfg.Driver {
	case DriverMemory:
		return NewMemoryStore(), noopClose, nil

	case DriverFile:
		store, err := NewFileStore(cfg.File.Dir, log)
		if err != nil {
			return nil, nil, err
		}
		log.Infow("file store ready", "dir", cfg.File.Dir)
		return store, noopClose, nil

	case DriverSQLite, DriverMySQL:
		db, err := database.Open(cfg.Driver, &cfg.Database, log)
		if err != nil {
			return nil, nil, err
		}
		strategy, err := migration.NewStrategy(cfg.Migration, cfg.Driver)
		if err != nil {
			database.Close(db)
			return nil, nil, err
		}
		if err := strategy.Migrate(db.WithContext(ctx)); err != nil {
			database.Close(db)
			return nil, nil, err
		}
		log.Infow("sql store ready", "migration", strategy.GetName())
		return NewGormStore(db), func() error { return database.Close(db) }, nil

	case DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.GetAddr(), err)
		}
		log.Infow("redis store ready", "addr", cfg.Redis.GetAddr(), "prefix", cfg.Redis.Prefix)
		return NewRedisStore(client, cfg.Redis.Prefix), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}
