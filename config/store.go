package config

import (
	"context"
	"fmt"

	"storefront/internal/store"
)

// OpenStore builds the storage backend selected by StoreDriver.
// The gorm driver migrates its table before returning.
func OpenStore(ctx context.Context, cfg *Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case DriverMemory:
		return store.NewMemoryStore(), nil
	case DriverFile:
		return store.NewFileStore(cfg.StoreDir)
	case DriverGorm:
		db, err := OpenDatabase(cfg.StoreDSN)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		if err := Migrate(db); err != nil {
			return nil, err
		}
		return store.NewGormStore(db), nil
	case DriverRedis:
		return store.OpenRedisStore(ctx, cfg.RedisURL, cfg.RedisPrefix)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
