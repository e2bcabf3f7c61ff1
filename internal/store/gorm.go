package store

import (
	"context"
	"errors"

	"storefront/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore keeps documents in a single table of a relational database.
// The table is created by config.Migrate.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (g *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry models.StorageEntry
	err := g.DB.WithContext(ctx).Where("storage_key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(entry.Value), nil
}

func (g *GormStore) Set(ctx context.Context, key string, value []byte) error {
	entry := models.StorageEntry{Key: key, Value: string(value)}
	return g.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (g *GormStore) Delete(ctx context.Context, key string) error {
	return g.DB.WithContext(ctx).Where("storage_key = ?", key).Delete(&models.StorageEntry{}).Error
}

func (g *GormStore) Close() error {
	sqlDB, err := g.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
