package config

import (
	"storefront/internal/logging"
	"storefront/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	log := logging.Component("migrate")

	if err := db.AutoMigrate(&models.StorageEntry{}); err != nil {
		log.Error().Err(err).Msg("Failed to migrate database schema")
		return err
	}

	log.Info().Msg("Database migrations completed successfully")
	return nil
}

// ResetAndMigrate drops the storage table, wiping the cart, the ledger, the
// session and every registered account.
func ResetAndMigrate(db *gorm.DB) error {
	log := logging.Component("migrate")

	if err := db.Migrator().DropTable(&models.StorageEntry{}); err != nil {
		log.Error().Err(err).Msg("Failed to drop tables")
		return err
	}
	log.Info().Msg("Storage table dropped")

	return Migrate(db)
}
