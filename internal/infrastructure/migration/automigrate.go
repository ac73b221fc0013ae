package migration

import (
	"fmt"

	"gorm.io/gorm"

	"labdesk/internal/infrastructure/persistence/models"
	"labdesk/internal/shared/logger"
)

// AutoMigrateModels lists every persistence model the schema is built from.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.RequestModel{},
		&models.ReplyModel{},
	}
}

// Run applies the schema to the connected database.
func Run(db *gorm.DB) error {
	log := logger.NewLogger().With("component", "migration")
	log.Infow("running auto-migration")

	if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	log.Infow("auto-migration completed")
	return nil
}
