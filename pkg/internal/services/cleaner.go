package services

import (
	"time"

	"github.com/emberlight/chronicle/pkg/internal/database"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DoAutoDatabaseCleanup hard-prunes rows that were soft-deleted a while ago,
// letting the database-level cascade and nullify constraints settle.
func DoAutoDatabaseCleanup(source *gorm.DB) {
	deadline := time.Now().Add(-30 * 24 * time.Hour)
	log.Debug().Time("deadline", deadline).Msg("Now cleaning up entire database...")

	var count int64
	for _, model := range database.AutoMaintainRange {
		tx := source.Unscoped().
			Where("deleted_at IS NOT NULL AND deleted_at <= ?", deadline).
			Delete(model)
		if tx.Error != nil {
			log.Error().Err(tx.Error).Msg("An error occurred when running auto database cleanup...")
			continue
		}
		count += tx.RowsAffected
	}

	log.Debug().Int64("affected", count).Msg("Clean up entire database accomplished.")
}
