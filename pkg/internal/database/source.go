package database

import (
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// NewGorm opens the primary database connection described by the
// database.dsn setting. The handle is passed down to the HTTP layer and
// services explicitly rather than kept as a package global.
func NewGorm() (*gorm.DB, error) {
	dsn := viper.GetString("database.dsn")

	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix: viper.GetString("database.prefix"),
		},
		Logger: logger.Default.LogMode(logger.Silent),
	})
}
