package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shopsync-backend/config"
	"shopsync-backend/models"
)

var DB *gorm.DB

// Connect opens Postgres for the activity feed. Optional: with no
// DATABASE_URL the service runs without a feed.
func Connect() {
	if config.AppConfig.DatabaseURL == "" {
		log.Println("⚠️  DATABASE_URL not set, activity feed disabled")
		return
	}

	var err error
	DB, err = gorm.Open(postgres.Open(config.AppConfig.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("✅ Database connected successfully")

	if err := DB.AutoMigrate(&models.Activity{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database migrated successfully")
}
