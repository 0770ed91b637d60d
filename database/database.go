package database

import (
	"fmt"
	"log"

	"portfolio-app/config"
	"portfolio-app/internal/domain/artworks"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB connects to Postgres and migrates the domain models. Returns false
// when DB_URL is not set: the app then serves reads from sample data and the
// admin write API reports the store as unconfigured.
func InitDB() bool {
	if !config.StoreConfigured() {
		log.Println("DB_URL not set, running in sample-data mode")
		return false
	}

	db, err := gorm.Open(postgres.Open(config.DB_URL), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	// Required for UUID generation
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		&artworks.Artwork{},
		&artworks.GalleryImage{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
	return true
}
