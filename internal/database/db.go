package database

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/careerport/job-service/internal/config"
	"github.com/careerport/job-service/internal/models"
)

func Connect(cfg config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Info("Database connection established")

	if err := db.AutoMigrate(&models.Job{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}
