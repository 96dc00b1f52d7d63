package postgres

import (
	"log"

	"github.com/horotrade/horotrade-listing-service/internal/config"
	"github.com/horotrade/horotrade-listing-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.ListingConfig) *gorm.DB {
	dsn := cfg.ListingDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.SellerProfileModel{}, &models.ListingModel{}, &models.TransactionModel{}, &models.PlatformSettingsModel{})

	return db
}
