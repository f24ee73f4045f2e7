package database

import (
	"log"

	"github.com/Temur01/restaurant-server/config"
	"github.com/Temur01/restaurant-server/models"
	"github.com/Temur01/restaurant-server/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var defaultCategories = []string{
	"Milliy taomlar",
	"Go'sht taomlar",
	"Sho'rvalar",
	"Non mahsulotlari",
	"Salatlar",
	"Ichimliklar",
}

// Connect opens the connection pool and runs migrations. The returned
// handle is passed to the repositories at construction time; nothing
// else holds it.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.Admin{},
		&models.Category{},
		&models.Meal{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// Seed inserts the default categories and the bootstrap admin. Both are
// idempotent: existing rows are left untouched, so re-running at every
// boot is safe.
func Seed(db *gorm.DB, cfg *config.Config) error {
	for _, name := range defaultCategories {
		var category models.Category
		if err := db.FirstOrCreate(&category, models.Category{Name: name}).Error; err != nil {
			return err
		}
	}

	if cfg.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	var count int64
	if err := db.Model(&models.Admin{}).Where("username = ?", cfg.AdminUsername).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	return db.Create(&models.Admin{Username: cfg.AdminUsername, Password: hashed}).Error
}
