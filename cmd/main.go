package main

import (
	"log"

	"github.com/Temur01/restaurant-server/config"
	"github.com/Temur01/restaurant-server/controllers"
	"github.com/Temur01/restaurant-server/database"
	"github.com/Temur01/restaurant-server/repositories"
	"github.com/Temur01/restaurant-server/routes"
	"github.com/Temur01/restaurant-server/storage"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Seed(db, cfg); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	uploads, err := storage.FromConfig(cfg)
	if err != nil {
		log.Fatalf("Image storage init failed: %v", err)
	}

	ctl := routes.Controllers{
		Auth:       controllers.NewAuthController(repositories.NewAdminRepository(db), cfg.JWTSecret, cfg.IsProduction()),
		Categories: controllers.NewCategoryController(repositories.NewCategoryRepository(db), cfg.IsProduction()),
		Meals:      controllers.NewMealController(repositories.NewMealRepository(db), uploads, cfg.IsProduction()),
	}

	r := routes.SetupRouter(cfg, ctl)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
