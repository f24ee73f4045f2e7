package routes

import (
	"net/http"

	"github.com/Temur01/restaurant-server/config"
	"github.com/Temur01/restaurant-server/controllers"
	_ "github.com/Temur01/restaurant-server/docs"
	"github.com/Temur01/restaurant-server/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Controllers struct {
	Auth       *controllers.AuthController
	Categories *controllers.CategoryController
	Meals      *controllers.MealController
}

func SetupRouter(cfg *config.Config, ctl Controllers) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With", "Accept"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	if cfg.IsProduction() {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	r.Use(cors.New(corsCfg))

	// uploaded meal images, when the local storage backend is active
	if cfg.UploadDriver == "local" {
		r.Static("/uploads", cfg.UploadDir)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Server is running"})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/login", ctl.Auth.Login)
			auth.GET("/verify", ctl.Auth.Verify)
		}

		// public read-only surface for the homepage, no auth
		api.GET("/categories", ctl.Categories.List)
		api.GET("/categories/:id", ctl.Categories.Get)
		api.GET("/meals", ctl.Meals.List)
		api.GET("/meals/:id", ctl.Meals.Get)

		// admin panel surface, everything behind the gate
		admin := api.Group("/admin")
		admin.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
		{
			admin.GET("/categories", ctl.Categories.List)
			admin.GET("/categories/:id", ctl.Categories.Get)
			admin.POST("/categories", ctl.Categories.Create)
			admin.PUT("/categories/:id", ctl.Categories.Update)
			admin.DELETE("/categories/:id", ctl.Categories.Delete)

			admin.GET("/meals", ctl.Meals.List)
			admin.GET("/meals/:id", ctl.Meals.Get)
			admin.POST("/meals", ctl.Meals.Create)
			admin.PUT("/meals/:id", ctl.Meals.Update)
			admin.DELETE("/meals/:id", ctl.Meals.Delete)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	return r
}
