package docs

import "github.com/swaggo/swag"

// @title Restaurant Menu API
// @version 2.0
// @description Public menu and admin panel backend for the restaurant
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var SwaggerInfo = &swag.Spec{
	Version:     "2.0",
	Host:        "localhost:8080",
	BasePath:    "/api",
	Schemes:     []string{"http", "https"},
	Title:       "Restaurant Menu API",
	Description: "Public menu and admin panel backend for the restaurant",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
