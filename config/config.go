package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string // "development" | "production"
	DatabaseURL string
	JWTSecret   string

	AdminUsername string
	AdminPassword string

	// image storage
	UploadDriver string // "local" | "s3"
	UploadDir    string
	BaseURL      string
	S3Bucket     string
	S3Region     string
	CDNURL       string

	AllowedOrigins []string
}

// Load reads the environment (and .env, when present) into a Config.
// Missing JWT_SECRET is not fatal here: login and the auth middleware
// refuse to operate without it, which keeps the public read-only
// surface usable.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := &Config{
		Port:          getenv("PORT", "8080"),
		Env:           getenv("ENV", "development"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminUsername: getenv("ADMIN_USERNAME", "alibek"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		UploadDriver:  getenv("UPLOAD_DRIVER", "local"),
		UploadDir:     getenv("UPLOAD_DIR", "uploads"),
		BaseURL:       getenv("BASE_URL", "http://localhost:8080"),
		S3Bucket:      os.Getenv("S3_BUCKET"),
		S3Region:      os.Getenv("S3_REGION"),
		CDNURL:        os.Getenv("CDN_URL"),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			getenv("DB_HOST", "localhost"),
			getenv("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			getenv("DB_NAME", "restaurant"),
			getenv("DB_PORT", "5432"),
		)
	}

	if cfg.IsProduction() {
		cfg.AllowedOrigins = []string{getenv("FRONTEND_URL", "https://restoran-admin.vercel.app")}
	} else {
		cfg.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	return cfg
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
