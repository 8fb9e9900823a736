package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/anurudhk499/SafeBite/models"
)

// DB backs the durable product cache. Nil when no database is configured;
// the cache then runs memory-only.
var DB *gorm.DB

// Init loads the environment and, when DB_HOST is set, connects the
// product-cache database and migrates its table.
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	if os.Getenv("DB_HOST") == "" {
		log.Println("DB_HOST not set, product cache will be memory-only")
		return
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.CachedProduct{}); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	DB = db
}

// Addr returns the listen address, defaulting to :8080.
func Addr() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return ":" + port
}
