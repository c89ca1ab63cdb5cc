package config

import (
	"log"
	"os"

	"backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// defaultSessionSecret is the documented fallback when SESSION_SECRET is
// unset. Deployments should always override it.
const defaultSessionSecret = "health_tracker_secret_key"

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, relying on environment")
	}
}

// DatabasePath returns the SQLite file location. The file is created on
// first run; no database server is required.
func DatabasePath() string {
	if p := os.Getenv("DATABASE_PATH"); p != "" {
		return p
	}
	return "health_tracker.db"
}

func SessionSecret() string {
	if s := os.Getenv("SESSION_SECRET"); s != "" {
		return s
	}
	return defaultSessionSecret
}

// JWTSecret signs API bearer tokens. Falls back to the session secret so a
// single env var is enough for small deployments.
func JWTSecret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte(SessionSecret())
}

func Addr() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	return "0.0.0.0:" + port
}

// AllModels lists every persisted entity, in migration order.
func AllModels() []any {
	return []any{
		&models.User{},
		&models.HealthData{},
		&models.NutritionEntry{},
		&models.ActivityEntry{},
		&models.Goal{},
		&models.Insight{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.Notification{},
		&models.MealPlan{},
		&models.GroceryList{},
	}
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(DatabasePath()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	if err := DB.AutoMigrate(AllModels()...); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
