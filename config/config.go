package config

import (
	"encoding/base64"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	MongoString  string
	PasetoSecret string

	// SingleCheckInPerDay rejects a second check-in on the same calendar day
	// with 409. Off by default: the stock behavior allows duplicates.
	SingleCheckInPerDay bool

	SeedOnStart bool
}

// LoadConfig reads configuration from the environment (.env when present).
func LoadConfig() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using system environment variables")
	}

	secretBase64 := getEnv("PASETO_SECRET", "")
	if secretBase64 == "" {
		log.Fatal("PASETO_SECRET is not set; generate one with pkg/utils.GenerateBase64Key")
	}

	secretBytes, err := base64.URLEncoding.DecodeString(secretBase64)
	if err != nil {
		log.Fatalf("PASETO_SECRET is not a valid base64 URL-encoded string: %v", err)
	}
	if len(secretBytes) != 32 {
		log.Fatalf("PASETO_SECRET must decode to exactly 32 bytes, got %d", len(secretBytes))
	}

	return &AppConfig{
		Port:                getEnv("PORT", "3000"),
		MongoString:         getEnv("MONGOSTRING", ""),
		PasetoSecret:        secretBase64,
		SingleCheckInPerDay: getEnv("ATTENDANCE_SINGLE_CHECKIN", "false") == "true",
		SeedOnStart:         getEnv("SEED_ON_START", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
