// Package config reads service settings from the environment, loading a
// local .env file first when one exists. Keys used across the service:
// DATABASE_URL, JWT_SECRET, ADMIN_NAME, ADMIN_EMAIL, ADMIN_PASSWORD,
// CLOUDINARY_URL, BREVO_API_KEY, EMAIL_SENDER and EMAIL_SENDER_NAME.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config returns the value of key. Variables already present in the process
// environment win over the .env file.
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return os.Getenv(key)
}
