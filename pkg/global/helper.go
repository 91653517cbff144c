package global

import (
	"context"
	"os"
	"time"
)

func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetDefaultTimer() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// GetMongoURI returns the configured MongoDB URI, or an empty string when none
// is set. An empty URI selects the in-memory store at startup.
func GetMongoURI() string {
	return os.Getenv("MONGODB_URI")
}

func GetDatabaseName() string {
	return GetEnvOrDefault("MONGODB_DATABASE", "minishop")
}
