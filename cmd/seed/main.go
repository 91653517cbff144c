package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/minishop/go-api/pkg/models"
	"github.com/minishop/go-api/pkg/redis"
	"github.com/minishop/go-api/pkg/store"
)

// Replaces the catalog with the canonical sample product set against whichever
// store is configured, then drops any cached copies.
func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	db := store.Open()
	catalog := models.DefaultCatalog()

	ctx := context.Background()
	if err := db.ReplaceCatalog(ctx, catalog); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	log.Printf("Seeded %d products into %s store", len(catalog), db.Name())

	ids := make([]string, len(catalog))
	for i, p := range catalog {
		ids[i] = p.ID
		log.Printf("- %s: $%.2f", p.Name, p.Price)
	}

	if err := redis.InvalidateCatalog(ctx, ids); err != nil {
		log.Printf("Warning: Failed to invalidate catalog cache: %v", err)
	}
}
