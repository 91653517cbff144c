package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/minishop/go-api/internal/router"
	"github.com/minishop/go-api/pkg/global"
	"github.com/minishop/go-api/pkg/store"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	db := store.Open()
	if ms, ok := db.(*store.MongoStore); ok {
		ms.EnsureIndexesOnStartup()
	}

	router.InitEngine()
	router.InitializeRoutes(db)

	port := global.GetEnvOrDefault("PORT", "5001")
	log.Printf("Server is running on port %s", port)

	if err := router.Router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
