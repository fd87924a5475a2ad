package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/pssg2024/portal-nahora/internal/config"
	"github.com/pssg2024/portal-nahora/internal/database"
	"github.com/pssg2024/portal-nahora/internal/server"
)

func main() {
	// Load environment variables
	if err := config.Load(); err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	// Init DB
	if err := database.Connect(config.Current.DatabaseURL); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}

	// Auto-migrate models and seed admin + site configuration
	if err := database.AutoMigrateAndSeed(); err != nil {
		log.Fatalf("migration/seed failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		ServerHeader: "PortalNahora",
		AppName:      "Portal de Publicações",
	})

	// Static frontend shell (opaque to the API)
	app.Static("/", "./public")

	// Setup routes
	server.RegisterRoutes(app)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}
	log.Printf("Server listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
