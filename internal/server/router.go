package server

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pssg2024/portal-nahora/internal/server/handlers"
)

func RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Public
	api.Get("/publicacoes", handlers.PublicacoesList)
	api.Get("/comentarios/:publicacaoId", handlers.ComentariosList)
	api.Post("/comentarios", handlers.ComentarioCreate)
	api.Get("/configuracoes", handlers.ConfiguracoesGet)

	// Admin intent. The server does not check credentials on these two
	// beyond the login endpoint itself; only the client hides the UI.
	admin := api.Group("/admin")
	admin.Post("/login", handlers.AdminLogin)
	admin.Post("/publicacoes", handlers.PublicacaoCreate)
	admin.Delete("/comentarios/:id", handlers.ComentarioDelete)

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true, "time": time.Now()})
	})
}
