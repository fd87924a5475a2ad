package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pssg2024/portal-nahora/internal/database"
	"github.com/pssg2024/portal-nahora/internal/models"
)

// ConfiguracoesGet returns the whole configuracoes table flattened
// into a chave -> valor map.
func ConfiguracoesGet(c *fiber.Ctx) error {
	var rows []models.Configuracao
	if err := database.DB.Find(&rows).Error; err != nil {
		return internalError(c)
	}
	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.Chave] = r.Valor
	}
	return c.JSON(out)
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
}
