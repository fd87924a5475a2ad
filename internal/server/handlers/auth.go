package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/pssg2024/portal-nahora/internal/config"
	"github.com/pssg2024/portal-nahora/internal/database"
	"github.com/pssg2024/portal-nahora/internal/models"
)

// AdminLogin verifies the single administrator's credentials. No
// session, cookie or token is issued; the caller keeps its own flag.
// The password is compared against the configured admin password, not
// against the stored senha_hash.
func AdminLogin(c *fiber.Ctx) error {
	var in struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}
	var admin models.Administrador
	if err := database.DB.Where("username = ?", in.Username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Credenciais inválidas"})
		}
		return internalError(c)
	}
	if in.Password != config.Current.AdminPassword {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Credenciais inválidas"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Login realizado com sucesso"})
}
