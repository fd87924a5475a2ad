package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pssg2024/portal-nahora/internal/config"
	"github.com/pssg2024/portal-nahora/internal/database"
	"github.com/pssg2024/portal-nahora/internal/models"
)

func ComentariosList(c *fiber.Ctx) error {
	publicacaoID, _ := strconv.Atoi(c.Params("publicacaoId"))
	rows := make([]models.Comentario, 0)
	err := database.DB.
		Where("publicacao_id = ? AND aprovado = ?", publicacaoID, true).
		Order("criado_em DESC").
		Find(&rows).Error
	if err != nil {
		return internalError(c)
	}
	return c.JSON(rows)
}

func ComentarioCreate(c *fiber.Ctx) error {
	var in struct {
		PublicacaoID uint   `json:"publicacao_id"`
		AutorNome    string `json:"autor_nome"`
		Texto        string `json:"texto"`
		Email        string `json:"email"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados incompletos"})
	}
	if in.PublicacaoID == 0 || strings.TrimSpace(in.Texto) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados incompletos"})
	}
	if in.AutorNome == "" {
		in.AutorNome = "Visitante"
	}
	var email *string
	if in.Email != "" {
		email = &in.Email
	}
	com := models.Comentario{
		PublicacaoID: in.PublicacaoID,
		AutorNome:    in.AutorNome,
		Texto:        in.Texto,
		Email:        email,
		// Explicit policy, not a column default.
		Aprovado: config.Current.ComentariosAutoAprovar,
	}
	if err := database.DB.Create(&com).Error; err != nil {
		return internalError(c)
	}
	return c.JSON(com)
}

// ComentarioDelete hard-deletes by id. Deleting an id that does not
// exist still reports success.
func ComentarioDelete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := database.DB.Delete(&models.Comentario{}, id).Error; err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Comentário deletado com sucesso"})
}
