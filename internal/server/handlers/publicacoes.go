package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pssg2024/portal-nahora/internal/database"
	"github.com/pssg2024/portal-nahora/internal/models"
)

// adminID is the single known administrator every publication belongs to.
const adminID = 1

func PublicacoesList(c *fiber.Ctx) error {
	rows := make([]models.PublicacaoComAutor, 0)
	err := database.DB.Model(&models.Publicacao{}).
		Select("publicacoes.*, administradores.username AS autor").
		Joins("LEFT JOIN administradores ON administradores.id = publicacoes.administrador_id").
		Where("publicacoes.ativo = ?", true).
		Order("publicacoes.publicado_em DESC").
		Scan(&rows).Error
	if err != nil {
		return internalError(c)
	}
	return c.JSON(rows)
}

func PublicacaoCreate(c *fiber.Ctx) error {
	var in struct {
		Titulo    string `json:"titulo"`
		Conteudo  string `json:"conteudo"`
		ImagemURL string `json:"imagem_url"`
		Tipo      string `json:"tipo"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}
	if in.Tipo == "" {
		in.Tipo = models.TipoPublicacao
	}
	pub := models.Publicacao{
		Titulo:          in.Titulo,
		Conteudo:        in.Conteudo,
		ImagemURL:       in.ImagemURL,
		Tipo:            in.Tipo,
		AdministradorID: adminID,
		Ativo:           true,
	}
	if err := database.DB.Create(&pub).Error; err != nil {
		return internalError(c)
	}
	return c.JSON(pub)
}
