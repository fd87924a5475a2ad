package models

import "time"

const (
	TipoPublicacao = "publicacao"
	TipoFoto       = "foto"
	TipoAnuncio    = "anuncio"
)

type Publicacao struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Titulo          string    `gorm:"size:255;not null" json:"titulo"`
	Conteudo        string    `gorm:"type:text;not null" json:"conteudo"`
	ImagemURL       string    `gorm:"size:1024" json:"imagem_url"`
	Tipo            string    `gorm:"size:32;not null;default:'publicacao'" json:"tipo"`
	AdministradorID uint      `gorm:"index;not null" json:"administrador_id"`
	Ativo           bool      `gorm:"not null;default:true" json:"ativo"`
	PublicadoEm     time.Time `gorm:"autoCreateTime;index" json:"publicado_em"`
}

func (Publicacao) TableName() string { return "publicacoes" }

// PublicacaoComAutor is the list-endpoint row shape: the publication
// joined to the owning administrator's username.
type PublicacaoComAutor struct {
	Publicacao
	Autor string `json:"autor"`
}
