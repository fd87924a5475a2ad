package models

import "time"

type Comentario struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PublicacaoID uint      `gorm:"index;not null" json:"publicacao_id"`
	AutorNome    string    `gorm:"size:120;not null" json:"autor_nome"`
	Texto        string    `gorm:"type:text;not null" json:"texto"`
	Email        *string   `gorm:"size:120" json:"email"`
	Aprovado     bool      `gorm:"not null" json:"aprovado"`
	CriadoEm     time.Time `gorm:"autoCreateTime;index" json:"criado_em"`
}

func (Comentario) TableName() string { return "comentarios" }
