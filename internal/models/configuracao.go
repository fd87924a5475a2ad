package models

// Configuracao is a key/value site setting. The full table is read at
// once and flattened into a map by the configuration endpoint.
type Configuracao struct {
	Chave string `gorm:"primaryKey;size:64" json:"chave"`
	Valor string `gorm:"size:255;not null" json:"valor"`
}

func (Configuracao) TableName() string { return "configuracoes" }
