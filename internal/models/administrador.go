package models

import "golang.org/x/crypto/bcrypt"

type Administrador struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Username  string `gorm:"uniqueIndex;size:64;not null" json:"username"`
	SenhaHash string `gorm:"size:128;not null" json:"-"`
}

func (Administrador) TableName() string { return "administradores" }

func (a *Administrador) SetSenha(plain string) error {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.SenhaHash = string(h)
	return nil
}

func (a *Administrador) CheckSenha(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.SenhaHash), []byte(plain)) == nil
}
