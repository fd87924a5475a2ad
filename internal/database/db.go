package database

import (
	"errors"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pssg2024/portal-nahora/internal/config"
	"github.com/pssg2024/portal-nahora/internal/models"
)

var DB *gorm.DB

func Connect(dsn string) error {
	if dsn == "" {
		return errors.New("empty DSN")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxLifetime(60 * time.Minute)

	DB = db
	return nil
}

func AutoMigrateAndSeed() error {
	if err := DB.AutoMigrate(
		&models.Administrador{},
		&models.Publicacao{},
		&models.Comentario{},
		&models.Configuracao{},
	); err != nil {
		return err
	}
	if err := seedAdmin(); err != nil {
		return err
	}
	if err := seedConfiguracoes(); err != nil {
		return err
	}
	return nil
}

func seedAdmin() error {
	var count int64
	DB.Model(&models.Administrador{}).Count(&count)
	if count > 0 {
		return nil
	}
	admin := models.Administrador{Username: config.Current.AdminUsername}
	if err := admin.SetSenha(config.Current.AdminPassword); err != nil {
		return err
	}
	return DB.Create(&admin).Error
}

func seedConfiguracoes() error {
	defaults := []models.Configuracao{
		{Chave: "titulo_site", Valor: "Meu Portal de Publicações"},
		{Chave: "telefone_contato", Valor: "(00) 0000-0000"},
		{Chave: "email_contato", Valor: "contato@example.com"},
	}
	for _, c := range defaults {
		var count int64
		DB.Model(&models.Configuracao{}).Where("chave = ?", c.Chave).Count(&count)
		if count > 0 {
			continue
		}
		if err := DB.Create(&c).Error; err != nil {
			return err
		}
	}
	return nil
}
