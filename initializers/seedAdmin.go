package initializers

import (
	"errors"

	"github.com/offstore/offstore-api/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 10

// SeedAdmin creates the configured admin account if it does not exist
// yet. Skipped when no credentials are configured.
func SeedAdmin(db *gorm.DB, cfg AuthConfig, log *zap.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Warn("no admin credentials configured, skipping seed")
		return nil
	}

	var existing models.Admin
	err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcryptCost)
	if err != nil {
		return err
	}

	admin := models.Admin{Email: cfg.AdminEmail, Password: string(hash)}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Info("admin account created", zap.String("email", cfg.AdminEmail))
	return nil
}
