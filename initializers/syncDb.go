package initializers

import (
	"github.com/offstore/offstore-api/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SyncDatabase(db *gorm.DB, log *zap.Logger) error {
	err := db.AutoMigrate(
		&models.Admin{},
		&models.Product{},
		&models.CartRecord{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return err
	}
	log.Info("database synced")
	return nil
}
