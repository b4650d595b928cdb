package cart

import (
	"encoding/json"
	"errors"

	"github.com/offstore/offstore-api/models"
	"gorm.io/gorm"
)

// GormStore persists one serialized cart row per shopper.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Load(shopperID string) (models.Cart, error) {
	var record models.CartRecord
	err := s.db.Where("shopper_id = ?", shopperID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Cart{}, nil
	}
	if err != nil {
		return models.Cart{}, err
	}

	var cart models.Cart
	if err := json.Unmarshal(record.Data, &cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

func (s *GormStore) Save(shopperID string, cart models.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}

	var record models.CartRecord
	err = s.db.Where("shopper_id = ?", shopperID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = models.CartRecord{ShopperID: shopperID, Data: raw}
		return s.db.Create(&record).Error
	}
	if err != nil {
		return err
	}

	record.Data = raw
	return s.db.Save(&record).Error
}
