package orders

import (
	"errors"

	"github.com/offstore/offstore-api/models"
	"gorm.io/gorm"
)

// Repository is the order persistence interface. Implementations return
// *NotFoundError for missing ids; other storage errors pass through
// unwrapped.
type Repository interface {
	Create(order *models.Order) error
	List() ([]models.Order, error)
	Get(id uint) (*models.Order, error)
	UpdateStatus(id uint, status string) (*models.Order, error)
	Delete(id uint) error
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *GormRepository) List() ([]models.Order, error) {
	var orders []models.Order
	result := r.db.Preload("Items").Order("created_at desc").Find(&orders)
	return orders, result.Error
}

func (r *GormRepository) Get(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepository) UpdateStatus(id uint, status string) (*models.Order, error) {
	// Existence is checked first: RowsAffected is 0 both for a missing
	// id and for a no-op update to the same status.
	if _, err := r.Get(id); err != nil {
		return nil, err
	}
	err := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error
	if err != nil {
		return nil, err
	}
	return r.Get(id)
}

// Delete removes the order permanently, bypassing the soft delete.
func (r *GormRepository) Delete(id uint) error {
	result := r.db.Unscoped().Delete(&models.Order{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{ID: id}
	}
	return nil
}
