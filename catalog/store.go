// Package catalog holds product records. The cart/order core only reads
// from it; the write side is used by the admin surface.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/offstore/offstore-api/models"
	"gorm.io/gorm"
)

// ErrNotFound addresses a missing product id.
var ErrNotFound = errors.New("product not found")

type Store interface {
	List() ([]models.Product, error)
	Latest() (*models.Product, error)
	Get(id uint) (*models.Product, error)
	ByCategory(name string) ([]models.Product, error)
	Create(product *models.Product) error
	Update(id uint, product *models.Product) (*models.Product, error)
	Delete(id uint) error
}

// Validate enforces the catalog vocabulary: a known category, and
// non-empty size and color lists drawn from the fixed sets. A purchasable
// product always offers at least one size and one color.
func Validate(p *models.Product) error {
	if !contains(models.Categories, p.Category) {
		return fmt.Errorf("unknown category %q", p.Category)
	}
	if len(p.Sizes) == 0 {
		return errors.New("at least one size is required")
	}
	if len(p.Colors) == 0 {
		return errors.New("at least one color is required")
	}
	allowedSizes := models.ClothingSizes
	if p.Category == "Pants" {
		allowedSizes = models.PantsSizes
	}
	for _, s := range p.Sizes {
		if !contains(allowedSizes, s) {
			return fmt.Errorf("size %q is not offered for category %q", s, p.Category)
		}
	}
	for _, c := range p.Colors {
		if !contains(models.Colors, c) {
			return fmt.Errorf("unknown color %q", c)
		}
	}
	if p.Price <= 0 {
		return errors.New("price must be positive")
	}
	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) List() ([]models.Product, error) {
	var products []models.Product
	result := s.db.Order("created_at desc").Find(&products)
	return products, result.Error
}

func (s *GormStore) Latest() (*models.Product, error) {
	var product models.Product
	err := s.db.Order("created_at desc").First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *GormStore) Get(id uint) (*models.Product, error) {
	var product models.Product
	err := s.db.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ByCategory matches the category case-insensitively as a substring, the
// same contract the storefront's category pages rely on.
func (s *GormStore) ByCategory(name string) ([]models.Product, error) {
	var products []models.Product
	pattern := "%" + strings.ToLower(name) + "%"
	result := s.db.Where("LOWER(category) LIKE ?", pattern).
		Order("created_at desc").Find(&products)
	return products, result.Error
}

func (s *GormStore) Create(product *models.Product) error {
	product.SoldOut = false
	return s.db.Create(product).Error
}

func (s *GormStore) Update(id uint, product *models.Product) (*models.Product, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	existing.Name = product.Name
	existing.Description = product.Description
	existing.Price = product.Price
	existing.Category = product.Category
	existing.Sizes = product.Sizes
	existing.Colors = product.Colors
	existing.Images = product.Images
	existing.SoldOut = product.SoldOut

	if err := s.db.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *GormStore) Delete(id uint) error {
	result := s.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
