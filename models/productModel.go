package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Catalog vocabulary. Sizes depend on the category: pants carry waist
// sizes, everything else carries clothing sizes.
var (
	Categories    = []string{"Jacket", "Pants", "Hoodies", "Crew-Neck"}
	ClothingSizes = []string{"XS", "S", "M", "L", "XL", "XXL"}
	PantsSizes    = []string{"30", "32", "34", "36", "38", "40"}
	Colors        = []string{"BLACK", "WHITE", "BLUE", "RED", "BEIGE", "PINK", "GRAY"}
)

// Product prices are integers in minor currency units.
type Product struct {
	gorm.Model
	Name        string                      `json:"name" binding:"required"`
	Description string                      `json:"description"`
	Price       int                         `json:"price" binding:"required,gt=0"`
	Category    string                      `json:"category" binding:"required"`
	Sizes       datatypes.JSONSlice[string] `json:"sizes" binding:"required"`
	Colors      datatypes.JSONSlice[string] `json:"colors" binding:"required"`
	Images      datatypes.JSONSlice[string] `json:"images"`
	SoldOut     bool                        `json:"soldOut"`
}

// FirstImage is the image frozen into cart lines and order items.
func (p *Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

func (p *Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}
