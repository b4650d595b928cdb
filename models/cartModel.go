package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CartLine is one shopper selection. Name, price and image are a snapshot
// taken when the line was added; later product edits do not touch them.
// Two lines are the same line when (productId, size, color) match.
type CartLine struct {
	ProductID uint   `json:"productId"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Image     string `json:"image"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

// SameLine reports whether the line matches the given identity key.
func (l CartLine) SameLine(productID uint, size, color string) bool {
	return l.ProductID == productID && l.Size == size && l.Color == color
}

// Cart is the serialized shape held in the shopper's store.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// CartRecord is the server-side row holding one shopper's serialized cart.
type CartRecord struct {
	gorm.Model
	ShopperID string         `json:"shopperId" gorm:"uniqueIndex;size:64"`
	Data      datatypes.JSON `json:"data"`
}
