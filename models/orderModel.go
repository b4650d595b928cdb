package models

import "gorm.io/gorm"

// CustomerInfo is collected at checkout. Both phone numbers are required
// and must differ.
type CustomerInfo struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Phone1  string `json:"phone1" binding:"required"`
	Phone2  string `json:"phone2" binding:"required"`
}

// OrderItem is a frozen copy of a cart line. It is never re-linked to the
// live product.
type OrderItem struct {
	gorm.Model
	OrderID   uint   `json:"orderId"`
	ProductID uint   `json:"productId"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
}

// Order is immutable once created except for Status. Monetary fields are
// integers in minor currency units; Total = Subtotal + Shipping.
type Order struct {
	gorm.Model
	Items    []OrderItem  `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Customer CustomerInfo `json:"customer" gorm:"embedded;embeddedPrefix:customer_"`
	Subtotal int          `json:"subtotal"`
	Shipping int          `json:"shipping"`
	Total    int          `json:"total"`
	Status   string       `json:"status"`
}
