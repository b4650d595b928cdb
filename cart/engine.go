// Package cart maintains one shopper's in-progress selections. Lines are
// unique by (productId, size, color); adding the same combination again
// merges into the existing line. Every mutation is written through to the
// shopper's store before the call returns, so a reload reconstructs the
// same cart.
package cart

import (
	"errors"
	"fmt"

	"github.com/offstore/offstore-api/models"
)

var (
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrInvalidSelection = errors.New("size and color must be offered by the product")
)

// Engine owns the cart value for a single shopper. It is single-writer:
// one interactive session mutates it at a time, so no locking is held
// beyond what the store does internally.
type Engine struct {
	shopperID string
	store     Store
	cart      models.Cart
}

// NewEngine loads the shopper's persisted cart, or starts empty if the
// store has nothing for them yet.
func NewEngine(shopperID string, store Store) (*Engine, error) {
	c, err := store.Load(shopperID)
	if err != nil {
		return nil, err
	}
	return &Engine{shopperID: shopperID, store: store, cart: c}, nil
}

// Add merges quantity into an existing line with the same identity key,
// or appends a new line with a snapshot of the product's current name,
// price and first image. Later product edits do not touch lines already
// added.
func (e *Engine) Add(product *models.Product, size, color string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if size == "" || color == "" || !product.HasSize(size) || !product.HasColor(color) {
		return fmt.Errorf("%w: size %q, color %q", ErrInvalidSelection, size, color)
	}

	for i := range e.cart.Lines {
		if e.cart.Lines[i].SameLine(product.ID, size, color) {
			e.cart.Lines[i].Quantity += quantity
			return e.persist()
		}
	}

	e.cart.Lines = append(e.cart.Lines, models.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.FirstImage(),
		Size:      size,
		Color:     color,
		Quantity:  quantity,
	})
	return e.persist()
}

// UpdateQuantity replaces the quantity of the line with the given identity
// key. A quantity of zero or less removes the line. Missing lines are a
// no-op.
func (e *Engine) UpdateQuantity(productID uint, size, color string, quantity int) error {
	if quantity <= 0 {
		return e.Remove(productID, size, color)
	}
	for i := range e.cart.Lines {
		if e.cart.Lines[i].SameLine(productID, size, color) {
			e.cart.Lines[i].Quantity = quantity
			return e.persist()
		}
	}
	return nil
}

// Remove drops the line with the given identity key if present.
func (e *Engine) Remove(productID uint, size, color string) error {
	for i := range e.cart.Lines {
		if e.cart.Lines[i].SameLine(productID, size, color) {
			e.cart.Lines = append(e.cart.Lines[:i], e.cart.Lines[i+1:]...)
			return e.persist()
		}
	}
	return nil
}

// Clear empties the cart unconditionally.
func (e *Engine) Clear() error {
	e.cart.Lines = nil
	return e.persist()
}

// Lines returns a copy of the current lines in insertion order.
func (e *Engine) Lines() []models.CartLine {
	out := make([]models.CartLine, len(e.cart.Lines))
	copy(out, e.cart.Lines)
	return out
}

// Total is recomputed from the current lines on every call.
func (e *Engine) Total() int {
	total := 0
	for _, l := range e.cart.Lines {
		total += l.Price * l.Quantity
	}
	return total
}

// Count is the summed quantity over all lines, recomputed per call.
func (e *Engine) Count() int {
	count := 0
	for _, l := range e.cart.Lines {
		count += l.Quantity
	}
	return count
}

func (e *Engine) persist() error {
	return e.store.Save(e.shopperID, e.cart)
}
