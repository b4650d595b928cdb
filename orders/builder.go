package orders

import (
	"time"

	"github.com/offstore/offstore-api/models"
	"go.uber.org/zap"
)

// ShippingCost is a flat fee in minor currency units.
const ShippingCost = 120

// Cart is the slice of the cart engine the builder needs at checkout.
type Cart interface {
	Lines() []models.CartLine
	Total() int
	Clear() error
}

// Builder turns a cart plus customer details into a submitted order. All
// preconditions are checked before anything touches storage.
type Builder struct {
	repo Repository
	log  *zap.Logger
}

func NewBuilder(repo Repository, log *zap.Logger) *Builder {
	return &Builder{repo: repo, log: log}
}

// Checkout validates the customer details and the cart, freezes each cart
// line into an order item, and submits the order as a single creation
// call. The cart is cleared only after the repository confirms success;
// on failure it is left as-is so a retry needs no re-entry.
func (b *Builder) Checkout(c Cart, customer models.CustomerInfo) (*models.Order, error) {
	if err := validateCheckout(c, customer); err != nil {
		return nil, err
	}

	lines := c.Lines()
	items := make([]models.OrderItem, len(lines))
	for i, line := range lines {
		items[i] = models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Size:      line.Size,
			Color:     line.Color,
			Quantity:  line.Quantity,
			Image:     line.Image,
		}
	}

	subtotal := c.Total()
	order := &models.Order{
		Items:    items,
		Customer: customer,
		Subtotal: subtotal,
		Shipping: ShippingCost,
		Total:    subtotal + ShippingCost,
		Status:   StatusPending,
	}
	order.CreatedAt = time.Now()

	if err := b.repo.Create(order); err != nil {
		return nil, &SubmissionError{Err: err}
	}

	if err := c.Clear(); err != nil {
		// The order exists; a stale cart is recoverable, losing the
		// order is not.
		b.log.Warn("order created but cart not cleared",
			zap.Uint("orderId", order.ID), zap.Error(err))
	}

	return order, nil
}

func validateCheckout(c Cart, customer models.CustomerInfo) error {
	switch {
	case customer.Name == "":
		return &ValidationError{Field: "name", Reason: "required"}
	case customer.Address == "":
		return &ValidationError{Field: "address", Reason: "required"}
	case customer.Phone1 == "":
		return &ValidationError{Field: "phone1", Reason: "required"}
	case customer.Phone2 == "":
		return &ValidationError{Field: "phone2", Reason: "required"}
	case customer.Phone1 == customer.Phone2:
		return &ValidationError{Field: "phone2", Reason: "phone numbers must differ"}
	case len(c.Lines()) == 0:
		return &ValidationError{Field: "cart", Reason: "cart is empty"}
	}
	return nil
}
