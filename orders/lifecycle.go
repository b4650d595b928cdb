package orders

import "github.com/offstore/offstore-api/models"

// Fulfillment statuses. The canonical progression is pending → confirmed
// → shipped → delivered; cancelled is reachable from any non-terminal
// state.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

var forwardSequence = []string{StatusPending, StatusConfirmed, StatusShipped, StatusDelivered}

// ValidStatus reports whether s is in the enumerated set.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

func terminal(s string) bool {
	return s == StatusDelivered || s == StatusCancelled
}

// LifecycleManager mutates only the status field of stored orders.
// Concurrent administrators race with last-writer-wins; no concurrency
// token is kept.
type LifecycleManager struct {
	repo Repository
}

func NewLifecycleManager(repo Repository) *LifecycleManager {
	return &LifecycleManager{repo: repo}
}

// SetStatus is the permissive operation: any enumerated status may be set
// from any current status, so an administrator can correct mistakes.
// Out-of-enumeration values are rejected before persistence.
func (m *LifecycleManager) SetStatus(id uint, status string) (*models.Order, error) {
	if !ValidStatus(status) {
		return nil, &InvalidStatusError{Status: status}
	}
	return m.repo.UpdateStatus(id, status)
}

// Advance moves the order one step along the canonical forward sequence.
// Terminal orders cannot advance.
func (m *LifecycleManager) Advance(id uint) (*models.Order, error) {
	order, err := m.repo.Get(id)
	if err != nil {
		return nil, err
	}
	if terminal(order.Status) {
		return nil, &InvalidStatusError{Status: order.Status, Reason: "order is in a terminal state"}
	}
	for i, s := range forwardSequence {
		if s == order.Status {
			return m.repo.UpdateStatus(id, forwardSequence[i+1])
		}
	}
	return nil, &InvalidStatusError{Status: order.Status, Reason: "unknown current status"}
}

// Cancel moves any non-terminal order to cancelled.
func (m *LifecycleManager) Cancel(id uint) (*models.Order, error) {
	order, err := m.repo.Get(id)
	if err != nil {
		return nil, err
	}
	if terminal(order.Status) {
		return nil, &InvalidStatusError{Status: order.Status, Reason: "order is in a terminal state"}
	}
	return m.repo.UpdateStatus(id, StatusCancelled)
}

// Delete permanently removes an order. No stock is returned; the catalog
// is untouched.
func (m *LifecycleManager) Delete(id uint) error {
	return m.repo.Delete(id)
}
