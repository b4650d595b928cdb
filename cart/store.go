package cart

import (
	"encoding/json"
	"sync"

	"github.com/offstore/offstore-api/models"
)

// Store is the shopper-scoped key-value store holding the serialized
// cart. Load returns an empty cart for unknown shoppers.
type Store interface {
	Load(shopperID string) (models.Cart, error)
	Save(shopperID string, cart models.Cart) error
}

// MemoryStore keeps serialized carts in memory. Used in tests and as a
// fallback when the service runs without a database.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]byte)}
}

func (s *MemoryStore) Load(shopperID string) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cart models.Cart
	raw, ok := s.carts[shopperID]
	if !ok {
		return cart, nil
	}
	if err := json.Unmarshal(raw, &cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

func (s *MemoryStore) Save(shopperID string, cart models.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.carts[shopperID] = raw
	s.mu.Unlock()
	return nil
}
