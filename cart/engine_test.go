package cart

import (
	"testing"

	"github.com/offstore/offstore-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func testProduct(id uint, name string, price int, sizes, colors []string) *models.Product {
	return &models.Product{
		Model:    gorm.Model{ID: id},
		Name:     name,
		Price:    price,
		Category: "Jacket",
		Sizes:    datatypes.JSONSlice[string](sizes),
		Colors:   datatypes.JSONSlice[string](colors),
		Images:   datatypes.JSONSlice[string]{"https://cdn.example.com/" + name + ".jpg"},
	}
}

func newTestEngine(t *testing.T) (*Engine, Store) {
	t.Helper()
	store := NewMemoryStore()
	engine, err := NewEngine("shopper-1", store)
	require.NoError(t, err)
	return engine, store
}

func TestAddMergesSameIdentityKey(t *testing.T) {
	engine, _ := newTestEngine(t)
	product := testProduct(1, "jacket", 500, []string{"M", "L"}, []string{"BLACK"})

	require.NoError(t, engine.Add(product, "M", "BLACK", 2))
	require.NoError(t, engine.Add(product, "M", "BLACK", 3))
	require.NoError(t, engine.Add(product, "M", "BLACK", 1))

	lines := engine.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 6, lines[0].Quantity)
	assert.Equal(t, 6, engine.Count())
}

func TestAddDifferentKeysStaySeparate(t *testing.T) {
	engine, _ := newTestEngine(t)
	product := testProduct(1, "jacket", 500, []string{"M", "L"}, []string{"BLACK", "WHITE"})

	require.NoError(t, engine.Add(product, "M", "BLACK", 1))
	require.NoError(t, engine.Add(product, "L", "BLACK", 1))
	require.NoError(t, engine.Add(product, "M", "WHITE", 1))

	assert.Len(t, engine.Lines(), 3)
}

func TestAddRejectsBadInput(t *testing.T) {
	engine, _ := newTestEngine(t)
	product := testProduct(1, "jacket", 500, []string{"M"}, []string{"BLACK"})

	assert.ErrorIs(t, engine.Add(product, "M", "BLACK", 0), ErrInvalidQuantity)
	assert.ErrorIs(t, engine.Add(product, "M", "BLACK", -2), ErrInvalidQuantity)
	assert.ErrorIs(t, engine.Add(product, "", "BLACK", 1), ErrInvalidSelection)
	assert.ErrorIs(t, engine.Add(product, "XL", "BLACK", 1), ErrInvalidSelection)
	assert.ErrorIs(t, engine.Add(product, "M", "GREEN", 1), ErrInvalidSelection)
	assert.Empty(t, engine.Lines())
}

func TestSnapshotSurvivesProductEdits(t *testing.T) {
	engine, _ := newTestEngine(t)
	product := testProduct(1, "jacket", 500, []string{"M"}, []string{"BLACK"})

	require.NoError(t, engine.Add(product, "M", "BLACK", 1))

	product.Price = 900
	product.Name = "renamed"

	lines := engine.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 500, lines[0].Price)
	assert.Equal(t, "jacket", lines[0].Name)
	assert.Equal(t, 500, engine.Total())
}

func TestUpdateQuantityReplaces(t *testing.T) {
	engine, _ := newTestEngine(t)
	product := testProduct(1, "jacket", 500, []string{"M"}, []string{"BLACK"})
	require.NoError(t, engine.Add(product, "M", "BLACK", 2))

	require.NoError(t, engine.UpdateQuantity(1, "M", "BLACK", 5))

	lines := engine.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestUpdateQuantityZeroOrNegativeRemoves(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		engine, _ := newTestEngine(t)
		product := testProduct(1, "jacket", 500, []string{"M"}, []string{"BLACK"})
		require.NoError(t, engine.Add(product, "M", "BLACK", 2))

		require.NoError(t, engine.UpdateQuantity(1, "M", "BLACK", quantity))
		assert.Empty(t, engine.Lines())
	}
}

func TestUpdateQuantityMissingLineIsNoop(t *testing.T) {
	engine, _ := newTestEngine(t)
	product := testProduct(1, "jacket", 500, []string{"M"}, []string{"BLACK"})
	require.NoError(t, engine.Add(product, "M", "BLACK", 2))

	require.NoError(t, engine.UpdateQuantity(99, "M", "BLACK", 0))
	require.NoError(t, engine.UpdateQuantity(1, "L", "BLACK", 4))

	lines := engine.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestRemove(t *testing.T) {
	engine, _ := newTestEngine(t)
	product := testProduct(1, "jacket", 500, []string{"M", "L"}, []string{"BLACK"})
	require.NoError(t, engine.Add(product, "M", "BLACK", 1))
	require.NoError(t, engine.Add(product, "L", "BLACK", 1))

	require.NoError(t, engine.Remove(1, "M", "BLACK"))
	require.Len(t, engine.Lines(), 1)
	assert.Equal(t, "L", engine.Lines()[0].Size)

	// absent key is a no-op
	require.NoError(t, engine.Remove(1, "M", "BLACK"))
	assert.Len(t, engine.Lines(), 1)
}

func TestTotalsRecomputedAcrossMutations(t *testing.T) {
	engine, _ := newTestEngine(t)
	jacket := testProduct(1, "jacket", 500, []string{"M"}, []string{"BLACK"})
	pants := testProduct(2, "pants", 800, []string{"32"}, []string{"BLUE"})

	require.NoError(t, engine.Add(jacket, "M", "BLACK", 2))
	require.NoError(t, engine.Add(pants, "32", "BLUE", 1))
	assert.Equal(t, 1800, engine.Total())
	assert.Equal(t, 3, engine.Count())

	require.NoError(t, engine.UpdateQuantity(1, "M", "BLACK", 1))
	assert.Equal(t, 1300, engine.Total())
	assert.Equal(t, 2, engine.Count())

	require.NoError(t, engine.Remove(2, "32", "BLUE"))
	assert.Equal(t, 500, engine.Total())

	require.NoError(t, engine.Clear())
	assert.Equal(t, 0, engine.Total())
	assert.Equal(t, 0, engine.Count())
}

func TestEveryMutationPersists(t *testing.T) {
	store := NewMemoryStore()
	engine, err := NewEngine("shopper-1", store)
	require.NoError(t, err)

	product := testProduct(1, "jacket", 500, []string{"M"}, []string{"BLACK"})
	require.NoError(t, engine.Add(product, "M", "BLACK", 2))

	// A fresh engine over the same store reconstructs the cart.
	reloaded, err := NewEngine("shopper-1", store)
	require.NoError(t, err)
	require.Len(t, reloaded.Lines(), 1)
	assert.Equal(t, 1000, reloaded.Total())

	require.NoError(t, engine.Clear())
	reloaded, err = NewEngine("shopper-1", store)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Lines())
}

func TestCartsAreScopedPerShopper(t *testing.T) {
	store := NewMemoryStore()
	first, err := NewEngine("shopper-1", store)
	require.NoError(t, err)
	second, err := NewEngine("shopper-2", store)
	require.NoError(t, err)

	product := testProduct(1, "jacket", 500, []string{"M"}, []string{"BLACK"})
	require.NoError(t, first.Add(product, "M", "BLACK", 1))

	assert.Len(t, first.Lines(), 1)
	assert.Empty(t, second.Lines())
}
