package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/offstore/offstore-api/cart"
	"github.com/offstore/offstore-api/catalog"
	"github.com/offstore/offstore-api/controllers"
	"github.com/offstore/offstore-api/models"
	"github.com/offstore/offstore-api/orders"
	"github.com/offstore/offstore-api/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type fakeCatalog struct {
	products map[uint]*models.Product
}

func (f *fakeCatalog) List() ([]models.Product, error) { return nil, nil }
func (f *fakeCatalog) Latest() (*models.Product, error) {
	return nil, catalog.ErrNotFound
}
func (f *fakeCatalog) Get(id uint) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return p, nil
}
func (f *fakeCatalog) ByCategory(string) ([]models.Product, error) { return nil, nil }
func (f *fakeCatalog) Create(*models.Product) error                { return nil }
func (f *fakeCatalog) Update(id uint, p *models.Product) (*models.Product, error) {
	return p, nil
}
func (f *fakeCatalog) Delete(uint) error { return nil }

type fakeOrderRepo struct {
	orders      map[uint]*models.Order
	nextID      uint
	createCalls int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint]*models.Order), nextID: 1}
}

func (r *fakeOrderRepo) Create(order *models.Order) error {
	r.createCalls++
	order.ID = r.nextID
	r.nextID++
	saved := *order
	r.orders[order.ID] = &saved
	return nil
}

func (r *fakeOrderRepo) List() ([]models.Order, error) { return nil, nil }

func (r *fakeOrderRepo) Get(id uint) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, &orders.NotFoundError{ID: id}
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) UpdateStatus(id uint, status string) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, &orders.NotFoundError{ID: id}
	}
	order.Status = status
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) Delete(id uint) error {
	if _, ok := r.orders[id]; !ok {
		return &orders.NotFoundError{ID: id}
	}
	delete(r.orders, id)
	return nil
}

func storefront(t *testing.T) (*gin.Engine, *fakeOrderRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat := &fakeCatalog{products: map[uint]*models.Product{
		1: {
			Model:  gorm.Model{ID: 1},
			Name:   "Product A",
			Price:  500,
			Sizes:  datatypes.JSONSlice[string]{"M", "L"},
			Colors: datatypes.JSONSlice[string]{"BLACK"},
		},
		2: {
			Model:  gorm.Model{ID: 2},
			Name:   "Product B",
			Price:  800,
			Sizes:  datatypes.JSONSlice[string]{"32"},
			Colors: datatypes.JSONSlice[string]{"BLUE"},
		},
	}}

	repo := newFakeOrderRepo()
	logger := zap.NewNop()
	builder := orders.NewBuilder(repo, logger)
	manager := orders.NewLifecycleManager(repo)

	cartController := controllers.NewCartController(cart.NewMemoryStore(), cat, builder, nil, logger)
	orderController := controllers.NewOrderController(repo, manager, logger)

	passthrough := func(ctx *gin.Context) { ctx.Next() }
	server := gin.New()
	routes.CartRoutes(server, cartController)
	routes.OrderRoutes(server, orderController, passthrough)
	return server, repo
}

func doJSON(t *testing.T, server *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	var parsed map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestCartFlowOverHTTP(t *testing.T) {
	server, _ := storefront(t)

	w, _ := doJSON(t, server, http.MethodPost, "/api/cart/s1/items",
		`{"productId":1,"size":"M","color":"BLACK","quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	// Same identity key merges instead of duplicating.
	w, _ = doJSON(t, server, http.MethodPost, "/api/cart/s1/items",
		`{"productId":1,"size":"M","color":"BLACK","quantity":1}`)
	require.Equal(t, http.StatusOK, w.Code)

	w, body := doJSON(t, server, http.MethodGet, "/api/cart/s1", "")
	require.Equal(t, http.StatusOK, w.Code)
	lines := body["lines"].([]any)
	assert.Len(t, lines, 1)
	assert.EqualValues(t, 1500, body["cartTotal"])
	assert.EqualValues(t, 3, body["cartCount"])

	// Update down to zero removes the line.
	w, body = doJSON(t, server, http.MethodPut, "/api/cart/s1/items",
		`{"productId":1,"size":"M","color":"BLACK","quantity":0}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, body["cartCount"])
}

func TestAddUnknownProductOverHTTP(t *testing.T) {
	server, _ := storefront(t)

	w, _ := doJSON(t, server, http.MethodPost, "/api/cart/s1/items",
		`{"productId":99,"size":"M","color":"BLACK","quantity":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutOverHTTP(t *testing.T) {
	server, repo := storefront(t)

	doJSON(t, server, http.MethodPost, "/api/cart/s1/items",
		`{"productId":1,"size":"M","color":"BLACK","quantity":2}`)
	doJSON(t, server, http.MethodPost, "/api/cart/s1/items",
		`{"productId":2,"size":"32","color":"BLUE","quantity":1}`)

	// Duplicate phone numbers never reach persistence.
	w, _ := doJSON(t, server, http.MethodPost, "/api/cart/s1/checkout",
		`{"name":"Ahmed","address":"12 Nile St","phone1":"0101","phone2":"0101"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, repo.createCalls)

	w, body := doJSON(t, server, http.MethodPost, "/api/cart/s1/checkout",
		`{"name":"Ahmed","address":"12 Nile St","phone1":"0101","phone2":"0102"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	order := body["order"].(map[string]any)
	assert.EqualValues(t, 1800, order["subtotal"])
	assert.EqualValues(t, 120, order["shipping"])
	assert.EqualValues(t, 1920, order["total"])
	assert.Equal(t, "pending", order["status"])

	// Cart cleared after the order was persisted.
	w, body = doJSON(t, server, http.MethodGet, "/api/cart/s1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, body["cartCount"])
}

func TestOrderStatusOverHTTP(t *testing.T) {
	server, repo := storefront(t)

	doJSON(t, server, http.MethodPost, "/api/cart/s1/items",
		`{"productId":1,"size":"M","color":"BLACK","quantity":1}`)
	w, _ := doJSON(t, server, http.MethodPost, "/api/cart/s1/checkout",
		`{"name":"Ahmed","address":"12 Nile St","phone1":"0101","phone2":"0102"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// Out-of-enumeration status is rejected, stored order untouched.
	w, _ = doJSON(t, server, http.MethodPut, "/api/orders/1/status", `{"status":"archived"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	stored, err := repo.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "pending", stored.Status)

	w, _ = doJSON(t, server, http.MethodPut, "/api/orders/1/status", `{"status":"confirmed"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w, body := doJSON(t, server, http.MethodPost, "/api/orders/1/advance", "")
	require.Equal(t, http.StatusOK, w.Code)
	order := body["order"].(map[string]any)
	assert.Equal(t, "shipped", order["status"])

	w, _ = doJSON(t, server, http.MethodDelete, "/api/orders/1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, server, http.MethodGet, "/api/orders/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionMintOverHTTP(t *testing.T) {
	server, _ := storefront(t)

	w, body := doJSON(t, server, http.MethodPost, "/api/cart/session", "")
	require.Equal(t, http.StatusCreated, w.Code)
	shopperID, ok := body["shopperId"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, shopperID)

	// Fresh shoppers start with an empty cart.
	w, body = doJSON(t, server, http.MethodGet, fmt.Sprintf("/api/cart/%s", shopperID), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, body["cartCount"])
}
