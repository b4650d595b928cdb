package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/offstore/offstore-api/cart"
	"github.com/offstore/offstore-api/catalog"
	"github.com/offstore/offstore-api/models"
	"github.com/offstore/offstore-api/orders"
	"github.com/offstore/offstore-api/utils"
	"go.uber.org/zap"
)

const (
	msgCartUnavailable = "Failed to load cart"
	msgCartNotSaved    = "Failed to save cart"
)

type CartController struct {
	store    cart.Store
	catalog  catalog.Store
	builder  *orders.Builder
	notifier *utils.Notifier
	log      *zap.Logger
}

func NewCartController(store cart.Store, cat catalog.Store, builder *orders.Builder, notifier *utils.Notifier, log *zap.Logger) *CartController {
	return &CartController{store: store, catalog: cat, builder: builder, notifier: notifier, log: log}
}

// CreateSession mints the shopper ID the client keys its cart by.
func (c *CartController) CreateSession(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"shopperId": uuid.NewString()})
}

func (c *CartController) engine(ctx *gin.Context) (*cart.Engine, bool) {
	shopperID := ctx.Param("shopperId")
	engine, err := cart.NewEngine(shopperID, c.store)
	if err != nil {
		c.log.Error("cart load failed", zap.String("shopperId", shopperID), zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgCartUnavailable)
		return nil, false
	}
	return engine, true
}

func cartView(engine *cart.Engine) gin.H {
	return gin.H{
		"lines":     engine.Lines(),
		"cartTotal": engine.Total(),
		"cartCount": engine.Count(),
	}
}

func (c *CartController) GetCart(ctx *gin.Context) {
	engine, ok := c.engine(ctx)
	if !ok {
		return
	}
	sendJSONResponse(ctx, http.StatusOK, cartView(engine))
}

type addItemRequest struct {
	ProductID uint   `json:"productId" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Color     string `json:"color" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gte=1"`
}

func (c *CartController) AddItem(ctx *gin.Context) {
	var req addItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	product, err := c.catalog.Get(req.ProductID)
	if errors.Is(err, catalog.ErrNotFound) {
		sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch product", err)
		return
	}
	if product.SoldOut {
		sendErrorResponse(ctx, http.StatusConflict, product.Name+" is sold out")
		return
	}

	engine, ok := c.engine(ctx)
	if !ok {
		return
	}

	err = engine.Add(product, req.Size, req.Color, req.Quantity)
	if errors.Is(err, cart.ErrInvalidQuantity) || errors.Is(err, cart.ErrInvalidSelection) {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidInput, err)
		return
	}
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, msgCartNotSaved, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":   product.Name + " added to cart",
		"cartTotal": engine.Total(),
		"cartCount": engine.Count(),
	})
}

type updateItemRequest struct {
	ProductID uint   `json:"productId" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Color     string `json:"color" binding:"required"`
	Quantity  int    `json:"quantity"`
}

func (c *CartController) UpdateItem(ctx *gin.Context) {
	var req updateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	engine, ok := c.engine(ctx)
	if !ok {
		return
	}

	if err := engine.UpdateQuantity(req.ProductID, req.Size, req.Color, req.Quantity); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, msgCartNotSaved, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, cartView(engine))
}

func (c *CartController) RemoveItem(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Query("productId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid productId")
		return
	}
	size := ctx.Query("size")
	color := ctx.Query("color")
	if size == "" || color == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "Missing size or color")
		return
	}

	engine, ok := c.engine(ctx)
	if !ok {
		return
	}

	if err := engine.Remove(uint(productId), size, color); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, msgCartNotSaved, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, cartView(engine))
}

func (c *CartController) ClearCart(ctx *gin.Context) {
	engine, ok := c.engine(ctx)
	if !ok {
		return
	}
	if err := engine.Clear(); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, msgCartNotSaved, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, cartView(engine))
}

// Checkout runs the order builder against the shopper's cart. Validation
// failures come back as 400 before anything is persisted; a storage
// failure is a retryable 502 with the cart intact.
func (c *CartController) Checkout(ctx *gin.Context) {
	var customer models.CustomerInfo
	if err := ctx.ShouldBindJSON(&customer); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	engine, ok := c.engine(ctx)
	if !ok {
		return
	}

	order, err := c.builder.Checkout(engine, customer)
	if err != nil {
		var validationErr *orders.ValidationError
		var submissionErr *orders.SubmissionError
		switch {
		case errors.As(err, &validationErr):
			sendErrorResponse(ctx, http.StatusBadRequest, validationErr.Error())
		case errors.As(err, &submissionErr):
			c.log.Error("order submission failed", zap.Error(err))
			sendErrorResponse(ctx, http.StatusBadGateway, "Failed to place order, please retry")
		default:
			respondWithError(ctx, http.StatusInternalServerError, msgInternalServerError, err)
		}
		return
	}

	if c.notifier != nil {
		go c.notifier.OrderPlaced(order)
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}
