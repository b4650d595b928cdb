package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/offstore/offstore-api/orders"
	"go.uber.org/zap"
)

type OrderController struct {
	repo    orders.Repository
	manager *orders.LifecycleManager
	log     *zap.Logger
}

func NewOrderController(repo orders.Repository, manager *orders.LifecycleManager, log *zap.Logger) *OrderController {
	return &OrderController{repo: repo, manager: manager, log: log}
}

func orderID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return 0, false
	}
	return uint(id), true
}

func (c *OrderController) GetOrders(ctx *gin.Context) {
	list, err := c.repo.List()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

func (c *OrderController) GetOrder(ctx *gin.Context) {
	id, ok := orderID(ctx)
	if !ok {
		return
	}

	order, err := c.repo.Get(id)
	if err != nil {
		c.respondOrderError(ctx, err, "Failed to fetch order")
		return
	}
	ctx.JSON(http.StatusOK, order)
}

// UpdateOrderStatus is the permissive admin operation: any enumerated
// status from any current status.
func (c *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	id, ok := orderID(ctx)
	if !ok {
		return
	}

	order, err := c.manager.SetStatus(id, orderStatusData.Status)
	if err != nil {
		c.respondOrderError(ctx, err, "Failed to update order status")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Order status updated successfully.",
		"order":   order,
	})
}

// AdvanceOrder is the strict operation: one step along the canonical
// forward sequence.
func (c *OrderController) AdvanceOrder(ctx *gin.Context) {
	id, ok := orderID(ctx)
	if !ok {
		return
	}

	order, err := c.manager.Advance(id)
	if err != nil {
		c.respondOrderError(ctx, err, "Failed to advance order")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Order advanced successfully.",
		"order":   order,
	})
}

func (c *OrderController) CancelOrder(ctx *gin.Context) {
	id, ok := orderID(ctx)
	if !ok {
		return
	}

	order, err := c.manager.Cancel(id)
	if err != nil {
		c.respondOrderError(ctx, err, "Failed to cancel order")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Order cancelled.",
		"order":   order,
	})
}

func (c *OrderController) DeleteOrder(ctx *gin.Context) {
	id, ok := orderID(ctx)
	if !ok {
		return
	}

	if err := c.manager.Delete(id); err != nil {
		c.respondOrderError(ctx, err, "Failed to delete order")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order deleted successfully."})
}

func (c *OrderController) respondOrderError(ctx *gin.Context, err error, fallback string) {
	var notFound *orders.NotFoundError
	var invalidStatus *orders.InvalidStatusError
	switch {
	case errors.As(err, &notFound):
		sendErrorResponse(ctx, http.StatusNotFound, notFound.Error())
	case errors.As(err, &invalidStatus):
		sendErrorResponse(ctx, http.StatusBadRequest, invalidStatus.Error())
	default:
		c.log.Error(fallback, zap.Error(err))
		respondWithError(ctx, http.StatusInternalServerError, fallback, err)
	}
}
