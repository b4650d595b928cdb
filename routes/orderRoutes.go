package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/offstore/offstore-api/controllers"
)

func OrderRoutes(server *gin.Engine, oc *controllers.OrderController, requireAdmin gin.HandlerFunc) {
	orders := server.Group("/api/orders", requireAdmin)
	{
		orders.GET("", oc.GetOrders)
		orders.GET("/:orderId", oc.GetOrder)
		orders.PUT("/:orderId/status", oc.UpdateOrderStatus)
		orders.POST("/:orderId/advance", oc.AdvanceOrder)
		orders.POST("/:orderId/cancel", oc.CancelOrder)
		orders.DELETE("/:orderId", oc.DeleteOrder)
	}
}
