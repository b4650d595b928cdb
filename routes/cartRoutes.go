package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/offstore/offstore-api/controllers"
)

func CartRoutes(server *gin.Engine, cc *controllers.CartController) {
	carts := server.Group("/api/cart")
	{
		carts.POST("/session", cc.CreateSession)
		carts.GET("/:shopperId", cc.GetCart)
		carts.POST("/:shopperId/items", cc.AddItem)
		carts.PUT("/:shopperId/items", cc.UpdateItem)
		carts.DELETE("/:shopperId/items", cc.RemoveItem)
		carts.DELETE("/:shopperId", cc.ClearCart)
		carts.POST("/:shopperId/checkout", cc.Checkout)
	}
}
