package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/offstore/offstore-api/controllers"
)

func ProductRoutes(server *gin.Engine, pc *controllers.ProductController, requireAdmin gin.HandlerFunc) {
	products := server.Group("/api/products")
	{
		products.GET("", pc.GetProducts)
		products.GET("/latest", pc.GetLatestProduct)
		products.GET("/category/:name", pc.GetProductsByCategory)
		products.GET("/:id", pc.GetProduct)

		products.POST("", requireAdmin, pc.CreateProduct)
		products.PUT("/:id", requireAdmin, pc.UpdateProduct)
		products.DELETE("/:id", requireAdmin, pc.DeleteProduct)
		products.POST("/:id/images", requireAdmin, pc.UploadProductImages)
	}
}
