package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Offstore API.

The following are the endpoints for this API:

AUTH
- POST "/api/admin/login" - Admin login

PRODUCT
- GET "/api/products" - Get all products
- GET "/api/products/latest" - Get the latest product
- GET "/api/products/category/:name" - Get products by category
- GET "/api/products/:id" - Get product by ID
- POST "/api/products" - Create new product (admin)
- PUT "/api/products/:id" - Update product (admin)
- DELETE "/api/products/:id" - Delete product (admin)
- POST "/api/products/:id/images" - Upload product images (admin)

CART
- POST "/api/cart/session" - Create a shopper session
- GET "/api/cart/:shopperId" - Get the cart with totals
- POST "/api/cart/:shopperId/items" - Add an item to the cart
- PUT "/api/cart/:shopperId/items" - Update an item quantity
- DELETE "/api/cart/:shopperId/items" - Remove an item
- DELETE "/api/cart/:shopperId" - Clear the cart
- POST "/api/cart/:shopperId/checkout" - Place an order

ORDER (admin)
- GET "/api/orders" - Retrieve all orders
- GET "/api/orders/:orderId" - Get order by ID
- PUT "/api/orders/:orderId/status" - Set order status
- POST "/api/orders/:orderId/advance" - Advance order status
- POST "/api/orders/:orderId/cancel" - Cancel order
- DELETE "/api/orders/:orderId" - Delete order by ID`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
