package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/offstore/offstore-api/controllers"
)

func AuthRoutes(server *gin.Engine, ac *controllers.AuthController) {
	server.POST("/api/admin/login", ac.Login)
}
