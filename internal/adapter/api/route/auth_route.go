package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/controller"
)

// RegisterAuthRoutes registra as rotas de autenticação e usuários
func RegisterAuthRoutes(r *gin.RouterGroup, authController *controller.AuthController, authMW, tenantMW gin.HandlerFunc) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.GET("/me", authMW, tenantMW, authController.Me)
	}

	users := r.Group("/users")
	users.Use(authMW, tenantMW)
	{
		users.POST("", authController.CreateUser)
		users.GET("", authController.ListUsers)
	}
}
