package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/controller"
)

// RegisterNotificationRoutes registra as rotas de notificações, do stream SSE
// e da administração de conexões
func RegisterNotificationRoutes(r *gin.RouterGroup, notificationController *controller.NotificationController, authMW, tenantMW gin.HandlerFunc) {
	notifications := r.Group("/notifications")
	notifications.Use(authMW, tenantMW)
	{
		notifications.GET("", notificationController.List)
		notifications.PATCH("/:id/read", notificationController.MarkRead)
		notifications.PATCH("/read-all", notificationController.MarkAllRead)
		notifications.GET("/stream", notificationController.Stream)
	}

	connections := r.Group("/stream/connections")
	connections.Use(authMW, tenantMW)
	{
		connections.GET("", notificationController.Connections)
		connections.DELETE("/:id", notificationController.ForceCloseConnection)
		connections.POST("/cleanup", notificationController.CleanupConnections)
	}
}
