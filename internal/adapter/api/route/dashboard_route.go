package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/controller"
)

// RegisterDashboardRoutes registra as rotas do painel
func RegisterDashboardRoutes(r *gin.RouterGroup, dashboardController *controller.DashboardController, authMW, tenantMW gin.HandlerFunc) {
	dashboard := r.Group("/dashboard")
	dashboard.Use(authMW, tenantMW)
	{
		dashboard.GET("/stats", dashboardController.Stats)
	}
}
