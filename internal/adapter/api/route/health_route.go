package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/controller"
)

// RegisterHealthRoutes registra a rota de sondagem de saúde
func RegisterHealthRoutes(r *gin.Engine, healthController *controller.HealthController) {
	r.GET("/health", healthController.Health)
}
