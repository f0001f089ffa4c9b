package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/controller"
)

// RegisterDebtRoutes registra as rotas do módulo de dívidas
func RegisterDebtRoutes(r *gin.RouterGroup, debtController *controller.DebtController, authMW, tenantMW gin.HandlerFunc) {
	debts := r.Group("/debts")
	debts.Use(authMW, tenantMW)
	{
		debts.GET("", debtController.List)
		debts.GET("/:id", debtController.Get)
		debts.POST("/:id/payments", debtController.RegisterPayment)
	}
}
