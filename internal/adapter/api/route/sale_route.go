package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/controller"
)

// RegisterSaleRoutes registra as rotas de vendas e vendas suspensas
func RegisterSaleRoutes(r *gin.RouterGroup, saleController *controller.SaleController, suspendedController *controller.SuspendedSaleController, authMW, tenantMW gin.HandlerFunc) {
	sales := r.Group("/sales")
	sales.Use(authMW, tenantMW)
	{
		sales.POST("", saleController.Create)
		sales.GET("", saleController.List)
		sales.GET("/:id", saleController.Get)
		sales.PATCH("/:id/receipt", saleController.MarkReceiptPrinted)
	}

	suspended := r.Group("/suspended-sales")
	suspended.Use(authMW, tenantMW)
	{
		suspended.POST("", suspendedController.Suspend)
		suspended.GET("", suspendedController.List)
		suspended.GET("/:id", suspendedController.Get)
		suspended.DELETE("/:id", suspendedController.Delete)
	}
}
