package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/controller"
)

// RegisterProductRoutes registra as rotas do catálogo de produtos
func RegisterProductRoutes(r *gin.RouterGroup, productController *controller.ProductController, authMW, tenantMW gin.HandlerFunc) {
	products := r.Group("/products")
	products.Use(authMW, tenantMW)
	{
		products.POST("", productController.Create)
		products.GET("", productController.List)
		products.GET("/low-stock", productController.LowStock)
		products.GET("/:id", productController.Get)
		products.PUT("/:id", productController.Update)
		products.DELETE("/:id", productController.Delete)
		products.POST("/:id/stock", productController.AdjustStock)
		products.GET("/:id/movements", productController.Movements)
	}
}
