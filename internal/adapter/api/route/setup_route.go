package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/controller"
)

// RegisterSetupRoutes registra a rota pública de criação de negócio e as
// rotas autenticadas de cadastro do negócio
func RegisterSetupRoutes(r *gin.RouterGroup, businessController *controller.BusinessController, authMW, tenantMW gin.HandlerFunc) {
	r.POST("/setup", businessController.Setup)

	business := r.Group("/business")
	business.Use(authMW, tenantMW)
	{
		business.GET("", businessController.Get)
		business.PUT("", businessController.Update)
	}
}
