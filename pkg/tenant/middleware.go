package tenant

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/dto"
)

// BusinessValidator define a interface para validação do negócio (tenant)
type BusinessValidator interface {
	ValidateBusiness(businessID string) (bool, error)
}

// Middleware garante que toda requisição autenticada carrega um negócio válido.
// O business ID é extraído das claims pelo middleware de autenticação; aqui apenas
// validamos e propagamos para o contexto da requisição, de forma que nenhum
// repositório seja chamado sem escopo de tenant.
func Middleware(validator BusinessValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		businessID := c.GetString("business_id")
		if businessID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Negócio não identificado",
				"A sessão não contém um negócio associado",
			))
			return
		}

		valid, err := validator.ValidateBusiness(businessID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
				http.StatusInternalServerError,
				"Erro ao validar negócio",
				err.Error(),
			))
			return
		}

		if !valid {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				http.StatusForbidden,
				"Negócio inválido",
				"O negócio informado não existe ou está inativo",
			))
			return
		}

		ctx := SetBusinessIDContext(c.Request.Context(), businessID)
		ctx = SetUserIDContext(ctx, c.GetString("user_id"))
		ctx = SetRoleContext(ctx, c.GetString("role"))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
