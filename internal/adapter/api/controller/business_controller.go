package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/repository"
	businessdomain "github.com/hugohenrick/pdv-varejo/internal/domain/business"
	userdomain "github.com/hugohenrick/pdv-varejo/internal/domain/user"
	"github.com/hugohenrick/pdv-varejo/pkg/logger"
	"github.com/hugohenrick/pdv-varejo/pkg/tenant"
)

// BusinessController gerencia o cadastro do negócio (tenant)
type BusinessController struct {
	businessRepo businessdomain.Repository
	userRepo     userdomain.Repository
	logger       logger.Logger
}

// NewBusinessController cria uma nova instância de BusinessController
func NewBusinessController(businessRepo businessdomain.Repository, userRepo userdomain.Repository, logger logger.Logger) *BusinessController {
	return &BusinessController{
		businessRepo: businessRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// Setup cria um negócio com seu usuário administrador. É a única rota de
// escrita sem autenticação; tudo que vem depois é escopado pelo negócio.
func (c *BusinessController) Setup(ctx *gin.Context) {
	var req dto.SetupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	b, err := businessdomain.NewBusiness(req.BusinessName, req.BusinessDocument, req.BusinessEmail, req.BusinessPhone)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar negócio", err.Error()))
		return
	}
	b.TaxRate = req.TaxRate
	b.TaxInclusive = req.TaxInclusive

	admin, err := userdomain.NewUser(b.ID, req.AdminName, req.AdminEmail, req.AdminPassword, userdomain.RoleAdmin)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar administrador", err.Error()))
		return
	}

	if exists, err := c.userRepo.ExistsByEmail(ctx, req.AdminEmail); err != nil {
		c.logger.Error("erro ao verificar email do administrador", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao criar negócio", err.Error()))
		return
	} else if exists {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "email já cadastrado", ""))
		return
	}

	if err := c.businessRepo.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrBusinessDuplicate) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "negócio já cadastrado", err.Error()))
			return
		}
		c.logger.Error("erro ao criar negócio", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar negócio", err.Error()))
		return
	}

	if err := c.userRepo.Create(ctx, admin); err != nil {
		c.logger.Error("erro ao criar administrador do negócio", "business_id", b.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar administrador", err.Error()))
		return
	}

	c.logger.Info("negócio criado", "business_id", b.ID, "name", b.Name)

	ctx.JSON(http.StatusCreated, dto.SetupResponse{
		Business: dto.ToBusinessResponse(b),
		Admin:    dto.ToUserResponse(admin),
	})
}

// Get retorna os dados do negócio autenticado
func (c *BusinessController) Get(ctx *gin.Context) {
	businessID := tenant.GetBusinessID(ctx)

	b, err := c.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "negócio não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar negócio", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar negócio", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBusinessResponse(b))
}

// Update atualiza o cadastro e a configuração tributária do negócio.
// Restrito a administradores.
func (c *BusinessController) Update(ctx *gin.Context) {
	if ctx.GetString("role") != string(userdomain.RoleAdmin) {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "apenas administradores podem alterar o negócio", ""))
		return
	}

	var req dto.BusinessRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	businessID := tenant.GetBusinessID(ctx)

	b, err := c.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "negócio não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar negócio", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar negócio", err.Error()))
		return
	}

	b.Name = req.Name
	b.Document = req.Document
	b.Email = req.Email
	b.Phone = req.Phone
	b.TaxRate = req.TaxRate
	b.TaxInclusive = req.TaxInclusive

	if err := c.businessRepo.Update(ctx, b); err != nil {
		c.logger.Error("erro ao atualizar negócio", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar negócio", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBusinessResponse(b))
}
