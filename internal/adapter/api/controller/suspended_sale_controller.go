package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/repository"
	businessdomain "github.com/hugohenrick/pdv-varejo/internal/domain/business"
	saledomain "github.com/hugohenrick/pdv-varejo/internal/domain/sale"
	suspendeddomain "github.com/hugohenrick/pdv-varejo/internal/domain/suspendedsale"
	"github.com/hugohenrick/pdv-varejo/pkg/logger"
	"github.com/hugohenrick/pdv-varejo/pkg/tenant"
)

// SuspendedSaleController gerencia carrinhos suspensos para retomada posterior
type SuspendedSaleController struct {
	suspendedRepo suspendeddomain.Repository
	businessRepo  businessdomain.Repository
	logger        logger.Logger
}

// NewSuspendedSaleController cria uma nova instância de SuspendedSaleController
func NewSuspendedSaleController(suspendedRepo suspendeddomain.Repository, businessRepo businessdomain.Repository, logger logger.Logger) *SuspendedSaleController {
	return &SuspendedSaleController{
		suspendedRepo: suspendedRepo,
		businessRepo:  businessRepo,
		logger:        logger,
	}
}

// Suspend estaciona o carrinho atual. Os totais são calculados com a
// configuração tributária vigente; o estoque não é tocado.
func (c *SuspendedSaleController) Suspend(ctx *gin.Context) {
	var req dto.SuspendSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	businessID := tenant.GetBusinessID(ctx)

	b, err := c.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		c.logger.Error("erro ao buscar configuração do negócio", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar negócio", err.Error()))
		return
	}

	totals, err := saledomain.ComputeTotals(dto.ToCartItems(req.Items), b.TaxRate, b.TaxInclusive, 0)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "carrinho inválido", err.Error()))
		return
	}

	items := make([]suspendeddomain.Item, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, suspendeddomain.Item{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	s, err := suspendeddomain.New(businessID, req.CustomerID, items,
		totals.Subtotal, totals.TaxAmount, totals.TotalAmount, b.TaxInclusive)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao suspender a venda", err.Error()))
		return
	}

	if err := c.suspendedRepo.Create(ctx, s); err != nil {
		c.logger.Error("erro ao gravar venda suspensa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gravar venda suspensa", err.Error()))
		return
	}

	c.logger.Info("venda suspensa", "sale_number", s.SaleNumber, "total", s.TotalAmount)

	ctx.JSON(http.StatusCreated, dto.ToSuspendedSaleResponse(s))
}

// Get retorna uma venda suspensa ativa com itens, para retomada no caixa
func (c *SuspendedSaleController) Get(ctx *gin.Context) {
	businessID := tenant.GetBusinessID(ctx)

	s, err := c.suspendedRepo.FindByID(ctx, businessID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSuspendedSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda suspensa não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar venda suspensa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda suspensa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSuspendedSaleResponse(s))
}

// List lista as vendas suspensas ativas
func (c *SuspendedSaleController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "50"))
	p := dto.NewPagination(page, size)

	businessID := tenant.GetBusinessID(ctx)

	sales, err := c.suspendedRepo.List(ctx, businessID, p.Size, p.Offset())
	if err != nil {
		c.logger.Error("erro ao listar vendas suspensas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas suspensas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSuspendedSaleListResponse(sales))
}

// Delete descarta uma venda suspensa ativa
func (c *SuspendedSaleController) Delete(ctx *gin.Context) {
	businessID := tenant.GetBusinessID(ctx)

	if err := c.suspendedRepo.Delete(ctx, businessID, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrSuspendedSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda suspensa não encontrada", ""))
			return
		}
		c.logger.Error("erro ao descartar venda suspensa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao descartar venda suspensa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("venda suspensa descartada", nil))
}
