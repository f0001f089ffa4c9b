package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/repository"
	debtdomain "github.com/hugohenrick/pdv-varejo/internal/domain/debt"
	"github.com/hugohenrick/pdv-varejo/pkg/logger"
	"github.com/hugohenrick/pdv-varejo/pkg/tenant"
)

// DebtController gerencia as dívidas de clientes
type DebtController struct {
	debtRepo debtdomain.Repository
	logger   logger.Logger
}

// NewDebtController cria uma nova instância de DebtController
func NewDebtController(debtRepo debtdomain.Repository, logger logger.Logger) *DebtController {
	return &DebtController{
		debtRepo: debtRepo,
		logger:   logger,
	}
}

// List lista as dívidas do negócio, pendentes primeiro
func (c *DebtController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "20"))
	p := dto.NewPagination(page, size)

	onlyPending := ctx.Query("pending") == "true"

	businessID := tenant.GetBusinessID(ctx)

	debts, err := c.debtRepo.List(ctx, businessID, onlyPending, p.Size, p.Offset())
	if err != nil {
		c.logger.Error("erro ao listar dívidas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar dívidas", err.Error()))
		return
	}

	totalPending, err := c.debtRepo.SumPending(ctx, businessID)
	if err != nil {
		c.logger.Error("erro ao somar dívidas pendentes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao somar dívidas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtListResponse(debts, totalPending))
}

// Get retorna uma dívida pelo ID
func (c *DebtController) Get(ctx *gin.Context) {
	businessID := tenant.GetBusinessID(ctx)

	d, err := c.debtRepo.FindByID(ctx, businessID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrDebtNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "dívida não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar dívida", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar dívida", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtResponse(d))
}

// RegisterPayment abate um pagamento da dívida
func (c *DebtController) RegisterPayment(ctx *gin.Context) {
	var req dto.DebtPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	businessID := tenant.GetBusinessID(ctx)

	d, err := c.debtRepo.FindByID(ctx, businessID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrDebtNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "dívida não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar dívida", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar dívida", err.Error()))
		return
	}

	if err := d.RegisterPayment(req.Amount); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "pagamento inválido", err.Error()))
		return
	}

	if err := c.debtRepo.Update(ctx, d); err != nil {
		c.logger.Error("erro ao atualizar dívida", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar dívida", err.Error()))
		return
	}

	c.logger.Info("pagamento de dívida registrado", "debt_id", d.ID, "amount", req.Amount, "status", d.Status)

	ctx.JSON(http.StatusOK, dto.ToDebtResponse(d))
}
