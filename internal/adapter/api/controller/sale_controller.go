package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/repository"
	businessdomain "github.com/hugohenrick/pdv-varejo/internal/domain/business"
	notificationdomain "github.com/hugohenrick/pdv-varejo/internal/domain/notification"
	saledomain "github.com/hugohenrick/pdv-varejo/internal/domain/sale"
	"github.com/hugohenrick/pdv-varejo/pkg/logger"
	"github.com/hugohenrick/pdv-varejo/pkg/tenant"
)

// SaleController gerencia o fechamento e a consulta de vendas
type SaleController struct {
	saleRepo         saledomain.Repository
	businessRepo     businessdomain.Repository
	notificationRepo notificationdomain.Repository
	logger           logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(saleRepo saledomain.Repository, businessRepo businessdomain.Repository, notificationRepo notificationdomain.Repository, logger logger.Logger) *SaleController {
	return &SaleController{
		saleRepo:         saleRepo,
		businessRepo:     businessRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Create fecha uma venda: calcula totais com a configuração tributária do
// negócio, aplica as regras de pagamento e persiste tudo em uma única
// transação, incluindo baixa de estoque, movimentos, dívida e a conclusão da
// venda suspensa quando informada.
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	businessID := tenant.GetBusinessID(ctx)
	userID := tenant.GetUserID(ctx)

	b, err := c.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		c.logger.Error("erro ao buscar configuração do negócio", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar negócio", err.Error()))
		return
	}

	if req.PaymentMethod == string(saledomain.PaymentCredit) && req.CustomerID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "venda fiado exige cliente", ""))
		return
	}

	s, err := saledomain.NewSale(businessID, userID, req.CustomerID, dto.ToCartItems(req.Items),
		saledomain.PaymentMethod(req.PaymentMethod), b.TaxRate, b.TaxInclusive, req.DiscountAmount, req.CashReceived)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao montar a venda", err.Error()))
		return
	}

	if err := c.saleRepo.CreateSale(ctx, s, req.SuspendedSaleID); err != nil {
		switch {
		case errors.Is(err, repository.ErrSaleProductNotFound):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "produto do carrinho não encontrado", err.Error()))
		case errors.Is(err, repository.ErrInsufficientStock):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "estoque insuficiente", err.Error()))
		case errors.Is(err, repository.ErrSaleNumberTaken):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "número de venda em conflito, tente novamente", err.Error()))
		case errors.Is(err, repository.ErrSuspendedNotFinalized):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "venda suspensa não está mais ativa", err.Error()))
		default:
			c.logger.Error("erro ao gravar venda", "sale_number", s.SaleNumber, "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gravar venda", err.Error()))
		}
		return
	}

	c.notifySale(ctx, s)
	c.logger.Info("venda registrada", "sale_number", s.SaleNumber, "total", s.TotalAmount, "payment", s.PaymentMethod)

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(s))
}

// notifySale registra a notificação de venda concluída. Falha aqui não desfaz
// a venda; apenas registramos o erro.
func (c *SaleController) notifySale(ctx *gin.Context, s *saledomain.Sale) {
	payload, err := json.Marshal(map[string]interface{}{
		"sale_id":     s.ID,
		"sale_number": s.SaleNumber,
		"total":       s.TotalAmount,
	})
	if err != nil {
		c.logger.Error("erro ao montar payload da notificação de venda", "error", err)
		return
	}

	n, err := notificationdomain.New(s.BusinessID, notificationdomain.TypeSale,
		fmt.Sprintf("Venda %s concluída", s.SaleNumber),
		fmt.Sprintf("Total de R$ %.2f em %s", s.TotalAmount, s.PaymentMethod),
		notificationdomain.PriorityNormal, payload)
	if err != nil {
		c.logger.Error("erro ao montar notificação de venda", "error", err)
		return
	}

	if err := c.notificationRepo.Create(ctx, n); err != nil {
		c.logger.Error("erro ao gravar notificação de venda", "sale_number", s.SaleNumber, "error", err)
	}
}

// Get retorna uma venda com seus itens
func (c *SaleController) Get(ctx *gin.Context) {
	businessID := tenant.GetBusinessID(ctx)

	s, err := c.saleRepo.FindByID(ctx, businessID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s))
}

// List lista as vendas aplicando filtros de período, cliente e situação do
// pagamento. O período é meio-aberto: from é inclusivo e to é exclusivo; a
// forma somente-data (AAAA-MM-DD) em to avança um dia para cobrir o dia todo.
func (c *SaleController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	p := dto.NewPagination(page, size)

	filter := saledomain.ListFilter{
		CustomerID:    ctx.Query("customer_id"),
		PaymentStatus: saledomain.PaymentStatus(ctx.Query("payment_status")),
		Limit:         p.Size,
		Offset:        p.Offset(),
	}

	if from := ctx.Query("from"); from != "" {
		t, err := parseDateParam(from, false)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data inicial inválida", from))
			return
		}
		filter.From = &t
	}
	if to := ctx.Query("to"); to != "" {
		t, err := parseDateParam(to, true)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data final inválida", to))
			return
		}
		filter.To = &t
	}

	businessID := tenant.GetBusinessID(ctx)

	sales, err := c.saleRepo.List(ctx, businessID, filter)
	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	total, err := c.saleRepo.Count(ctx, businessID, filter)
	if err != nil {
		c.logger.Error("erro ao contar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales, total, p.Page, p.Size))
}

// parseDateParam aceita um instante RFC3339 ou somente a data (AAAA-MM-DD).
// Como o limite superior do filtro é exclusivo, a forma somente-data em
// upperBound avança um dia para que o próprio dia entre no período.
func parseDateParam(value string, upperBound bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}
	if upperBound {
		t = t.AddDate(0, 0, 1)
	}
	return t, nil
}

// MarkReceiptPrinted marca o recibo da venda como impresso
func (c *SaleController) MarkReceiptPrinted(ctx *gin.Context) {
	businessID := tenant.GetBusinessID(ctx)

	if err := c.saleRepo.MarkReceiptPrinted(ctx, businessID, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
			return
		}
		c.logger.Error("erro ao marcar recibo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao marcar recibo", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("recibo marcado como impresso", nil))
}
