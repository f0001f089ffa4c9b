package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/dto"
	dashboarddomain "github.com/hugohenrick/pdv-varejo/internal/domain/dashboard"
	debtdomain "github.com/hugohenrick/pdv-varejo/internal/domain/debt"
	"github.com/hugohenrick/pdv-varejo/internal/infrastructure/stream"
	"github.com/hugohenrick/pdv-varejo/pkg/logger"
	"github.com/hugohenrick/pdv-varejo/pkg/tenant"
)

const topProductsLimit = 5
const lowStockLimit = 10

// DashboardController monta as estatísticas do painel
type DashboardController struct {
	dashboardRepo dashboarddomain.Repository
	debtRepo      debtdomain.Repository
	statsCache    *stream.StatsCache
	logger        logger.Logger
}

// NewDashboardController cria uma nova instância de DashboardController
func NewDashboardController(dashboardRepo dashboarddomain.Repository, debtRepo debtdomain.Repository, statsCache *stream.StatsCache, logger logger.Logger) *DashboardController {
	return &DashboardController{
		dashboardRepo: dashboardRepo,
		debtRepo:      debtRepo,
		statsCache:    statsCache,
		logger:        logger,
	}
}

// Stats retorna as estatísticas agregadas da janela pedida. O resultado fica
// em cache por negócio e janela; estatísticas podem chegar alguns segundos
// atrasadas em relação às vendas.
func (c *DashboardController) Stats(ctx *gin.Context) {
	rangeParam := ctx.DefaultQuery("range", string(dashboarddomain.RangeToday))
	if !dashboarddomain.ValidRange(rangeParam) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "janela inválida", rangeParam))
		return
	}
	r := dashboarddomain.Range(rangeParam)

	businessID := tenant.GetBusinessID(ctx)

	if cached, hit, err := c.statsCache.Get(ctx, businessID, r); err != nil {
		c.logger.Warn("erro ao consultar cache de estatísticas", "error", err)
	} else if hit {
		ctx.JSON(http.StatusOK, cached)
		return
	}

	stats, err := c.buildStats(ctx, businessID, r)
	if err != nil {
		c.logger.Error("erro ao montar estatísticas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar estatísticas", err.Error()))
		return
	}

	if err := c.statsCache.Set(ctx, businessID, r, stats); err != nil {
		c.logger.Warn("erro ao gravar cache de estatísticas", "error", err)
	}

	ctx.JSON(http.StatusOK, stats)
}

// buildStats agrega as consultas do painel para uma janela
func (c *DashboardController) buildStats(ctx *gin.Context, businessID string, r dashboarddomain.Range) (*dashboarddomain.Stats, error) {
	now := time.Now()
	from, to := r.Window(now)
	prevFrom, prevTo := r.Previous(now)

	current, err := c.dashboardRepo.SalesSummary(ctx, businessID, from, to)
	if err != nil {
		return nil, err
	}

	previous, err := c.dashboardRepo.SalesSummary(ctx, businessID, prevFrom, prevTo)
	if err != nil {
		return nil, err
	}

	topProducts, err := c.dashboardRepo.TopProducts(ctx, businessID, from, to, topProductsLimit)
	if err != nil {
		return nil, err
	}

	lowStock, err := c.dashboardRepo.LowStock(ctx, businessID, lowStockLimit)
	if err != nil {
		return nil, err
	}

	pendingDebts, err := c.debtRepo.SumPending(ctx, businessID)
	if err != nil {
		return nil, err
	}

	return &dashboarddomain.Stats{
		Range:         r,
		Sales:         current,
		PreviousSales: previous,
		ChangePercent: dashboarddomain.ChangePercent(current.Total, previous.Total),
		TopProducts:   topProducts,
		LowStock:      lowStock,
		PendingDebts:  pendingDebts,
		GeneratedAt:   now,
	}, nil
}
