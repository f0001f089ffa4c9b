package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/repository"
	inventorydomain "github.com/hugohenrick/pdv-varejo/internal/domain/inventory"
	productdomain "github.com/hugohenrick/pdv-varejo/internal/domain/product"
	"github.com/hugohenrick/pdv-varejo/pkg/logger"
	"github.com/hugohenrick/pdv-varejo/pkg/tenant"
)

// ProductController gerencia as requisições do catálogo de produtos
type ProductController struct {
	productRepo   productdomain.Repository
	inventoryRepo inventorydomain.Repository
	logger        logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(productRepo productdomain.Repository, inventoryRepo inventorydomain.Repository, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

// Create cria um novo produto. Estoque inicial positivo gera o movimento de
// entrada na mesma transação.
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	businessID := tenant.GetBusinessID(ctx)

	trackStock := true
	if req.TrackStock != nil {
		trackStock = *req.TrackStock
	}

	p, err := productdomain.NewProduct(businessID, req.CategoryID, req.Name, req.SKU, req.Barcode,
		req.CostPrice, req.SellingPrice, req.StockQuantity, req.MinStock, trackStock)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar produto", err.Error()))
		return
	}

	if err := c.productRepo.Create(ctx, p, inventorydomain.ReasonInitialStock); err != nil {
		if errors.Is(err, repository.ErrProductDuplicateSKU) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "SKU já cadastrado", err.Error()))
			return
		}
		c.logger.Error("erro ao criar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(p))
}

// Get retorna um produto pelo ID
func (c *ProductController) Get(ctx *gin.Context) {
	businessID := tenant.GetBusinessID(ctx)

	p, err := c.productRepo.FindByID(ctx, businessID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// List lista os produtos aplicando os filtros de busca, categoria e situação
// de estoque
func (c *ProductController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	p := dto.NewPagination(page, size)

	if state := ctx.Query("stock_state"); state != "" && !productdomain.ValidStockState(state) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "situação de estoque inválida", state))
		return
	}

	filter := productdomain.ListFilter{
		Search:     ctx.Query("q"),
		CategoryID: ctx.Query("category_id"),
		StockState: productdomain.StockState(ctx.Query("stock_state")),
		Limit:      p.Size,
		Offset:     p.Offset(),
	}

	businessID := tenant.GetBusinessID(ctx)

	products, err := c.productRepo.List(ctx, businessID, filter)
	if err != nil {
		c.logger.Error("erro ao listar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	total, err := c.productRepo.Count(ctx, businessID, filter)
	if err != nil {
		c.logger.Error("erro ao contar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products, total, p.Page, p.Size))
}

// Update atualiza os dados cadastrais de um produto. O estoque não é alterado
// por aqui; ajustes passam por AdjustStock.
func (c *ProductController) Update(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	businessID := tenant.GetBusinessID(ctx)

	p, err := c.productRepo.FindByID(ctx, businessID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	trackStock := p.TrackStock
	if req.TrackStock != nil {
		trackStock = *req.TrackStock
	}

	if err := p.Update(req.CategoryID, req.Name, req.SKU, req.Barcode, req.CostPrice, req.SellingPrice, req.MinStock, trackStock); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar produto", err.Error()))
		return
	}

	if err := c.productRepo.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrProductDuplicateSKU) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "SKU já cadastrado", err.Error()))
			return
		}
		c.logger.Error("erro ao atualizar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// Delete remove um produto: exclusão lógica se houver vendas referenciando,
// física caso contrário
func (c *ProductController) Delete(ctx *gin.Context) {
	businessID := tenant.GetBusinessID(ctx)

	if err := c.productRepo.Delete(ctx, businessID, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		c.logger.Error("erro ao excluir produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("produto excluído", nil))
}

// AdjustStock aplica um ajuste manual de estoque e grava o movimento
func (c *ProductController) AdjustStock(ctx *gin.Context) {
	var req dto.StockAdjustmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	businessID := tenant.GetBusinessID(ctx)
	userID := tenant.GetUserID(ctx)

	p, err := c.productRepo.AdjustStock(ctx, businessID, ctx.Param("id"), userID, req.Quantity, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
		case errors.Is(err, repository.ErrProductStockFloor):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "ajuste deixaria o estoque negativo", err.Error()))
		default:
			c.logger.Error("erro ao ajustar estoque", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao ajustar estoque", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// Movements lista o razão de movimentos de estoque de um produto
func (c *ProductController) Movements(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "20"))
	p := dto.NewPagination(page, size)

	businessID := tenant.GetBusinessID(ctx)

	movements, err := c.inventoryRepo.ListByProduct(ctx, businessID, ctx.Param("id"), p.Size, p.Offset())
	if err != nil {
		c.logger.Error("erro ao listar movimentos de estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar movimentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMovementListResponse(movements))
}

// LowStock lista os produtos com estoque baixo ou esgotado
func (c *ProductController) LowStock(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	businessID := tenant.GetBusinessID(ctx)

	products, err := c.productRepo.FindLowStock(ctx, businessID, limit)
	if err != nil {
		c.logger.Error("erro ao listar produtos com estoque baixo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for _, prod := range products {
		items = append(items, dto.ToProductResponse(prod))
	}

	ctx.JSON(http.StatusOK, dto.ProductListResponse{
		Items: items,
		Total: len(items),
		Page:  1,
		Size:  limit,
	})
}
