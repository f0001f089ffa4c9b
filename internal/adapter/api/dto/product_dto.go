package dto

import (
	"time"

	"github.com/hugohenrick/pdv-varejo/internal/domain/inventory"
	"github.com/hugohenrick/pdv-varejo/internal/domain/product"
)

// ProductRequest representa a requisição de produto
type ProductRequest struct {
	CategoryID    string  `json:"category_id"`
	Name          string  `json:"name" binding:"required"`
	SKU           string  `json:"sku"`
	Barcode       string  `json:"barcode"`
	CostPrice     float64 `json:"cost_price" binding:"gte=0"`
	SellingPrice  float64 `json:"selling_price" binding:"gte=0"`
	StockQuantity int     `json:"stock_quantity" binding:"gte=0"`
	MinStock      int     `json:"min_stock" binding:"gte=0"`
	TrackStock    *bool   `json:"track_stock"`
}

// StockAdjustmentRequest representa a requisição de ajuste manual de estoque
type StockAdjustmentRequest struct {
	Quantity int    `json:"quantity" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
}

// ProductResponse representa a resposta de produto
type ProductResponse struct {
	ID            string             `json:"id"`
	CategoryID    string             `json:"category_id,omitempty"`
	Name          string             `json:"name"`
	SKU           string             `json:"sku,omitempty"`
	Barcode       string             `json:"barcode,omitempty"`
	CostPrice     float64            `json:"cost_price"`
	SellingPrice  float64            `json:"selling_price"`
	StockQuantity int                `json:"stock_quantity"`
	MinStock      int                `json:"min_stock"`
	TrackStock    bool               `json:"track_stock"`
	StockState    product.StockState `json:"stock_state"`
	Status        product.Status     `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// ProductListResponse representa a resposta de lista de produtos
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
}

// MovementResponse representa a resposta de movimento de estoque
type MovementResponse struct {
	ID        string                 `json:"id"`
	ProductID string                 `json:"product_id"`
	UserID    string                 `json:"user_id,omitempty"`
	Type      inventory.MovementType `json:"movement_type"`
	Quantity  int                    `json:"quantity"`
	Reason    string                 `json:"reason"`
	CreatedAt time.Time              `json:"created_at"`
}

// MovementListResponse representa a resposta de lista de movimentos
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}

// ToProductResponse converte um produto de domínio para o DTO de resposta
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		CategoryID:    p.CategoryID,
		Name:          p.Name,
		SKU:           p.SKU,
		Barcode:       p.Barcode,
		CostPrice:     p.CostPrice,
		SellingPrice:  p.SellingPrice,
		StockQuantity: p.StockQuantity,
		MinStock:      p.MinStock,
		TrackStock:    p.TrackStock,
		StockState:    p.StockState(),
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToProductListResponse converte uma lista de produtos para o DTO de resposta
func ToProductListResponse(products []*product.Product, total, page, size int) ProductListResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, ToProductResponse(p))
	}

	return ProductListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages(total, size),
	}
}

// ToMovementResponse converte um movimento de domínio para o DTO de resposta
func ToMovementResponse(m *inventory.Movement) MovementResponse {
	return MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		UserID:    m.UserID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		CreatedAt: m.CreatedAt,
	}
}

// ToMovementListResponse converte uma lista de movimentos para o DTO de resposta
func ToMovementListResponse(movements []*inventory.Movement) MovementListResponse {
	items := make([]MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, ToMovementResponse(m))
	}

	return MovementListResponse{
		Items: items,
		Total: len(items),
	}
}
