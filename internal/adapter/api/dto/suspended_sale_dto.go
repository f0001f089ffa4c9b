package dto

import (
	"time"

	"github.com/hugohenrick/pdv-varejo/internal/domain/suspendedsale"
)

// SuspendSaleRequest representa a requisição de suspensão do carrinho atual
type SuspendSaleRequest struct {
	CustomerID string            `json:"customer_id"`
	Items      []SaleItemRequest `json:"items" binding:"required,min=1"`
}

// SuspendedSaleItemResponse representa a resposta de item de venda suspensa
type SuspendedSaleItemResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

// SuspendedSaleResponse representa a resposta de venda suspensa
type SuspendedSaleResponse struct {
	ID           string                      `json:"id"`
	SaleNumber   string                      `json:"sale_number"`
	CustomerID   string                      `json:"customer_id,omitempty"`
	CustomerName string                      `json:"customer_name,omitempty"`
	Subtotal     float64                     `json:"subtotal"`
	TaxAmount    float64                     `json:"tax_amount"`
	TotalAmount  float64                     `json:"total_amount"`
	TaxInclusive bool                        `json:"tax_inclusive"`
	Items        []SuspendedSaleItemResponse `json:"items,omitempty"`
	CreatedAt    time.Time                   `json:"created_at"`
}

// SuspendedSaleListResponse representa a resposta de lista de vendas suspensas
type SuspendedSaleListResponse struct {
	Items []SuspendedSaleResponse `json:"items"`
	Total int                     `json:"total"`
}

// ToSuspendedSaleResponse converte uma venda suspensa de domínio para o DTO de resposta
func ToSuspendedSaleResponse(s *suspendedsale.SuspendedSale) SuspendedSaleResponse {
	resp := SuspendedSaleResponse{
		ID:           s.ID,
		SaleNumber:   s.SaleNumber,
		CustomerID:   s.CustomerID,
		CustomerName: s.CustomerName,
		Subtotal:     s.Subtotal,
		TaxAmount:    s.TaxAmount,
		TotalAmount:  s.TotalAmount,
		TaxInclusive: s.TaxInclusive,
		CreatedAt:    s.CreatedAt,
	}

	for _, it := range s.Items {
		resp.Items = append(resp.Items, SuspendedSaleItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
		})
	}

	return resp
}

// ToSuspendedSaleListResponse converte uma lista de vendas suspensas para o DTO de resposta
func ToSuspendedSaleListResponse(sales []*suspendedsale.SuspendedSale) SuspendedSaleListResponse {
	items := make([]SuspendedSaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, ToSuspendedSaleResponse(s))
	}

	return SuspendedSaleListResponse{
		Items: items,
		Total: len(items),
	}
}
