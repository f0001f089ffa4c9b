package dto

import (
	"time"

	"github.com/hugohenrick/pdv-varejo/internal/domain/sale"
)

// SaleItemRequest representa uma linha do carrinho na requisição de venda
type SaleItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" binding:"gte=0"`
}

// SaleRequest representa a requisição de finalização de venda
type SaleRequest struct {
	CustomerID      string            `json:"customer_id"`
	Items           []SaleItemRequest `json:"items" binding:"required,min=1"`
	PaymentMethod   string            `json:"payment_method" binding:"required,oneof=cash card transfer credit"`
	DiscountAmount  float64           `json:"discount_amount" binding:"gte=0"`
	CashReceived    float64           `json:"cash_received" binding:"gte=0"`
	SuspendedSaleID string            `json:"suspended_sale_id"`
}

// SaleItemResponse representa a resposta de item de venda
type SaleItemResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	ProductSKU  string  `json:"product_sku,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TaxAmount   float64 `json:"tax_amount"`
	LineTotal   float64 `json:"line_total"`
}

// SaleResponse representa a resposta de venda
type SaleResponse struct {
	ID             string             `json:"id"`
	SaleNumber     string             `json:"sale_number"`
	UserID         string             `json:"user_id"`
	CustomerID     string             `json:"customer_id,omitempty"`
	Subtotal       float64            `json:"subtotal"`
	TaxAmount      float64            `json:"tax_amount"`
	DiscountAmount float64            `json:"discount_amount"`
	TotalAmount    float64            `json:"total_amount"`
	PaymentMethod  sale.PaymentMethod `json:"payment_method"`
	PaymentStatus  sale.PaymentStatus `json:"payment_status"`
	AmountPaid     float64            `json:"amount_paid"`
	AmountDue      float64            `json:"amount_due"`
	ChangeAmount   float64            `json:"change_amount"`
	ReceiptPrinted bool               `json:"receipt_printed"`
	Items          []SaleItemResponse `json:"items,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}

// SaleListResponse representa a resposta de lista de vendas
type SaleListResponse struct {
	Items      []SaleResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalPages int            `json:"total_pages"`
}

// ToCartItems converte os itens da requisição para itens do carrinho de domínio
func ToCartItems(items []SaleItemRequest) []sale.CartItem {
	cart := make([]sale.CartItem, 0, len(items))
	for _, it := range items {
		cart = append(cart, sale.CartItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return cart
}

// ToSaleResponse converte uma venda de domínio para o DTO de resposta
func ToSaleResponse(s *sale.Sale) SaleResponse {
	resp := SaleResponse{
		ID:             s.ID,
		SaleNumber:     s.SaleNumber,
		UserID:         s.UserID,
		CustomerID:     s.CustomerID,
		Subtotal:       s.Subtotal,
		TaxAmount:      s.TaxAmount,
		DiscountAmount: s.DiscountAmount,
		TotalAmount:    s.TotalAmount,
		PaymentMethod:  s.PaymentMethod,
		PaymentStatus:  s.PaymentStatus,
		AmountPaid:     s.AmountPaid,
		AmountDue:      s.AmountDue,
		ChangeAmount:   s.ChangeAmount,
		ReceiptPrinted: s.ReceiptPrinted,
		CreatedAt:      s.CreatedAt,
	}

	for _, it := range s.Items {
		resp.Items = append(resp.Items, SaleItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			ProductSKU:  it.ProductSKU,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TaxAmount:   it.TaxAmount,
			LineTotal:   it.LineTotal,
		})
	}

	return resp
}

// ToSaleListResponse converte uma lista de vendas para o DTO de resposta
func ToSaleListResponse(sales []*sale.Sale, total, page, size int) SaleListResponse {
	items := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, ToSaleResponse(s))
	}

	return SaleListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages(total, size),
	}
}
