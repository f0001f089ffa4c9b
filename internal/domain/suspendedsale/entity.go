package suspendedsale

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/pdv-varejo/internal/domain/sale"
)

var (
	ErrEmptyCart     = errors.New("a venda suspensa deve ter pelo menos um item")
	ErrNotActive     = errors.New("venda suspensa não está mais ativa")
	ErrInvalidStatus = errors.New("transição de status inválida")
)

// Status representa o estado da venda suspensa.
// Máquina de estados: active -> completed (finalização) | active -> excluída.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// SuspendedSale é um carrinho estacionado para retomada posterior. Não há
// baixa de estoque até que o carrinho vire uma venda real.
type SuspendedSale struct {
	ID           string    `json:"id"`
	BusinessID   string    `json:"business_id"`
	CustomerID   string    `json:"customer_id,omitempty"`
	CustomerName string    `json:"customer_name,omitempty"` // Preenchido na retomada
	SaleNumber   string    `json:"sale_number"`
	Subtotal     float64   `json:"subtotal"`
	TaxAmount    float64   `json:"tax_amount"`
	TotalAmount  float64   `json:"total_amount"`
	TaxInclusive bool      `json:"tax_inclusive"`
	Status       Status    `json:"status"`
	Items        []Item    `json:"items,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Item é uma linha serializada do carrinho suspenso
type Item struct {
	ID          string  `json:"id"`
	SuspendedID string  `json:"suspended_sale_id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

// New cria uma venda suspensa a partir do carrinho atual
func New(businessID, customerID string, items []Item, subtotal, taxAmount, totalAmount float64, taxInclusive bool) (*SuspendedSale, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	now := time.Now()
	s := &SuspendedSale{
		ID:           uuid.New().String(),
		BusinessID:   businessID,
		CustomerID:   customerID,
		SaleNumber:   sale.GenerateSaleNumber(now),
		Subtotal:     sale.Round2(subtotal),
		TaxAmount:    sale.Round2(taxAmount),
		TotalAmount:  sale.Round2(totalAmount),
		TaxInclusive: taxInclusive,
		Status:       StatusActive,
		CreatedAt:    now,
	}

	for _, it := range items {
		it.ID = uuid.New().String()
		it.SuspendedID = s.ID
		it.LineTotal = sale.Round2(float64(it.Quantity) * it.UnitPrice)
		s.Items = append(s.Items, it)
	}

	return s, nil
}

// Complete marca a venda suspensa como concluída (finalizada em venda real)
func (s *SuspendedSale) Complete() error {
	if s.Status != StatusActive {
		return ErrNotActive
	}
	s.Status = StatusCompleted
	return nil
}

// IsActive verifica se a venda suspensa ainda pode ser retomada ou descartada
func (s *SuspendedSale) IsActive() bool {
	return s.Status == StatusActive
}
