package dto

import (
	"time"

	"github.com/hugohenrick/pdv-varejo/internal/domain/debt"
)

// DebtPaymentRequest representa a requisição de pagamento de dívida
type DebtPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// DebtResponse representa a resposta de dívida
type DebtResponse struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id,omitempty"`
	SaleID     string      `json:"sale_id"`
	Amount     float64     `json:"amount"`
	AmountPaid float64     `json:"amount_paid"`
	Remaining  float64     `json:"remaining"`
	Status     debt.Status `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// DebtListResponse representa a resposta de lista de dívidas
type DebtListResponse struct {
	Items        []DebtResponse `json:"items"`
	Total        int            `json:"total"`
	TotalPending float64        `json:"total_pending"`
}

// ToDebtResponse converte uma dívida de domínio para o DTO de resposta
func ToDebtResponse(d *debt.Debt) DebtResponse {
	return DebtResponse{
		ID:         d.ID,
		CustomerID: d.CustomerID,
		SaleID:     d.SaleID,
		Amount:     d.Amount,
		AmountPaid: d.AmountPaid,
		Remaining:  d.Remaining(),
		Status:     d.Status,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// ToDebtListResponse converte uma lista de dívidas para o DTO de resposta
func ToDebtListResponse(debts []*debt.Debt, totalPending float64) DebtListResponse {
	items := make([]DebtResponse, 0, len(debts))
	for _, d := range debts {
		items = append(items, ToDebtResponse(d))
	}

	return DebtListResponse{
		Items:        items,
		Total:        len(items),
		TotalPending: totalPending,
	}
}
