package debt

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/pdv-varejo/internal/domain/sale"
)

var (
	ErrInvalidAmount  = errors.New("valor da dívida deve ser maior que zero")
	ErrInvalidPayment = errors.New("valor do pagamento deve ser maior que zero")
	ErrOverpayment    = errors.New("pagamento maior que o valor devido")
	ErrAlreadySettled = errors.New("dívida já quitada")
)

// Status representa a situação da dívida
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// Debt é o saldo devedor de um cliente originado em uma venda a crédito ou
// com pagamento parcial.
type Debt struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	CustomerID string    `json:"customer_id,omitempty"`
	SaleID     string    `json:"sale_id"`
	Amount     float64   `json:"amount"`
	AmountPaid float64   `json:"amount_paid"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewDebt cria uma dívida a partir do valor devido de uma venda
func NewDebt(businessID, customerID, saleID string, amount float64) (*Debt, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	now := time.Now()
	return &Debt{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		CustomerID: customerID,
		SaleID:     saleID,
		Amount:     sale.Round2(amount),
		Status:     StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Remaining retorna o valor ainda devido
func (d *Debt) Remaining() float64 {
	return sale.Round2(d.Amount - d.AmountPaid)
}

// RegisterPayment abate um pagamento da dívida; quita quando o saldo zera
func (d *Debt) RegisterPayment(amount float64) error {
	if d.Status == StatusPaid {
		return ErrAlreadySettled
	}
	if amount <= 0 {
		return ErrInvalidPayment
	}
	if amount > d.Remaining() {
		return ErrOverpayment
	}

	d.AmountPaid = sale.Round2(d.AmountPaid + amount)
	if d.Remaining() <= 0 {
		d.Status = StatusPaid
	}
	d.UpdatedAt = time.Now()

	return nil
}
