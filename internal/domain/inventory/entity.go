package inventory

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errors.New("quantidade do movimento deve ser diferente de zero")
	ErrInvalidType     = errors.New("tipo de movimento inválido")
)

// MovementType representa o tipo de movimento de estoque
type MovementType string

const (
	MovementIn         MovementType = "in"
	MovementOut        MovementType = "out"
	MovementAdjustment MovementType = "adjustment"
)

// Motivos padronizados dos movimentos gerados pelo sistema
const (
	ReasonInitialStock = "initial stock"
	ReasonSale         = "sale"
)

// Movement é uma entrada do razão de estoque. O razão é apenas-escrita e serve
// de trilha de auditoria; o saldo corrente é o contador desnormalizado no produto.
type Movement struct {
	ID         string       `json:"id"`
	BusinessID string       `json:"business_id"`
	ProductID  string       `json:"product_id"`
	UserID     string       `json:"user_id"`
	Type       MovementType `json:"movement_type"`
	Quantity   int          `json:"quantity"`
	Reason     string       `json:"reason"`
	CreatedAt  time.Time    `json:"created_at"`
}

// NewMovement cria uma nova entrada no razão de estoque
func NewMovement(businessID, productID, userID string, movementType MovementType, quantity int, reason string) (*Movement, error) {
	switch movementType {
	case MovementIn, MovementOut, MovementAdjustment:
	default:
		return nil, ErrInvalidType
	}
	if quantity == 0 {
		return nil, ErrInvalidQuantity
	}

	return &Movement{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		ProductID:  productID,
		UserID:     userID,
		Type:       movementType,
		Quantity:   quantity,
		Reason:     reason,
		CreatedAt:  time.Now(),
	}, nil
}
