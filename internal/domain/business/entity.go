package business

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("nome do negócio não pode ser vazio")
	ErrEmptyDocument = errors.New("documento não pode ser vazio")
)

// Status representa o estado do negócio
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Business representa um negócio (tenant) no sistema. Todo dado do sistema é
// escopado pelo ID do negócio.
type Business struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Document     string    `json:"document"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	TaxRate      float64   `json:"tax_rate"`      // Alíquota padrão de imposto (ex: 0.18)
	TaxInclusive bool      `json:"tax_inclusive"` // Preços já incluem imposto
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewBusiness cria um novo negócio
func NewBusiness(name, document, email, phone string) (*Business, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if document == "" {
		return nil, ErrEmptyDocument
	}

	now := time.Now()
	return &Business{
		ID:        uuid.New().String(),
		Name:      name,
		Document:  document,
		Email:     email,
		Phone:     phone,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsActive verifica se o negócio está ativo
func (b *Business) IsActive() bool {
	return b.Status == StatusActive
}
