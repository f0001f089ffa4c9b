package customer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("nome não pode ser vazio")
)

// Status representa o estado do cliente
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Customer representa um cliente do negócio
type Customer struct {
	ID             string     `json:"id"`
	BusinessID     string     `json:"business_id"`
	Name           string     `json:"name"`
	Document       string     `json:"document"` // CPF/CNPJ, opcional
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Address        string     `json:"address"`
	Notes          string     `json:"notes"`
	Status         Status     `json:"status"`
	LastPurchaseAt *time.Time `json:"last_purchase_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewCustomer cria um novo cliente
func NewCustomer(businessID, name, document, email, phone string) (*Customer, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Customer{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Name:       name,
		Document:   document,
		Email:      email,
		Phone:      phone,
		Status:     StatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Update atualiza os dados do cliente
func (c *Customer) Update(name, document, email, phone, address, notes string) error {
	if name == "" {
		return ErrEmptyName
	}

	c.Name = name
	c.Document = document
	c.Email = email
	c.Phone = phone
	c.Address = address
	c.Notes = notes
	c.UpdatedAt = time.Now()

	return nil
}

// IsActive verifica se o cliente está ativo
func (c *Customer) IsActive() bool {
	return c.Status == StatusActive
}

// UpdateLastPurchase atualiza a data da última compra
func (c *Customer) UpdateLastPurchase() {
	now := time.Now()
	c.LastPurchaseAt = &now
	c.UpdatedAt = now
}
