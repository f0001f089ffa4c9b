package category

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("nome da categoria não pode ser vazio")

// Category representa uma categoria de produtos
type Category struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"business_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCategory cria uma nova categoria
func NewCategory(businessID, name, description string) (*Category, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Category{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update atualiza os dados da categoria
func (c *Category) Update(name, description string) error {
	if name == "" {
		return ErrEmptyName
	}
	c.Name = name
	c.Description = description
	c.UpdatedAt = time.Now()
	return nil
}
