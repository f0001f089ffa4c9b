package inventory

import (
	"context"
)

// Repository define a interface para o razão de movimentos de estoque
type Repository interface {
	// Create grava uma entrada no razão
	Create(ctx context.Context, m *Movement) error

	// ListByProduct lista os movimentos de um produto, mais recentes primeiro
	ListByProduct(ctx context.Context, businessID, productID string, limit, offset int) ([]*Movement, error)
}
