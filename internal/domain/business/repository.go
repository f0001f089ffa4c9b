package business

import (
	"context"
)

// Repository define a interface para operações de repositório de negócios
type Repository interface {
	// Create cria um novo negócio
	Create(ctx context.Context, b *Business) error

	// FindByID busca um negócio pelo ID
	FindByID(ctx context.Context, id string) (*Business, error)

	// Update atualiza os dados de um negócio
	Update(ctx context.Context, b *Business) error

	// Exists verifica se um negócio existe e está ativo
	Exists(ctx context.Context, id string) (bool, error)
}
