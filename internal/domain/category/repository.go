package category

import (
	"context"
)

// Repository define a interface para operações de repositório de categorias
type Repository interface {
	// Create cria uma nova categoria
	Create(ctx context.Context, c *Category) error

	// FindByID busca uma categoria pelo ID dentro do negócio
	FindByID(ctx context.Context, businessID, id string) (*Category, error)

	// List lista as categorias de um negócio
	List(ctx context.Context, businessID string, limit, offset int) ([]*Category, error)

	// CountByBusiness conta as categorias de um negócio
	CountByBusiness(ctx context.Context, businessID string) (int, error)

	// Update atualiza os dados de uma categoria
	Update(ctx context.Context, c *Category) error

	// Delete remove uma categoria
	Delete(ctx context.Context, businessID, id string) error

	// ExistsByName verifica se já existe categoria com o nome no negócio
	ExistsByName(ctx context.Context, businessID, name string) (bool, error)
}
