package product

import (
	"context"
)

// ListFilter agrupa os filtros de listagem do catálogo. Todo campo vazio é ignorado.
type ListFilter struct {
	Search     string     // Busca por nome, SKU ou código de barras (substring)
	CategoryID string     // Filtra por categoria
	StockState StockState // Filtra pela situação do estoque
	Limit      int
	Offset     int
}

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto; quando o estoque inicial é positivo e o
	// produto controla estoque, grava o movimento de entrada na mesma transação
	Create(ctx context.Context, p *Product, initialMovementReason string) error

	// FindByID busca um produto pelo ID dentro do negócio
	FindByID(ctx context.Context, businessID, id string) (*Product, error)

	// List lista os produtos de um negócio aplicando os filtros
	List(ctx context.Context, businessID string, filter ListFilter) ([]*Product, error)

	// Count conta os produtos que satisfazem os filtros
	Count(ctx context.Context, businessID string, filter ListFilter) (int, error)

	// Update atualiza os dados de um produto existente
	Update(ctx context.Context, p *Product) error

	// Delete remove um produto: exclusão lógica se houver vendas
	// referenciando o produto, física caso contrário
	Delete(ctx context.Context, businessID, id string) error

	// AdjustStock aplica um ajuste manual de estoque e grava o movimento
	// correspondente na mesma transação
	AdjustStock(ctx context.Context, businessID, id, userID string, quantity int, reason string) (*Product, error)

	// ExistsBySKU verifica se já existe produto com o SKU no negócio,
	// ignorando o produto excludeID quando informado
	ExistsBySKU(ctx context.Context, businessID, sku, excludeID string) (bool, error)

	// FindLowStock lista os produtos com estoque baixo ou esgotado
	FindLowStock(ctx context.Context, businessID string, limit int) ([]*Product, error)
}
