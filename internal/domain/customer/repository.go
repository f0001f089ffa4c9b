package customer

import (
	"context"
)

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// Create cria um novo cliente
	Create(ctx context.Context, c *Customer) error

	// FindByID busca um cliente pelo ID dentro do negócio
	FindByID(ctx context.Context, businessID, id string) (*Customer, error)

	// Search busca clientes por nome, documento ou telefone
	Search(ctx context.Context, businessID, term string, limit, offset int) ([]*Customer, error)

	// List lista os clientes de um negócio com paginação
	List(ctx context.Context, businessID string, limit, offset int) ([]*Customer, error)

	// CountByBusiness conta os clientes de um negócio
	CountByBusiness(ctx context.Context, businessID string) (int, error)

	// Update atualiza os dados de um cliente existente
	Update(ctx context.Context, c *Customer) error

	// Delete remove um cliente
	Delete(ctx context.Context, businessID, id string) error

	// UpdateLastPurchase registra a data da última compra
	UpdateLastPurchase(ctx context.Context, businessID, id string) error
}
