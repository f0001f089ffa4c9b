package suspendedsale

import (
	"context"
)

// Repository define a interface para operações de repositório de vendas suspensas
type Repository interface {
	// Create persiste o cabeçalho e os itens em uma única transação
	Create(ctx context.Context, s *SuspendedSale) error

	// FindByID busca uma venda suspensa ativa com itens e nome do cliente;
	// retorna não-encontrado se não existir ou não estiver ativa
	FindByID(ctx context.Context, businessID, id string) (*SuspendedSale, error)

	// List lista as vendas suspensas ativas de um negócio
	List(ctx context.Context, businessID string, limit, offset int) ([]*SuspendedSale, error)

	// Delete descarta uma venda suspensa ativa removendo cabeçalho e itens
	Delete(ctx context.Context, businessID, id string) error
}
