package sale

import (
	"context"
	"time"
)

// ListFilter agrupa os filtros de listagem de vendas
type ListFilter struct {
	From          *time.Time
	To            *time.Time
	CustomerID    string
	PaymentStatus PaymentStatus
	Limit         int
	Offset        int
}

// Repository define a interface para operações de repositório de vendas
type Repository interface {
	// CreateSale persiste a venda, seus itens, a baixa de estoque, os
	// movimentos de inventário e a eventual dívida em uma única transação.
	// Quando suspendedSaleID é informado, marca a venda suspensa como
	// concluída na mesma transação.
	CreateSale(ctx context.Context, s *Sale, suspendedSaleID string) error

	// FindByID busca uma venda com seus itens dentro do negócio
	FindByID(ctx context.Context, businessID, id string) (*Sale, error)

	// List lista as vendas de um negócio aplicando os filtros
	List(ctx context.Context, businessID string, filter ListFilter) ([]*Sale, error)

	// Count conta as vendas que satisfazem os filtros
	Count(ctx context.Context, businessID string, filter ListFilter) (int, error)

	// MarkReceiptPrinted marca o recibo da venda como impresso
	MarkReceiptPrinted(ctx context.Context, businessID, id string) error
}
