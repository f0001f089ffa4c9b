package debt

import (
	"context"
)

// Repository define a interface para operações de repositório de dívidas
type Repository interface {
	// Create grava uma nova dívida
	Create(ctx context.Context, d *Debt) error

	// FindByID busca uma dívida pelo ID dentro do negócio
	FindByID(ctx context.Context, businessID, id string) (*Debt, error)

	// List lista as dívidas do negócio, pendentes primeiro
	List(ctx context.Context, businessID string, onlyPending bool, limit, offset int) ([]*Debt, error)

	// Update persiste pagamento e status de uma dívida
	Update(ctx context.Context, d *Debt) error

	// SumPending soma o valor ainda devido de todas as dívidas pendentes
	SumPending(ctx context.Context, businessID string) (float64, error)
}
