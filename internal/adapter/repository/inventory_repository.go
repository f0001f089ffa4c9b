package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/pdv-varejo/internal/domain/inventory"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InventoryRepository implementa a interface inventory.Repository
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository cria uma nova instância de InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) inventory.Repository {
	return &InventoryRepository{db: db}
}

// Create implementa inventory.Repository.Create
func (r *InventoryRepository) Create(ctx context.Context, m *inventory.Movement) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO inventory_movements (
			id, business_id, product_id, user_id, movement_type, quantity,
			reason, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ID, m.BusinessID, m.ProductID, nullIfEmpty(m.UserID), m.Type,
		m.Quantity, m.Reason, m.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao gravar movimento de estoque: %w", err)
	}

	return nil
}

// ListByProduct implementa inventory.Repository.ListByProduct
func (r *InventoryRepository) ListByProduct(ctx context.Context, businessID, productID string, limit, offset int) ([]*inventory.Movement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, business_id, product_id, user_id, movement_type,
			quantity, reason, created_at
		FROM inventory_movements
		WHERE business_id = $1 AND product_id = $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`,
		businessID, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar movimentos: %w", err)
	}
	defer rows.Close()

	movements := make([]*inventory.Movement, 0)
	for rows.Next() {
		var m inventory.Movement
		var userID *string
		err := rows.Scan(
			&m.ID, &m.BusinessID, &m.ProductID, &userID, &m.Type,
			&m.Quantity, &m.Reason, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler movimento: %w", err)
		}
		m.UserID = deref(userID)
		movements = append(movements, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return movements, nil
}
