package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/pdv-varejo/internal/domain/debt"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrDebtNotFound indica dívida inexistente no negócio
var ErrDebtNotFound = errors.New("dívida não encontrada")

// DebtRepository implementa a interface debt.Repository
type DebtRepository struct {
	db *pgxpool.Pool
}

// NewDebtRepository cria uma nova instância de DebtRepository
func NewDebtRepository(db *pgxpool.Pool) debt.Repository {
	return &DebtRepository{db: db}
}

// Create implementa debt.Repository.Create
func (r *DebtRepository) Create(ctx context.Context, d *debt.Debt) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO debts (
			id, business_id, customer_id, sale_id, amount, amount_paid,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		d.ID, d.BusinessID, nullIfEmpty(d.CustomerID), d.SaleID, d.Amount,
		d.AmountPaid, d.Status, d.CreatedAt, d.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao gravar dívida: %w", err)
	}

	return nil
}

// FindByID implementa debt.Repository.FindByID
func (r *DebtRepository) FindByID(ctx context.Context, businessID, id string) (*debt.Debt, error) {
	var d debt.Debt
	var customerID *string

	err := r.db.QueryRow(ctx,
		`SELECT id, business_id, customer_id, sale_id, amount, amount_paid,
			status, created_at, updated_at
		FROM debts
		WHERE id = $1 AND business_id = $2`,
		id, businessID).Scan(
		&d.ID, &d.BusinessID, &customerID, &d.SaleID, &d.Amount,
		&d.AmountPaid, &d.Status, &d.CreatedAt, &d.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDebtNotFound
		}
		return nil, fmt.Errorf("erro ao buscar dívida: %w", err)
	}

	d.CustomerID = deref(customerID)

	return &d, nil
}

// List implementa debt.Repository.List
func (r *DebtRepository) List(ctx context.Context, businessID string, onlyPending bool, limit, offset int) ([]*debt.Debt, error) {
	query := `SELECT id, business_id, customer_id, sale_id, amount, amount_paid,
			status, created_at, updated_at
		FROM debts
		WHERE business_id = $1`
	if onlyPending {
		query += " AND status = 'pending'"
	}
	query += ` ORDER BY CASE status WHEN 'pending' THEN 0 ELSE 1 END,
		created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, businessID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar dívidas: %w", err)
	}
	defer rows.Close()

	debts := make([]*debt.Debt, 0)
	for rows.Next() {
		var d debt.Debt
		var customerID *string
		err := rows.Scan(
			&d.ID, &d.BusinessID, &customerID, &d.SaleID, &d.Amount,
			&d.AmountPaid, &d.Status, &d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler dívida: %w", err)
		}
		d.CustomerID = deref(customerID)
		debts = append(debts, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return debts, nil
}

// Update implementa debt.Repository.Update
func (r *DebtRepository) Update(ctx context.Context, d *debt.Debt) error {
	result, err := r.db.Exec(ctx,
		`UPDATE debts SET
			amount_paid = $1, status = $2, updated_at = $3
		WHERE id = $4 AND business_id = $5`,
		d.AmountPaid, d.Status, d.UpdatedAt, d.ID, d.BusinessID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar dívida: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrDebtNotFound
	}

	return nil
}

// SumPending implementa debt.Repository.SumPending
func (r *DebtRepository) SumPending(ctx context.Context, businessID string) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount - amount_paid), 0)
		FROM debts
		WHERE business_id = $1 AND status = 'pending'`,
		businessID).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("erro ao somar dívidas pendentes: %w", err)
	}

	return total, nil
}
