package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/pdv-varejo/internal/domain/suspendedsale"
	"github.com/hugohenrick/pdv-varejo/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrSuspendedSaleNotFound indica venda suspensa inexistente ou não ativa
var ErrSuspendedSaleNotFound = errors.New("venda suspensa não encontrada")

// SuspendedSaleRepository implementa a interface suspendedsale.Repository
type SuspendedSaleRepository struct {
	db *pgxpool.Pool
}

// NewSuspendedSaleRepository cria uma nova instância de SuspendedSaleRepository
func NewSuspendedSaleRepository(db *pgxpool.Pool) suspendedsale.Repository {
	return &SuspendedSaleRepository{db: db}
}

// Create implementa suspendedsale.Repository.Create. Cabeçalho e itens são
// gravados na mesma transação; o estoque não é tocado.
func (r *SuspendedSaleRepository) Create(ctx context.Context, s *suspendedsale.SuspendedSale) error {
	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO suspended_sales (
				id, business_id, customer_id, sale_number, subtotal,
				tax_amount, total_amount, tax_inclusive, status, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			s.ID, s.BusinessID, nullIfEmpty(s.CustomerID), s.SaleNumber,
			s.Subtotal, s.TaxAmount, s.TotalAmount, s.TaxInclusive, s.Status,
			s.CreatedAt)
		if err != nil {
			return fmt.Errorf("erro ao gravar venda suspensa: %w", err)
		}

		for _, item := range s.Items {
			_, err := tx.Exec(ctx,
				`INSERT INTO suspended_sale_items (
					id, suspended_sale_id, product_id, product_name,
					quantity, unit_price, line_total
				) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				item.ID, item.SuspendedID, item.ProductID, item.ProductName,
				item.Quantity, item.UnitPrice, item.LineTotal)
			if err != nil {
				return fmt.Errorf("erro ao gravar item da venda suspensa: %w", err)
			}
		}

		return nil
	})
}

// FindByID implementa suspendedsale.Repository.FindByID. Somente leitura;
// vendas não ativas são tratadas como não encontradas.
func (r *SuspendedSaleRepository) FindByID(ctx context.Context, businessID, id string) (*suspendedsale.SuspendedSale, error) {
	var s suspendedsale.SuspendedSale
	var customerID, customerName *string

	err := r.db.QueryRow(ctx,
		`SELECT s.id, s.business_id, s.customer_id, c.name, s.sale_number,
			s.subtotal, s.tax_amount, s.total_amount, s.tax_inclusive,
			s.status, s.created_at
		FROM suspended_sales s
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE s.id = $1 AND s.business_id = $2 AND s.status = 'active'`,
		id, businessID).Scan(
		&s.ID, &s.BusinessID, &customerID, &customerName, &s.SaleNumber,
		&s.Subtotal, &s.TaxAmount, &s.TotalAmount, &s.TaxInclusive,
		&s.Status, &s.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSuspendedSaleNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda suspensa: %w", err)
	}

	s.CustomerID = deref(customerID)
	s.CustomerName = deref(customerName)

	items, err := r.findItems(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Items = items

	return &s, nil
}

// findItems busca os itens de uma venda suspensa
func (r *SuspendedSaleRepository) findItems(ctx context.Context, suspendedID string) ([]suspendedsale.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, suspended_sale_id, product_id, product_name, quantity,
			unit_price, line_total
		FROM suspended_sale_items
		WHERE suspended_sale_id = $1
		ORDER BY product_name ASC`,
		suspendedID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar itens da venda suspensa: %w", err)
	}
	defer rows.Close()

	items := make([]suspendedsale.Item, 0)
	for rows.Next() {
		var item suspendedsale.Item
		err := rows.Scan(
			&item.ID, &item.SuspendedID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPrice, &item.LineTotal)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler item da venda suspensa: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return items, nil
}

// List implementa suspendedsale.Repository.List
func (r *SuspendedSaleRepository) List(ctx context.Context, businessID string, limit, offset int) ([]*suspendedsale.SuspendedSale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.id, s.business_id, s.customer_id, c.name, s.sale_number,
			s.subtotal, s.tax_amount, s.total_amount, s.tax_inclusive,
			s.status, s.created_at
		FROM suspended_sales s
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE s.business_id = $1 AND s.status = 'active'
		ORDER BY s.created_at DESC
		LIMIT $2 OFFSET $3`,
		businessID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas suspensas: %w", err)
	}
	defer rows.Close()

	sales := make([]*suspendedsale.SuspendedSale, 0)
	for rows.Next() {
		var s suspendedsale.SuspendedSale
		var customerID, customerName *string
		err := rows.Scan(
			&s.ID, &s.BusinessID, &customerID, &customerName, &s.SaleNumber,
			&s.Subtotal, &s.TaxAmount, &s.TotalAmount, &s.TaxInclusive,
			&s.Status, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler venda suspensa: %w", err)
		}
		s.CustomerID = deref(customerID)
		s.CustomerName = deref(customerName)
		sales = append(sales, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return sales, nil
}

// Delete implementa suspendedsale.Repository.Delete. Remove cabeçalho e itens
// transacionalmente; nenhum estoque é restaurado porque nenhum foi baixado.
func (r *SuspendedSaleRepository) Delete(ctx context.Context, businessID, id string) error {
	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			"DELETE FROM suspended_sale_items WHERE suspended_sale_id = $1",
			id)
		if err != nil {
			return fmt.Errorf("erro ao excluir itens da venda suspensa: %w", err)
		}

		result, err := tx.Exec(ctx,
			"DELETE FROM suspended_sales WHERE id = $1 AND business_id = $2 AND status = 'active'",
			id, businessID)
		if err != nil {
			return fmt.Errorf("erro ao excluir venda suspensa: %w", err)
		}

		if result.RowsAffected() == 0 {
			return ErrSuspendedSaleNotFound
		}

		return nil
	})
}
