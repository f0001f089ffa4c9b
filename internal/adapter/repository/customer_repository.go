package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/pdv-varejo/internal/domain/customer"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrCustomerNotFound = errors.New("cliente não encontrado")
	ErrCustomerHasDebts = errors.New("cliente possui dívidas pendentes")
)

// CustomerRepository implementa a interface customer.Repository
type CustomerRepository struct {
	db *pgxpool.Pool
}

// NewCustomerRepository cria uma nova instância de CustomerRepository
func NewCustomerRepository(db *pgxpool.Pool) customer.Repository {
	return &CustomerRepository{db: db}
}

// Create implementa customer.Repository.Create
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO customers (
			id, business_id, name, document, email, phone, address, notes,
			status, last_purchase_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		c.ID, c.BusinessID, c.Name, c.Document, c.Email, c.Phone, c.Address,
		c.Notes, c.Status, c.LastPurchaseAt, c.CreatedAt, c.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}

	return nil
}

// FindByID implementa customer.Repository.FindByID
func (r *CustomerRepository) FindByID(ctx context.Context, businessID, id string) (*customer.Customer, error) {
	var c customer.Customer

	err := r.db.QueryRow(ctx,
		`SELECT id, business_id, name, document, email, phone, address, notes,
			status, last_purchase_at, created_at, updated_at
		FROM customers WHERE id = $1 AND business_id = $2`,
		id, businessID).Scan(
		&c.ID, &c.BusinessID, &c.Name, &c.Document, &c.Email, &c.Phone,
		&c.Address, &c.Notes, &c.Status, &c.LastPurchaseAt, &c.CreatedAt,
		&c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}

	return &c, nil
}

// Search implementa customer.Repository.Search
func (r *CustomerRepository) Search(ctx context.Context, businessID, term string, limit, offset int) ([]*customer.Customer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, business_id, name, document, email, phone, address, notes,
			status, last_purchase_at, created_at, updated_at
		FROM customers
		WHERE business_id = $1
			AND (name ILIKE $2 OR document ILIKE $2 OR phone ILIKE $2)
		ORDER BY name ASC
		LIMIT $3 OFFSET $4`,
		businessID, "%"+term+"%", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar clientes: %w", err)
	}
	defer rows.Close()

	return r.scanCustomerRows(rows)
}

// List implementa customer.Repository.List
func (r *CustomerRepository) List(ctx context.Context, businessID string, limit, offset int) ([]*customer.Customer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, business_id, name, document, email, phone, address, notes,
			status, last_purchase_at, created_at, updated_at
		FROM customers
		WHERE business_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`,
		businessID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	return r.scanCustomerRows(rows)
}

// CountByBusiness implementa customer.Repository.CountByBusiness
func (r *CustomerRepository) CountByBusiness(ctx context.Context, businessID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM customers WHERE business_id = $1",
		businessID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}

	return count, nil
}

// Update implementa customer.Repository.Update
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	result, err := r.db.Exec(ctx,
		`UPDATE customers SET
			name = $1, document = $2, email = $3, phone = $4, address = $5,
			notes = $6, status = $7, updated_at = $8
		WHERE id = $9 AND business_id = $10`,
		c.Name, c.Document, c.Email, c.Phone, c.Address, c.Notes, c.Status,
		c.UpdatedAt, c.ID, c.BusinessID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// Delete implementa customer.Repository.Delete
func (r *CustomerRepository) Delete(ctx context.Context, businessID, id string) error {
	var hasDebts bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM debts WHERE customer_id = $1 AND business_id = $2 AND status = 'pending')",
		id, businessID).Scan(&hasDebts)
	if err != nil {
		return fmt.Errorf("erro ao verificar dívidas do cliente: %w", err)
	}
	if hasDebts {
		return ErrCustomerHasDebts
	}

	result, err := r.db.Exec(ctx,
		"DELETE FROM customers WHERE id = $1 AND business_id = $2",
		id, businessID)
	if err != nil {
		return fmt.Errorf("erro ao excluir cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// UpdateLastPurchase implementa customer.Repository.UpdateLastPurchase
func (r *CustomerRepository) UpdateLastPurchase(ctx context.Context, businessID, id string) error {
	result, err := r.db.Exec(ctx,
		"UPDATE customers SET last_purchase_at = $1, updated_at = $1 WHERE id = $2 AND business_id = $3",
		time.Now(), id, businessID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar última compra: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// scanCustomerRows é um método auxiliar para processar resultados de consultas que retornam múltiplos clientes
func (r *CustomerRepository) scanCustomerRows(rows pgx.Rows) ([]*customer.Customer, error) {
	customers := make([]*customer.Customer, 0)

	for rows.Next() {
		var c customer.Customer
		err := rows.Scan(
			&c.ID, &c.BusinessID, &c.Name, &c.Document, &c.Email, &c.Phone,
			&c.Address, &c.Notes, &c.Status, &c.LastPurchaseAt, &c.CreatedAt,
			&c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return customers, nil
}
