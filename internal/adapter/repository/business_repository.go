package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/pdv-varejo/internal/domain/business"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrBusinessNotFound  = errors.New("negócio não encontrado")
	ErrBusinessDuplicate = errors.New("negócio com mesmo documento já existe")
)

// BusinessRepository implementa a interface business.Repository
type BusinessRepository struct {
	db *pgxpool.Pool
}

// NewBusinessRepository cria uma nova instância de BusinessRepository
func NewBusinessRepository(db *pgxpool.Pool) business.Repository {
	return &BusinessRepository{db: db}
}

// Create implementa business.Repository.Create
func (r *BusinessRepository) Create(ctx context.Context, b *business.Business) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO businesses (
			id, name, document, email, phone, tax_rate, tax_inclusive,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		b.ID, b.Name, b.Document, b.Email, b.Phone, b.TaxRate, b.TaxInclusive,
		b.Status, b.CreatedAt, b.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrBusinessDuplicate
		}
		return fmt.Errorf("erro ao criar negócio: %w", err)
	}

	return nil
}

// FindByID implementa business.Repository.FindByID
func (r *BusinessRepository) FindByID(ctx context.Context, id string) (*business.Business, error) {
	var b business.Business

	err := r.db.QueryRow(ctx,
		`SELECT id, name, document, email, phone, tax_rate, tax_inclusive,
			status, created_at, updated_at
		FROM businesses WHERE id = $1`,
		id).Scan(
		&b.ID, &b.Name, &b.Document, &b.Email, &b.Phone, &b.TaxRate,
		&b.TaxInclusive, &b.Status, &b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("erro ao buscar negócio: %w", err)
	}

	return &b, nil
}

// Update implementa business.Repository.Update
func (r *BusinessRepository) Update(ctx context.Context, b *business.Business) error {
	result, err := r.db.Exec(ctx,
		`UPDATE businesses SET
			name = $1, email = $2, phone = $3, tax_rate = $4,
			tax_inclusive = $5, status = $6, updated_at = $7
		WHERE id = $8`,
		b.Name, b.Email, b.Phone, b.TaxRate, b.TaxInclusive, b.Status,
		b.UpdatedAt, b.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar negócio: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrBusinessNotFound
	}

	return nil
}

// Exists implementa business.Repository.Exists
func (r *BusinessRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM businesses WHERE id = $1 AND status = 'active')",
		id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("erro ao verificar existência do negócio: %w", err)
	}

	return exists, nil
}
