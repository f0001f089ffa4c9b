package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/pdv-varejo/internal/domain/category"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrCategoryNotFound  = errors.New("categoria não encontrada")
	ErrCategoryDuplicate = errors.New("categoria com mesmo nome já existe")
	ErrCategoryInUse     = errors.New("categoria possui produtos associados")
)

// CategoryRepository implementa a interface category.Repository
type CategoryRepository struct {
	db *pgxpool.Pool
}

// NewCategoryRepository cria uma nova instância de CategoryRepository
func NewCategoryRepository(db *pgxpool.Pool) category.Repository {
	return &CategoryRepository{db: db}
}

// Create implementa category.Repository.Create
func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	exists, err := r.ExistsByName(ctx, c.BusinessID, c.Name)
	if err != nil {
		return err
	}
	if exists {
		return ErrCategoryDuplicate
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO categories (
			id, business_id, name, description, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.BusinessID, c.Name, c.Description, c.CreatedAt, c.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrCategoryDuplicate
		}
		return fmt.Errorf("erro ao criar categoria: %w", err)
	}

	return nil
}

// FindByID implementa category.Repository.FindByID
func (r *CategoryRepository) FindByID(ctx context.Context, businessID, id string) (*category.Category, error) {
	var c category.Category

	err := r.db.QueryRow(ctx,
		`SELECT id, business_id, name, description, created_at, updated_at
		FROM categories WHERE id = $1 AND business_id = $2`,
		id, businessID).Scan(
		&c.ID, &c.BusinessID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("erro ao buscar categoria: %w", err)
	}

	return &c, nil
}

// List implementa category.Repository.List
func (r *CategoryRepository) List(ctx context.Context, businessID string, limit, offset int) ([]*category.Category, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, business_id, name, description, created_at, updated_at
		FROM categories
		WHERE business_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`,
		businessID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar categorias: %w", err)
	}
	defer rows.Close()

	categories := make([]*category.Category, 0)
	for rows.Next() {
		var c category.Category
		err := rows.Scan(&c.ID, &c.BusinessID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler categoria: %w", err)
		}
		categories = append(categories, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return categories, nil
}

// CountByBusiness implementa category.Repository.CountByBusiness
func (r *CategoryRepository) CountByBusiness(ctx context.Context, businessID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM categories WHERE business_id = $1",
		businessID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar categorias: %w", err)
	}

	return count, nil
}

// Update implementa category.Repository.Update
func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	result, err := r.db.Exec(ctx,
		`UPDATE categories SET name = $1, description = $2, updated_at = $3
		WHERE id = $4 AND business_id = $5`,
		c.Name, c.Description, c.UpdatedAt, c.ID, c.BusinessID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrCategoryDuplicate
		}
		return fmt.Errorf("erro ao atualizar categoria: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// Delete implementa category.Repository.Delete
func (r *CategoryRepository) Delete(ctx context.Context, businessID, id string) error {
	var inUse bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM products WHERE category_id = $1 AND business_id = $2)",
		id, businessID).Scan(&inUse)
	if err != nil {
		return fmt.Errorf("erro ao verificar uso da categoria: %w", err)
	}
	if inUse {
		return ErrCategoryInUse
	}

	result, err := r.db.Exec(ctx,
		"DELETE FROM categories WHERE id = $1 AND business_id = $2",
		id, businessID)
	if err != nil {
		return fmt.Errorf("erro ao excluir categoria: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// ExistsByName implementa category.Repository.ExistsByName
func (r *CategoryRepository) ExistsByName(ctx context.Context, businessID, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM categories WHERE business_id = $1 AND LOWER(name) = LOWER($2))",
		businessID, name).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("erro ao verificar existência da categoria: %w", err)
	}

	return exists, nil
}
