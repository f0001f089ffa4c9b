package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hugohenrick/pdv-varejo/internal/domain/inventory"
	"github.com/hugohenrick/pdv-varejo/internal/domain/product"
	"github.com/hugohenrick/pdv-varejo/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrProductNotFound     = errors.New("produto não encontrado")
	ErrProductDuplicateSKU = errors.New("produto com mesmo SKU já existe")
	ErrProductStockFloor   = errors.New("ajuste deixaria o estoque negativo")
)

const productColumns = `id, business_id, category_id, name, sku, barcode,
	cost_price, selling_price, stock_quantity, min_stock, track_stock,
	status, created_at, updated_at`

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{db: db}
}

// Create implementa product.Repository.Create. O produto e o movimento de
// estoque inicial são gravados na mesma transação.
func (r *ProductRepository) Create(ctx context.Context, p *product.Product, initialMovementReason string) error {
	if p.SKU != "" {
		exists, err := r.ExistsBySKU(ctx, p.BusinessID, p.SKU, "")
		if err != nil {
			return err
		}
		if exists {
			return ErrProductDuplicateSKU
		}
	}

	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO products (
				id, business_id, category_id, name, sku, barcode,
				cost_price, selling_price, stock_quantity, min_stock,
				track_stock, status, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			p.ID, p.BusinessID, nullIfEmpty(p.CategoryID), p.Name,
			nullIfEmpty(p.SKU), nullIfEmpty(p.Barcode), p.CostPrice,
			p.SellingPrice, p.StockQuantity, p.MinStock, p.TrackStock,
			p.Status, p.CreatedAt, p.UpdatedAt)

		if err != nil {
			if strings.Contains(err.Error(), "duplicate key") {
				return ErrProductDuplicateSKU
			}
			return fmt.Errorf("erro ao criar produto: %w", err)
		}

		// Estoque inicial positivo com controle de estoque gera a entrada no razão
		if p.TrackStock && p.StockQuantity > 0 {
			m, err := inventory.NewMovement(p.BusinessID, p.ID, "", inventory.MovementIn, p.StockQuantity, initialMovementReason)
			if err != nil {
				return err
			}
			if err := insertMovement(ctx, tx, m); err != nil {
				return err
			}
		}

		return nil
	})
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, businessID, id string) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1 AND business_id = $2`,
		id, businessID)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return p, nil
}

// buildProductFilter monta a cláusula WHERE como lista de predicados com
// parâmetros sempre vinculados; nenhum valor de usuário é interpolado no SQL
func buildProductFilter(businessID string, filter product.ListFilter) (string, []interface{}) {
	conds := []string{"business_id = $1", "status = 'active'"}
	args := []interface{}{businessID}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR sku ILIKE $%d OR barcode ILIKE $%d)", n, n, n))
	}

	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		conds = append(conds, fmt.Sprintf("category_id = $%d", len(args)))
	}

	switch filter.StockState {
	case product.StockStateLow:
		conds = append(conds, "stock_quantity > 0 AND stock_quantity <= min_stock")
	case product.StockStateOut:
		conds = append(conds, "stock_quantity = 0")
	case product.StockStateNormal:
		conds = append(conds, "stock_quantity > min_stock")
	}

	return strings.Join(conds, " AND "), args
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, businessID string, filter product.ListFilter) ([]*product.Product, error) {
	where, args := buildProductFilter(businessID, filter)

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(
		`SELECT %s FROM products WHERE %s ORDER BY name ASC LIMIT $%d OFFSET $%d`,
		productColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// Count implementa product.Repository.Count
func (r *ProductRepository) Count(ctx context.Context, businessID string, filter product.ListFilter) (int, error) {
	where, args := buildProductFilter(businessID, filter)

	var count int
	err := r.db.QueryRow(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM products WHERE %s", where),
		args...).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}

	return count, nil
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	if p.SKU != "" {
		exists, err := r.ExistsBySKU(ctx, p.BusinessID, p.SKU, p.ID)
		if err != nil {
			return err
		}
		if exists {
			return ErrProductDuplicateSKU
		}
	}

	result, err := r.db.Exec(ctx,
		`UPDATE products SET
			category_id = $1, name = $2, sku = $3, barcode = $4,
			cost_price = $5, selling_price = $6, min_stock = $7,
			track_stock = $8, updated_at = $9
		WHERE id = $10 AND business_id = $11 AND status = 'active'`,
		nullIfEmpty(p.CategoryID), p.Name, nullIfEmpty(p.SKU),
		nullIfEmpty(p.Barcode), p.CostPrice, p.SellingPrice, p.MinStock,
		p.TrackStock, p.UpdatedAt, p.ID, p.BusinessID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrProductDuplicateSKU
		}
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete implementa product.Repository.Delete: exclusão lógica quando há
// itens de venda referenciando o produto, física caso contrário
func (r *ProductRepository) Delete(ctx context.Context, businessID, id string) error {
	var referenced bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM sale_items WHERE product_id = $1)",
		id).Scan(&referenced)
	if err != nil {
		return fmt.Errorf("erro ao verificar vendas do produto: %w", err)
	}

	var result pgconn.CommandTag
	if referenced {
		result, err = r.db.Exec(ctx,
			"UPDATE products SET status = 'deleted', updated_at = $1 WHERE id = $2 AND business_id = $3 AND status = 'active'",
			time.Now(), id, businessID)
	} else {
		result, err = r.db.Exec(ctx,
			"DELETE FROM products WHERE id = $1 AND business_id = $2",
			id, businessID)
	}

	if err != nil {
		return fmt.Errorf("erro ao excluir produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// AdjustStock implementa product.Repository.AdjustStock. A atualização é
// relativa e guarda o piso de estoque; o movimento é gravado na mesma transação.
func (r *ProductRepository) AdjustStock(ctx context.Context, businessID, id, userID string, quantity int, reason string) (*product.Product, error) {
	var adjusted *product.Product

	err := database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx,
			`UPDATE products
			SET stock_quantity = stock_quantity + $1, updated_at = $2
			WHERE id = $3 AND business_id = $4 AND status = 'active'
				AND stock_quantity + $1 >= 0
			RETURNING `+productColumns,
			quantity, time.Now(), id, businessID)

		p, err := scanProduct(row)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				// Distinguir produto inexistente de ajuste abaixo do piso
				exists, exErr := r.existsActive(ctx, businessID, id)
				if exErr != nil {
					return exErr
				}
				if exists {
					return ErrProductStockFloor
				}
				return ErrProductNotFound
			}
			return fmt.Errorf("erro ao ajustar estoque: %w", err)
		}

		movementType := inventory.MovementAdjustment
		if quantity > 0 {
			movementType = inventory.MovementIn
		}
		m, err := inventory.NewMovement(businessID, id, userID, movementType, quantity, reason)
		if err != nil {
			return err
		}
		if err := insertMovement(ctx, tx, m); err != nil {
			return err
		}

		adjusted = p
		return nil
	})

	if err != nil {
		return nil, err
	}

	return adjusted, nil
}

// ExistsBySKU implementa product.Repository.ExistsBySKU
func (r *ProductRepository) ExistsBySKU(ctx context.Context, businessID, sku, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM products
			WHERE business_id = $1 AND sku = $2 AND status = 'active'
				AND ($3 = '' OR id::text <> $3)
		)`,
		businessID, sku, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("erro ao verificar SKU: %w", err)
	}

	return exists, nil
}

// FindLowStock implementa product.Repository.FindLowStock
func (r *ProductRepository) FindLowStock(ctx context.Context, businessID string, limit int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+`
		FROM products
		WHERE business_id = $1 AND status = 'active' AND track_stock
			AND stock_quantity <= min_stock
		ORDER BY stock_quantity ASC
		LIMIT $2`,
		businessID, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos com estoque baixo: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// existsActive verifica se o produto existe e está ativo
func (r *ProductRepository) existsActive(ctx context.Context, businessID, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM products WHERE id = $1 AND business_id = $2 AND status = 'active')",
		id, businessID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar existência do produto: %w", err)
	}
	return exists, nil
}

// scanProduct lê um produto de uma linha de resultado
func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	var categoryID, sku, barcode *string

	err := row.Scan(
		&p.ID, &p.BusinessID, &categoryID, &p.Name, &sku, &barcode,
		&p.CostPrice, &p.SellingPrice, &p.StockQuantity, &p.MinStock,
		&p.TrackStock, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	p.CategoryID = deref(categoryID)
	p.SKU = deref(sku)
	p.Barcode = deref(barcode)

	return &p, nil
}

// scanProductRows processa resultados de consultas que retornam múltiplos produtos
func scanProductRows(rows pgx.Rows) ([]*product.Product, error) {
	products := make([]*product.Product, 0)

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return products, nil
}

// insertMovement grava uma entrada do razão de estoque dentro da transação
func insertMovement(ctx context.Context, tx pgx.Tx, m *inventory.Movement) error {
	_, err := tx.Exec(ctx,
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

// nullIfEmpty converte string vazia em NULL para colunas opcionais
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// deref converte um ponteiro de string possivelmente nulo em string
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
