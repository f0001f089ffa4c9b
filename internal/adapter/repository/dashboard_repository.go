package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/pdv-varejo/internal/domain/dashboard"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DashboardRepository implementa a interface dashboard.Repository
type DashboardRepository struct {
	db *pgxpool.Pool
}

// NewDashboardRepository cria uma nova instância de DashboardRepository
func NewDashboardRepository(db *pgxpool.Pool) dashboard.Repository {
	return &DashboardRepository{db: db}
}

// SalesSummary implementa dashboard.Repository.SalesSummary
func (r *DashboardRepository) SalesSummary(ctx context.Context, businessID string, from, to time.Time) (dashboard.SalesSummary, error) {
	var summary dashboard.SalesSummary

	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_amount), 0), COUNT(*)
		FROM sales
		WHERE business_id = $1 AND created_at >= $2 AND created_at < $3`,
		businessID, from, to).Scan(&summary.Total, &summary.Count)

	if err != nil {
		return dashboard.SalesSummary{}, fmt.Errorf("erro ao agregar vendas: %w", err)
	}

	return summary, nil
}

// TopProducts implementa dashboard.Repository.TopProducts
func (r *DashboardRepository) TopProducts(ctx context.Context, businessID string, from, to time.Time, limit int) ([]dashboard.TopProduct, error) {
	rows, err := r.db.Query(ctx,
		`SELECT i.product_id, i.product_name, SUM(i.quantity), SUM(i.line_total)
		FROM sale_items i
		JOIN sales s ON s.id = i.sale_id
		WHERE s.business_id = $1 AND s.created_at >= $2 AND s.created_at < $3
		GROUP BY i.product_id, i.product_name
		ORDER BY SUM(i.quantity) DESC, SUM(i.line_total) DESC
		LIMIT $4`,
		businessID, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar produtos mais vendidos: %w", err)
	}
	defer rows.Close()

	products := make([]dashboard.TopProduct, 0)
	for rows.Next() {
		var p dashboard.TopProduct
		err := rows.Scan(&p.ProductID, &p.ProductName, &p.Quantity, &p.Total)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto do ranking: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return products, nil
}

// LowStock implementa dashboard.Repository.LowStock. Produtos esgotados vêm
// primeiro, depois os mais próximos de esgotar.
func (r *DashboardRepository) LowStock(ctx context.Context, businessID string, limit int) ([]dashboard.LowStockProduct, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, sku, stock_quantity, min_stock
		FROM products
		WHERE business_id = $1 AND status = 'active' AND track_stock = TRUE
			AND stock_quantity <= min_stock
		ORDER BY stock_quantity ASC, name ASC
		LIMIT $2`,
		businessID, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar produtos com estoque baixo: %w", err)
	}
	defer rows.Close()

	products := make([]dashboard.LowStockProduct, 0)
	for rows.Next() {
		var p dashboard.LowStockProduct
		var sku *string
		err := rows.Scan(&p.ProductID, &p.Name, &sku, &p.StockQuantity, &p.MinStock)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		p.SKU = deref(sku)
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return products, nil
}
