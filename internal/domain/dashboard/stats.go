package dashboard

import (
	"context"
	"time"
)

// Range representa a janela de tempo das agregações
type Range string

const (
	RangeToday Range = "today"
	RangeWeek  Range = "week"  // Últimos 7 dias
	RangeMonth Range = "month" // Mês corrente
)

// ValidRange verifica se a janela informada é conhecida
func ValidRange(r string) bool {
	switch Range(r) {
	case RangeToday, RangeWeek, RangeMonth:
		return true
	}
	return false
}

// Window resolve a janela em instantes de início e fim
func (r Range) Window(now time.Time) (time.Time, time.Time) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch r {
	case RangeWeek:
		return startOfDay.AddDate(0, 0, -6), now
	case RangeMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), now
	default:
		return startOfDay, now
	}
}

// Previous resolve a janela imediatamente anterior, para cálculo de variação
func (r Range) Previous(now time.Time) (time.Time, time.Time) {
	start, _ := r.Window(now)
	switch r {
	case RangeWeek:
		return start.AddDate(0, 0, -7), start
	case RangeMonth:
		return start.AddDate(0, -1, 0), start
	default:
		return start.AddDate(0, 0, -1), start
	}
}

// SalesSummary agrega totais de vendas de uma janela
type SalesSummary struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// TopProduct é um produto do ranking de mais vendidos
type TopProduct struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Total       float64 `json:"total"`
}

// LowStockProduct é um produto com estoque baixo ou esgotado
type LowStockProduct struct {
	ProductID     string `json:"product_id"`
	Name          string `json:"name"`
	SKU           string `json:"sku,omitempty"`
	StockQuantity int    `json:"stock_quantity"`
	MinStock      int    `json:"min_stock"`
}

// Stats é o conjunto de estatísticas do painel
type Stats struct {
	Range         Range             `json:"range"`
	Sales         SalesSummary      `json:"sales"`
	PreviousSales SalesSummary      `json:"previous_sales"`
	ChangePercent float64           `json:"change_percent"` // Variação sobre a janela anterior
	TopProducts   []TopProduct      `json:"top_products"`
	LowStock      []LowStockProduct `json:"low_stock"`
	PendingDebts  float64           `json:"pending_debts"`
	GeneratedAt   time.Time         `json:"generated_at"`
}

// ChangePercent calcula a variação percentual entre duas janelas
func ChangePercent(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return (current - previous) / previous * 100
}

// Repository define as consultas de agregação do painel. Somente leitura;
// qualquer réplica que reflita vendas e produtos confirmados satisfaz o contrato.
type Repository interface {
	// SalesSummary agrega total e contagem de vendas na janela
	SalesSummary(ctx context.Context, businessID string, from, to time.Time) (SalesSummary, error)

	// TopProducts retorna os produtos mais vendidos na janela
	TopProducts(ctx context.Context, businessID string, from, to time.Time, limit int) ([]TopProduct, error)

	// LowStock lista os produtos com estoque baixo ou esgotado
	LowStock(ctx context.Context, businessID string, limit int) ([]LowStockProduct, error)
}
