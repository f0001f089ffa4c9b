package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("nome do produto não pode ser vazio")
	ErrInvalidPrice  = errors.New("preço de venda deve ser maior ou igual a zero")
	ErrInvalidStock  = errors.New("estoque não pode ser negativo")
	ErrInvalidStatus = errors.New("status de produto inválido")
)

// Status representa o estado do produto
type Status string

const (
	StatusActive  Status = "active"
	StatusDeleted Status = "deleted" // Exclusão lógica quando há vendas referenciando
)

// StockState particiona os produtos pela situação do estoque
type StockState string

const (
	StockStateNormal StockState = "normal" // stock > min_stock
	StockStateLow    StockState = "low"    // 0 < stock <= min_stock
	StockStateOut    StockState = "out"    // stock = 0
)

// ValidStockState verifica se o valor de filtro é um estado de estoque conhecido
func ValidStockState(s string) bool {
	switch StockState(s) {
	case StockStateNormal, StockStateLow, StockStateOut:
		return true
	}
	return false
}

// Product representa um produto do catálogo
type Product struct {
	ID            string    `json:"id"`
	BusinessID    string    `json:"business_id"`
	CategoryID    string    `json:"category_id,omitempty"`
	Name          string    `json:"name"`
	SKU           string    `json:"sku,omitempty"`     // Código do produto, único por negócio quando presente
	Barcode       string    `json:"barcode,omitempty"` // Código de barras
	CostPrice     float64   `json:"cost_price"`
	SellingPrice  float64   `json:"selling_price"`
	StockQuantity int       `json:"stock_quantity"`
	MinStock      int       `json:"min_stock"`
	TrackStock    bool      `json:"track_stock"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewProduct cria um novo produto
func NewProduct(businessID, categoryID, name, sku, barcode string, costPrice, sellingPrice float64, stockQuantity, minStock int, trackStock bool) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if sellingPrice < 0 || costPrice < 0 {
		return nil, ErrInvalidPrice
	}
	if stockQuantity < 0 || minStock < 0 {
		return nil, ErrInvalidStock
	}

	now := time.Now()
	return &Product{
		ID:            uuid.New().String(),
		BusinessID:    businessID,
		CategoryID:    categoryID,
		Name:          name,
		SKU:           sku,
		Barcode:       barcode,
		CostPrice:     costPrice,
		SellingPrice:  sellingPrice,
		StockQuantity: stockQuantity,
		MinStock:      minStock,
		TrackStock:    trackStock,
		Status:        StatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Update atualiza os dados cadastrais do produto
func (p *Product) Update(categoryID, name, sku, barcode string, costPrice, sellingPrice float64, minStock int, trackStock bool) error {
	if name == "" {
		return ErrEmptyName
	}
	if sellingPrice < 0 || costPrice < 0 {
		return ErrInvalidPrice
	}
	if minStock < 0 {
		return ErrInvalidStock
	}

	p.CategoryID = categoryID
	p.Name = name
	p.SKU = sku
	p.Barcode = barcode
	p.CostPrice = costPrice
	p.SellingPrice = sellingPrice
	p.MinStock = minStock
	p.TrackStock = trackStock
	p.UpdatedAt = time.Now()

	return nil
}

// StockState retorna a situação atual do estoque do produto
func (p *Product) StockState() StockState {
	switch {
	case p.StockQuantity == 0:
		return StockStateOut
	case p.StockQuantity <= p.MinStock:
		return StockStateLow
	default:
		return StockStateNormal
	}
}

// IsLowStock verifica se o produto está com estoque baixo (0 < stock <= min)
func (p *Product) IsLowStock() bool {
	return p.StockState() == StockStateLow
}

// IsActive verifica se o produto está ativo
func (p *Product) IsActive() bool {
	return p.Status == StatusActive
}
