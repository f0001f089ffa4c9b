package product

import (
	"errors"
	"testing"
)

func TestStockState(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		minStock int
		want     StockState
	}{
		{"esgotado", 0, 5, StockStateOut},
		{"esgotado sem mínimo", 0, 0, StockStateOut},
		{"baixo no limite", 5, 5, StockStateLow},
		{"baixo abaixo do limite", 1, 5, StockStateLow},
		{"normal", 6, 5, StockStateNormal},
		{"normal sem mínimo", 1, 0, StockStateNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{StockQuantity: tt.stock, MinStock: tt.minStock}
			if got := p.StockState(); got != tt.want {
				t.Errorf("StockState() = %s, esperado %s", got, tt.want)
			}
		})
	}
}

func TestValidStockState(t *testing.T) {
	for _, valid := range []string{"normal", "low", "out"} {
		if !ValidStockState(valid) {
			t.Errorf("ValidStockState(%q) = false, esperado true", valid)
		}
	}
	for _, invalid := range []string{"", "empty", "LOW"} {
		if ValidStockState(invalid) {
			t.Errorf("ValidStockState(%q) = true, esperado false", invalid)
		}
	}
}

func TestNewProductValidation(t *testing.T) {
	tests := []struct {
		name    string
		run     func() error
		wantErr error
	}{
		{"nome vazio", func() error {
			_, err := NewProduct("biz", "", "", "", "", 1, 2, 0, 0, true)
			return err
		}, ErrEmptyName},
		{"preço de venda negativo", func() error {
			_, err := NewProduct("biz", "", "Café", "", "", 1, -2, 0, 0, true)
			return err
		}, ErrInvalidPrice},
		{"custo negativo", func() error {
			_, err := NewProduct("biz", "", "Café", "", "", -1, 2, 0, 0, true)
			return err
		}, ErrInvalidPrice},
		{"estoque negativo", func() error {
			_, err := NewProduct("biz", "", "Café", "", "", 1, 2, -1, 0, true)
			return err
		}, ErrInvalidStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); !errors.Is(err, tt.wantErr) {
				t.Errorf("erro = %v, esperado %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewProductDefaults(t *testing.T) {
	p, err := NewProduct("biz", "cat", "Café Torrado", "CAFE-1", "789000000000", 8.50, 14.90, 50, 10, true)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if p.ID == "" {
		t.Error("produto sem ID")
	}
	if p.Status != StatusActive {
		t.Errorf("status = %s, esperado active", p.Status)
	}
	if !p.IsActive() {
		t.Error("IsActive() = false para produto novo")
	}
	if p.StockState() != StockStateNormal {
		t.Errorf("StockState() = %s, esperado normal", p.StockState())
	}
}

func TestProductUpdateKeepsStock(t *testing.T) {
	p, err := NewProduct("biz", "", "Café", "", "", 8, 14, 30, 5, true)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if err := p.Update("cat", "Café Premium", "CAFE-2", "", 9, 16, 8, true); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if p.StockQuantity != 30 {
		t.Errorf("estoque = %d, esperado 30 inalterado", p.StockQuantity)
	}
	if p.Name != "Café Premium" || p.SKU != "CAFE-2" || p.MinStock != 8 {
		t.Errorf("cadastro não atualizado: %+v", p)
	}
}
