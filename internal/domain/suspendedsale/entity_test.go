package suspendedsale

import (
	"errors"
	"testing"
)

func TestNewComputesLineTotals(t *testing.T) {
	items := []Item{
		{ProductID: "p1", ProductName: "Café", Quantity: 2, UnitPrice: 10.00},
		{ProductID: "p2", ProductName: "Açúcar", Quantity: 1, UnitPrice: 5.50},
	}

	s, err := New("biz", "cust", items, 25.50, 4.59, 30.09, false)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if s.Status != StatusActive {
		t.Errorf("status = %s, esperado active", s.Status)
	}
	if s.SaleNumber == "" {
		t.Error("venda suspensa sem número")
	}
	if len(s.Items) != 2 {
		t.Fatalf("itens = %d, esperado 2", len(s.Items))
	}

	for i, it := range s.Items {
		if it.ID == "" || it.SuspendedID != s.ID {
			t.Errorf("item %d sem vínculo com a venda suspensa: %+v", i, it)
		}
	}
	if s.Items[0].LineTotal != 20.00 || s.Items[1].LineTotal != 5.50 {
		t.Errorf("line totals = %.2f/%.2f, esperado 20.00/5.50", s.Items[0].LineTotal, s.Items[1].LineTotal)
	}
}

func TestNewRejectsEmptyCart(t *testing.T) {
	if _, err := New("biz", "", nil, 0, 0, 0, false); !errors.Is(err, ErrEmptyCart) {
		t.Errorf("erro = %v, esperado ErrEmptyCart", err)
	}
}

func TestComplete(t *testing.T) {
	items := []Item{{ProductID: "p1", Quantity: 1, UnitPrice: 10}}
	s, err := New("biz", "", items, 10, 0, 10, false)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if err := s.Complete(); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if s.Status != StatusCompleted {
		t.Errorf("status = %s, esperado completed", s.Status)
	}
	if s.IsActive() {
		t.Error("IsActive() = true após conclusão")
	}

	// Concluir duas vezes não é permitido
	if err := s.Complete(); !errors.Is(err, ErrNotActive) {
		t.Errorf("erro = %v, esperado ErrNotActive", err)
	}
}
