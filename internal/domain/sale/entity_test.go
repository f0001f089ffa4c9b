package sale

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func cart(items ...CartItem) []CartItem {
	return items
}

func TestComputeTotalsTaxExclusive(t *testing.T) {
	// Carrinho de 25.00 com 18% sobre o subtotal
	items := cart(
		CartItem{ProductID: "p1", Quantity: 2, UnitPrice: 10.00},
		CartItem{ProductID: "p2", Quantity: 1, UnitPrice: 5.00},
	)

	totals, err := ComputeTotals(items, 0.18, false, 0)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if totals.Subtotal != 25.00 {
		t.Errorf("subtotal = %.2f, esperado 25.00", totals.Subtotal)
	}
	if totals.TaxAmount != 4.50 {
		t.Errorf("imposto = %.2f, esperado 4.50", totals.TaxAmount)
	}
	if totals.TotalAmount != 29.50 {
		t.Errorf("total = %.2f, esperado 29.50", totals.TotalAmount)
	}
}

func TestComputeTotalsTaxInclusive(t *testing.T) {
	// Com imposto embutido o total cobrado é o valor bruto do carrinho e o
	// subtotal registrado é o líquido
	items := cart(CartItem{ProductID: "p1", Quantity: 1, UnitPrice: 118.00})

	totals, err := ComputeTotals(items, 0.18, true, 0)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if totals.TaxAmount != 18.00 {
		t.Errorf("imposto = %.2f, esperado 18.00", totals.TaxAmount)
	}
	if totals.Subtotal != 100.00 {
		t.Errorf("subtotal = %.2f, esperado 100.00", totals.Subtotal)
	}
	if totals.TotalAmount != 118.00 {
		t.Errorf("total = %.2f, esperado 118.00", totals.TotalAmount)
	}
}

func TestComputeTotalsInvariant(t *testing.T) {
	// total = subtotal + imposto - desconto vale nos dois modos de tributação
	items := cart(
		CartItem{ProductID: "p1", Quantity: 3, UnitPrice: 7.99},
		CartItem{ProductID: "p2", Quantity: 2, UnitPrice: 12.35},
	)

	for _, inclusive := range []bool{false, true} {
		totals, err := ComputeTotals(items, 0.18, inclusive, 5.00)
		if err != nil {
			t.Fatalf("inclusive=%v: erro inesperado: %v", inclusive, err)
		}
		want := Round2(totals.Subtotal + totals.TaxAmount - 5.00)
		if totals.TotalAmount != want {
			t.Errorf("inclusive=%v: total = %.2f, esperado %.2f", inclusive, totals.TotalAmount, want)
		}
	}
}

func TestComputeTotalsValidation(t *testing.T) {
	valid := cart(CartItem{ProductID: "p1", Quantity: 1, UnitPrice: 10})

	tests := []struct {
		name     string
		items    []CartItem
		taxRate  float64
		discount float64
		wantErr  error
	}{
		{"carrinho vazio", nil, 0.18, 0, ErrEmptyCart},
		{"quantidade zero", cart(CartItem{ProductID: "p1", Quantity: 0, UnitPrice: 10}), 0.18, 0, ErrInvalidQuantity},
		{"quantidade negativa", cart(CartItem{ProductID: "p1", Quantity: -1, UnitPrice: 10}), 0.18, 0, ErrInvalidQuantity},
		{"preço negativo", cart(CartItem{ProductID: "p1", Quantity: 1, UnitPrice: -0.01}), 0.18, 0, ErrInvalidUnitPrice},
		{"produto vazio", cart(CartItem{ProductID: "  ", Quantity: 1, UnitPrice: 10}), 0.18, 0, ErrInvalidProductID},
		{"desconto negativo", valid, 0.18, -1, ErrInvalidDiscount},
		{"desconto maior que subtotal", valid, 0.18, 10.01, ErrInvalidDiscount},
		{"alíquota negativa", valid, -0.01, 0, ErrInvalidTaxRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeTotals(tt.items, tt.taxRate, false, tt.discount)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("erro = %v, esperado %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolvePaymentCashChange(t *testing.T) {
	// Dinheiro: 30.00 recebidos sobre total de 29.50 devolvem 0.50 de troco
	p, err := ResolvePayment(PaymentCash, 29.50, 30.00)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if p.ChangeAmount != 0.50 {
		t.Errorf("troco = %.2f, esperado 0.50", p.ChangeAmount)
	}
	if p.AmountDue != 0 {
		t.Errorf("valor devido = %.2f, esperado 0", p.AmountDue)
	}
	if p.Status != PaymentStatusPaid {
		t.Errorf("status = %s, esperado paid", p.Status)
	}
}

func TestResolvePaymentCashPartial(t *testing.T) {
	p, err := ResolvePayment(PaymentCash, 29.50, 10.00)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if p.AmountDue != 19.50 {
		t.Errorf("valor devido = %.2f, esperado 19.50", p.AmountDue)
	}
	if p.ChangeAmount != 0 {
		t.Errorf("troco = %.2f, esperado 0", p.ChangeAmount)
	}
	if p.Status != PaymentStatusPartial {
		t.Errorf("status = %s, esperado partial", p.Status)
	}
}

func TestResolvePaymentCreditForcesPending(t *testing.T) {
	// Fiado nunca registra pagamento, mesmo com valor recebido informado
	p, err := ResolvePayment(PaymentCredit, 50.00, 50.00)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if p.AmountPaid != 0 {
		t.Errorf("valor pago = %.2f, esperado 0", p.AmountPaid)
	}
	if p.AmountDue != 50.00 {
		t.Errorf("valor devido = %.2f, esperado 50.00", p.AmountDue)
	}
	if p.Status != PaymentStatusPending {
		t.Errorf("status = %s, esperado pending", p.Status)
	}
}

func TestResolvePaymentCardSettlesTotal(t *testing.T) {
	for _, method := range []PaymentMethod{PaymentCard, PaymentTransfer} {
		p, err := ResolvePayment(method, 42.10, 0)
		if err != nil {
			t.Fatalf("%s: erro inesperado: %v", method, err)
		}
		if p.AmountPaid != 42.10 || p.AmountDue != 0 || p.Status != PaymentStatusPaid {
			t.Errorf("%s: pagamento = %+v, esperado quitação integral", method, p)
		}
	}
}

func TestResolvePaymentInvalidMethod(t *testing.T) {
	if _, err := ResolvePayment("cheque", 10, 10); !errors.Is(err, ErrInvalidPaymentType) {
		t.Errorf("erro = %v, esperado ErrInvalidPaymentType", err)
	}
}

func TestGenerateSaleNumberFormat(t *testing.T) {
	now := time.Date(2025, 3, 15, 14, 30, 45, 0, time.UTC)
	number := GenerateSaleNumber(now)

	if !strings.HasPrefix(number, "VD-20250315143045-") {
		t.Errorf("número = %s, prefixo esperado VD-20250315143045-", number)
	}

	suffix := strings.TrimPrefix(number, "VD-20250315143045-")
	if len(suffix) != 6 {
		t.Errorf("sufixo = %q, esperado 6 caracteres", suffix)
	}
	if suffix != strings.ToUpper(suffix) {
		t.Errorf("sufixo = %q, esperado maiúsculas", suffix)
	}
}

func TestNewSale(t *testing.T) {
	items := cart(
		CartItem{ProductID: "p1", Quantity: 2, UnitPrice: 10.00},
		CartItem{ProductID: "p2", Quantity: 1, UnitPrice: 5.00},
	)

	s, err := NewSale("biz", "user", "", items, PaymentCash, 0.18, false, 0, 30.00)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if s.TotalAmount != 29.50 {
		t.Errorf("total = %.2f, esperado 29.50", s.TotalAmount)
	}
	if s.ChangeAmount != 0.50 {
		t.Errorf("troco = %.2f, esperado 0.50", s.ChangeAmount)
	}
	if len(s.Items) != 2 {
		t.Fatalf("itens = %d, esperado 2", len(s.Items))
	}

	// Imposto por linha no modo exclusivo é a alíquota sobre o total da linha
	if s.Items[0].LineTotal != 20.00 || s.Items[0].TaxAmount != 3.60 {
		t.Errorf("item 0: line=%.2f tax=%.2f, esperado 20.00/3.60", s.Items[0].LineTotal, s.Items[0].TaxAmount)
	}
	if s.ID == "" || s.SaleNumber == "" {
		t.Error("venda sem ID ou número")
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.0},
		{1.015, 1.01},
		{2.675, 2.67},
		{10.994999, 10.99},
		{10.995001, 11.00},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, esperado %v", tt.in, got, tt.want)
		}
	}
}
