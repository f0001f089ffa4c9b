package debt

import (
	"errors"
	"testing"
)

func TestNewDebt(t *testing.T) {
	d, err := NewDebt("biz", "cust", "sale", 29.50)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if d.Status != StatusPending {
		t.Errorf("status = %s, esperado pending", d.Status)
	}
	if d.Remaining() != 29.50 {
		t.Errorf("saldo = %.2f, esperado 29.50", d.Remaining())
	}

	if _, err := NewDebt("biz", "cust", "sale", 0); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("erro = %v, esperado ErrInvalidAmount", err)
	}
}

func TestRegisterPayment(t *testing.T) {
	d, err := NewDebt("biz", "cust", "sale", 100)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	// Pagamento parcial mantém a dívida pendente
	if err := d.RegisterPayment(40); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if d.Status != StatusPending || d.Remaining() != 60 {
		t.Errorf("após parcial: status=%s saldo=%.2f, esperado pending/60.00", d.Status, d.Remaining())
	}

	// Pagamento maior que o saldo é rejeitado
	if err := d.RegisterPayment(60.01); !errors.Is(err, ErrOverpayment) {
		t.Errorf("erro = %v, esperado ErrOverpayment", err)
	}

	// Quitação zera o saldo e muda o status
	if err := d.RegisterPayment(60); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if d.Status != StatusPaid || d.Remaining() != 0 {
		t.Errorf("após quitação: status=%s saldo=%.2f, esperado paid/0.00", d.Status, d.Remaining())
	}

	// Dívida quitada não aceita novos pagamentos
	if err := d.RegisterPayment(1); !errors.Is(err, ErrAlreadySettled) {
		t.Errorf("erro = %v, esperado ErrAlreadySettled", err)
	}
}

func TestRegisterPaymentValidation(t *testing.T) {
	d, err := NewDebt("biz", "", "sale", 10)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	for _, amount := range []float64{0, -5} {
		if err := d.RegisterPayment(amount); !errors.Is(err, ErrInvalidPayment) {
			t.Errorf("RegisterPayment(%v): erro = %v, esperado ErrInvalidPayment", amount, err)
		}
	}
}
