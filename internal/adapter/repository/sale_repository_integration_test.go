package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	saledomain "github.com/hugohenrick/pdv-varejo/internal/domain/sale"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Os testes deste arquivo rodam contra um Postgres real com as migrações
// aplicadas. Sem PDV_TEST_DATABASE_URL definido eles são pulados.

func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	databaseURL := os.Getenv("PDV_TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("defina PDV_TEST_DATABASE_URL para rodar o teste de integração")
	}

	pool, err := pgxpool.New(context.Background(), databaseURL)
	if err != nil {
		t.Fatalf("erro ao conectar no banco de teste: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

type saleFixture struct {
	businessID string
	userID     string
	productA   string
	productB   string
}

// seedSaleFixture grava um negócio, um caixa e dois produtos com controle de
// estoque, removendo tudo ao final do teste
func seedSaleFixture(t *testing.T, ctx context.Context, pool *pgxpool.Pool, stockA, minA, stockB, minB int) saleFixture {
	t.Helper()

	stamp := time.Now().UnixNano()
	fx := saleFixture{
		businessID: uuid.New().String(),
		userID:     uuid.New().String(),
		productA:   uuid.New().String(),
		productB:   uuid.New().String(),
	}

	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `DELETE FROM notifications WHERE business_id = $1`, fx.businessID)
		_, _ = pool.Exec(ctx, `DELETE FROM inventory_movements WHERE business_id = $1`, fx.businessID)
		_, _ = pool.Exec(ctx, `DELETE FROM debts WHERE business_id = $1`, fx.businessID)
		_, _ = pool.Exec(ctx, `DELETE FROM sale_items WHERE sale_id IN (SELECT id FROM sales WHERE business_id = $1)`, fx.businessID)
		_, _ = pool.Exec(ctx, `DELETE FROM sales WHERE business_id = $1`, fx.businessID)
		_, _ = pool.Exec(ctx, `DELETE FROM products WHERE business_id = $1`, fx.businessID)
		_, _ = pool.Exec(ctx, `DELETE FROM users WHERE business_id = $1`, fx.businessID)
		_, _ = pool.Exec(ctx, `DELETE FROM businesses WHERE id = $1`, fx.businessID)
	})

	if _, err := pool.Exec(ctx, `
		INSERT INTO businesses (id, name, document, tax_rate, tax_inclusive)
		VALUES ($1, 'Mercado Teste', $2, 0, FALSE)
	`, fx.businessID, fmt.Sprintf("doc-%d", stamp)); err != nil {
		t.Fatalf("erro ao gravar negócio: %v", err)
	}

	if _, err := pool.Exec(ctx, `
		INSERT INTO users (id, business_id, name, email, password, role)
		VALUES ($1, $2, 'Caixa Teste', $3, 'hash', 'cashier')
	`, fx.userID, fx.businessID, fmt.Sprintf("caixa-%d@teste.com", stamp)); err != nil {
		t.Fatalf("erro ao gravar usuário: %v", err)
	}

	products := []struct {
		id    string
		name  string
		stock int
		min   int
	}{
		{fx.productA, "Café Teste", stockA, minA},
		{fx.productB, "Açúcar Teste", stockB, minB},
	}
	for _, p := range products {
		if _, err := pool.Exec(ctx, `
			INSERT INTO products (id, business_id, name, cost_price, selling_price, stock_quantity, min_stock, track_stock)
			VALUES ($1, $2, $3, 5.00, 10.00, $4, $5, TRUE)
		`, p.id, fx.businessID, p.name, p.stock, p.min); err != nil {
			t.Fatalf("erro ao gravar produto %s: %v", p.name, err)
		}
	}

	return fx
}

func countRows(t *testing.T, ctx context.Context, pool *pgxpool.Pool, query string, args ...interface{}) int {
	t.Helper()

	var n int
	if err := pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		t.Fatalf("erro na consulta %q: %v", query, err)
	}
	return n
}

func productStock(t *testing.T, ctx context.Context, pool *pgxpool.Pool, id string) int {
	t.Helper()

	var stock int
	if err := pool.QueryRow(ctx, `SELECT stock_quantity FROM products WHERE id = $1`, id).Scan(&stock); err != nil {
		t.Fatalf("erro ao consultar estoque: %v", err)
	}
	return stock
}

func TestCreateSaleInsufficientStockLeavesNoRows(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	fx := seedSaleFixture(t, ctx, pool, 10, 0, 1, 0)
	repo := NewSaleRepository(pool)

	// O segundo item excede o estoque; a baixa já aplicada ao primeiro deve
	// ser desfeita junto com a venda inteira
	s, err := saledomain.NewSale(fx.businessID, fx.userID, "", []saledomain.CartItem{
		{ProductID: fx.productA, Quantity: 2, UnitPrice: 10.00},
		{ProductID: fx.productB, Quantity: 5, UnitPrice: 10.00},
	}, saledomain.PaymentCash, 0, false, 0, 100.00)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if err := repo.CreateSale(ctx, s, ""); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("erro = %v, esperado ErrInsufficientStock", err)
	}

	if n := countRows(t, ctx, pool, `SELECT COUNT(*) FROM sales WHERE business_id = $1`, fx.businessID); n != 0 {
		t.Errorf("vendas gravadas = %d, esperado 0", n)
	}
	if n := countRows(t, ctx, pool, `SELECT COUNT(*) FROM sale_items WHERE sale_id IN (SELECT id FROM sales WHERE business_id = $1)`, fx.businessID); n != 0 {
		t.Errorf("itens gravados = %d, esperado 0", n)
	}
	if n := countRows(t, ctx, pool, `SELECT COUNT(*) FROM inventory_movements WHERE business_id = $1`, fx.businessID); n != 0 {
		t.Errorf("movimentos gravados = %d, esperado 0", n)
	}
	if stock := productStock(t, ctx, pool, fx.productA); stock != 10 {
		t.Errorf("estoque do primeiro produto = %d, esperado 10 após rollback", stock)
	}
	if stock := productStock(t, ctx, pool, fx.productB); stock != 1 {
		t.Errorf("estoque do segundo produto = %d, esperado 1", stock)
	}
}

func TestCreateSaleRollsBackWhenSuspendedSaleInactive(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	fx := seedSaleFixture(t, ctx, pool, 10, 0, 10, 0)
	repo := NewSaleRepository(pool)

	s, err := saledomain.NewSale(fx.businessID, fx.userID, "", []saledomain.CartItem{
		{ProductID: fx.productA, Quantity: 2, UnitPrice: 10.00},
	}, saledomain.PaymentCash, 0, false, 0, 20.00)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	// A finalização falha no último passo, depois da venda, dos itens e da
	// baixa de estoque já aplicados dentro da transação
	if err := repo.CreateSale(ctx, s, uuid.New().String()); !errors.Is(err, ErrSuspendedNotFinalized) {
		t.Fatalf("erro = %v, esperado ErrSuspendedNotFinalized", err)
	}

	if n := countRows(t, ctx, pool, `SELECT COUNT(*) FROM sales WHERE business_id = $1`, fx.businessID); n != 0 {
		t.Errorf("vendas gravadas = %d, esperado 0", n)
	}
	if n := countRows(t, ctx, pool, `SELECT COUNT(*) FROM inventory_movements WHERE business_id = $1`, fx.businessID); n != 0 {
		t.Errorf("movimentos gravados = %d, esperado 0", n)
	}
	if stock := productStock(t, ctx, pool, fx.productA); stock != 10 {
		t.Errorf("estoque = %d, esperado 10 após rollback", stock)
	}
}

func TestCreateSaleCommitsStockLedgerAndDebt(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	fx := seedSaleFixture(t, ctx, pool, 10, 9, 10, 0)
	repo := NewSaleRepository(pool)

	// Dinheiro com valor recebido menor que o total: pagamento parcial gera
	// dívida pelo saldo; a baixa cruza o estoque mínimo do produto
	s, err := saledomain.NewSale(fx.businessID, fx.userID, "", []saledomain.CartItem{
		{ProductID: fx.productA, Quantity: 2, UnitPrice: 10.00},
	}, saledomain.PaymentCash, 0, false, 0, 5.00)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if err := repo.CreateSale(ctx, s, ""); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	saved, err := repo.FindByID(ctx, fx.businessID, s.ID)
	if err != nil {
		t.Fatalf("erro ao buscar venda gravada: %v", err)
	}
	if len(saved.Items) != 1 || saved.Items[0].ProductName != "Café Teste" {
		t.Errorf("itens = %+v, esperado um item com nome desnormalizado", saved.Items)
	}
	if saved.PaymentStatus != saledomain.PaymentStatusPartial || saved.AmountDue != 15.00 {
		t.Errorf("pagamento = %s/%.2f, esperado partial/15.00", saved.PaymentStatus, saved.AmountDue)
	}

	if stock := productStock(t, ctx, pool, fx.productA); stock != 8 {
		t.Errorf("estoque = %d, esperado 8", stock)
	}
	if n := countRows(t, ctx, pool, `SELECT COUNT(*) FROM inventory_movements WHERE business_id = $1 AND product_id = $2 AND movement_type = 'out'`, fx.businessID, fx.productA); n != 1 {
		t.Errorf("movimentos de saída = %d, esperado 1", n)
	}
	if n := countRows(t, ctx, pool, `SELECT COUNT(*) FROM debts WHERE business_id = $1 AND sale_id = $2 AND status = 'pending' AND amount = 15.00`, fx.businessID, s.ID); n != 1 {
		t.Errorf("dívidas pendentes = %d, esperado 1 de 15.00", n)
	}
	if n := countRows(t, ctx, pool, `SELECT COUNT(*) FROM notifications WHERE business_id = $1 AND type = 'low_stock'`, fx.businessID); n != 1 {
		t.Errorf("notificações de estoque baixo = %d, esperado 1", n)
	}
}
