package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/pdv-varejo/internal/domain/debt"
	"github.com/hugohenrick/pdv-varejo/internal/domain/inventory"
	"github.com/hugohenrick/pdv-varejo/internal/domain/notification"
	"github.com/hugohenrick/pdv-varejo/internal/domain/sale"
	"github.com/hugohenrick/pdv-varejo/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrSaleNotFound          = errors.New("venda não encontrada")
	ErrSaleProductNotFound   = errors.New("produto da venda não encontrado")
	ErrInsufficientStock     = errors.New("estoque insuficiente para o produto")
	ErrSaleNumberTaken       = errors.New("número de venda já utilizado")
	ErrSuspendedNotFinalized = errors.New("venda suspensa não está ativa para finalização")
)

const saleColumns = `id, business_id, user_id, customer_id, sale_number,
	subtotal, tax_amount, discount_amount, total_amount, payment_method,
	payment_status, amount_paid, amount_due, change_amount, receipt_printed,
	created_at`

// SaleRepository implementa a interface sale.Repository
type SaleRepository struct {
	db *pgxpool.Pool
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *pgxpool.Pool) sale.Repository {
	return &SaleRepository{db: db}
}

// CreateSale implementa sale.Repository.CreateSale. Toda a finalização da
// venda acontece em uma única transação: cabeçalho, itens, baixa de estoque,
// razão de inventário, dívida, notificação de estoque baixo e a conclusão da
// venda suspensa. Qualquer falha desfaz tudo.
func (r *SaleRepository) CreateSale(ctx context.Context, s *sale.Sale, suspendedSaleID string) error {
	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		// Desnormalizar os dados de produto nos itens antes de gravar
		if err := r.resolveItems(ctx, tx, s); err != nil {
			return err
		}

		if err := r.insertSale(ctx, tx, s); err != nil {
			return err
		}

		for i := range s.Items {
			if err := r.insertSaleItem(ctx, tx, &s.Items[i]); err != nil {
				return err
			}
		}

		if err := r.applyStock(ctx, tx, s); err != nil {
			return err
		}

		// Fiado ou pagamento parcial gera dívida pendente
		if s.AmountDue > 0 || s.PaymentMethod == sale.PaymentCredit {
			amount := s.AmountDue
			if s.PaymentMethod == sale.PaymentCredit {
				amount = s.TotalAmount
			}
			d, err := debt.NewDebt(s.BusinessID, s.CustomerID, s.ID, amount)
			if err != nil {
				return err
			}
			if err := insertDebt(ctx, tx, d); err != nil {
				return err
			}
		}

		if suspendedSaleID != "" {
			result, err := tx.Exec(ctx,
				`UPDATE suspended_sales SET status = 'completed'
				WHERE id = $1 AND business_id = $2 AND status = 'active'`,
				suspendedSaleID, s.BusinessID)
			if err != nil {
				return fmt.Errorf("erro ao concluir venda suspensa: %w", err)
			}
			if result.RowsAffected() == 0 {
				return ErrSuspendedNotFinalized
			}
		}

		if s.CustomerID != "" {
			_, err := tx.Exec(ctx,
				"UPDATE customers SET last_purchase_at = $1, updated_at = $1 WHERE id = $2 AND business_id = $3",
				s.CreatedAt, s.CustomerID, s.BusinessID)
			if err != nil {
				return fmt.Errorf("erro ao atualizar última compra do cliente: %w", err)
			}
		}

		return nil
	})
}

// resolveItems valida os produtos do carrinho e preenche nome, SKU e custo
// desnormalizados no momento da venda
func (r *SaleRepository) resolveItems(ctx context.Context, tx pgx.Tx, s *sale.Sale) error {
	for i := range s.Items {
		item := &s.Items[i]

		var name string
		var sku *string
		var costPrice float64
		err := tx.QueryRow(ctx,
			`SELECT name, sku, cost_price FROM products
			WHERE id = $1 AND business_id = $2 AND status = 'active'`,
			item.ProductID, s.BusinessID).Scan(&name, &sku, &costPrice)

		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrSaleProductNotFound
			}
			return fmt.Errorf("erro ao buscar produto da venda: %w", err)
		}

		item.ProductName = name
		item.ProductSKU = deref(sku)
		item.CostPrice = costPrice
	}

	return nil
}

// insertSale grava o cabeçalho da venda
func (r *SaleRepository) insertSale(ctx context.Context, tx pgx.Tx, s *sale.Sale) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO sales (
			id, business_id, user_id, customer_id, sale_number, subtotal,
			tax_amount, discount_amount, total_amount, payment_method,
			payment_status, amount_paid, amount_due, change_amount,
			receipt_printed, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		s.ID, s.BusinessID, s.UserID, nullIfEmpty(s.CustomerID), s.SaleNumber,
		s.Subtotal, s.TaxAmount, s.DiscountAmount, s.TotalAmount,
		s.PaymentMethod, s.PaymentStatus, s.AmountPaid, s.AmountDue,
		s.ChangeAmount, s.ReceiptPrinted, s.CreatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrSaleNumberTaken
		}
		return fmt.Errorf("erro ao gravar venda: %w", err)
	}

	return nil
}

// insertSaleItem grava um item da venda
func (r *SaleRepository) insertSaleItem(ctx context.Context, tx pgx.Tx, item *sale.SaleItem) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO sale_items (
			id, sale_id, product_id, product_name, product_sku, cost_price,
			quantity, unit_price, tax_rate, tax_amount, line_total
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		item.ID, item.SaleID, item.ProductID, item.ProductName,
		nullIfEmpty(item.ProductSKU), item.CostPrice, item.Quantity,
		item.UnitPrice, item.TaxRate, item.TaxAmount, item.LineTotal)

	if err != nil {
		return fmt.Errorf("erro ao gravar item da venda: %w", err)
	}

	return nil
}

// applyStock dá baixa no estoque dos produtos com controle habilitado.
// A atualização é relativa, serializada pelo lock de linha do banco, e
// guarda o piso: estoque insuficiente aborta a venda inteira. Quando a baixa
// cruza o estoque mínimo, a notificação de estoque baixo é gravada na mesma
// transação.
func (r *SaleRepository) applyStock(ctx context.Context, tx pgx.Tx, s *sale.Sale) error {
	for i := range s.Items {
		item := &s.Items[i]

		var tracked bool
		err := tx.QueryRow(ctx,
			"SELECT track_stock FROM products WHERE id = $1 AND business_id = $2",
			item.ProductID, s.BusinessID).Scan(&tracked)
		if err != nil {
			return fmt.Errorf("erro ao verificar controle de estoque: %w", err)
		}
		if !tracked {
			continue
		}

		var newStock, minStock int
		err = tx.QueryRow(ctx,
			`UPDATE products
			SET stock_quantity = stock_quantity - $1, updated_at = $2
			WHERE id = $3 AND business_id = $4 AND stock_quantity >= $1
			RETURNING stock_quantity, min_stock`,
			item.Quantity, s.CreatedAt, item.ProductID, s.BusinessID).Scan(&newStock, &minStock)

		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrInsufficientStock
			}
			return fmt.Errorf("erro ao dar baixa no estoque: %w", err)
		}

		m, err := inventory.NewMovement(s.BusinessID, item.ProductID, s.UserID, inventory.MovementOut, item.Quantity, inventory.ReasonSale)
		if err != nil {
			return err
		}
		if err := insertMovement(ctx, tx, m); err != nil {
			return err
		}

		if newStock <= minStock {
			if err := r.insertLowStockNotification(ctx, tx, s.BusinessID, item.ProductName, item.ProductID, newStock, minStock); err != nil {
				return err
			}
		}
	}

	return nil
}

// insertLowStockNotification grava a notificação de estoque baixo
func (r *SaleRepository) insertLowStockNotification(ctx context.Context, tx pgx.Tx, businessID, productName, productID string, stock, minStock int) error {
	payload, err := json.Marshal(map[string]interface{}{
		"product_id":     productID,
		"product_name":   productName,
		"stock_quantity": stock,
		"min_stock":      minStock,
	})
	if err != nil {
		return fmt.Errorf("erro ao montar payload da notificação: %w", err)
	}

	title := fmt.Sprintf("Estoque baixo: %s", productName)
	message := fmt.Sprintf("O produto %s ficou com %d unidades em estoque (mínimo %d)", productName, stock, minStock)
	n, err := notification.New(businessID, notification.TypeLowStock, title, message, notification.PriorityHigh, payload)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO notifications (
			business_id, type, title, message, priority, payload, read, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		n.BusinessID, n.Type, n.Title, n.Message, n.Priority, n.Payload,
		n.Read, n.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao gravar notificação: %w", err)
	}

	return nil
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, businessID, id string) (*sale.Sale, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE id = $1 AND business_id = $2`,
		id, businessID)

	s, err := scanSale(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}

	items, err := r.findItems(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Items = items

	return s, nil
}

// findItems busca os itens de uma venda
func (r *SaleRepository) findItems(ctx context.Context, saleID string) ([]sale.SaleItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, sale_id, product_id, product_name, product_sku, cost_price,
			quantity, unit_price, tax_rate, tax_amount, line_total
		FROM sale_items WHERE sale_id = $1
		ORDER BY product_name ASC`,
		saleID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar itens da venda: %w", err)
	}
	defer rows.Close()

	items := make([]sale.SaleItem, 0)
	for rows.Next() {
		var item sale.SaleItem
		var sku *string
		err := rows.Scan(
			&item.ID, &item.SaleID, &item.ProductID, &item.ProductName, &sku,
			&item.CostPrice, &item.Quantity, &item.UnitPrice, &item.TaxRate,
			&item.TaxAmount, &item.LineTotal)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler item da venda: %w", err)
		}
		item.ProductSKU = deref(sku)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return items, nil
}

// buildSaleFilter monta os predicados de listagem com parâmetros vinculados
func buildSaleFilter(businessID string, filter sale.ListFilter) (string, []interface{}) {
	conds := []string{"business_id = $1"}
	args := []interface{}{businessID}

	if filter.From != nil {
		args = append(args, *filter.From)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conds = append(conds, fmt.Sprintf("created_at < $%d", len(args)))
	}
	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		conds = append(conds, fmt.Sprintf("customer_id = $%d", len(args)))
	}
	if filter.PaymentStatus != "" {
		args = append(args, filter.PaymentStatus)
		conds = append(conds, fmt.Sprintf("payment_status = $%d", len(args)))
	}

	return strings.Join(conds, " AND "), args
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context, businessID string, filter sale.ListFilter) ([]*sale.Sale, error) {
	where, args := buildSaleFilter(businessID, filter)

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(
		`SELECT %s FROM sales WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		saleColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	sales := make([]*sale.Sale, 0)
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}
		sales = append(sales, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return sales, nil
}

// Count implementa sale.Repository.Count
func (r *SaleRepository) Count(ctx context.Context, businessID string, filter sale.ListFilter) (int, error) {
	where, args := buildSaleFilter(businessID, filter)

	var count int
	err := r.db.QueryRow(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM sales WHERE %s", where),
		args...).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar vendas: %w", err)
	}

	return count, nil
}

// MarkReceiptPrinted implementa sale.Repository.MarkReceiptPrinted
func (r *SaleRepository) MarkReceiptPrinted(ctx context.Context, businessID, id string) error {
	result, err := r.db.Exec(ctx,
		"UPDATE sales SET receipt_printed = TRUE WHERE id = $1 AND business_id = $2",
		id, businessID)

	if err != nil {
		return fmt.Errorf("erro ao marcar recibo: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSaleNotFound
	}

	return nil
}

// scanSale lê uma venda de uma linha de resultado
func scanSale(row pgx.Row) (*sale.Sale, error) {
	var s sale.Sale
	var customerID *string

	err := row.Scan(
		&s.ID, &s.BusinessID, &s.UserID, &customerID, &s.SaleNumber,
		&s.Subtotal, &s.TaxAmount, &s.DiscountAmount, &s.TotalAmount,
		&s.PaymentMethod, &s.PaymentStatus, &s.AmountPaid, &s.AmountDue,
		&s.ChangeAmount, &s.ReceiptPrinted, &s.CreatedAt)
	if err != nil {
		return nil, err
	}

	s.CustomerID = deref(customerID)
	return &s, nil
}

// insertDebt grava a dívida dentro da transação da venda
func insertDebt(ctx context.Context, tx pgx.Tx, d *debt.Debt) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO debts (
			id, business_id, customer_id, sale_id, amount, amount_paid,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		d.ID, d.BusinessID, nullIfEmpty(d.CustomerID), d.SaleID, d.Amount,
		d.AmountPaid, d.Status, d.CreatedAt, d.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao gravar dívida: %w", err)
	}

	return nil
}
