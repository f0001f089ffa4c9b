package sale

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart          = errors.New("a venda deve ter pelo menos um item")
	ErrInvalidQuantity    = errors.New("quantidade do item deve ser maior que zero")
	ErrInvalidUnitPrice   = errors.New("preço unitário não pode ser negativo")
	ErrInvalidProductID   = errors.New("item sem produto associado")
	ErrInvalidDiscount    = errors.New("desconto não pode ser negativo nem maior que o subtotal")
	ErrInvalidPaymentType = errors.New("forma de pagamento inválida")
	ErrInvalidTaxRate     = errors.New("alíquota de imposto inválida")
)

// PaymentMethod representa a forma de pagamento da venda
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentCredit   PaymentMethod = "credit" // Fiado: gera dívida pendente
)

// ValidPaymentMethod verifica se a forma de pagamento é conhecida
func ValidPaymentMethod(m string) bool {
	switch PaymentMethod(m) {
	case PaymentCash, PaymentCard, PaymentTransfer, PaymentCredit:
		return true
	}
	return false
}

// PaymentStatus representa a situação do pagamento
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPending PaymentStatus = "pending"
)

// Sale representa uma venda concluída. Imutável após a criação, exceto
// indicadores de exibição como o recibo impresso.
type Sale struct {
	ID             string        `json:"id"`
	BusinessID     string        `json:"business_id"`
	UserID         string        `json:"user_id"`
	CustomerID     string        `json:"customer_id,omitempty"`
	SaleNumber     string        `json:"sale_number"`
	Subtotal       float64       `json:"subtotal"`
	TaxAmount      float64       `json:"tax_amount"`
	DiscountAmount float64       `json:"discount_amount"`
	TotalAmount    float64       `json:"total_amount"`
	PaymentMethod  PaymentMethod `json:"payment_method"`
	PaymentStatus  PaymentStatus `json:"payment_status"`
	AmountPaid     float64       `json:"amount_paid"`
	AmountDue      float64       `json:"amount_due"`
	ChangeAmount   float64       `json:"change_amount"`
	ReceiptPrinted bool          `json:"receipt_printed"`
	Items          []SaleItem    `json:"items,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

// SaleItem é um item de venda. Nome, SKU e custo do produto são desnormalizados
// no momento da venda e nunca relidos do catálogo.
type SaleItem struct {
	ID          string  `json:"id"`
	SaleID      string  `json:"sale_id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	ProductSKU  string  `json:"product_sku"`
	CostPrice   float64 `json:"cost_price"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TaxRate     float64 `json:"tax_rate"`
	TaxAmount   float64 `json:"tax_amount"`
	LineTotal   float64 `json:"line_total"`
}

// CartItem é uma linha do carrinho enviada pelo caixa
type CartItem struct {
	ProductID string
	Quantity  int
	UnitPrice float64
}

// Totals agrega os valores calculados de um carrinho
type Totals struct {
	Subtotal    float64
	TaxAmount   float64
	TotalAmount float64
}

// Round2 arredonda para duas casas decimais (centavos)
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ValidateCart valida as restrições de entrada do carrinho
func ValidateCart(items []CartItem) error {
	if len(items) == 0 {
		return ErrEmptyCart
	}
	for _, it := range items {
		if strings.TrimSpace(it.ProductID) == "" {
			return ErrInvalidProductID
		}
		if it.Quantity <= 0 {
			return ErrInvalidQuantity
		}
		if it.UnitPrice < 0 {
			return ErrInvalidUnitPrice
		}
	}
	return nil
}

// ComputeTotals calcula subtotal, imposto e total do carrinho.
//
// Com preços sem imposto (tax_inclusive=false) o imposto é a alíquota aplicada
// sobre o subtotal. Com preços com imposto embutido o imposto é extraído por
// linha (preço × r/(1+r)) e o subtotal registrado é o valor líquido, de modo que
// em ambos os modos vale total = subtotal + imposto − desconto.
func ComputeTotals(items []CartItem, taxRate float64, taxInclusive bool, discount float64) (Totals, error) {
	if err := ValidateCart(items); err != nil {
		return Totals{}, err
	}
	if taxRate < 0 {
		return Totals{}, ErrInvalidTaxRate
	}

	gross := 0.0
	for _, it := range items {
		gross += float64(it.Quantity) * it.UnitPrice
	}
	gross = Round2(gross)

	if discount < 0 || discount > gross {
		return Totals{}, ErrInvalidDiscount
	}

	var t Totals
	if taxInclusive {
		tax := 0.0
		for _, it := range items {
			line := float64(it.Quantity) * it.UnitPrice
			tax += line * taxRate / (1 + taxRate)
		}
		t.TaxAmount = Round2(tax)
		t.Subtotal = Round2(gross - t.TaxAmount)
	} else {
		t.Subtotal = gross
		t.TaxAmount = Round2(gross * taxRate)
	}

	t.TotalAmount = Round2(t.Subtotal + t.TaxAmount - discount)
	return t, nil
}

// LineTax calcula o imposto de uma linha conforme o modo de tributação
func LineTax(lineTotal, taxRate float64, taxInclusive bool) float64 {
	if taxInclusive {
		return Round2(lineTotal * taxRate / (1 + taxRate))
	}
	return Round2(lineTotal * taxRate)
}

// Payment representa o resultado do pagamento de uma venda
type Payment struct {
	AmountPaid   float64
	AmountDue    float64
	ChangeAmount float64
	Status       PaymentStatus
}

// ResolvePayment aplica as regras de pagamento sobre o total calculado.
// Dinheiro usa o valor recebido; as demais formas quitam o total. Fiado
// (credit) força o status pendente independentemente do valor devido.
func ResolvePayment(method PaymentMethod, total, cashReceived float64) (Payment, error) {
	if !ValidPaymentMethod(string(method)) {
		return Payment{}, ErrInvalidPaymentType
	}

	p := Payment{}
	switch method {
	case PaymentCash:
		p.AmountPaid = Round2(cashReceived)
		p.ChangeAmount = Round2(math.Max(0, cashReceived-total))
	case PaymentCredit:
		p.AmountPaid = 0
	default:
		p.AmountPaid = total
	}

	p.AmountDue = Round2(math.Max(0, total-p.AmountPaid))

	switch {
	case method == PaymentCredit:
		p.Status = PaymentStatusPending
	case p.AmountDue > 0 && p.AmountPaid > 0:
		p.Status = PaymentStatusPartial
	case p.AmountDue > 0:
		p.Status = PaymentStatusPending
	default:
		p.Status = PaymentStatusPaid
	}

	return p, nil
}

// GenerateSaleNumber gera o identificador legível da venda: timestamp mais um
// sufixo derivado de UUID. A unicidade é garantida pelo índice único
// (business_id, sale_number) no banco, não pelo formato.
func GenerateSaleNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.New().String()[:6])
	return "VD-" + now.Format("20060102150405") + "-" + suffix
}

// NewSale monta a venda a partir do carrinho e das regras de pagamento.
// Os itens recebem os campos desnormalizados do produto no repositório,
// dentro da mesma transação que grava a venda.
func NewSale(businessID, userID, customerID string, items []CartItem, method PaymentMethod, taxRate float64, taxInclusive bool, discount, cashReceived float64) (*Sale, error) {
	totals, err := ComputeTotals(items, taxRate, taxInclusive, discount)
	if err != nil {
		return nil, err
	}

	payment, err := ResolvePayment(method, totals.TotalAmount, cashReceived)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	s := &Sale{
		ID:             uuid.New().String(),
		BusinessID:     businessID,
		UserID:         userID,
		CustomerID:     customerID,
		SaleNumber:     GenerateSaleNumber(now),
		Subtotal:       totals.Subtotal,
		TaxAmount:      totals.TaxAmount,
		DiscountAmount: Round2(discount),
		TotalAmount:    totals.TotalAmount,
		PaymentMethod:  method,
		PaymentStatus:  payment.Status,
		AmountPaid:     payment.AmountPaid,
		AmountDue:      payment.AmountDue,
		ChangeAmount:   payment.ChangeAmount,
		CreatedAt:      now,
	}

	for _, it := range items {
		lineTotal := Round2(float64(it.Quantity) * it.UnitPrice)
		s.Items = append(s.Items, SaleItem{
			ID:        uuid.New().String(),
			SaleID:    s.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			TaxRate:   taxRate,
			TaxAmount: LineTax(lineTotal, taxRate, taxInclusive),
			LineTotal: lineTotal,
		})
	}

	return s, nil
}
