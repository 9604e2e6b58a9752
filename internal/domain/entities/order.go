package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus acompanha o estado do pagamento junto ao gateway
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusApproved  OrderStatus = "approved"
	OrderStatusRejected  OrderStatus = "rejected"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ShippingStatus acompanha a entrega de pedidos com itens físicos
type ShippingStatus string

const (
	ShippingStatusPending   ShippingStatus = "pending"
	ShippingStatusDelivered ShippingStatus = "delivered"
)

// Order é o cabeçalho de um pedido. Pedidos usam id inteiro sequencial,
// diferente das demais entidades, para servir de external_reference curta
// junto ao gateway de pagamento.
type Order struct {
	ID              int64
	UserID          string
	GatewayOrderID  *string
	IsPaid          bool
	Status          OrderStatus
	ShippingStatus  ShippingStatus
	Amount          decimal.Decimal
	DiscountPercent int
	Lines           []OrderLine
	CreatedAt       time.Time
}

// OrderLine congela produto, quantidade e preço no momento da compra.
// O preço é copiado do produto e nunca relido depois.
type OrderLine struct {
	ID        string
	OrderID   int64
	ProductID string
	Product   *Product
	Quantity  int
	Price     decimal.Decimal
}

// IsDelivered verifica se o pedido já foi marcado como entregue
func (o *Order) IsDelivered() bool {
	return o.ShippingStatus == ShippingStatusDelivered
}

// MarkDelivered efetua a transição de entrega. Retorna false quando o
// pedido já estava entregue, para que a confirmação por email aconteça
// no máximo uma vez.
func (o *Order) MarkDelivered() bool {
	if o.IsDelivered() {
		return false
	}
	o.ShippingStatus = ShippingStatusDelivered
	return true
}

// HasPhysicalLines verifica se alguma linha exige envio
func (o *Order) HasPhysicalLines() bool {
	for i := range o.Lines {
		if o.Lines[i].Product != nil && o.Lines[i].Product.Type == ProductTypePhysical {
			return true
		}
	}
	return false
}

// OrderAmount aplica o desconto percentual sobre a soma das linhas
func OrderAmount(lines []OrderLine, discountPercent int) decimal.Decimal {
	total := decimal.Zero
	for i := range lines {
		total = total.Add(lines[i].Price.Mul(decimal.NewFromInt(int64(lines[i].Quantity))))
	}
	if discountPercent <= 0 {
		return total
	}
	factor := decimal.NewFromInt(int64(100 - discountPercent)).Div(decimal.NewFromInt(100))
	return total.Mul(factor).Round(2)
}
