package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// PreferenceItem é um item do checkout enviado ao gateway. Preço e título
// vêm sempre da tabela de produtos, nunca do cliente.
type PreferenceItem struct {
	Title     string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Preference é a referência de checkout devolvida pelo gateway
type Preference struct {
	ID        string
	InitPoint string
}

// GatewayPayment é o estado de um pagamento consultado no gateway
type GatewayPayment struct {
	ID                string
	Status            string
	ExternalReference string
	Approved          bool
}

// PaymentGateway abstrai o gateway de pagamento externo (Mercado Pago)
type PaymentGateway interface {
	CreatePreference(ctx context.Context, externalReference string, payerEmail string, items []PreferenceItem) (*Preference, error)
	GetPayment(ctx context.Context, paymentID string) (*GatewayPayment, error)
}
