package ports

import (
	"github.com/gamevault/gamevault-backend/internal/domain/entities"
)

// OrderMailLine é uma linha do resumo de pedido enviado por email
type OrderMailLine struct {
	Name string
	Type entities.ProductType
}

// Mailer envia os emails transacionais da loja. Todos os envios são
// best-effort: falhas são logadas e nunca propagadas ao chamador.
type Mailer interface {
	SendWelcome(email, name string)
	SendConfirmation(email, name, token string)
	SendOrder(email, name string, orderID int64, lines []OrderMailLine, total string)
	SendDelivered(email string)
	SendCoupon(email string, coupon *entities.Coupon)
}
