package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem é uma linha do carrinho de um usuário.
// A chave composta (UserID, ProductID) é única.
type CartItem struct {
	ID        string
	UserID    string
	ProductID string
	Product   *Product
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Subtotal calcula preço unitário atual × quantidade
func (i *CartItem) Subtotal() decimal.Decimal {
	if i.Product == nil {
		return decimal.Zero
	}
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartTotal soma os subtotais de todas as linhas
func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].Subtotal())
	}
	return total
}
