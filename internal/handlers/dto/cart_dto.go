package dto

import (
	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	"github.com/gamevault/gamevault-backend/internal/services"
)

// AddCartItemRequest representa a requisição de inclusão no carrinho.
// Quantidade omitida vale 1.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1"`
}

// UpdateCartItemRequest representa a troca de quantidade de uma linha
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// MixedCartRequest é o carrinho local enviado pelo cliente para merge
type MixedCartRequest struct {
	Items []MixedCartLineRequest `json:"items" binding:"required,dive"`
}

// MixedCartLineRequest é uma linha do carrinho local
type MixedCartLineRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1"`
}

// CartItemResponse representa uma linha do carrinho com o preço corrente
type CartItemResponse struct {
	ProductID string           `json:"product_id"`
	Product   *ProductResponse `json:"product,omitempty"`
	Quantity  int              `json:"quantity"`
	Subtotal  string           `json:"subtotal"`
}

// CartResponse representa o carrinho com o total computado
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total string             `json:"total"`
}

// ToCartItemResponse converte uma linha do carrinho
func ToCartItemResponse(item *entities.CartItem) CartItemResponse {
	resp := CartItemResponse{
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Subtotal:  item.Subtotal().StringFixed(2),
	}
	if item.Product != nil {
		product := ToProductResponse(item.Product)
		resp.Product = &product
	}
	return resp
}

// ToCartResponse converte o carrinho materializado
func ToCartResponse(cart *services.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(cart.Items))
	for i := range cart.Items {
		items = append(items, ToCartItemResponse(&cart.Items[i]))
	}
	return CartResponse{
		Items: items,
		Total: cart.Total.StringFixed(2),
	}
}
