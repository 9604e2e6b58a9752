package dto

import (
	"time"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
)

// CreateOrderRequest representa a requisição de criação de pedido.
// Só id e quantidade são aceitos; preços são relidos no servidor.
type CreateOrderRequest struct {
	Products   []OrderItemRequest `json:"products" binding:"required,min=1,dive"`
	CouponCode *string            `json:"coupon_code"`
}

// OrderItemRequest é um item pedido pelo cliente
type OrderItemRequest struct {
	ID       string `json:"id" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// OrderLineResponse representa uma linha congelada de um pedido
type OrderLineResponse struct {
	ProductID string           `json:"product_id"`
	Product   *ProductResponse `json:"product,omitempty"`
	Quantity  int              `json:"quantity"`
	Price     string           `json:"price"`
}

// OrderResponse representa a resposta de um pedido
type OrderResponse struct {
	ID              int64               `json:"id"`
	UserID          string              `json:"user_id"`
	IsPaid          bool                `json:"is_paid"`
	Status          string              `json:"status"`
	ShippingStatus  string              `json:"shipping_status"`
	Amount          string              `json:"amount"`
	DiscountPercent int                 `json:"discount_percent,omitempty"`
	Lines           []OrderLineResponse `json:"lines,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
}

// ToOrderResponse converte uma entidade Order para OrderResponse
func ToOrderResponse(order *entities.Order) OrderResponse {
	resp := OrderResponse{
		ID:              order.ID,
		UserID:          order.UserID,
		IsPaid:          order.IsPaid,
		Status:          string(order.Status),
		ShippingStatus:  string(order.ShippingStatus),
		Amount:          order.Amount.StringFixed(2),
		DiscountPercent: order.DiscountPercent,
		CreatedAt:       order.CreatedAt,
	}
	for i := range order.Lines {
		line := &order.Lines[i]
		lineResp := OrderLineResponse{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price.StringFixed(2),
		}
		if line.Product != nil {
			product := ToProductResponse(line.Product)
			lineResp.Product = &product
		}
		resp.Lines = append(resp.Lines, lineResp)
	}
	return resp
}

// ToOrderResponses converte uma lista de pedidos
func ToOrderResponses(orders []*entities.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = ToOrderResponse(order)
	}
	return responses
}
