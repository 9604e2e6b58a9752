package dto

// CheckoutRequest inicia um checkout no gateway de pagamento
type CheckoutRequest struct {
	Products   []OrderItemRequest `json:"products" binding:"required,min=1,dive"`
	CouponCode *string            `json:"coupon_code"`
}

// CheckoutResponse devolve a referência de pagamento ao cliente
type CheckoutResponse struct {
	OrderID      int64  `json:"order_id"`
	PreferenceID string `json:"preference_id"`
	InitPoint    string `json:"init_point"`
}

// WebhookNotification é o payload mínimo da notificação do Mercado Pago.
// Só o id é usado; o estado do pagamento é sempre relido do gateway.
type WebhookNotification struct {
	Type string `json:"type" form:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}
