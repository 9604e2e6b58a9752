package ports

// OrderNotifier empurra eventos de pedido para clientes conectados.
// Usuários desconectados são ignorados silenciosamente.
type OrderNotifier interface {
	NotifyUser(userID string, event string, payload any)
}

// OrderStatusPayload é o corpo dos eventos order.paid e order.delivered
type OrderStatusPayload struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
	IsPaid  bool   `json:"is_paid"`
}
