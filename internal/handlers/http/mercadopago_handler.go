package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gamevault/gamevault-backend/internal/domain/ports"
	"github.com/gamevault/gamevault-backend/internal/handlers/dto"
	"github.com/gamevault/gamevault-backend/internal/handlers/middleware"
	"github.com/gamevault/gamevault-backend/internal/services"
)

// MercadoPagoHandler lida com o checkout e o webhook do gateway
type MercadoPagoHandler struct {
	orderService *services.OrderService
	logger       ports.Logger
}

// NewMercadoPagoHandler cria um novo MercadoPagoHandler
func NewMercadoPagoHandler(orderService *services.OrderService, logger ports.Logger) *MercadoPagoHandler {
	return &MercadoPagoHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// CreateCheckout cria o pedido pendente e a preference no gateway,
// devolvendo a URL de redirecionamento do checkout
func (h *MercadoPagoHandler) CreateCheckout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationResponse(c, err)
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	result, err := h.orderService.CreateCheckout(c.Request.Context(), userID, orderItems(req.Products), req.CouponCode)
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CheckoutResponse{
		OrderID:      result.Order.ID,
		PreferenceID: result.PreferenceID,
		InitPoint:    result.InitPoint,
	})
}

// Webhook recebe notificações de pagamento do gateway. A resposta é
// sempre 200: o gateway reenvia em erro e o processamento é idempotente,
// então falhas internas são apenas logadas.
func (h *MercadoPagoHandler) Webhook(c *gin.Context) {
	var notification dto.WebhookNotification
	if err := c.ShouldBindJSON(&notification); err != nil {
		h.logger.Warn("webhook with malformed payload", "error", err)
		c.Status(http.StatusOK)
		return
	}

	if notification.Type != "payment" || notification.Data.ID == "" {
		c.Status(http.StatusOK)
		return
	}

	if err := h.orderService.HandlePaymentNotification(c.Request.Context(), notification.Data.ID); err != nil {
		h.logger.Error("webhook processing failed",
			"payment_id", notification.Data.ID,
			"error", err,
		)
	}

	c.Status(http.StatusOK)
}
