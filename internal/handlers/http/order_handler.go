package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	domainerrors "github.com/gamevault/gamevault-backend/internal/domain/errors"
	"github.com/gamevault/gamevault-backend/internal/handlers/dto"
	"github.com/gamevault/gamevault-backend/internal/handlers/middleware"
	"github.com/gamevault/gamevault-backend/internal/services"
)

// OrderHandler lida com requisições HTTP de pedidos
type OrderHandler struct {
	orderService *services.OrderService
}

// NewOrderHandler cria um novo OrderHandler
func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CreateOrder cria um pedido para o usuário autenticado
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationResponse(c, err)
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	order, err := h.orderService.CreateOrder(c.Request.Context(), userID, orderItems(req.Products), req.CouponCode)
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// GetOrder busca um pedido por ID. Clientes só enxergam os próprios
// pedidos; admins enxergam todos.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	role := c.GetString(middleware.ContextRole)
	if order.UserID != userID && role != string(entities.RoleAdmin) {
		dto.DomainErrorResponse(c, domainerrors.ErrOrderNotFound)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// ListMyOrders lista os pedidos do usuário autenticado
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	page, err := h.orderService.ListByUser(c.Request.Context(), userID, intCursor(c), pageLimit(c))
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PageResponse[dto.OrderResponse, int64]{
		Data:       dto.ToOrderResponses(page.Data),
		NextCursor: page.NextCursor,
	})
}

// ListAllOrders lista todos os pedidos (admin)
func (h *OrderHandler) ListAllOrders(c *gin.Context) {
	page, err := h.orderService.ListAll(c.Request.Context(), intCursor(c), pageLimit(c))
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PageResponse[dto.OrderResponse, int64]{
		Data:       dto.ToOrderResponses(page.Data),
		NextCursor: page.NextCursor,
	})
}

// MarkDelivered registra a entrega de um pedido. Idempotente: repetir a
// chamada não reenvia email nem evento.
func (h *OrderHandler) MarkDelivered(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	order, err := h.orderService.MarkDelivered(c.Request.Context(), id)
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

func orderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		dto.BadRequestResponse(c, "order id must be an integer")
		return 0, false
	}
	return id, true
}

func orderItems(products []dto.OrderItemRequest) []services.OrderLineInput {
	items := make([]services.OrderLineInput, 0, len(products))
	for _, p := range products {
		items = append(items, services.OrderLineInput{
			ProductID: p.ID,
			Quantity:  p.Quantity,
		})
	}
	return items
}
