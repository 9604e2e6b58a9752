package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gamevault/gamevault-backend/internal/handlers/dto"
	"github.com/gamevault/gamevault-backend/internal/handlers/middleware"
	"github.com/gamevault/gamevault-backend/internal/services"
)

// CartHandler lida com requisições HTTP do carrinho
type CartHandler struct {
	cartService *services.CartService
}

// NewCartHandler cria um novo CartHandler
func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GetCart retorna o carrinho do usuário autenticado com o total
func (h *CartHandler) GetCart(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	cart, err := h.cartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCartResponse(cart))
}

// AddItem insere ou substitui uma linha do carrinho
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationResponse(c, err)
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	item, err := h.cartService.AddProduct(c.Request.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCartItemResponse(item))
}

// UpdateItem troca a quantidade de uma linha existente
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationResponse(c, err)
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	item, err := h.cartService.UpdateQuantity(c.Request.Context(), userID, c.Param("productId"), req.Quantity)
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCartItemResponse(item))
}

// RemoveItem apaga uma linha do carrinho
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	if err := h.cartService.RemoveProduct(c.Request.Context(), userID, c.Param("productId")); err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "product removed from cart"})
}

// ClearCart apaga todas as linhas do carrinho
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	if err := h.cartService.ClearCart(c.Request.Context(), userID); err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "cart cleared"})
}

// MergeCart funde o carrinho local do cliente com o do servidor
func (h *CartHandler) MergeCart(c *gin.Context) {
	var req dto.MixedCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationResponse(c, err)
		return
	}

	lines := make([]services.MixedCartLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, services.MixedCartLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	userID := c.GetString(middleware.ContextUserID)
	cart, err := h.cartService.MergeCart(c.Request.Context(), userID, lines)
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCartResponse(cart))
}
