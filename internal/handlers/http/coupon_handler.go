package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gamevault/gamevault-backend/internal/handlers/dto"
	"github.com/gamevault/gamevault-backend/internal/services"
)

// CouponHandler lida com requisições HTTP de cupons (admin, exceto validação)
type CouponHandler struct {
	couponService *services.CouponService
}

// NewCouponHandler cria um novo CouponHandler
func NewCouponHandler(couponService *services.CouponService) *CouponHandler {
	return &CouponHandler{couponService: couponService}
}

// CreateCoupon cria um cupom com código aleatório
func (h *CouponHandler) CreateCoupon(c *gin.Context) {
	var req dto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationResponse(c, err)
		return
	}

	coupon, err := h.couponService.CreateCoupon(c.Request.Context(), req.DiscountPercentage, req.ExpirationDate)
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCouponResponse(coupon))
}

// GetCoupon busca um cupom por ID
func (h *CouponHandler) GetCoupon(c *gin.Context) {
	coupon, err := h.couponService.GetCoupon(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCouponResponse(coupon))
}

// ListCoupons lista cupons com paginação por keyset
func (h *CouponHandler) ListCoupons(c *gin.Context) {
	page, err := h.couponService.ListCoupons(c.Request.Context(), stringCursor(c), pageLimit(c))
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PageResponse[dto.CouponResponse, string]{
		Data:       dto.ToCouponResponses(page.Data),
		NextCursor: page.NextCursor,
	})
}

// DeleteCoupon remove um cupom
func (h *CouponHandler) DeleteCoupon(c *gin.Context) {
	if err := h.couponService.DeleteCoupon(c.Request.Context(), c.Param("id")); err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "coupon deleted"})
}

// ToggleCoupon inverte o flag de atividade do cupom
func (h *CouponHandler) ToggleCoupon(c *gin.Context) {
	coupon, err := h.couponService.ToggleCoupon(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCouponResponse(coupon))
}

// UpdateDiscount altera o percentual de desconto do cupom
func (h *CouponHandler) UpdateDiscount(c *gin.Context) {
	var req dto.UpdateCouponDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationResponse(c, err)
		return
	}

	coupon, err := h.couponService.UpdateDiscount(c.Request.Context(), c.Param("id"), req.DiscountPercentage)
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCouponResponse(coupon))
}

// ValidateCoupon checa se o cupom pode ser aplicado: 404 quando não
// existe, 400 quando expirado ou inativo
func (h *CouponHandler) ValidateCoupon(c *gin.Context) {
	coupon, err := h.couponService.ValidateCoupon(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCouponResponse(coupon))
}

// SendCoupons cria cupons e envia por email aos destinatários
func (h *CouponHandler) SendCoupons(c *gin.Context) {
	var req dto.SendCouponsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationResponse(c, err)
		return
	}

	coupons, err := h.couponService.SendCoupons(c.Request.Context(), req.Emails, req.DiscountPercentage, req.ExpirationDate)
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCouponResponses(coupons))
}
