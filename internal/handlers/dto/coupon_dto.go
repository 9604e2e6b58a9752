package dto

import (
	"time"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
)

// CreateCouponRequest representa a requisição de criação de cupom
type CreateCouponRequest struct {
	DiscountPercentage int       `json:"discount_percentage" binding:"required,min=1,max=100"`
	ExpirationDate     time.Time `json:"expiration_date" binding:"required"`
}

// UpdateCouponDiscountRequest altera o percentual de desconto
type UpdateCouponDiscountRequest struct {
	DiscountPercentage int `json:"discount_percentage" binding:"required,min=1,max=100"`
}

// SendCouponsRequest cria um cupom por destinatário e envia por email
type SendCouponsRequest struct {
	Emails             []string  `json:"emails" binding:"required,min=1,dive,email"`
	DiscountPercentage int       `json:"discount_percentage" binding:"required,min=1,max=100"`
	ExpirationDate     time.Time `json:"expiration_date" binding:"required"`
}

// CouponResponse representa a resposta de um cupom
type CouponResponse struct {
	ID                 string    `json:"id"`
	Code               string    `json:"code"`
	DiscountPercentage int       `json:"discount_percentage"`
	ExpirationDate     time.Time `json:"expiration_date"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
}

// ToCouponResponse converte uma entidade Coupon para CouponResponse
func ToCouponResponse(coupon *entities.Coupon) CouponResponse {
	return CouponResponse{
		ID:                 coupon.ID,
		Code:               coupon.Code,
		DiscountPercentage: coupon.DiscountPercentage,
		ExpirationDate:     coupon.ExpirationDate,
		IsActive:           coupon.IsActive,
		CreatedAt:          coupon.CreatedAt,
	}
}

// ToCouponResponses converte uma lista de cupons
func ToCouponResponses(coupons []*entities.Coupon) []CouponResponse {
	responses := make([]CouponResponse, len(coupons))
	for i, coupon := range coupons {
		responses[i] = ToCouponResponse(coupon)
	}
	return responses
}
