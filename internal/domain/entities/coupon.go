package entities

import (
	"errors"
	"time"

	domainerrors "github.com/gamevault/gamevault-backend/internal/domain/errors"
)

// Coupon é um código de desconto percentual com validade
type Coupon struct {
	ID                 string
	Code               string
	DiscountPercentage int
	ExpirationDate     time.Time
	IsActive           bool
	CreatedAt          time.Time
}

// IsExpired compara a data de expiração com a data atual (truncada ao dia)
func (c *Coupon) IsExpired(now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return c.ExpirationDate.Before(today)
}

// CheckValid valida expiração e atividade, nessa ordem
func (c *Coupon) CheckValid(now time.Time) error {
	if c.IsExpired(now) {
		return domainerrors.ErrCouponExpired
	}
	if !c.IsActive {
		return domainerrors.ErrCouponInactive
	}
	return nil
}

// Validate valida regras de negócio da entidade Coupon
func (c *Coupon) Validate() error {
	if c.Code == "" {
		return errors.New("code is required")
	}
	if c.DiscountPercentage < 1 || c.DiscountPercentage > 100 {
		return errors.New("discount percentage must be between 1 and 100")
	}
	return nil
}
