package repositories

import (
	"context"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
)

// CouponRepository define a interface para persistência de cupons
type CouponRepository interface {
	Create(ctx context.Context, coupon *entities.Coupon) error
	FindByID(ctx context.Context, id string) (*entities.Coupon, error)
	FindByCode(ctx context.Context, code string) (*entities.Coupon, error)
	Update(ctx context.Context, coupon *entities.Coupon) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, cursor *string, limit int) (Page[*entities.Coupon, string], error)
}
