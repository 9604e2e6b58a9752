package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	domainerrors "github.com/gamevault/gamevault-backend/internal/domain/errors"
	"github.com/gamevault/gamevault-backend/internal/domain/repositories"
)

// CouponRepository implementa repositories.CouponRepository
type CouponRepository struct {
	db *gorm.DB
}

// NewCouponRepository cria um novo CouponRepository
func NewCouponRepository(db *gorm.DB) repositories.CouponRepository {
	return &CouponRepository{db: db}
}

func (r *CouponRepository) Create(ctx context.Context, coupon *entities.Coupon) error {
	model := r.toModel(coupon)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	coupon.ID = model.ID
	return nil
}

func (r *CouponRepository) FindByID(ctx context.Context, id string) (*entities.Coupon, error) {
	var model CouponModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*entities.Coupon, error) {
	var model CouponModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("code = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *CouponRepository) Update(ctx context.Context, coupon *entities.Coupon) error {
	db := dbFromContext(ctx, r.db)
	result := db.Model(&CouponModel{}).Where("id = ?", coupon.ID).Updates(map[string]any{
		"discount_percentage": coupon.DiscountPercentage,
		"expiration_date":     coupon.ExpirationDate,
		"is_active":           coupon.IsActive,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCouponNotFound
	}
	return nil
}

func (r *CouponRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	result := db.Delete(&CouponModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCouponNotFound
	}
	return nil
}

func (r *CouponRepository) List(ctx context.Context, cursor *string, limit int) (repositories.Page[*entities.Coupon, string], error) {
	var models []*CouponModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&CouponModel{}).Order("id asc").Limit(limit + 1)

	if cursor != nil {
		query = query.Where("id >= ?", *cursor)
	}

	if err := query.Find(&models).Error; err != nil {
		return repositories.Page[*entities.Coupon, string]{}, err
	}

	coupons := make([]*entities.Coupon, 0, len(models))
	for _, model := range models {
		coupons = append(coupons, r.toEntity(model))
	}

	return repositories.PageFrom(coupons, limit, func(c *entities.Coupon) string { return c.ID }), nil
}

// Conversores
func (r *CouponRepository) toModel(coupon *entities.Coupon) *CouponModel {
	return &CouponModel{
		ID:                 coupon.ID,
		Code:               coupon.Code,
		DiscountPercentage: coupon.DiscountPercentage,
		ExpirationDate:     coupon.ExpirationDate,
		IsActive:           coupon.IsActive,
		CreatedAt:          coupon.CreatedAt,
	}
}

func (r *CouponRepository) toEntity(model *CouponModel) *entities.Coupon {
	return &entities.Coupon{
		ID:                 model.ID,
		Code:               model.Code,
		DiscountPercentage: model.DiscountPercentage,
		ExpirationDate:     model.ExpirationDate,
		IsActive:           model.IsActive,
		CreatedAt:          model.CreatedAt,
	}
}
