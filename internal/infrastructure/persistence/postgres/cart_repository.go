package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	domainerrors "github.com/gamevault/gamevault-backend/internal/domain/errors"
	"github.com/gamevault/gamevault-backend/internal/domain/repositories"
)

// CartRepository implementa repositories.CartRepository
type CartRepository struct {
	db *gorm.DB
}

// NewCartRepository cria um novo CartRepository
func NewCartRepository(db *gorm.DB) repositories.CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) Upsert(ctx context.Context, item *entities.CartItem) error {
	db := dbFromContext(ctx, r.db)

	var existing CartItemModel
	err := db.Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		model := &CartItemModel{
			UserID:    item.UserID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
		if err := db.Create(model).Error; err != nil {
			return err
		}
		item.ID = model.ID
		return nil
	}
	if err != nil {
		return err
	}

	existing.Quantity = item.Quantity
	if err := db.Save(&existing).Error; err != nil {
		return err
	}
	item.ID = existing.ID
	return nil
}

func (r *CartRepository) Find(ctx context.Context, userID, productID string) (*entities.CartItem, error) {
	var model CartItemModel

	db := dbFromContext(ctx, r.db)
	err := db.Preload("Product").
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *CartRepository) FindByUser(ctx context.Context, userID string) ([]entities.CartItem, error) {
	var models []CartItemModel

	db := dbFromContext(ctx, r.db)
	err := db.Preload("Product").Preload("Product.Category").
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	items := make([]entities.CartItem, 0, len(models))
	for i := range models {
		items = append(items, *r.toEntity(&models[i]))
	}
	return items, nil
}

func (r *CartRepository) Remove(ctx context.Context, userID, productID string) error {
	db := dbFromContext(ctx, r.db)
	result := db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&CartItemModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCartItemNotFound
	}
	return nil
}

func (r *CartRepository) Clear(ctx context.Context, userID string) error {
	db := dbFromContext(ctx, r.db)
	return db.Where("user_id = ?", userID).Delete(&CartItemModel{}).Error
}

func (r *CartRepository) toEntity(model *CartItemModel) *entities.CartItem {
	item := &entities.CartItem{
		ID:        model.ID,
		UserID:    model.UserID,
		ProductID: model.ProductID,
		Quantity:  model.Quantity,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	if model.Product != nil {
		item.Product = &entities.Product{
			ID:       model.Product.ID,
			Name:     model.Product.Name,
			Price:    model.Product.Price,
			Stock:    model.Product.Stock,
			Type:     entities.ProductType(model.Product.Type),
			ImageURL: model.Product.ImageURL,
			Active:   entities.ProductActive(model.Product.Active),
		}
	}

	return item
}
