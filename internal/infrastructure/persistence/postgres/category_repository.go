package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	domainerrors "github.com/gamevault/gamevault-backend/internal/domain/errors"
	"github.com/gamevault/gamevault-backend/internal/domain/repositories"
)

// CategoryRepository implementa repositories.CategoryRepository
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository cria um novo CategoryRepository
func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *entities.Category) error {
	model := &CategoryModel{ID: category.ID, Name: category.Name}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	category.ID = model.ID
	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*entities.Category, error) {
	var model CategoryModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]*entities.Category, error) {
	var models []*CategoryModel

	db := dbFromContext(ctx, r.db)
	if err := db.Preload("Products").Order("name asc").Find(&models).Error; err != nil {
		return nil, err
	}

	result := make([]*entities.Category, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}
	return result, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *entities.Category) error {
	db := dbFromContext(ctx, r.db)
	result := db.Model(&CategoryModel{}).Where("id = ?", category.ID).Update("name", category.Name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	result := db.Delete(&CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) toEntity(model *CategoryModel) *entities.Category {
	category := &entities.Category{ID: model.ID, Name: model.Name}

	for i := range model.Products {
		p := &model.Products[i]
		category.Products = append(category.Products, entities.Product{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Stock:    p.Stock,
			Type:     entities.ProductType(p.Type),
			ImageURL: p.ImageURL,
			Active:   entities.ProductActive(p.Active),
		})
	}

	return category
}
