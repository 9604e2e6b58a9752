package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	domainerrors "github.com/gamevault/gamevault-backend/internal/domain/errors"
	"github.com/gamevault/gamevault-backend/internal/domain/repositories"
)

// ProductRepository implementa repositories.ProductRepository
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository cria um novo ProductRepository
func NewProductRepository(db *gorm.DB) repositories.ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	model := r.toModel(product)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	product.ID = model.ID
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*entities.Product, error) {
	var model ProductModel

	db := dbFromContext(ctx, r.db)
	// Sem filtro de active: produtos inativos seguem consultáveis por id
	// para joins históricos de pedidos
	if err := db.Preload("Category").Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *ProductRepository) FindManyByIDs(ctx context.Context, ids []string) ([]*entities.Product, error) {
	var models []*ProductModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *ProductRepository) Update(ctx context.Context, product *entities.Product) error {
	model := r.toModel(product)

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

func (r *ProductRepository) Deactivate(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	result := db.Model(&ProductModel{}).
		Where("id = ? AND active = ?", id, string(entities.ProductStateActive)).
		Update("active", string(entities.ProductStateInactive))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) List(ctx context.Context, filters repositories.ProductFilters, cursor *string, limit int) (repositories.Page[*entities.Product, string], error) {
	var models []*ProductModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&ProductModel{}).
		Preload("Category").
		Where("stock >= 1 AND active = ?", string(entities.ProductStateActive)).
		Order("id asc").
		Limit(limit + 1)

	if filters.Type != nil {
		query = query.Where("type = ?", string(*filters.Type))
	}

	if filters.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filters.Search+"%")
	}

	if cursor != nil {
		query = query.Where("id >= ?", *cursor)
	}

	if err := query.Find(&models).Error; err != nil {
		return repositories.Page[*entities.Product, string]{}, err
	}

	return r.page(models, limit), nil
}

func (r *ProductRepository) ListDashboard(ctx context.Context, cursor *string, limit int) (repositories.Page[*entities.Product, string], error) {
	var models []*ProductModel

	db := dbFromContext(ctx, r.db)
	// A visão administrativa mostra também inativos e sem estoque
	query := db.Model(&ProductModel{}).Order("id asc").Limit(limit + 1)

	if cursor != nil {
		query = query.Where("id >= ?", *cursor)
	}

	if err := query.Find(&models).Error; err != nil {
		return repositories.Page[*entities.Product, string]{}, err
	}

	return r.page(models, limit), nil
}

func (r *ProductRepository) ListByCategory(ctx context.Context, categoryID string, cursor *string, limit int) (repositories.Page[*entities.Product, string], error) {
	var models []*ProductModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&ProductModel{}).
		Preload("Category").
		Where("category_id = ? AND stock >= 1 AND active = ?", categoryID, string(entities.ProductStateActive)).
		Order("id asc").
		Limit(limit + 1)

	if cursor != nil {
		query = query.Where("id >= ?", *cursor)
	}

	if err := query.Find(&models).Error; err != nil {
		return repositories.Page[*entities.Product, string]{}, err
	}

	return r.page(models, limit), nil
}

func (r *ProductRepository) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	var count int64

	db := dbFromContext(ctx, r.db)
	err := db.Model(&ProductModel{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *ProductRepository) DecrementStock(ctx context.Context, id string, quantity int) error {
	db := dbFromContext(ctx, r.db)
	// Decremento condicional atômico: pedidos concorrentes sobre a última
	// unidade não podem ambos passar
	result := db.Model(&ProductModel{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOutOfStock
	}
	return nil
}

func (r *ProductRepository) SetImageURL(ctx context.Context, id string, url string) error {
	db := dbFromContext(ctx, r.db)
	result := db.Model(&ProductModel{}).Where("id = ?", id).Update("image_url", url)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) page(models []*ProductModel, limit int) repositories.Page[*entities.Product, string] {
	products := r.toEntities(models)
	return repositories.PageFrom(products, limit, func(p *entities.Product) string { return p.ID })
}

// Conversores
func (r *ProductRepository) toModel(product *entities.Product) *ProductModel {
	return &ProductModel{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		Type:        string(product.Type),
		ImageURL:    product.ImageURL,
		CategoryID:  product.CategoryID,
		Active:      string(product.Active),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func (r *ProductRepository) toEntity(model *ProductModel) *entities.Product {
	product := &entities.Product{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Price:       model.Price,
		Stock:       model.Stock,
		Type:        entities.ProductType(model.Type),
		ImageURL:    model.ImageURL,
		CategoryID:  model.CategoryID,
		Active:      entities.ProductActive(model.Active),
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}

	if model.Category != nil {
		product.Category = &entities.Category{
			ID:   model.Category.ID,
			Name: model.Category.Name,
		}
	}

	return product
}

func (r *ProductRepository) toEntities(models []*ProductModel) []*entities.Product {
	products := make([]*entities.Product, 0, len(models))
	for _, model := range models {
		products = append(products, r.toEntity(model))
	}
	return products
}
