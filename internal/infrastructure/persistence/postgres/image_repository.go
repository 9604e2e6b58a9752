package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	domainerrors "github.com/gamevault/gamevault-backend/internal/domain/errors"
	"github.com/gamevault/gamevault-backend/internal/domain/repositories"
)

// ImageRepository implementa repositories.ImageRepository
type ImageRepository struct {
	db *gorm.DB
}

// NewImageRepository cria um novo ImageRepository
func NewImageRepository(db *gorm.DB) repositories.ImageRepository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) CreateMany(ctx context.Context, images []entities.Image) error {
	if len(images) == 0 {
		return nil
	}

	models := make([]ImageModel, 0, len(images))
	for i := range images {
		models = append(models, ImageModel{
			ProductID: images[i].ProductID,
			PublicID:  images[i].PublicID,
			SecureURL: images[i].SecureURL,
		})
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(&models).Error; err != nil {
		return err
	}

	for i := range models {
		images[i].ID = models[i].ID
	}
	return nil
}

func (r *ImageRepository) FindAll(ctx context.Context) ([]entities.Image, error) {
	var models []ImageModel

	db := dbFromContext(ctx, r.db)
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *ImageRepository) FindByProduct(ctx context.Context, productID string) ([]entities.Image, error) {
	var models []ImageModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("product_id = ?", productID).Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *ImageRepository) FindByPublicID(ctx context.Context, publicID string) (*entities.Image, error) {
	var model ImageModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("public_id = ?", publicID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	image := r.toEntity(model)
	return &image, nil
}

func (r *ImageRepository) DeleteByPublicID(ctx context.Context, publicID string) error {
	db := dbFromContext(ctx, r.db)
	result := db.Where("public_id = ?", publicID).Delete(&ImageModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrImageNotFound
	}
	return nil
}

func (r *ImageRepository) toEntity(model ImageModel) entities.Image {
	return entities.Image{
		ID:        model.ID,
		ProductID: model.ProductID,
		PublicID:  model.PublicID,
		SecureURL: model.SecureURL,
	}
}

func (r *ImageRepository) toEntities(models []ImageModel) []entities.Image {
	images := make([]entities.Image, 0, len(models))
	for _, model := range models {
		images = append(images, r.toEntity(model))
	}
	return images
}
