package repositories

import (
	"context"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
)

// ImageRepository define a interface para persistência de imagens de produto
type ImageRepository interface {
	CreateMany(ctx context.Context, images []entities.Image) error
	FindAll(ctx context.Context) ([]entities.Image, error)
	FindByProduct(ctx context.Context, productID string) ([]entities.Image, error)
	FindByPublicID(ctx context.Context, publicID string) (*entities.Image, error)
	DeleteByPublicID(ctx context.Context, publicID string) error
}
