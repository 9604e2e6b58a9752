package services

import (
	"context"
	"mime/multipart"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	domainerrors "github.com/gamevault/gamevault-backend/internal/domain/errors"
	"github.com/gamevault/gamevault-backend/internal/domain/ports"
	"github.com/gamevault/gamevault-backend/internal/domain/repositories"
)

// FileService contém a lógica de negócio para imagens de produto
type FileService struct {
	imageRepo   repositories.ImageRepository
	productRepo repositories.ProductRepository
	storage     ports.FileStorage
	logger      ports.Logger
}

// NewFileService cria um novo FileService
func NewFileService(
	imageRepo repositories.ImageRepository,
	productRepo repositories.ProductRepository,
	storage ports.FileStorage,
	logger ports.Logger,
) *FileService {
	return &FileService{
		imageRepo:   imageRepo,
		productRepo: productRepo,
		storage:     storage,
		logger:      logger,
	}
}

// ListImages lista todas as imagens de produto
func (s *FileService) ListImages(ctx context.Context) ([]entities.Image, error) {
	return s.imageRepo.FindAll(ctx)
}

// ListByProduct lista as imagens de um produto; nenhuma imagem é erro
func (s *FileService) ListByProduct(ctx context.Context, productID string) ([]entities.Image, error) {
	images, err := s.imageRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, domainerrors.ErrImageNotFound
	}
	return images, nil
}

// UploadResult relata o resultado de um upload múltiplo: as imagens
// persistidas e os nomes dos arquivos que falharam
type UploadResult struct {
	Images []entities.Image
	Failed []string
}

// UploadImages sobe várias imagens para um produto existente, com
// sucesso parcial por arquivo
func (s *FileService) UploadImages(ctx context.Context, productID string, files []*multipart.FileHeader) (*UploadResult, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domainerrors.ErrProductNotFound
	}

	result := &UploadResult{}
	for _, file := range files {
		stored, err := s.storage.Upload(ctx, file)
		if err != nil {
			s.logger.Warn("image upload failed",
				"product_id", productID,
				"filename", file.Filename,
				"error", err,
			)
			result.Failed = append(result.Failed, file.Filename)
			continue
		}
		result.Images = append(result.Images, entities.Image{
			ProductID: productID,
			PublicID:  stored.PublicID,
			SecureURL: stored.SecureURL,
		})
	}

	if len(result.Images) > 0 {
		if err := s.imageRepo.CreateMany(ctx, result.Images); err != nil {
			return nil, err
		}
	}

	s.logger.Info("images uploaded",
		"product_id", productID,
		"uploaded", len(result.Images),
		"failed", len(result.Failed),
	)
	return result, nil
}

// DeleteImage remove a imagem do storage e do banco
func (s *FileService) DeleteImage(ctx context.Context, publicID string) error {
	image, err := s.imageRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return err
	}
	if image == nil {
		return domainerrors.ErrImageNotFound
	}

	if err := s.storage.Delete(ctx, publicID); err != nil {
		return err
	}

	if err := s.imageRepo.DeleteByPublicID(ctx, publicID); err != nil {
		return err
	}

	s.logger.Info("image deleted", "public_id", publicID)
	return nil
}
