package services

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	domainerrors "github.com/gamevault/gamevault-backend/internal/domain/errors"
	"github.com/gamevault/gamevault-backend/internal/domain/ports"
	"github.com/gamevault/gamevault-backend/internal/domain/repositories"
)

// ProductService contém a lógica de negócio para o catálogo de produtos
type ProductService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	imageRepo    repositories.ImageRepository
	storage      ports.FileStorage
	logger       ports.Logger
}

// NewProductService cria um novo ProductService
func NewProductService(
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	imageRepo repositories.ImageRepository,
	storage ports.FileStorage,
	logger ports.Logger,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		imageRepo:    imageRepo,
		storage:      storage,
		logger:       logger,
	}
}

// CreateProductInput representa os dados para criar um produto
type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Type        entities.ProductType
	CategoryID  string
	Images      []*multipart.FileHeader
}

// CreateProductResult carrega o produto criado e os nomes dos arquivos
// de imagem que falharam no upload (sucesso parcial)
type CreateProductResult struct {
	Product      *entities.Product
	FailedImages []string
}

// CreateProduct cria um produto do catálogo. A categoria precisa existir.
// As imagens são enviadas uma a uma; falha em uma não derruba a criação,
// o nome do arquivo entra na lista de falhas do resultado.
func (s *ProductService) CreateProduct(ctx context.Context, input CreateProductInput) (*CreateProductResult, error) {
	category, err := s.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domainerrors.ErrCategoryNotFound
	}

	product := &entities.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Type:        input.Type,
		CategoryID:  input.CategoryID,
		Active:      entities.ProductStateActive,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	failed, err := s.uploadImages(ctx, product, input.Images)
	if err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		"product_id", product.ID,
		"name", product.Name,
		"failed_images", len(failed),
	)
	return &CreateProductResult{Product: product, FailedImages: failed}, nil
}

// uploadImages sobe as imagens do produto com sucesso parcial e persiste
// as que subiram. A primeira URL bem-sucedida vira a imagem principal.
func (s *ProductService) uploadImages(ctx context.Context, product *entities.Product, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	var failed []string
	var images []entities.Image
	for _, file := range files {
		stored, err := s.storage.Upload(ctx, file)
		if err != nil {
			s.logger.Warn("image upload failed",
				"product_id", product.ID,
				"filename", file.Filename,
				"error", err,
			)
			failed = append(failed, file.Filename)
			continue
		}
		images = append(images, entities.Image{
			ProductID: product.ID,
			PublicID:  stored.PublicID,
			SecureURL: stored.SecureURL,
		})
	}

	if len(images) > 0 {
		if err := s.imageRepo.CreateMany(ctx, images); err != nil {
			return nil, err
		}
		if err := s.productRepo.SetImageURL(ctx, product.ID, images[0].SecureURL); err != nil {
			return nil, err
		}
		product.ImageURL = images[0].SecureURL
	}

	return failed, nil
}

// GetProduct busca um produto ativo por ID
func (s *ProductService) GetProduct(ctx context.Context, id string) (*entities.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive() {
		return nil, domainerrors.ErrProductNotFound
	}
	return product, nil
}

// ListProducts lista o catálogo público (ativos e com estoque)
func (s *ProductService) ListProducts(ctx context.Context, filters repositories.ProductFilters, cursor *string, limit int) (repositories.Page[*entities.Product, string], error) {
	return s.productRepo.List(ctx, filters, cursor, limit)
}

// ListDashboard lista todos os produtos sem filtro de estoque ou estado
func (s *ProductService) ListDashboard(ctx context.Context, cursor *string, limit int) (repositories.Page[*entities.Product, string], error) {
	return s.productRepo.ListDashboard(ctx, cursor, limit)
}

// ListByCategory lista os produtos ativos de uma categoria
func (s *ProductService) ListByCategory(ctx context.Context, categoryID string, cursor *string, limit int) (repositories.Page[*entities.Product, string], error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return repositories.Page[*entities.Product, string]{}, err
	}
	if category == nil {
		return repositories.Page[*entities.Product, string]{}, domainerrors.ErrCategoryNotFound
	}

	return s.productRepo.ListByCategory(ctx, categoryID, cursor, limit)
}

// UpdateProductInput representa os campos editáveis de um produto
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	Type        *entities.ProductType
	CategoryID  *string
}

// UpdateProduct atualiza os campos informados do produto
func (s *ProductService) UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*entities.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domainerrors.ErrProductNotFound
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Type != nil {
		product.Type = *input.Type
	}
	if input.CategoryID != nil {
		category, err := s.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domainerrors.ErrCategoryNotFound
		}
		product.CategoryID = *input.CategoryID
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product updated", "product_id", product.ID)
	return product, nil
}

// DeactivateProduct remove o produto do catálogo sem apagar a linha,
// preservando pedidos históricos que o referenciam
func (s *ProductService) DeactivateProduct(ctx context.Context, id string) error {
	if err := s.productRepo.Deactivate(ctx, id); err != nil {
		return err
	}

	s.logger.Info("product deactivated", "product_id", id)
	return nil
}
