package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	domainerrors "github.com/gamevault/gamevault-backend/internal/domain/errors"
)

type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) Create(ctx context.Context, category *entities.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, id string) (*entities.Category, error) {
	args := m.Called(ctx, id)
	category, _ := args.Get(0).(*entities.Category)
	return category, args.Error(1)
}

func (m *mockCategoryRepo) FindAll(ctx context.Context) ([]*entities.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]*entities.Category)
	return categories, args.Error(1)
}

func (m *mockCategoryRepo) Update(ctx context.Context, category *entities.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockImageRepo struct{ mock.Mock }

func (m *mockImageRepo) CreateMany(ctx context.Context, images []entities.Image) error {
	return m.Called(ctx, images).Error(0)
}

func (m *mockImageRepo) FindAll(ctx context.Context) ([]entities.Image, error) {
	args := m.Called(ctx)
	images, _ := args.Get(0).([]entities.Image)
	return images, args.Error(1)
}

func (m *mockImageRepo) FindByProduct(ctx context.Context, productID string) ([]entities.Image, error) {
	args := m.Called(ctx, productID)
	images, _ := args.Get(0).([]entities.Image)
	return images, args.Error(1)
}

func (m *mockImageRepo) FindByPublicID(ctx context.Context, publicID string) (*entities.Image, error) {
	args := m.Called(ctx, publicID)
	image, _ := args.Get(0).(*entities.Image)
	return image, args.Error(1)
}

func (m *mockImageRepo) DeleteByPublicID(ctx context.Context, publicID string) error {
	return m.Called(ctx, publicID).Error(0)
}

const testCategoryID = "7c7c7c7c-0000-4000-8000-000000000000"

func newProductService(productRepo *mockProductRepo, categoryRepo *mockCategoryRepo, imageRepo *mockImageRepo) *ProductService {
	return NewProductService(productRepo, categoryRepo, imageRepo, nil, noopLogger{})
}

func TestProductService_CreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("categoria inexistente rejeita a criação", func(t *testing.T) {
		productRepo := &mockProductRepo{}
		categoryRepo := &mockCategoryRepo{}
		service := newProductService(productRepo, categoryRepo, &mockImageRepo{})

		categoryRepo.On("FindByID", ctx, testCategoryID).Return(nil, nil)

		_, err := service.CreateProduct(ctx, CreateProductInput{
			Name:       "Hollow Knight",
			Price:      decimal.RequireFromString("19.99"),
			Stock:      5,
			Type:       entities.ProductTypeDigital,
			CategoryID: testCategoryID,
		})

		if !errors.Is(err, domainerrors.ErrCategoryNotFound) {
			t.Fatalf("esperava ErrCategoryNotFound, obteve %v", err)
		}
		productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("produto sem imagens é criado normalmente", func(t *testing.T) {
		productRepo := &mockProductRepo{}
		categoryRepo := &mockCategoryRepo{}
		service := newProductService(productRepo, categoryRepo, &mockImageRepo{})

		categoryRepo.On("FindByID", ctx, testCategoryID).
			Return(&entities.Category{ID: testCategoryID, Name: "Games"}, nil)
		productRepo.On("Create", ctx, mock.MatchedBy(func(p *entities.Product) bool {
			return p.Active == entities.ProductStateActive && p.ID != ""
		})).Return(nil)

		result, err := service.CreateProduct(ctx, CreateProductInput{
			Name:       "Hollow Knight",
			Price:      decimal.RequireFromString("19.99"),
			Stock:      5,
			Type:       entities.ProductTypeDigital,
			CategoryID: testCategoryID,
		})
		if err != nil {
			t.Fatalf("criação válida não deveria falhar: %v", err)
		}
		if len(result.FailedImages) != 0 {
			t.Fatalf("não esperava falhas de imagem, obteve %v", result.FailedImages)
		}
	})
}

func TestProductService_GetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("produto desativado some do catálogo mesmo existindo no banco", func(t *testing.T) {
		productRepo := &mockProductRepo{}
		service := newProductService(productRepo, &mockCategoryRepo{}, &mockImageRepo{})

		inactive := testProduct()
		inactive.Deactivate()
		productRepo.On("FindByID", ctx, testProductID).Return(inactive, nil)

		_, err := service.GetProduct(ctx, testProductID)
		if !errors.Is(err, domainerrors.ErrProductNotFound) {
			t.Fatalf("esperava ErrProductNotFound, obteve %v", err)
		}
	})
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("categoria referenciada por produtos não pode ser removida", func(t *testing.T) {
		categoryRepo := &mockCategoryRepo{}
		productRepo := &mockProductRepo{}
		service := NewCategoryService(categoryRepo, productRepo, noopLogger{})

		categoryRepo.On("FindByID", ctx, testCategoryID).
			Return(&entities.Category{ID: testCategoryID, Name: "Games"}, nil)
		productRepo.On("CountByCategory", ctx, testCategoryID).Return(int64(3), nil)

		err := service.DeleteCategory(ctx, testCategoryID)
		if !errors.Is(err, domainerrors.ErrCategoryReferenced) {
			t.Fatalf("esperava ErrCategoryReferenced, obteve %v", err)
		}
		categoryRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("categoria vazia é removida", func(t *testing.T) {
		categoryRepo := &mockCategoryRepo{}
		productRepo := &mockProductRepo{}
		service := NewCategoryService(categoryRepo, productRepo, noopLogger{})

		categoryRepo.On("FindByID", ctx, testCategoryID).
			Return(&entities.Category{ID: testCategoryID, Name: "Games"}, nil)
		productRepo.On("CountByCategory", ctx, testCategoryID).Return(int64(0), nil)
		categoryRepo.On("Delete", ctx, testCategoryID).Return(nil)

		if err := service.DeleteCategory(ctx, testCategoryID); err != nil {
			t.Fatalf("remoção válida não deveria falhar: %v", err)
		}
	})
}
