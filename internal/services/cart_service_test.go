package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	domainerrors "github.com/gamevault/gamevault-backend/internal/domain/errors"
)

type mockCartRepo struct{ mock.Mock }

func (m *mockCartRepo) Upsert(ctx context.Context, item *entities.CartItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockCartRepo) Find(ctx context.Context, userID, productID string) (*entities.CartItem, error) {
	args := m.Called(ctx, userID, productID)
	item, _ := args.Get(0).(*entities.CartItem)
	return item, args.Error(1)
}

func (m *mockCartRepo) FindByUser(ctx context.Context, userID string) ([]entities.CartItem, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]entities.CartItem)
	return items, args.Error(1)
}

func (m *mockCartRepo) Remove(ctx context.Context, userID, productID string) error {
	return m.Called(ctx, userID, productID).Error(0)
}

func (m *mockCartRepo) Clear(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func TestCartService_AddProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("quantidade omitida vale 1", func(t *testing.T) {
		cartRepo := &mockCartRepo{}
		productRepo := &mockProductRepo{}
		service := NewCartService(cartRepo, productRepo, noopLogger{})

		productRepo.On("FindByID", ctx, testProductID).Return(testProduct(), nil)
		cartRepo.On("Upsert", ctx, mock.MatchedBy(func(item *entities.CartItem) bool {
			return item.Quantity == 1
		})).Return(nil)

		item, err := service.AddProduct(ctx, testUserID, testProductID, 0)
		if err != nil {
			t.Fatalf("add válido não deveria falhar: %v", err)
		}
		if item.Quantity != 1 {
			t.Fatalf("esperava quantidade 1, obteve %d", item.Quantity)
		}
	})

	t.Run("produto inativo não entra no carrinho", func(t *testing.T) {
		cartRepo := &mockCartRepo{}
		productRepo := &mockProductRepo{}
		service := NewCartService(cartRepo, productRepo, noopLogger{})

		inactive := testProduct()
		inactive.Deactivate()
		productRepo.On("FindByID", ctx, testProductID).Return(inactive, nil)

		_, err := service.AddProduct(ctx, testUserID, testProductID, 1)
		if !errors.Is(err, domainerrors.ErrProductNotFound) {
			t.Fatalf("esperava ErrProductNotFound, obteve %v", err)
		}
		cartRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}

func TestCartService_GetCart(t *testing.T) {
	ctx := context.Background()

	t.Run("total soma os subtotais com o preço corrente", func(t *testing.T) {
		cartRepo := &mockCartRepo{}
		service := NewCartService(cartRepo, &mockProductRepo{}, noopLogger{})

		cartRepo.On("FindByUser", ctx, testUserID).Return([]entities.CartItem{
			{ProductID: testProductID, Product: testProduct(), Quantity: 2},
		}, nil)

		cart, err := service.GetCart(ctx, testUserID)
		if err != nil {
			t.Fatalf("busca não deveria falhar: %v", err)
		}

		if cart.Total.StringFixed(2) != "39.98" {
			t.Fatalf("esperava 39.98, obteve %s", cart.Total.StringFixed(2))
		}
	})
}

func TestCartService_UpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("linha inexistente é erro, diferente do add", func(t *testing.T) {
		cartRepo := &mockCartRepo{}
		service := NewCartService(cartRepo, &mockProductRepo{}, noopLogger{})

		cartRepo.On("Find", ctx, testUserID, testProductID).Return(nil, nil)

		_, err := service.UpdateQuantity(ctx, testUserID, testProductID, 3)
		if !errors.Is(err, domainerrors.ErrCartItemNotFound) {
			t.Fatalf("esperava ErrCartItemNotFound, obteve %v", err)
		}
		cartRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}

func TestCartService_MergeCart(t *testing.T) {
	ctx := context.Background()

	t.Run("cliente vence por produto e linhas do servidor sobrevivem", func(t *testing.T) {
		cartRepo := &mockCartRepo{}
		productRepo := &mockProductRepo{}
		service := NewCartService(cartRepo, productRepo, noopLogger{})

		productRepo.On("FindManyByIDs", ctx, []string{testProductID}).
			Return([]*entities.Product{testProduct()}, nil)
		cartRepo.On("Upsert", ctx, mock.MatchedBy(func(item *entities.CartItem) bool {
			return item.ProductID == testProductID && item.Quantity == 5
		})).Return(nil)
		// O servidor mantém a linha que o cliente não mandou
		serverOnly := "1f1f1f1f-0000-4000-8000-000000000000"
		cartRepo.On("FindByUser", ctx, testUserID).Return([]entities.CartItem{
			{ProductID: testProductID, Product: testProduct(), Quantity: 5},
			{ProductID: serverOnly, Product: testProduct(), Quantity: 1},
		}, nil)

		cart, err := service.MergeCart(ctx, testUserID, []MixedCartLine{
			{ProductID: testProductID, Quantity: 5},
		})
		if err != nil {
			t.Fatalf("merge válido não deveria falhar: %v", err)
		}

		if len(cart.Items) != 2 {
			t.Fatalf("esperava 2 linhas após o merge, obteve %d", len(cart.Items))
		}
	})

	t.Run("produto desconhecido rejeita o merge inteiro", func(t *testing.T) {
		cartRepo := &mockCartRepo{}
		productRepo := &mockProductRepo{}
		service := NewCartService(cartRepo, productRepo, noopLogger{})

		productRepo.On("FindManyByIDs", ctx, mock.Anything).
			Return([]*entities.Product{}, nil)

		_, err := service.MergeCart(ctx, testUserID, []MixedCartLine{
			{ProductID: testProductID, Quantity: 5},
		})
		if !errors.Is(err, domainerrors.ErrProductNotFound) {
			t.Fatalf("esperava ErrProductNotFound, obteve %v", err)
		}
		cartRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}
