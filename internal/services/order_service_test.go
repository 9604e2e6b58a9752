package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	domainerrors "github.com/gamevault/gamevault-backend/internal/domain/errors"
	"github.com/gamevault/gamevault-backend/internal/domain/ports"
	"github.com/gamevault/gamevault-backend/internal/domain/valueobjects"
)

const (
	testUserID    = "5b4c6a10-1111-4222-8333-444455556666"
	testProductID = "9a8b7c6d-1111-4222-8333-444455556666"
)

func testUser(t *testing.T) *entities.User {
	t.Helper()

	email, err := valueobjects.NewEmail("player@example.com")
	if err != nil {
		t.Fatalf("falha ao criar email: %v", err)
	}

	return &entities.User{
		ID:     testUserID,
		Email:  email,
		Name:   "Player One",
		Status: entities.UserStatusActive,
		Role:   entities.RoleClient,
	}
}

func testProduct() *entities.Product {
	return &entities.Product{
		ID:     testProductID,
		Name:   "Hollow Knight",
		Price:  decimal.RequireFromString("19.99"),
		Stock:  5,
		Type:   entities.ProductTypeDigital,
		Active: entities.ProductStateActive,
	}
}

type orderServiceFixture struct {
	service     *OrderService
	orderRepo   *mockOrderRepo
	productRepo *mockProductRepo
	userRepo    *mockUserRepo
	couponRepo  *mockCouponRepo
	gateway     *mockGateway
	mailer      *mockMailer
	notifier    *fakeNotifier
}

func newOrderServiceFixture() *orderServiceFixture {
	f := &orderServiceFixture{
		orderRepo:   &mockOrderRepo{},
		productRepo: &mockProductRepo{},
		userRepo:    &mockUserRepo{},
		couponRepo:  &mockCouponRepo{},
		gateway:     &mockGateway{},
		mailer:      &mockMailer{},
		notifier:    &fakeNotifier{},
	}
	f.service = NewOrderService(
		f.orderRepo, f.productRepo, f.userRepo, f.couponRepo,
		fakeUnitOfWork{}, f.gateway, f.mailer, f.notifier, noopLogger{},
	)
	return f
}

func TestOrderService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("congela o preço e envia o email do pedido", func(t *testing.T) {
		f := newOrderServiceFixture()
		f.userRepo.On("FindByID", ctx, testUserID).Return(testUser(t), nil)
		f.productRepo.On("FindManyByIDs", ctx, []string{testProductID}).
			Return([]*entities.Product{testProduct()}, nil)
		f.productRepo.On("DecrementStock", ctx, testProductID, 2).Return(nil)
		f.orderRepo.On("Create", ctx, mock.AnythingOfType("*entities.Order")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*entities.Order).ID = 42
			}).Return(nil)
		f.mailer.On("SendOrder", "player@example.com", "Player One", int64(42),
			mock.Anything, "39.98").Return()

		order, err := f.service.CreateOrder(ctx, testUserID, []OrderLineInput{
			{ProductID: testProductID, Quantity: 2},
		}, nil)
		if err != nil {
			t.Fatalf("pedido válido não deveria falhar: %v", err)
		}

		if order.Amount.StringFixed(2) != "39.98" {
			t.Fatalf("esperava 39.98, obteve %s", order.Amount.StringFixed(2))
		}
		if order.Lines[0].Price.StringFixed(2) != "19.99" {
			t.Fatalf("preço da linha deveria ser congelado em 19.99, obteve %s", order.Lines[0].Price)
		}
		if order.Status != entities.OrderStatusPending {
			t.Fatalf("esperava pending, obteve %s", order.Status)
		}
		f.mailer.AssertNumberOfCalls(t, "SendOrder", 1)
	})

	t.Run("estoque insuficiente aborta antes de criar o pedido", func(t *testing.T) {
		f := newOrderServiceFixture()
		f.userRepo.On("FindByID", ctx, testUserID).Return(testUser(t), nil)
		f.productRepo.On("FindManyByIDs", ctx, []string{testProductID}).
			Return([]*entities.Product{testProduct()}, nil)
		f.productRepo.On("DecrementStock", ctx, testProductID, 99).
			Return(domainerrors.ErrOutOfStock)

		_, err := f.service.CreateOrder(ctx, testUserID, []OrderLineInput{
			{ProductID: testProductID, Quantity: 99},
		}, nil)

		if !errors.Is(err, domainerrors.ErrOutOfStock) {
			t.Fatalf("esperava ErrOutOfStock, obteve %v", err)
		}
		f.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.mailer.AssertNotCalled(t, "SendOrder", mock.Anything, mock.Anything,
			mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("produto desconhecido rejeita o pedido inteiro", func(t *testing.T) {
		f := newOrderServiceFixture()
		f.userRepo.On("FindByID", ctx, testUserID).Return(testUser(t), nil)
		f.productRepo.On("FindManyByIDs", ctx, mock.Anything).
			Return([]*entities.Product{testProduct()}, nil)

		_, err := f.service.CreateOrder(ctx, testUserID, []OrderLineInput{
			{ProductID: testProductID, Quantity: 1},
			{ProductID: "0e0e0e0e-0000-4000-8000-000000000000", Quantity: 1},
		}, nil)

		if !errors.Is(err, domainerrors.ErrProductNotFound) {
			t.Fatalf("esperava ErrProductNotFound, obteve %v", err)
		}
		f.productRepo.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cupom válido aplica o desconto percentual", func(t *testing.T) {
		f := newOrderServiceFixture()
		code := "abcdefghij"
		f.userRepo.On("FindByID", ctx, testUserID).Return(testUser(t), nil)
		f.couponRepo.On("FindByCode", ctx, code).Return(&entities.Coupon{
			Code:               code,
			DiscountPercentage: 10,
			ExpirationDate:     time.Now().AddDate(0, 1, 0),
			IsActive:           true,
		}, nil)
		f.productRepo.On("FindManyByIDs", ctx, mock.Anything).
			Return([]*entities.Product{testProduct()}, nil)
		f.productRepo.On("DecrementStock", ctx, testProductID, 2).Return(nil)
		f.orderRepo.On("Create", ctx, mock.Anything).Return(nil)
		f.mailer.On("SendOrder", mock.Anything, mock.Anything, mock.Anything,
			mock.Anything, mock.Anything).Return()

		order, err := f.service.CreateOrder(ctx, testUserID, []OrderLineInput{
			{ProductID: testProductID, Quantity: 2},
		}, &code)
		if err != nil {
			t.Fatalf("pedido com cupom válido não deveria falhar: %v", err)
		}

		// 39.98 * 0.90 = 35.982 -> 35.98
		if order.Amount.StringFixed(2) != "35.98" {
			t.Fatalf("esperava 35.98, obteve %s", order.Amount.StringFixed(2))
		}
	})

	t.Run("cupom expirado rejeita o pedido", func(t *testing.T) {
		f := newOrderServiceFixture()
		code := "abcdefghij"
		f.userRepo.On("FindByID", ctx, testUserID).Return(testUser(t), nil)
		f.couponRepo.On("FindByCode", ctx, code).Return(&entities.Coupon{
			Code:               code,
			DiscountPercentage: 10,
			ExpirationDate:     time.Now().AddDate(0, 0, -2),
			IsActive:           true,
		}, nil)

		_, err := f.service.CreateOrder(ctx, testUserID, []OrderLineInput{
			{ProductID: testProductID, Quantity: 1},
		}, &code)

		if !errors.Is(err, domainerrors.ErrCouponExpired) {
			t.Fatalf("esperava ErrCouponExpired, obteve %v", err)
		}
	})
}

func TestOrderService_MarkDelivered(t *testing.T) {
	ctx := context.Background()

	t.Run("primeira entrega envia email e evento uma vez", func(t *testing.T) {
		f := newOrderServiceFixture()
		f.orderRepo.On("FindByID", ctx, int64(42)).Return(&entities.Order{
			ID:             42,
			UserID:         testUserID,
			ShippingStatus: entities.ShippingStatusPending,
		}, nil)
		f.orderRepo.On("Update", ctx, mock.Anything).Return(nil)
		f.userRepo.On("FindByID", ctx, testUserID).Return(testUser(t), nil)
		f.mailer.On("SendDelivered", "player@example.com").Return()

		order, err := f.service.MarkDelivered(ctx, 42)
		if err != nil {
			t.Fatalf("entrega não deveria falhar: %v", err)
		}

		if !order.IsDelivered() {
			t.Fatal("pedido deveria estar entregue")
		}
		f.mailer.AssertNumberOfCalls(t, "SendDelivered", 1)
		if len(f.notifier.events) != 1 || f.notifier.events[0] != "order.delivered" {
			t.Fatalf("esperava um evento order.delivered, obteve %v", f.notifier.events)
		}
	})

	t.Run("entrega repetida não tem efeito colateral", func(t *testing.T) {
		f := newOrderServiceFixture()
		f.orderRepo.On("FindByID", ctx, int64(42)).Return(&entities.Order{
			ID:             42,
			UserID:         testUserID,
			ShippingStatus: entities.ShippingStatusDelivered,
		}, nil)

		order, err := f.service.MarkDelivered(ctx, 42)
		if err != nil {
			t.Fatalf("repetição não deveria falhar: %v", err)
		}

		if !order.IsDelivered() {
			t.Fatal("pedido deveria continuar entregue")
		}
		f.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		f.mailer.AssertNotCalled(t, "SendDelivered", mock.Anything)
		if len(f.notifier.events) != 0 {
			t.Fatalf("não esperava eventos, obteve %v", f.notifier.events)
		}
	})

	t.Run("pedido inexistente retorna not found", func(t *testing.T) {
		f := newOrderServiceFixture()
		f.orderRepo.On("FindByID", ctx, int64(7)).Return(nil, nil)

		_, err := f.service.MarkDelivered(ctx, 7)
		if !errors.Is(err, domainerrors.ErrOrderNotFound) {
			t.Fatalf("esperava ErrOrderNotFound, obteve %v", err)
		}
	})
}

func TestOrderService_HandlePaymentNotification(t *testing.T) {
	ctx := context.Background()

	t.Run("pagamento aprovado marca o pedido como pago", func(t *testing.T) {
		f := newOrderServiceFixture()
		f.gateway.On("GetPayment", ctx, "12345").Return(&ports.GatewayPayment{
			ID:                "12345",
			Status:            "approved",
			ExternalReference: "42",
			Approved:          true,
		}, nil)
		f.orderRepo.On("FindByID", ctx, int64(42)).Return(&entities.Order{
			ID:     42,
			UserID: testUserID,
			Status: entities.OrderStatusPending,
		}, nil)
		f.orderRepo.On("Update", ctx, mock.MatchedBy(func(o *entities.Order) bool {
			return o.IsPaid && o.Status == entities.OrderStatusApproved
		})).Return(nil)

		if err := f.service.HandlePaymentNotification(ctx, "12345"); err != nil {
			t.Fatalf("notificação válida não deveria falhar: %v", err)
		}

		if len(f.notifier.events) != 1 || f.notifier.events[0] != "order.paid" {
			t.Fatalf("esperava um evento order.paid, obteve %v", f.notifier.events)
		}
	})

	t.Run("reprocessar o mesmo estado é idempotente", func(t *testing.T) {
		f := newOrderServiceFixture()
		f.gateway.On("GetPayment", ctx, "12345").Return(&ports.GatewayPayment{
			ID:                "12345",
			Status:            "approved",
			ExternalReference: "42",
			Approved:          true,
		}, nil)
		f.orderRepo.On("FindByID", ctx, int64(42)).Return(&entities.Order{
			ID:     42,
			UserID: testUserID,
			IsPaid: true,
			Status: entities.OrderStatusApproved,
		}, nil)

		if err := f.service.HandlePaymentNotification(ctx, "12345"); err != nil {
			t.Fatalf("reprocessamento não deveria falhar: %v", err)
		}

		f.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		if len(f.notifier.events) != 0 {
			t.Fatalf("não esperava eventos, obteve %v", f.notifier.events)
		}
	})

	t.Run("referência externa que não é um pedido vira not found", func(t *testing.T) {
		f := newOrderServiceFixture()
		f.gateway.On("GetPayment", ctx, "12345").Return(&ports.GatewayPayment{
			ID:                "12345",
			Status:            "approved",
			ExternalReference: "not-an-order",
			Approved:          true,
		}, nil)

		err := f.service.HandlePaymentNotification(ctx, "12345")
		if !errors.Is(err, domainerrors.ErrOrderNotFound) {
			t.Fatalf("esperava ErrOrderNotFound, obteve %v", err)
		}
	})
}
