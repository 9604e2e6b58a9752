package services

import (
	"context"
	"strconv"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	domainerrors "github.com/gamevault/gamevault-backend/internal/domain/errors"
	"github.com/gamevault/gamevault-backend/internal/domain/ports"
	"github.com/gamevault/gamevault-backend/internal/domain/repositories"
)

// OrderService contém a lógica de negócio de pedidos e checkout
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
	couponRepo  repositories.CouponRepository
	uow         ports.UnitOfWork
	gateway     ports.PaymentGateway
	mailer      ports.Mailer
	notifier    ports.OrderNotifier
	logger      ports.Logger
	now         nowFunc
}

// NewOrderService cria um novo OrderService
func NewOrderService(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	userRepo repositories.UserRepository,
	couponRepo repositories.CouponRepository,
	uow ports.UnitOfWork,
	gateway ports.PaymentGateway,
	mailer ports.Mailer,
	notifier ports.OrderNotifier,
	logger ports.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		couponRepo:  couponRepo,
		uow:         uow,
		gateway:     gateway,
		mailer:      mailer,
		notifier:    notifier,
		logger:      logger,
		now:         defaultNow,
	}
}

// OrderLineInput é um item pedido pelo cliente: id e quantidade.
// Preço nunca vem do cliente.
type OrderLineInput struct {
	ProductID string
	Quantity  int
}

// CreateOrder cria um pedido pendente. Preços são relidos da tabela de
// produtos e congelados nas linhas; cabeçalho, linhas e decremento de
// estoque acontecem em uma única transação. Estoque insuficiente em
// qualquer item desfaz tudo.
func (s *OrderService) CreateOrder(ctx context.Context, userID string, items []OrderLineInput, couponCode *string) (*entities.Order, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}

	discount := 0
	if couponCode != nil && *couponCode != "" {
		coupon, err := s.couponRepo.FindByCode(ctx, *couponCode)
		if err != nil {
			return nil, err
		}
		if coupon == nil {
			return nil, domainerrors.ErrCouponNotFound
		}
		if err := coupon.CheckValid(s.now()); err != nil {
			return nil, err
		}
		discount = coupon.DiscountPercentage
	}

	products, err := s.loadProducts(ctx, items)
	if err != nil {
		return nil, err
	}

	order := &entities.Order{
		UserID:          userID,
		Status:          entities.OrderStatusPending,
		ShippingStatus:  entities.ShippingStatusPending,
		DiscountPercent: discount,
	}
	for _, item := range items {
		product := products[item.ProductID]
		order.Lines = append(order.Lines, entities.OrderLine{
			ProductID: item.ProductID,
			Product:   product,
			Quantity:  item.Quantity,
			Price:     product.Price,
		})
	}
	order.Amount = entities.OrderAmount(order.Lines, discount)

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		for _, item := range items {
			if err := s.productRepo.DecrementStock(txCtx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return s.orderRepo.Create(txCtx, order)
	})
	if err != nil {
		return nil, err
	}

	s.sendOrderMail(user, order)

	s.logger.Info("order created",
		"order_id", order.ID,
		"user_id", userID,
		"amount", order.Amount.String(),
		"discount_percent", discount,
	)
	return order, nil
}

// loadProducts busca e valida os produtos pedidos. Produto desconhecido
// ou inativo rejeita o pedido inteiro.
func (s *OrderService) loadProducts(ctx context.Context, items []OrderLineInput) (map[string]*entities.Product, error) {
	if len(items) == 0 {
		return nil, domainerrors.ErrProductNotFound
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.FindManyByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*entities.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok || !product.IsActive() {
			return nil, domainerrors.ErrProductNotFound
		}
		if item.Quantity <= 0 {
			return nil, domainerrors.ErrProductNotFound
		}
	}

	return byID, nil
}

func (s *OrderService) sendOrderMail(user *entities.User, order *entities.Order) {
	lines := make([]ports.OrderMailLine, 0, len(order.Lines))
	for i := range order.Lines {
		line := &order.Lines[i]
		if line.Product == nil {
			continue
		}
		lines = append(lines, ports.OrderMailLine{
			Name: line.Product.Name,
			Type: line.Product.Type,
		})
	}
	s.mailer.SendOrder(user.Email.String(), user.Name, order.ID, lines, order.Amount.StringFixed(2))
}

// GetOrder busca um pedido com linhas e produtos
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domainerrors.ErrOrderNotFound
	}
	return order, nil
}

// ListByUser lista os pedidos de um usuário com paginação por keyset
func (s *OrderService) ListByUser(ctx context.Context, userID string, cursor *int64, limit int) (repositories.Page[*entities.Order, int64], error) {
	return s.orderRepo.ListByUser(ctx, userID, cursor, limit)
}

// ListAll lista todos os pedidos (visão de admin)
func (s *OrderService) ListAll(ctx context.Context, cursor *int64, limit int) (repositories.Page[*entities.Order, int64], error) {
	return s.orderRepo.ListAll(ctx, cursor, limit)
}

// MarkDelivered efetua a transição de entrega. A operação é idempotente:
// só a primeira transição envia o email de confirmação e o evento
// websocket; chamadas repetidas retornam o pedido sem efeito colateral.
func (s *OrderService) MarkDelivered(ctx context.Context, id int64) (*entities.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.MarkDelivered() {
		return order, nil
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	if user, err := s.userRepo.FindByID(ctx, order.UserID); err == nil && user != nil {
		s.mailer.SendDelivered(user.Email.String())
	}
	s.notifier.NotifyUser(order.UserID, "order.delivered", ports.OrderStatusPayload{
		OrderID: order.ID,
		Status:  string(order.ShippingStatus),
		IsPaid:  order.IsPaid,
	})

	s.logger.Info("order delivered", "order_id", order.ID)
	return order, nil
}

// CheckoutResult é a referência de pagamento devolvida ao cliente
type CheckoutResult struct {
	Order        *entities.Order
	PreferenceID string
	InitPoint    string
}

// CreateCheckout cria o pedido pendente e a preference no gateway.
// O id local do pedido vai como external_reference para que o webhook
// consiga mapear o pagamento de volta.
func (s *OrderService) CreateCheckout(ctx context.Context, userID string, items []OrderLineInput, couponCode *string) (*CheckoutResult, error) {
	order, err := s.CreateOrder(ctx, userID, items, couponCode)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	prefItems := make([]ports.PreferenceItem, 0, len(order.Lines))
	for i := range order.Lines {
		line := &order.Lines[i]
		title := line.ProductID
		if line.Product != nil {
			title = line.Product.Name
		}
		prefItems = append(prefItems, ports.PreferenceItem{
			Title:     title,
			Quantity:  line.Quantity,
			UnitPrice: line.Price,
		})
	}

	preference, err := s.gateway.CreatePreference(ctx, strconv.FormatInt(order.ID, 10), user.Email.String(), prefItems)
	if err != nil {
		return nil, err
	}

	order.GatewayOrderID = &preference.ID
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("checkout created",
		"order_id", order.ID,
		"preference_id", preference.ID,
	)
	return &CheckoutResult{
		Order:        order,
		PreferenceID: preference.ID,
		InitPoint:    preference.InitPoint,
	}, nil
}

// HandlePaymentNotification processa uma notificação de pagamento do
// webhook. O pagamento é sempre relido do gateway; o payload da
// notificação nunca é confiado. A operação é idempotente: reaplicar o
// mesmo estado não tem efeito.
func (s *OrderService) HandlePaymentNotification(ctx context.Context, paymentID string) error {
	payment, err := s.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		return err
	}

	orderID, err := strconv.ParseInt(payment.ExternalReference, 10, 64)
	if err != nil {
		s.logger.Warn("webhook with unparseable external reference",
			"payment_id", paymentID,
			"external_reference", payment.ExternalReference,
		)
		return domainerrors.ErrOrderNotFound
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domainerrors.ErrOrderNotFound
	}

	status := paymentStatus(payment)
	if order.Status == status && order.IsPaid == payment.Approved {
		return nil
	}

	order.Status = status
	order.IsPaid = payment.Approved
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return err
	}

	s.notifier.NotifyUser(order.UserID, "order.paid", ports.OrderStatusPayload{
		OrderID: order.ID,
		Status:  string(order.Status),
		IsPaid:  order.IsPaid,
	})

	s.logger.Info("payment processed",
		"order_id", order.ID,
		"payment_id", payment.ID,
		"status", string(status),
	)
	return nil
}

// paymentStatus mapeia o status do gateway para o status do pedido
func paymentStatus(payment *ports.GatewayPayment) entities.OrderStatus {
	switch payment.Status {
	case "approved":
		return entities.OrderStatusApproved
	case "rejected":
		return entities.OrderStatusRejected
	case "cancelled":
		return entities.OrderStatusCancelled
	default:
		return entities.OrderStatusPending
	}
}
