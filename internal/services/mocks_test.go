package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	"github.com/gamevault/gamevault-backend/internal/domain/ports"
	"github.com/gamevault/gamevault-backend/internal/domain/repositories"
)

// noopLogger descarta tudo; os testes de serviço não inspecionam logs
type noopLogger struct{}

func (noopLogger) Info(string, ...any)        {}
func (noopLogger) Error(string, ...any)       {}
func (noopLogger) Debug(string, ...any)       {}
func (noopLogger) Warn(string, ...any)        {}
func (l noopLogger) With(...any) ports.Logger { return l }

// fakeUnitOfWork executa a função diretamente, sem banco
type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (fakeUnitOfWork) Commit(context.Context) error                       { return nil }
func (fakeUnitOfWork) Rollback(context.Context) error                     { return nil }
func (fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// fakeNotifier registra os eventos enviados
type fakeNotifier struct {
	events []string
}

func (f *fakeNotifier) NotifyUser(userID string, event string, payload any) {
	f.events = append(f.events, event)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entities.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entities.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) FindByConfirmationToken(ctx context.Context, token string) (*entities.User, error) {
	args := m.Called(ctx, token)
	user, _ := args.Get(0).(*entities.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Deactivate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepo) List(ctx context.Context, cursor *string, limit int) (repositories.Page[*entities.User, string], error) {
	args := m.Called(ctx, cursor, limit)
	return args.Get(0).(repositories.Page[*entities.User, string]), args.Error(1)
}

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) Create(ctx context.Context, product *entities.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepo) FindByID(ctx context.Context, id string) (*entities.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*entities.Product)
	return product, args.Error(1)
}

func (m *mockProductRepo) FindManyByIDs(ctx context.Context, ids []string) ([]*entities.Product, error) {
	args := m.Called(ctx, ids)
	products, _ := args.Get(0).([]*entities.Product)
	return products, args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, product *entities.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepo) Deactivate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProductRepo) List(ctx context.Context, filters repositories.ProductFilters, cursor *string, limit int) (repositories.Page[*entities.Product, string], error) {
	args := m.Called(ctx, filters, cursor, limit)
	return args.Get(0).(repositories.Page[*entities.Product, string]), args.Error(1)
}

func (m *mockProductRepo) ListDashboard(ctx context.Context, cursor *string, limit int) (repositories.Page[*entities.Product, string], error) {
	args := m.Called(ctx, cursor, limit)
	return args.Get(0).(repositories.Page[*entities.Product, string]), args.Error(1)
}

func (m *mockProductRepo) ListByCategory(ctx context.Context, categoryID string, cursor *string, limit int) (repositories.Page[*entities.Product, string], error) {
	args := m.Called(ctx, categoryID, cursor, limit)
	return args.Get(0).(repositories.Page[*entities.Product, string]), args.Error(1)
}

func (m *mockProductRepo) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepo) DecrementStock(ctx context.Context, id string, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

func (m *mockProductRepo) SetImageURL(ctx context.Context, id string, url string) error {
	return m.Called(ctx, id, url).Error(0)
}

type mockOrderRepo struct{ mock.Mock }

func (m *mockOrderRepo) Create(ctx context.Context, order *entities.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id int64) (*entities.Order, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*entities.Order)
	return order, args.Error(1)
}

func (m *mockOrderRepo) Update(ctx context.Context, order *entities.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockOrderRepo) ListByUser(ctx context.Context, userID string, cursor *int64, limit int) (repositories.Page[*entities.Order, int64], error) {
	args := m.Called(ctx, userID, cursor, limit)
	return args.Get(0).(repositories.Page[*entities.Order, int64]), args.Error(1)
}

func (m *mockOrderRepo) ListAll(ctx context.Context, cursor *int64, limit int) (repositories.Page[*entities.Order, int64], error) {
	args := m.Called(ctx, cursor, limit)
	return args.Get(0).(repositories.Page[*entities.Order, int64]), args.Error(1)
}

type mockCouponRepo struct{ mock.Mock }

func (m *mockCouponRepo) Create(ctx context.Context, coupon *entities.Coupon) error {
	return m.Called(ctx, coupon).Error(0)
}

func (m *mockCouponRepo) FindByID(ctx context.Context, id string) (*entities.Coupon, error) {
	args := m.Called(ctx, id)
	coupon, _ := args.Get(0).(*entities.Coupon)
	return coupon, args.Error(1)
}

func (m *mockCouponRepo) FindByCode(ctx context.Context, code string) (*entities.Coupon, error) {
	args := m.Called(ctx, code)
	coupon, _ := args.Get(0).(*entities.Coupon)
	return coupon, args.Error(1)
}

func (m *mockCouponRepo) Update(ctx context.Context, coupon *entities.Coupon) error {
	return m.Called(ctx, coupon).Error(0)
}

func (m *mockCouponRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCouponRepo) List(ctx context.Context, cursor *string, limit int) (repositories.Page[*entities.Coupon, string], error) {
	args := m.Called(ctx, cursor, limit)
	return args.Get(0).(repositories.Page[*entities.Coupon, string]), args.Error(1)
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendWelcome(email, name string) {
	m.Called(email, name)
}

func (m *mockMailer) SendConfirmation(email, name, token string) {
	m.Called(email, name, token)
}

func (m *mockMailer) SendOrder(email, name string, orderID int64, lines []ports.OrderMailLine, total string) {
	m.Called(email, name, orderID, lines, total)
}

func (m *mockMailer) SendDelivered(email string) {
	m.Called(email)
}

func (m *mockMailer) SendCoupon(email string, coupon *entities.Coupon) {
	m.Called(email, coupon)
}

type mockGateway struct{ mock.Mock }

func (m *mockGateway) CreatePreference(ctx context.Context, externalReference string, payerEmail string, items []ports.PreferenceItem) (*ports.Preference, error) {
	args := m.Called(ctx, externalReference, payerEmail, items)
	preference, _ := args.Get(0).(*ports.Preference)
	return preference, args.Error(1)
}

func (m *mockGateway) GetPayment(ctx context.Context, paymentID string) (*ports.GatewayPayment, error) {
	args := m.Called(ctx, paymentID)
	payment, _ := args.Get(0).(*ports.GatewayPayment)
	return payment, args.Error(1)
}

type mockIssuer struct{ mock.Mock }

func (m *mockIssuer) Issue(user *entities.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *mockIssuer) Parse(token string) (*ports.Principal, error) {
	args := m.Called(token)
	principal, _ := args.Get(0).(*ports.Principal)
	return principal, args.Error(1)
}
