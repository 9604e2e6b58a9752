package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	"github.com/gamevault/gamevault-backend/internal/domain/repositories"
)

// OrderRepository implementa repositories.OrderRepository
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository cria um novo OrderRepository
func NewOrderRepository(db *gorm.DB) repositories.OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order *entities.Order) error {
	model := r.toModel(order)

	db := dbFromContext(ctx, r.db)
	// Cabeçalho e linhas em uma escrita; o gorm insere as associações
	// dentro da transação corrente
	if err := db.Create(model).Error; err != nil {
		return err
	}

	order.ID = model.ID
	for i := range model.Lines {
		order.Lines[i].ID = model.Lines[i].ID
		order.Lines[i].OrderID = model.ID
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*entities.Order, error) {
	var model OrderModel

	db := dbFromContext(ctx, r.db)
	err := db.Preload("Lines").Preload("Lines.Product").
		Where("id = ?", id).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *OrderRepository) Update(ctx context.Context, order *entities.Order) error {
	db := dbFromContext(ctx, r.db)
	// Linhas são imutáveis depois de criadas; só o cabeçalho é atualizado
	return db.Model(&OrderModel{}).Where("id = ?", order.ID).Updates(map[string]any{
		"gateway_order_id": order.GatewayOrderID,
		"is_paid":          order.IsPaid,
		"status":           string(order.Status),
		"shipping_status":  string(order.ShippingStatus),
	}).Error
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string, cursor *int64, limit int) (repositories.Page[*entities.Order, int64], error) {
	var models []*OrderModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&OrderModel{}).
		Where("user_id = ?", userID).
		Order("id asc").
		Limit(limit + 1)

	if cursor != nil {
		query = query.Where("id >= ?", *cursor)
	}

	if err := query.Find(&models).Error; err != nil {
		return repositories.Page[*entities.Order, int64]{}, err
	}

	return r.page(models, limit), nil
}

func (r *OrderRepository) ListAll(ctx context.Context, cursor *int64, limit int) (repositories.Page[*entities.Order, int64], error) {
	var models []*OrderModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&OrderModel{}).Order("id asc").Limit(limit + 1)

	if cursor != nil {
		query = query.Where("id >= ?", *cursor)
	}

	if err := query.Find(&models).Error; err != nil {
		return repositories.Page[*entities.Order, int64]{}, err
	}

	return r.page(models, limit), nil
}

func (r *OrderRepository) page(models []*OrderModel, limit int) repositories.Page[*entities.Order, int64] {
	orders := make([]*entities.Order, 0, len(models))
	for _, model := range models {
		orders = append(orders, r.toEntity(model))
	}
	return repositories.PageFrom(orders, limit, func(o *entities.Order) int64 { return o.ID })
}

// Conversores
func (r *OrderRepository) toModel(order *entities.Order) *OrderModel {
	model := &OrderModel{
		ID:              order.ID,
		UserID:          order.UserID,
		GatewayOrderID:  order.GatewayOrderID,
		IsPaid:          order.IsPaid,
		Status:          string(order.Status),
		ShippingStatus:  string(order.ShippingStatus),
		Amount:          order.Amount,
		DiscountPercent: order.DiscountPercent,
		CreatedAt:       order.CreatedAt,
	}

	for i := range order.Lines {
		line := &order.Lines[i]
		model.Lines = append(model.Lines, OrderLineModel{
			ID:        line.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	return model
}

func (r *OrderRepository) toEntity(model *OrderModel) *entities.Order {
	order := &entities.Order{
		ID:              model.ID,
		UserID:          model.UserID,
		GatewayOrderID:  model.GatewayOrderID,
		IsPaid:          model.IsPaid,
		Status:          entities.OrderStatus(model.Status),
		ShippingStatus:  entities.ShippingStatus(model.ShippingStatus),
		Amount:          model.Amount,
		DiscountPercent: model.DiscountPercent,
		CreatedAt:       model.CreatedAt,
	}

	for i := range model.Lines {
		line := &model.Lines[i]
		orderLine := entities.OrderLine{
			ID:        line.ID,
			OrderID:   line.OrderID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		}
		if line.Product != nil {
			orderLine.Product = &entities.Product{
				ID:       line.Product.ID,
				Name:     line.Product.Name,
				Price:    line.Product.Price,
				Type:     entities.ProductType(line.Product.Type),
				ImageURL: line.Product.ImageURL,
			}
		}
		order.Lines = append(order.Lines, orderLine)
	}

	return order
}
