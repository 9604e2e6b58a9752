package repositories

import (
	"context"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
)

// OrderRepository define a interface para persistência de pedidos
type OrderRepository interface {
	// Create persiste cabeçalho e linhas; deve rodar dentro de uma
	// transação aberta pelo UnitOfWork.
	Create(ctx context.Context, order *entities.Order) error
	FindByID(ctx context.Context, id int64) (*entities.Order, error)
	Update(ctx context.Context, order *entities.Order) error
	ListByUser(ctx context.Context, userID string, cursor *int64, limit int) (Page[*entities.Order, int64], error)
	ListAll(ctx context.Context, cursor *int64, limit int) (Page[*entities.Order, int64], error)
}
