package repositories

import (
	"context"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
)

// CartRepository define a interface para persistência do carrinho
type CartRepository interface {
	// Upsert cria a linha (user, product) ou substitui a quantidade
	Upsert(ctx context.Context, item *entities.CartItem) error
	Find(ctx context.Context, userID, productID string) (*entities.CartItem, error)
	FindByUser(ctx context.Context, userID string) ([]entities.CartItem, error)
	Remove(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
}
