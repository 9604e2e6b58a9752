package repositories

import (
	"context"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
)

// ProductFilters contém filtros para listagem de catálogo.
// A listagem pública sempre exclui produtos inativos e sem estoque.
type ProductFilters struct {
	Type   *entities.ProductType
	Search string // substring case-insensitive sobre o nome
}

// ProductRepository define a interface para persistência de produtos
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	// FindByID retorna o produto independente do estado, para joins
	// históricos; chamadas de catálogo devem checar IsActive.
	FindByID(ctx context.Context, id string) (*entities.Product, error)
	FindManyByIDs(ctx context.Context, ids []string) ([]*entities.Product, error)
	Update(ctx context.Context, product *entities.Product) error
	Deactivate(ctx context.Context, id string) error
	List(ctx context.Context, filters ProductFilters, cursor *string, limit int) (Page[*entities.Product, string], error)
	ListDashboard(ctx context.Context, cursor *string, limit int) (Page[*entities.Product, string], error)
	ListByCategory(ctx context.Context, categoryID string, cursor *string, limit int) (Page[*entities.Product, string], error)
	CountByCategory(ctx context.Context, categoryID string) (int64, error)
	// DecrementStock executa o decremento condicional atômico
	// (stock = stock - qty WHERE stock >= qty). Retorna ErrOutOfStock
	// quando nenhuma linha é afetada.
	DecrementStock(ctx context.Context, id string, quantity int) error
	SetImageURL(ctx context.Context, id string, url string) error
}
