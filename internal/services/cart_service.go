package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	domainerrors "github.com/gamevault/gamevault-backend/internal/domain/errors"
	"github.com/gamevault/gamevault-backend/internal/domain/ports"
	"github.com/gamevault/gamevault-backend/internal/domain/repositories"
)

// CartService contém a lógica de negócio do carrinho
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	logger      ports.Logger
}

// NewCartService cria um novo CartService
func NewCartService(
	cartRepo repositories.CartRepository,
	productRepo repositories.ProductRepository,
	logger ports.Logger,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Cart é o carrinho materializado de um usuário: linhas com o preço
// corrente de cada produto e o total computado
type Cart struct {
	Items []entities.CartItem
	Total decimal.Decimal
}

// GetCart retorna as linhas do usuário com o total calculado sobre os
// preços atuais dos produtos
func (s *CartService) GetCart(ctx context.Context, userID string) (*Cart, error) {
	items, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Cart{Items: items, Total: entities.CartTotal(items)}, nil
}

// AddProduct insere ou substitui a linha (user, product). Quantidade
// omitida vale 1.
func (s *CartService) AddProduct(ctx context.Context, userID, productID string, quantity int) (*entities.CartItem, error) {
	if quantity <= 0 {
		quantity = 1
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive() {
		return nil, domainerrors.ErrProductNotFound
	}

	item := &entities.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.Upsert(ctx, item); err != nil {
		return nil, err
	}

	item.Product = product
	s.logger.Info("cart item upserted",
		"user_id", userID,
		"product_id", productID,
		"quantity", quantity,
	)
	return item, nil
}

// UpdateQuantity troca a quantidade de uma linha existente. Linha
// inexistente é erro, diferente do add.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*entities.CartItem, error) {
	existing, err := s.cartRepo.Find(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domainerrors.ErrCartItemNotFound
	}

	existing.Quantity = quantity
	if err := s.cartRepo.Upsert(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// RemoveProduct apaga a linha (user, product); inexistente é erro
func (s *CartService) RemoveProduct(ctx context.Context, userID, productID string) error {
	return s.cartRepo.Remove(ctx, userID, productID)
}

// ClearCart apaga todas as linhas do usuário
func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	return s.cartRepo.Clear(ctx, userID)
}

// MixedCartLine é uma linha vinda do carrinho local do cliente
type MixedCartLine struct {
	ProductID string
	Quantity  int
}

// MergeCart funde o carrinho local do cliente com o do servidor.
// Para produtos presentes nos dois, a quantidade do cliente vence.
// Linhas que só existem no servidor são mantidas. Produto desconhecido
// rejeita o merge inteiro.
func (s *CartService) MergeCart(ctx context.Context, userID string, lines []MixedCartLine) (*Cart, error) {
	if len(lines) > 0 {
		ids := make([]string, 0, len(lines))
		for _, line := range lines {
			ids = append(ids, line.ProductID)
		}

		products, err := s.productRepo.FindManyByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}

		known := make(map[string]*entities.Product, len(products))
		for _, p := range products {
			known[p.ID] = p
		}

		for _, line := range lines {
			if _, ok := known[line.ProductID]; !ok {
				return nil, domainerrors.ErrProductNotFound
			}
		}

		for _, line := range lines {
			quantity := line.Quantity
			if quantity <= 0 {
				quantity = 1
			}
			item := &entities.CartItem{
				UserID:    userID,
				ProductID: line.ProductID,
				Quantity:  quantity,
			}
			if err := s.cartRepo.Upsert(ctx, item); err != nil {
				return nil, err
			}
		}

		s.logger.Info("cart merged", "user_id", userID, "client_lines", len(lines))
	}

	return s.GetCart(ctx, userID)
}
