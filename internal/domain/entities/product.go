package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ProductType distingue produtos que exigem envio físico
type ProductType string

const (
	ProductTypeDigital  ProductType = "digital"
	ProductTypePhysical ProductType = "physical"
)

// ProductActive representa o estado do produto no catálogo.
// Produtos nunca são removidos fisicamente, apenas inativados,
// para preservar a integridade dos pedidos históricos.
type ProductActive string

const (
	ProductStateActive   ProductActive = "active"
	ProductStateInactive ProductActive = "inactive"
)

// Product representa um produto do catálogo
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Type        ProductType
	ImageURL    string
	CategoryID  string
	Category    *Category
	Active      ProductActive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive verifica se o produto ainda faz parte do catálogo
func (p *Product) IsActive() bool {
	return p.Active == ProductStateActive
}

// Deactivate remove o produto do catálogo sem apagar a linha
func (p *Product) Deactivate() {
	p.Active = ProductStateInactive
}

// Validate valida regras de negócio da entidade Product
func (p *Product) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}

	if p.Price.IsNegative() {
		return errors.New("price must not be negative")
	}

	if p.Stock < 0 {
		return errors.New("stock must not be negative")
	}

	if p.Type != ProductTypeDigital && p.Type != ProductTypePhysical {
		return errors.New("invalid product type")
	}

	if p.CategoryID == "" {
		return errors.New("category is required")
	}

	return nil
}
