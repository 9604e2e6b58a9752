package postgres

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserModel é o model GORM para usuários
type UserModel struct {
	ID                string     `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email             string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username          string     `gorm:"type:varchar(100);not null"`
	Name              string     `gorm:"type:varchar(255);not null"`
	PasswordHash      string     `gorm:"type:varchar(255);not null"`
	Description       *string    `gorm:"type:text"`
	ProfileImage      string     `gorm:"type:varchar(500);not null"`
	BannerImage       *string    `gorm:"type:varchar(500)"`
	TokenConfirmation *string    `gorm:"type:varchar(120);index"`
	EmailVerified     *time.Time ``
	Status            string     `gorm:"type:varchar(20);not null;default:active;index"`
	Role              string     `gorm:"type:varchar(20);not null;default:client"`
	BannedReason      *string    `gorm:"type:text"`
	CreatedAt         time.Time  `gorm:"index"`
	UpdatedAt         time.Time  ``
}

func (UserModel) TableName() string {
	return "users"
}

// ProductModel é o model GORM para produtos
type ProductModel struct {
	ID          string          `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Stock       int             `gorm:"not null;check:stock >= 0"`
	Type        string          `gorm:"type:varchar(20);not null"`
	ImageURL    string          `gorm:"type:varchar(500)"`
	CategoryID  string          `gorm:"type:uuid;not null;index"`
	Category    *CategoryModel  `gorm:"foreignKey:CategoryID"`
	Active      string          `gorm:"type:varchar(20);not null;default:active;index"`
	CreatedAt   time.Time       ``
	UpdatedAt   time.Time       ``
}

func (ProductModel) TableName() string {
	return "products"
}

// CategoryModel é o model GORM para categorias
type CategoryModel struct {
	ID       string         `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name     string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	Products []ProductModel `gorm:"foreignKey:CategoryID"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

// CartItemModel é o model GORM para linhas de carrinho.
// (user_id, product_id) é chave composta única.
type CartItemModel struct {
	ID        string        `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    string        `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	ProductID string        `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	Product   *ProductModel `gorm:"foreignKey:ProductID"`
	Quantity  int           `gorm:"not null"`
	CreatedAt time.Time     ``
	UpdatedAt time.Time     ``
}

func (CartItemModel) TableName() string {
	return "cart_items"
}

// OrderModel é o model GORM para cabeçalhos de pedido.
// Pedidos usam id inteiro sequencial, não uuid.
type OrderModel struct {
	ID              int64            `gorm:"primary_key;autoIncrement"`
	UserID          string           `gorm:"type:uuid;not null;index"`
	GatewayOrderID  *string          `gorm:"type:varchar(100);index"`
	IsPaid          bool             `gorm:"not null;default:false"`
	Status          string           `gorm:"type:varchar(20);not null;default:pending"`
	ShippingStatus  string           `gorm:"type:varchar(20);not null;default:pending"`
	Amount          decimal.Decimal  `gorm:"type:numeric(10,2);not null"`
	DiscountPercent int              `gorm:"not null;default:0"`
	Lines           []OrderLineModel `gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time        `gorm:"index"`
}

func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel congela produto, quantidade e preço de compra
type OrderLineModel struct {
	ID        string          `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID   int64           `gorm:"not null;index"`
	ProductID string          `gorm:"type:uuid;not null"`
	Product   *ProductModel   `gorm:"foreignKey:ProductID"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (OrderLineModel) TableName() string {
	return "order_lines"
}

// CouponModel é o model GORM para cupons de desconto
type CouponModel struct {
	ID                 string    `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Code               string    `gorm:"type:varchar(30);uniqueIndex;not null"`
	DiscountPercentage int       `gorm:"not null"`
	ExpirationDate     time.Time `gorm:"type:date;not null"`
	IsActive           bool      `gorm:"not null;default:true"`
	CreatedAt          time.Time ``
}

func (CouponModel) TableName() string {
	return "coupons"
}

// ImageModel é o model GORM para imagens de produto
type ImageModel struct {
	ID        string `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProductID string `gorm:"type:uuid;not null;index"`
	PublicID  string `gorm:"type:varchar(255);uniqueIndex;not null"`
	SecureURL string `gorm:"type:varchar(500);not null"`
}

func (ImageModel) TableName() string {
	return "images"
}
