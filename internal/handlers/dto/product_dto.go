package dto

import (
	"time"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
)

// CreateProductRequest representa o formulário multipart de criação de
// produto. O preço vem como string decimal e é convertido no handler.
type CreateProductRequest struct {
	Name        string `form:"name" binding:"required,min=2,max=200"`
	Description string `form:"description" binding:"omitempty,max=2000"`
	Price       string `form:"price" binding:"required"`
	Stock       int    `form:"stock" binding:"omitempty,min=0"`
	Type        string `form:"type" binding:"required,producttype"`
	CategoryID  string `form:"category_id" binding:"required,uuid"`
}

// UpdateProductRequest representa a requisição de atualização parcial
type UpdateProductRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Price       *string `json:"price"`
	Stock       *int    `json:"stock" binding:"omitempty,min=0"`
	Type        *string `json:"type" binding:"omitempty,producttype"`
	CategoryID  *string `json:"category_id" binding:"omitempty,uuid"`
}

// ProductResponse representa a resposta de um produto
type ProductResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Price       string            `json:"price"`
	Stock       int               `json:"stock"`
	Type        string            `json:"type"`
	ImageURL    string            `json:"image_url,omitempty"`
	CategoryID  string            `json:"category_id"`
	Category    *CategoryResponse `json:"category,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// CreateProductResponse acrescenta os uploads de imagem que falharam
type CreateProductResponse struct {
	Product      ProductResponse `json:"product"`
	FailedImages []string        `json:"failed_images,omitempty"`
}

// ToProductResponse converte uma entidade Product para ProductResponse
func ToProductResponse(product *entities.Product) ProductResponse {
	resp := ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price.StringFixed(2),
		Stock:       product.Stock,
		Type:        string(product.Type),
		ImageURL:    product.ImageURL,
		CategoryID:  product.CategoryID,
		CreatedAt:   product.CreatedAt,
	}
	if product.Category != nil {
		category := ToCategoryResponse(product.Category)
		resp.Category = &category
	}
	return resp
}

// ToProductResponses converte uma lista de produtos
func ToProductResponses(products []*entities.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, product := range products {
		responses[i] = ToProductResponse(product)
	}
	return responses
}
