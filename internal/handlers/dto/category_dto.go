package dto

import (
	"github.com/gamevault/gamevault-backend/internal/domain/entities"
)

// CategoryRequest representa a requisição de criação/renomeio de categoria
type CategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// CategoryResponse representa a resposta de uma categoria
type CategoryResponse struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Products []ProductResponse `json:"products,omitempty"`
}

// ToCategoryResponse converte uma entidade Category para CategoryResponse
func ToCategoryResponse(category *entities.Category) CategoryResponse {
	resp := CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
	}
	for i := range category.Products {
		resp.Products = append(resp.Products, ToProductResponse(&category.Products[i]))
	}
	return resp
}

// ToCategoryResponses converte uma lista de categorias
func ToCategoryResponses(categories []*entities.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToCategoryResponse(category)
	}
	return responses
}
