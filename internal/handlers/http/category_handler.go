package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gamevault/gamevault-backend/internal/handlers/dto"
	"github.com/gamevault/gamevault-backend/internal/services"
)

// CategoryHandler lida com requisições HTTP relacionadas a categorias
type CategoryHandler struct {
	categoryService *services.CategoryService
}

// NewCategoryHandler cria um novo CategoryHandler
func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategory cria uma nova categoria (admin)
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationResponse(c, err)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// GetCategory busca uma categoria por ID
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.categoryService.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// ListCategories lista todas as categorias com seus produtos
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}

// UpdateCategory renomeia uma categoria (admin)
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationResponse(c, err)
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// DeleteCategory remove uma categoria sem produtos (admin)
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryService.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "category deleted"})
}
