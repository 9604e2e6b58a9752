package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	"github.com/gamevault/gamevault-backend/internal/domain/repositories"
	"github.com/gamevault/gamevault-backend/internal/handlers/dto"
	"github.com/gamevault/gamevault-backend/internal/services"
)

// ProductHandler lida com requisições HTTP do catálogo de produtos
type ProductHandler struct {
	productService *services.ProductService
}

// NewProductHandler cria um novo ProductHandler
func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProduct cria um produto com imagens via multipart (admin)
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		dto.ValidationResponse(c, err)
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		dto.BadRequestResponse(c, "price must be a decimal number")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		dto.BadRequestResponse(c, "invalid multipart form")
		return
	}

	files := form.File["images"]
	for _, file := range files {
		if err := validateImageFile(file); err != nil {
			dto.BadRequestResponse(c, err.Error())
			return
		}
	}

	result, err := h.productService.CreateProduct(c.Request.Context(), services.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Stock:       req.Stock,
		Type:        entities.ProductType(req.Type),
		CategoryID:  req.CategoryID,
		Images:      files,
	})
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateProductResponse{
		Product:      dto.ToProductResponse(result.Product),
		FailedImages: result.FailedImages,
	})
}

// GetProduct busca um produto ativo por ID
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// ListProducts lista o catálogo público com filtros e paginação
func (h *ProductHandler) ListProducts(c *gin.Context) {
	filters := repositories.ProductFilters{
		Search: c.Query("search"),
	}
	if raw := c.Query("type"); raw != "" {
		productType := entities.ProductType(raw)
		if productType != entities.ProductTypeDigital && productType != entities.ProductTypePhysical {
			dto.BadRequestResponse(c, "type must be digital or physical")
			return
		}
		filters.Type = &productType
	}

	page, err := h.productService.ListProducts(c.Request.Context(), filters, stringCursor(c), pageLimit(c))
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PageResponse[dto.ProductResponse, string]{
		Data:       dto.ToProductResponses(page.Data),
		NextCursor: page.NextCursor,
	})
}

// ListDashboard lista todos os produtos sem filtros de catálogo (admin)
func (h *ProductHandler) ListDashboard(c *gin.Context) {
	page, err := h.productService.ListDashboard(c.Request.Context(), stringCursor(c), pageLimit(c))
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PageResponse[dto.ProductResponse, string]{
		Data:       dto.ToProductResponses(page.Data),
		NextCursor: page.NextCursor,
	})
}

// ListByCategory lista os produtos ativos de uma categoria
func (h *ProductHandler) ListByCategory(c *gin.Context) {
	page, err := h.productService.ListByCategory(c.Request.Context(), c.Param("id"), stringCursor(c), pageLimit(c))
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PageResponse[dto.ProductResponse, string]{
		Data:       dto.ToProductResponses(page.Data),
		NextCursor: page.NextCursor,
	})
}

// UpdateProduct atualiza campos de um produto (admin)
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationResponse(c, err)
		return
	}

	input := services.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil {
			dto.BadRequestResponse(c, "price must be a decimal number")
			return
		}
		input.Price = &price
	}
	if req.Type != nil {
		productType := entities.ProductType(*req.Type)
		input.Type = &productType
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// DeleteProduct remove um produto do catálogo via soft delete (admin)
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.productService.DeactivateProduct(c.Request.Context(), c.Param("id")); err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "product deactivated"})
}
