package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gamevault/gamevault-backend/internal/handlers/dto"
	"github.com/gamevault/gamevault-backend/internal/services"
)

// FileHandler lida com requisições HTTP de imagens de produto
type FileHandler struct {
	fileService *services.FileService
}

// NewFileHandler cria um novo FileHandler
func NewFileHandler(fileService *services.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// ListImages lista todas as imagens de produto
func (h *FileHandler) ListImages(c *gin.Context) {
	images, err := h.fileService.ListImages(c.Request.Context())
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToImageResponses(images))
}

// ListByProduct lista as imagens de um produto; 404 quando não há nenhuma
func (h *FileHandler) ListByProduct(c *gin.Context) {
	images, err := h.fileService.ListByProduct(c.Request.Context(), c.Param("productId"))
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToImageResponses(images))
}

// UploadImages sobe várias imagens para um produto existente (admin).
// Arquivos que falham não derrubam o lote; o resultado lista os nomes.
func (h *FileHandler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		dto.BadRequestResponse(c, "invalid multipart form")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		dto.BadRequestResponse(c, "at least one image is required")
		return
	}
	for _, file := range files {
		if err := validateImageFile(file); err != nil {
			dto.BadRequestResponse(c, err.Error())
			return
		}
	}

	result, err := h.fileService.UploadImages(c.Request.Context(), c.Param("productId"), files)
	if err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUploadImagesResponse(result))
}

// DeleteImage remove uma imagem do storage e do banco (admin)
func (h *FileHandler) DeleteImage(c *gin.Context) {
	if err := h.fileService.DeleteImage(c.Request.Context(), c.Param("publicId")); err != nil {
		dto.DomainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "image deleted"})
}
