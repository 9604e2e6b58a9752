package dto

import (
	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	"github.com/gamevault/gamevault-backend/internal/services"
)

// ImageResponse representa uma imagem de produto
type ImageResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
}

// UploadImagesResponse relata o resultado de um upload múltiplo
type UploadImagesResponse struct {
	Images []ImageResponse `json:"images"`
	Failed []string        `json:"failed,omitempty"`
}

// ToImageResponse converte uma entidade Image para ImageResponse
func ToImageResponse(image *entities.Image) ImageResponse {
	return ImageResponse{
		ID:        image.ID,
		ProductID: image.ProductID,
		PublicID:  image.PublicID,
		SecureURL: image.SecureURL,
	}
}

// ToImageResponses converte uma lista de imagens
func ToImageResponses(images []entities.Image) []ImageResponse {
	responses := make([]ImageResponse, len(images))
	for i := range images {
		responses[i] = ToImageResponse(&images[i])
	}
	return responses
}

// ToUploadImagesResponse converte o resultado de um upload múltiplo
func ToUploadImagesResponse(result *services.UploadResult) UploadImagesResponse {
	return UploadImagesResponse{
		Images: ToImageResponses(result.Images),
		Failed: result.Failed,
	}
}
