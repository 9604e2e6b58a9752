package http

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// maxImageSize limita uploads de imagem a 1 MB
const maxImageSize = 1 << 20

var allowedImageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

// validateImageFile aplica a whitelist de extensão e o limite de tamanho
// antes de qualquer byte chegar ao object storage
func validateImageFile(file *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedImageExtensions[ext]; !ok {
		return errors.New("file type not allowed: only jpg, jpeg, png and webp images are accepted")
	}

	if file.Size > maxImageSize {
		return errors.New("file too large: images must be at most 1 MB")
	}

	return nil
}
