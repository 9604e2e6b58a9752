package ports

import (
	"context"
	"mime/multipart"
)

// StoredFile é o resultado de um upload no object storage
type StoredFile struct {
	PublicID  string
	SecureURL string
}

// FileStorage abstrai o object storage externo (S3)
type FileStorage interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (*StoredFile, error)
	Delete(ctx context.Context, publicID string) error
}
