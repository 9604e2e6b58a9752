package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"github.com/gamevault/gamevault-backend/internal/domain/ports"
)

// S3Storage implementa ports.FileStorage sobre um bucket S3
type S3Storage struct {
	s3     *s3.S3
	bucket string
}

// NewS3Storage cria o cliente S3 a partir da sessão padrão da SDK
func NewS3Storage(region, bucket string) (*S3Storage, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, err
	}

	return &S3Storage{
		s3:     s3.New(sess),
		bucket: bucket,
	}, nil
}

// Upload envia o arquivo e devolve o public id (chave do objeto) e a URL
func (c *S3Storage) Upload(ctx context.Context, file *multipart.FileHeader) (*ports.StoredFile, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buffer, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	publicID := strings.ReplaceAll(uuid.NewString(), "-", "") + ext

	_, err = c.s3.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(publicID),
		Body:          bytes.NewReader(buffer),
		ContentLength: aws.Int64(int64(len(buffer))),
		ContentType:   aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		return nil, err
	}

	return &ports.StoredFile{
		PublicID:  publicID,
		SecureURL: fmt.Sprintf("https://%s.s3.amazonaws.com/%s", c.bucket, publicID),
	}, nil
}

// Delete remove o objeto do bucket
func (c *S3Storage) Delete(ctx context.Context, publicID string) error {
	_, err := c.s3.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(publicID),
	})
	return err
}
