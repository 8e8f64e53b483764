// Package storage provides S3-compatible object storage for uploaded
// payslip files, backed by MinIO.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"tenant_rating_backend/platform/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// PresignedURLTTL is the default expiration time for presigned URLs (15 minutes).
const PresignedURLTTL = 15 * time.Minute

// ObjectStore is the storage surface the request pipeline needs: archive
// the raw payslips of a request and hand out short-lived download links.
type ObjectStore interface {
	EnsureBucketExists(ctx context.Context, bucket string) error
	PutObject(ctx context.Context, bucket, key string, content []byte, contentType string) error
	PresignedGetURL(ctx context.Context, bucket, key string) (string, error)
}

// MinIOService implements ObjectStore using MinIO.
type MinIOService struct {
	client      *minio.Client
	maxFileSize int64
}

// NewMinIOService creates a new MinIO storage service.
func NewMinIOService(cfg config.MinIOConfig) (*MinIOService, error) {
	if !cfg.IsMinIOEnabled() {
		return nil, fmt.Errorf("MinIO is not configured")
	}

	client, err := minio.New(cfg.GetMinIOEndpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.GetMinIOAccessKey(), cfg.GetMinIOSecretKey(), ""),
		Secure: cfg.GetMinIOUseSSL(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &MinIOService{
		client:      client,
		maxFileSize: cfg.GetMinIOMaxFileSize(),
	}, nil
}

// EnsureBucketExists creates the bucket if it doesn't exist.
func (s *MinIOService) EnsureBucketExists(ctx context.Context, bucket string) error {
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
	}

	return nil
}

// PutObject stores one file under the given key.
func (s *MinIOService) PutObject(ctx context.Context, bucket, key string, content []byte, contentType string) error {
	if s.maxFileSize > 0 && int64(len(content)) > s.maxFileSize {
		return fmt.Errorf("file %s exceeds maximum size of %d bytes", key, s.maxFileSize)
	}

	_, err := s.client.PutObject(ctx, bucket, key, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to store object %s: %w", key, err)
	}

	return nil
}

// PresignedGetURL creates a short-lived download URL for a stored file.
func (s *MinIOService) PresignedGetURL(ctx context.Context, bucket, key string) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, bucket, key, PresignedURLTTL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned download URL: %w", err)
	}
	return u.String(), nil
}

// PayslipObjectKey builds a collision-free object key for one uploaded
// payslip within a request.
func PayslipObjectKey(requestID uuid.UUID, index int, fileName string) string {
	return path.Join("requests", requestID.String(), fmt.Sprintf("%02d_%s", index, path.Base(fileName)))
}

var _ ObjectStore = (*MinIOService)(nil)
