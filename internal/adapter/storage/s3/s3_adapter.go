package s3

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// PlaceholderImageURL is returned for every file when no storage provider is
// configured, so listings can still be created in development.
const PlaceholderImageURL = "https://images.pexels.com/photos/106399/pexels-photo-106399.jpeg"

// Storage uploads property images to an S3-compatible bucket. A nil client
// (provider unconfigured) makes every upload resolve to the placeholder URL.
type Storage struct {
	client *minio.Client
	bucket string
	logger *zap.Logger
}

func NewStorage(endpoint, accessKey, secretKey, bucket string, useSSL bool, logger *zap.Logger) (*Storage, error) {
	log := logger.Named("S3Storage")

	if endpoint == "" || accessKey == "" || secretKey == "" {
		log.Warn("Image storage not configured, uploads will return placeholder URLs")
		return &Storage{logger: log}, nil
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for endpoint %s: %w", endpoint, err)
	}

	ctx := context.Background()
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		exists, existsErr := client.BucketExists(ctx, bucket)
		if existsErr != nil || !exists {
			return nil, fmt.Errorf("failed to make/verify bucket %s: %w", bucket, err)
		}
	}

	log.Info("Image storage initialized", zap.String("endpoint", endpoint), zap.String("bucket", bucket))
	return &Storage{
		client: client,
		bucket: bucket,
		logger: log,
	}, nil
}

// Configured reports whether a real provider backs this storage.
func (s *Storage) Configured() bool {
	return s.client != nil
}

// Upload stores one image and returns its public URL. Unconfigured storage
// falls back to the placeholder; a provider error on the configured path is
// returned to the caller.
func (s *Storage) Upload(ctx context.Context, originalFileName string, data []byte) (string, error) {
	if s.client == nil {
		s.logger.Debug("Storage keys missing, returning placeholder image URL",
			zap.String("filename", originalFileName))
		return PlaceholderImageURL, nil
	}

	ext := filepath.Ext(originalFileName)
	objectKey := fmt.Sprintf("properties/%s%s", uuid.New().String(), ext)

	_, err := s.client.PutObject(ctx, s.bucket, objectKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: http.DetectContentType(data),
	})
	if err != nil {
		s.logger.Error("Image upload failed", zap.String("bucket", s.bucket), zap.String("key", objectKey), zap.Error(err))
		return "", fmt.Errorf("failed to upload object %s to bucket %s: %w", objectKey, s.bucket, err)
	}

	fileURL := fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), s.bucket, objectKey)
	s.logger.Info("Image uploaded", zap.String("key", objectKey), zap.String("url", fileURL))
	return fileURL, nil
}
