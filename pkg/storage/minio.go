// Package storage provides access to the MinIO object store used to
// archive uploaded media.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"kounhany-ai-go/internal/config"
	"kounhany-ai-go/pkg/log"
)

// MinioClient is the global MinIO client instance. It stays nil when no
// endpoint is configured and media archiving is skipped.
var MinioClient *minio.Client

var bucketName string

// InitMinIO initializes the MinIO client and ensures the bucket exists.
func InitMinIO(cfg config.MinIOConfig) {
	if cfg.Endpoint == "" {
		log.Info("MinIO not configured, media archiving disabled")
		return
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		log.Fatal("failed to initialize MinIO client", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		log.Fatal("failed to check MinIO bucket", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			log.Fatal("failed to create MinIO bucket", err)
		}
		log.Infof("created MinIO bucket '%s'", cfg.BucketName)
	}

	MinioClient = client
	bucketName = cfg.BucketName
	log.Info("MinIO client initialized")
}

// SaveMedia archives a media payload under a generated object name and
// returns that name. Callers treat archive failures as non-fatal.
func SaveMedia(ctx context.Context, userID, format string, data []byte) (string, error) {
	if MinioClient == nil {
		return "", nil
	}

	objectName := fmt.Sprintf("%s/%s/%s.%s",
		userID, time.Now().Format("2006-01-02"), uuid.NewString(), format)

	_, err := MinioClient.PutObject(ctx, bucketName, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return "", fmt.Errorf("failed to archive media: %w", err)
	}
	return objectName, nil
}

// GetPresignedURL generates a presigned URL for an archived object.
func GetPresignedURL(objectName string, expiry time.Duration) (string, error) {
	if MinioClient == nil {
		return "", fmt.Errorf("object store not configured")
	}
	presignedURL, err := MinioClient.PresignedGetObject(context.Background(), bucketName, objectName, expiry, nil)
	if err != nil {
		return "", err
	}
	return presignedURL.String(), nil
}
