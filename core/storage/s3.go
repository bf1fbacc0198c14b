package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"sponlink-api/core/config"
	"sponlink-api/core/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Allowed content types for cover image uploads.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type Storage interface {
	UploadImage(ctx context.Context, key string, contentType string, data []byte) (string, error)
	DeleteObject(ctx context.Context, key string) error
}

type s3Storage struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewS3Storage(cfg config.S3Config) Storage {
	options := s3.Options{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	}
	if cfg.Endpoint != "" {
		options.BaseEndpoint = aws.String(cfg.Endpoint)
		options.UsePathStyle = true
	}

	return &s3Storage{
		client:        s3.New(options),
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}
}

// ExtensionForContentType returns the file extension for an allowed image
// content type, or false for anything else.
func ExtensionForContentType(contentType string) (string, bool) {
	ext, ok := allowedImageTypes[strings.ToLower(contentType)]
	return ext, ok
}

func (s *s3Storage) UploadImage(ctx context.Context, key string, contentType string, data []byte) (string, error) {
	if _, ok := ExtensionForContentType(contentType); !ok {
		return "", fmt.Errorf("unsupported content type %q", contentType)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.Error("S3Storage:UploadImage", err)
		return "", err
	}

	return fmt.Sprintf("%s/%s", s.publicBaseURL, key), nil
}

func (s *s3Storage) DeleteObject(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.Error("S3Storage:DeleteObject", err)
		return err
	}
	return nil
}
