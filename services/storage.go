package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hyemin916/drip-drop-dev/config"
)

const uploadsPrefix = "images/uploads"

// BlobStore is the sink an uploaded image is persisted to. Put stores data
// under key and returns the publicly resolvable URL.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// NewBlobStore picks the sink from environment configuration: S3 when
// S3_BUCKET is present, local disk otherwise.
func NewBlobStore(ctx context.Context, c map[string]string) (BlobStore, error) {
	baseURL := config.GetString(c, config.KeyBaseURL, "http://localhost:8080")
	if bucket := config.GetString(c, config.KeyS3Bucket, ""); bucket != "" {
		return NewS3Store(ctx,
			bucket,
			config.GetString(c, config.KeyS3Region, "us-east-1"),
			config.GetString(c, config.KeyS3PublicURL, ""),
		)
	}
	return NewDiskStore(config.GetString(c, config.KeyUploadDir, "public/images/uploads"), baseURL)
}

// DiskStore writes uploads to a local directory served as static assets.
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &DiskStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (d *DiskStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := os.WriteFile(filepath.Join(d.dir, key), data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return fmt.Sprintf("%s/%s/%s", d.baseURL, uploadsPrefix, key), nil
}

// S3Store writes uploads to an S3 bucket.
type S3Store struct {
	client    *s3.Client
	bucket    string
	region    string
	publicURL string
}

func NewS3Store(ctx context.Context, bucket, region, publicURL string) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &S3Store{
		client:    s3.NewFromConfig(cfg),
		bucket:    bucket,
		region:    region,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

func (s *S3Store) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	objectKey := uploadsPrefix + "/" + key
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	if s.publicURL != "" {
		return s.publicURL + "/" + objectKey, nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, objectKey), nil
}
