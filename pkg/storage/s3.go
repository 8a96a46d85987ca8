package storage

import (
	"bytes"
	"context"
	"fmt"

	awscfg "go-hrms-backend/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Provider identifies the S3-compatible storage backend
type Provider string

const (
	ProviderAWS    Provider = "aws"
	ProviderWasabi Provider = "wasabi"
)

// wasabiEndpoints maps regions to Wasabi endpoints
var wasabiEndpoints = map[string]string{
	"us-east-1":      "s3.us-east-1.wasabisys.com",
	"us-east-2":      "s3.us-east-2.wasabisys.com",
	"us-west-1":      "s3.us-west-1.wasabisys.com",
	"eu-central-1":   "s3.eu-central-1.wasabisys.com",
	"eu-west-1":      "s3.eu-west-1.wasabisys.com",
	"ap-northeast-1": "s3.ap-northeast-1.wasabisys.com",
	"ap-southeast-1": "s3.ap-southeast-1.wasabisys.com",
}

// Service uploads documents (resumes, letters, profile images) to an
// S3-compatible bucket and hands back durable URLs.
type Service struct {
	client   *s3.Client
	bucket   string
	region   string
	provider Provider
	endpoint string
}

// NewService creates a storage service from app configuration.
// Supports both AWS S3 and Wasabi.
func NewService(ctx context.Context, cfg *awscfg.Config) (*Service, error) {
	provider := ProviderAWS
	if cfg.S3Provider == "wasabi" {
		provider = ProviderWasabi
	}

	endpoint := cfg.WasabiEndpoint
	if provider == ProviderWasabi && endpoint == "" {
		if ep, ok := wasabiEndpoints[cfg.S3Region]; ok {
			endpoint = ep
		} else {
			endpoint = "s3.ap-southeast-1.wasabisys.com"
		}
	}

	awsConfig, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKeyID,
			cfg.S3SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var client *s3.Client
	switch provider {
	case ProviderWasabi:
		// Wasabi requires a custom endpoint and path-style addressing
		client = s3.NewFromConfig(awsConfig, func(o *s3.Options) {
			o.BaseEndpoint = aws.String("https://" + endpoint)
			o.UsePathStyle = true
		})
	default:
		client = s3.NewFromConfig(awsConfig)
	}

	return &Service{
		client:   client,
		bucket:   cfg.S3Bucket,
		region:   cfg.S3Region,
		provider: provider,
		endpoint: endpoint,
	}, nil
}

// Upload stores data under the given folder and returns the object URL.
// Object keys are random UUIDs so repeated uploads never collide.
func (s *Service) Upload(ctx context.Context, folder, filename, contentType string, data []byte) (string, error) {
	key := fmt.Sprintf("%s/%s-%s", folder, uuid.NewString(), filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return s.objectURL(key), nil
}

func (s *Service) objectURL(key string) string {
	if s.provider == ProviderWasabi {
		return fmt.Sprintf("https://%s/%s/%s", s.endpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// Ping verifies the bucket is reachable with the configured credentials.
func (s *Service) Ping(ctx context.Context) error {
	_, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		MaxKeys: aws.Int32(1),
	})
	if err != nil {
		return fmt.Errorf("failed to access bucket %s: %w", s.bucket, err)
	}
	return nil
}
