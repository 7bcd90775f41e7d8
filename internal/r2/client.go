package r2

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"

	appconfig "github.com/HaiFongPan/kvpage/internal/config"
)

// MaxObjectSize caps how much of a remote document is read.
const MaxObjectSize = 8 << 20

// ObjectAPI is the part of the S3 client used to fetch documents.
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Client wraps the S3 client for R2 operations
type Client struct {
	s3Client ObjectAPI
}

// NewClient creates a new R2 client from configuration
func NewClient(ctx context.Context, cfg *appconfig.R2Config) (*Client, error) {
	if err := appconfig.ValidateR2(cfg); err != nil {
		return nil, fmt.Errorf("R2 config validation failed: %w", err)
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.AccessKeySecret,
			"",
		)),
		config.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	endpoint := Endpoint(cfg)
	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = cfg.Endpoint != "" && cfg.Endpoint != "auto"
	})
	logrus.WithField("endpoint", endpoint).Debug("R2 client created")

	return NewClientWithAPI(s3Client), nil
}

// NewClientWithAPI wraps an existing object API.
func NewClientWithAPI(api ObjectAPI) *Client {
	return &Client{s3Client: api}
}

// Endpoint returns the account endpoint, or the configured one when it is
// not "auto".
func Endpoint(cfg *appconfig.R2Config) string {
	if cfg.Endpoint != "" && cfg.Endpoint != "auto" {
		return cfg.Endpoint
	}
	return fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)
}

// Fetch downloads an object into memory.
func (c *Client) Fetch(ctx context.Context, bucket, key string) ([]byte, error) {
	out, err := c.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, MaxObjectSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read s3://%s/%s: %w", bucket, key, err)
	}
	if len(data) > MaxObjectSize {
		return nil, fmt.Errorf("s3://%s/%s is larger than %d bytes", bucket, key, MaxObjectSize)
	}

	logrus.WithFields(logrus.Fields{
		"bucket": bucket,
		"key":    key,
		"bytes":  len(data),
	}).Debug("Fetched object")
	return data, nil
}
