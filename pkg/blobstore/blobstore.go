package blobstore

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Config holds the object-store connection details. Endpoint points at any
// S3-compatible store (MinIO included). PublicURL, when set, is the base used
// for public object URLs instead of the endpoint itself.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	PublicURL string
}

// Client wraps an S3-compatible object store: per-user bucket provisioning,
// public URL resolution and presigned uploads.
type Client struct {
	s3        *s3.Client
	presigner *s3.PresignClient
	cfg       Config
}

// NewClient creates a new object-store client.
func NewClient(cfg Config) *Client {
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(cfg.Endpoint),
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		),
		Region: cfg.Region,
		// MinIO and most self-hosted stores expect path-style addressing.
		UsePathStyle: true,
	})
	return &Client{
		s3:        client,
		presigner: s3.NewPresignClient(client),
		cfg:       cfg,
	}
}

// EnsureBucket creates the bucket if it does not already exist.
func (c *Client) EnsureBucket(ctx context.Context, bucket string) error {
	_, err := c.s3.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})
	if err == nil {
		log.Printf("Bucket already exists: %s", bucket)
		return nil
	}

	_, err = c.s3.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	log.Printf("Bucket created: %s", bucket)
	return nil
}

// ObjectURL returns the stable public URL for an object.
func (c *Client) ObjectURL(bucket, object string) string {
	base := c.cfg.PublicURL
	if base == "" {
		base = c.cfg.Endpoint
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(base, "/"), bucket, object)
}

// PresignUpload returns a presigned PUT URL for the given object, valid for
// fifteen minutes.
func (c *Client) PresignUpload(ctx context.Context, bucket, object, contentType string) (string, error) {
	req, err := c.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(object),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = 15 * time.Minute
	})
	if err != nil {
		return "", fmt.Errorf("failed to presign upload for %s/%s: %w", bucket, object, err)
	}
	return req.URL, nil
}
