package services

import "context"

// BlobStore is the object-storage capability consumed by the services: bucket
// provisioning on registration and public URL resolution for post images.
type BlobStore interface {
	EnsureBucket(ctx context.Context, bucket string) error
	ObjectURL(bucket, object string) string
	PresignUpload(ctx context.Context, bucket, object, contentType string) (string, error)
}

// EventPublisher publishes activity events to the message broker. Services
// treat publishing as best-effort and accept a nil publisher.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}
