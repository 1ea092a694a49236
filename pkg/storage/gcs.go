package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gcs "google.golang.org/api/storage/v1"
)

const contentTypeJPEG = "image/jpeg"

// GCS implements Uploader on the Cloud Storage JSON API.
type GCS struct {
	svc    *gcs.Service
	bucket string
	logger *slog.Logger
}

// NewGCS creates a Cloud Storage uploader for the given bucket.
// If credentialsFile is empty, application default credentials are used.
func NewGCS(ctx context.Context, bucket, credentialsFile string, logger *slog.Logger) (*GCS, error) {
	if bucket == "" {
		return nil, fmt.Errorf("storage: bucket name required")
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	svc, err := gcs.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage: create service: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &GCS{
		svc:    svc,
		bucket: bucket,
		logger: logger.With("component", "storage.gcs"),
	}, nil
}

// Upload writes data under key and returns the gs:// URI for analysis.
func (g *GCS) Upload(ctx context.Context, key string, data []byte) (string, error) {
	start := time.Now()

	obj := &gcs.Object{
		Name:        key,
		ContentType: contentTypeJPEG,
	}

	_, err := g.svc.Objects.Insert(g.bucket, obj).
		Media(bytes.NewReader(data), googleapi.ContentType(contentTypeJPEG)).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("storage: upload %s: %w", key, err)
	}

	g.logger.Debug("uploaded capture",
		"key", key,
		"bytes", len(data),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	return fmt.Sprintf("gs://%s/%s", g.bucket, key), nil
}
