package oss

import (
	"context"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"

	"azadi_backend/internals/configs"
)

// GCSStore writes to a Google Cloud Storage bucket using default credentials.
type GCSStore struct {
	client *gcs.Client
	bucket string
	base   string
}

func NewGCSStore(ctx context.Context, cfg configs.StorageConfig) (*GCSStore, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("gcs client: %w", err)
	}
	fallback := fmt.Sprintf("https://storage.googleapis.com/%s/", cfg.Bucket)
	return &GCSStore{
		client: client,
		bucket: cfg.Bucket,
		base:   publicBase(cfg.PublicBaseURL, fallback),
	}, nil
}

func (s *GCSStore) Name() string { return "gcs" }

func (s *GCSStore) Put(ctx context.Context, key, contentType string, body io.Reader, _ int64) (string, error) {
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = cacheForever

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("gcs write %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs close %s: %w", key, err)
	}
	return s.base + key, nil
}

func (s *GCSStore) Delete(ctx context.Context, url string) error {
	key, err := keyFromURL(url, s.base)
	if err != nil {
		return err
	}
	if err := s.client.Bucket(s.bucket).Object(key).Delete(ctx); err != nil && err != gcs.ErrObjectNotExist {
		return fmt.Errorf("gcs delete %s: %w", key, err)
	}
	return nil
}
