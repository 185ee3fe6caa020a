// Package oss stores uploaded files and hands back stable URLs.
package oss

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"azadi_backend/internals/configs"
)

var (
	ErrUnavailable = errors.New("object store unavailable")
	ErrForeignURL  = errors.New("url does not belong to this store")
)

// Store is the upload port: Put returns the URL content rows should reference.
type Store interface {
	Name() string
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, url string) error
}

// NewStore builds the configured adapter; remote adapters get a circuit breaker.
func NewStore(ctx context.Context, cfg configs.StorageConfig) (Store, error) {
	var (
		s   Store
		err error
	)
	switch cfg.Driver {
	case "", "inline":
		return NewInlineStore(), nil
	case "s3":
		s, err = NewS3Store(ctx, cfg)
	case "gcs":
		s, err = NewGCSStore(ctx, cfg)
	case "oss":
		s, err = NewAliyunStore(cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	return WithBreaker(s), nil
}

var extByType = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
	"image/tiff": ".tiff",
}

// ObjectKey builds "<prefix>/<yyyy>/<mm>/<uuid><ext>".
func ObjectKey(prefix, contentType string, now time.Time) string {
	ext := extByType[strings.ToLower(contentType)]
	if ext == "" {
		ext = ".bin"
	}
	parts := []string{}
	if p := strings.Trim(prefix, "/"); p != "" {
		parts = append(parts, p)
	}
	parts = append(parts, now.UTC().Format("2006"), now.UTC().Format("01"), uuid.NewString()+ext)
	return strings.Join(parts, "/")
}

// keyFromURL strips base from url; base must end with "/".
func keyFromURL(url, base string) (string, error) {
	if !strings.HasPrefix(url, base) {
		return "", ErrForeignURL
	}
	key := strings.TrimPrefix(url, base)
	if key == "" {
		return "", ErrForeignURL
	}
	return key, nil
}

func publicBase(configured, fallback string) string {
	if b := strings.TrimSpace(configured); b != "" {
		return strings.TrimRight(b, "/") + "/"
	}
	return fallback
}

const cacheForever = "public, max-age=31536000, immutable"
