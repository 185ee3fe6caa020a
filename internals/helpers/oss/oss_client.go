package oss

import (
	"context"
	"fmt"
	"io"
	"strings"

	alioss "github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/rs/zerolog/log"

	"azadi_backend/internals/configs"
)

// AliyunStore writes to an Alibaba Cloud OSS bucket.
type AliyunStore struct {
	bucket *alioss.Bucket
	base   string
}

func NewAliyunStore(cfg configs.StorageConfig) (*AliyunStore, error) {
	client, err := alioss.New(cfg.Endpoint, cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	// light check, some keys cannot read the location
	if loc, err := client.GetBucketLocation(cfg.Bucket); err != nil {
		if se, ok := err.(alioss.ServiceError); ok && se.StatusCode == 403 {
			log.Warn().Str("bucket", cfg.Bucket).Msg("[OSS] skip location check (AccessDenied)")
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		log.Info().Str("bucket", cfg.Bucket).Str("location", loc).Msg("[OSS] bucket ready")
	}

	end := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://")
	fallback := fmt.Sprintf("https://%s.%s/", cfg.Bucket, end)
	return &AliyunStore{bucket: bkt, base: publicBase(cfg.PublicBaseURL, fallback)}, nil
}

func (s *AliyunStore) Name() string { return "oss" }

func (s *AliyunStore) Put(ctx context.Context, key, contentType string, body io.Reader, _ int64) (string, error) {
	err := s.bucket.PutObject(key, body,
		alioss.WithContext(ctx),
		alioss.ContentType(contentType),
		alioss.ContentDisposition("inline"),
		alioss.CacheControl(cacheForever),
	)
	if err != nil {
		return "", fmt.Errorf("oss put %s: %w", key, err)
	}
	return s.base + key, nil
}

func (s *AliyunStore) Delete(ctx context.Context, url string) error {
	key, err := keyFromURL(url, s.base)
	if err != nil {
		return err
	}
	if err := s.bucket.DeleteObject(key, alioss.WithContext(ctx)); err != nil {
		return fmt.Errorf("oss delete %s: %w", key, err)
	}
	return nil
}
