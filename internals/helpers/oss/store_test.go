package oss

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"azadi_backend/internals/configs"
)

type flakyStore struct {
	calls int
	err   error
}

func (f *flakyStore) Name() string { return "flaky" }

func (f *flakyStore) Put(context.Context, string, string, io.Reader, int64) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "https://cdn.example/x", nil
}

func (f *flakyStore) Delete(context.Context, string) error {
	f.calls++
	return f.err
}

func TestInlineStorePutReturnsDataURL(t *testing.T) {
	s, err := NewStore(context.Background(), configs.StorageConfig{Driver: "inline"})
	if err != nil {
		t.Fatal(err)
	}
	url, err := s.Put(context.Background(), "k", "image/png", strings.NewReader("abc"), 3)
	if err != nil {
		t.Fatal(err)
	}
	if url != "data:image/png;base64,YWJj" {
		t.Fatalf("url = %q", url)
	}
	if err := s.Delete(context.Background(), url); err != nil {
		t.Fatalf("inline delete: %v", err)
	}
}

func TestNewStoreUnknownDriver(t *testing.T) {
	if _, err := NewStore(context.Background(), configs.StorageConfig{Driver: "ftp"}); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestObjectKey(t *testing.T) {
	now := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	key := ObjectKey("/uploads/", "image/webp", now)
	if !strings.HasPrefix(key, "uploads/2025/03/") || !strings.HasSuffix(key, ".webp") {
		t.Fatalf("key = %q", key)
	}
	if k := ObjectKey("", "application/x-unknown", now); !strings.HasSuffix(k, ".bin") || strings.HasPrefix(k, "/") {
		t.Fatalf("key = %q", k)
	}
}

func TestKeyFromURL(t *testing.T) {
	base := publicBase("https://cdn.example.org", "unused")
	key, err := keyFromURL("https://cdn.example.org/uploads/a.webp", base)
	if err != nil || key != "uploads/a.webp" {
		t.Fatalf("key = %q, err = %v", key, err)
	}
	if _, err := keyFromURL("https://elsewhere/a.webp", base); !errors.Is(err, ErrForeignURL) {
		t.Fatalf("got %v, want ErrForeignURL", err)
	}
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	inner := &flakyStore{err: errors.New("boom")}
	s := WithBreaker(inner)

	for i := 0; i < 5; i++ {
		if _, err := s.Put(context.Background(), "k", "image/png", strings.NewReader("x"), 1); err == nil {
			t.Fatal("expected failure")
		}
	}
	_, err := s.Put(context.Background(), "k", "image/png", strings.NewReader("x"), 1)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("got %v, want ErrUnavailable", err)
	}
	if inner.calls != 5 {
		t.Errorf("inner calls = %d, want 5", inner.calls)
	}
}
