package oss

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
)

// InlineStore keeps the legacy behaviour: the "URL" is the data URL itself.
type InlineStore struct{}

func NewInlineStore() *InlineStore { return &InlineStore{} }

func (*InlineStore) Name() string { return "inline" }

func (*InlineStore) Put(_ context.Context, _ string, contentType string, body io.Reader, _ int64) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// Delete is a no-op; inline images live in the row that references them.
func (*InlineStore) Delete(context.Context, string) error { return nil }
