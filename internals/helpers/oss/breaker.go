package oss

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	gobreaker "github.com/sony/gobreaker/v2"
)

// breakerStore fails fast while the remote store keeps erroring.
type breakerStore struct {
	inner Store
	cb    *gobreaker.CircuitBreaker[string]
}

// WithBreaker wraps s; five consecutive failures open the circuit for 30s.
func WithBreaker(s Store) Store {
	return &breakerStore{
		inner: s,
		cb: gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
			Name:        "objectstore-" + s.Name(),
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, ErrForeignURL) || errors.Is(err, context.Canceled)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("⚡ object store breaker")
			},
		}),
	}
}

func (b *breakerStore) Name() string { return b.inner.Name() }

func (b *breakerStore) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	url, err := b.cb.Execute(func() (string, error) {
		return b.inner.Put(ctx, key, contentType, body, size)
	})
	return url, wrapBreakerErr(err)
}

func (b *breakerStore) Delete(ctx context.Context, url string) error {
	_, err := b.cb.Execute(func() (string, error) {
		return "", b.inner.Delete(ctx, url)
	})
	return wrapBreakerErr(err)
}

func wrapBreakerErr(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
