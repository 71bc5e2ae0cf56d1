package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	domainErrors "github.com/anandaputra/tokoku/internal/domain/errors"
)

// Store keeps session carts and the short-lived payment status cache.
// All payment-status operations are best-effort: a cache outage must never
// fail a request.
type Store interface {
	GetCart(ctx context.Context, userID string) ([]byte, error)
	PutCart(ctx context.Context, userID string, cart []byte) error
	ClearCart(ctx context.Context, userID string) error

	GetPaymentStatus(ctx context.Context, orderID string) ([]byte, bool)
	PutPaymentStatus(ctx context.Context, orderID string, data []byte)
	InvalidatePaymentStatus(ctx context.Context, orderID string)

	Close() error
}

// redisCmdable is the subset of redis.Client the store uses.
type redisCmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore implements Store on top of a redis client.
type RedisStore struct {
	client redisCmdable
	closer func() error
	logger *slog.Logger
}

// NewRedisStore dials the given address.
func NewRedisStore(addr string, logger *slog.Logger) *RedisStore {
	client := redis.NewClient(&redis.Options{Addr: addr})
	return &RedisStore{client: client, closer: client.Close, logger: logger}
}

func (s *RedisStore) GetCart(ctx context.Context, userID string) ([]byte, error) {
	raw, err := s.client.Get(ctx, fmt.Sprintf(keyCart, userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return raw, nil
}

func (s *RedisStore) PutCart(ctx context.Context, userID string, cart []byte) error {
	return s.client.Set(ctx, fmt.Sprintf(keyCart, userID), cart, ttlCart).Err()
}

func (s *RedisStore) ClearCart(ctx context.Context, userID string) error {
	return s.client.Del(ctx, fmt.Sprintf(keyCart, userID)).Err()
}

func (s *RedisStore) GetPaymentStatus(ctx context.Context, orderID string) ([]byte, bool) {
	raw, err := s.client.Get(ctx, fmt.Sprintf(keyPaymentStatus, orderID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("payment status cache read failed", slog.String("error", err.Error()))
		}
		return nil, false
	}
	return raw, true
}

func (s *RedisStore) PutPaymentStatus(ctx context.Context, orderID string, data []byte) {
	if err := s.client.Set(ctx, fmt.Sprintf(keyPaymentStatus, orderID), data, ttlPaymentStatus).Err(); err != nil {
		s.logger.Warn("payment status cache write failed", slog.String("error", err.Error()))
	}
}

func (s *RedisStore) InvalidatePaymentStatus(ctx context.Context, orderID string) {
	if err := s.client.Del(ctx, fmt.Sprintf(keyPaymentStatus, orderID)).Err(); err != nil {
		s.logger.Warn("payment status cache invalidation failed", slog.String("error", err.Error()))
	}
}

func (s *RedisStore) Close() error {
	if s.closer != nil {
		return s.closer()
	}
	return nil
}

// NopStore is used when no redis address is configured: carts are absent and
// the status cache always misses.
type NopStore struct{}

func (NopStore) GetCart(context.Context, string) ([]byte, error) {
	return nil, domainErrors.ErrNotFound
}
func (NopStore) PutCart(context.Context, string, []byte) error { return nil }
func (NopStore) ClearCart(context.Context, string) error       { return nil }

func (NopStore) GetPaymentStatus(context.Context, string) ([]byte, bool) { return nil, false }
func (NopStore) PutPaymentStatus(context.Context, string, []byte)        {}
func (NopStore) InvalidatePaymentStatus(context.Context, string)         {}

func (NopStore) Close() error { return nil }
