package repository

import (
	"context"
	"time"
)

// CacheRepository - кеш готовых ответов поверх Redis.
// Сбои кеша логируются и не считаются ошибками запроса.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
