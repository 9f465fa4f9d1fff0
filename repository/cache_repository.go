package repository

import (
	"context"
	"time"
)

// CacheRepository stores rendered evaluation results by key. A miss and a
// backend failure both report ok=false; Set errors are for logging only.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Ping(ctx context.Context) error
	Name() string
}
