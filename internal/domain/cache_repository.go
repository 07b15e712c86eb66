//go:generate mockgen -source=$GOFILE -destination=../infrastructure/mock_cache_repository_test.go -package=infrastructure
package domain

import (
	"context"
	"time"
)

// CacheClient は保存した名前の読み取りキャッシュ。キーが無い場合は何らかのエラーを返す。
type CacheClient interface {
	GetJSON(ctx context.Context, key string, dest any) error
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
