package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/na2na-p/compoundname/internal/domain"
)

// ErrCacheMiss はキャッシュにキーが存在しない場合のセンチネルエラーです
var ErrCacheMiss = redis.Nil

var _ domain.CacheClient = (*RedisClient)(nil)

// Delete は指定されたキーを削除します。キーが存在しなくてもエラーにはしません。
func (c *RedisClient) Delete(ctx context.Context, key string) error {
	if _, err := c.delete(ctx, key); err != nil {
		return err
	}
	return nil
}

// delete は削除したキーの数を返します
func (c *RedisClient) delete(ctx context.Context, key string) (int64, error) {
	n, err := c.client.Del(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("キーの削除に失敗しました: %w", err)
	}
	return n, nil
}

// SetJSON は指定されたキーにJSON形式で値を設定します。ttlが0の場合は期限を設けません。
func (c *RedisClient) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	jsonBytes, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("JSONシリアライズに失敗しました: %w", err)
	}

	if err := c.client.Set(ctx, key, string(jsonBytes), ttl).Err(); err != nil {
		return fmt.Errorf("キーの設定に失敗しました: %w", err)
	}
	return nil
}

// GetJSON は指定されたキーの値をJSON形式で取得します
func (c *RedisClient) GetJSON(ctx context.Context, key string, dest any) error {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("キーの取得に失敗しました: %w", err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return fmt.Errorf("JSONデシリアライズに失敗しました: %w", err)
	}
	return nil
}
