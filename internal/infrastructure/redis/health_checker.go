package redis

import (
	"context"
	"fmt"

	"github.com/na2na-p/compoundname/internal/domain"
)

// RedisHealthChecker はRedisへの疎通を確認する。Redisは保存先にもキャッシュにもなるため役割を名前に含める。
type RedisHealthChecker struct {
	client *RedisClient
	role   domain.StoreRole
}

func NewRedisHealthChecker(client *RedisClient, role domain.StoreRole) *RedisHealthChecker {
	return &RedisHealthChecker{
		client: client,
		role:   role,
	}
}

// Name は "redis:primary" のように役割付きの名前を返す
func (c *RedisHealthChecker) Name() string {
	return "redis:" + string(c.role)
}

func (c *RedisHealthChecker) Check(ctx context.Context) error {
	if err := c.client.Ping(ctx); err != nil {
		return fmt.Errorf("redis %s ping failed: %w", c.role, err)
	}
	return nil
}
