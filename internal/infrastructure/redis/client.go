package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig はRedisクライアントの設定を保持します
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NewRedisConnection は新しいRedis接続を作成し、Pingで疎通を確認します
func NewRedisConnection(cfg RedisConfig) (*redis.Client, error) {
	if cfg.PoolSize == 0 {
		cfg.PoolSize = 10
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	// 起動時の接続確認のためリクエストコンテキストは存在しない
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis接続に失敗しました: %w", err)
	}

	return client, nil
}

// RedisClient はRedisクライアントのラッパーです
type RedisClient struct {
	client *redis.Client
}

// NewRedisClient はネイティブのRedisクライアントからRedisClientを作成します（DI用）
func NewRedisClient(client *redis.Client) *RedisClient {
	return &RedisClient{
		client: client,
	}
}

// Close はRedisクライアントをクローズします
func (c *RedisClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Ping はRedisサーバーとの接続確認を行います
func (c *RedisClient) Ping(ctx context.Context) error {
	if c.client == nil {
		return errors.New("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}
