package postgres

import (
	"context"
	"fmt"

	"github.com/na2na-p/compoundname/internal/domain"
)

// Pinger はpgxpool.Poolのうち疎通確認に使う部分
type Pinger interface {
	Ping(ctx context.Context) error
}

// PostgresHealthChecker はPostgreSQLへの疎通を確認する
type PostgresHealthChecker struct {
	pool Pinger
	role domain.StoreRole
}

func NewPostgresHealthChecker(pool Pinger, role domain.StoreRole) *PostgresHealthChecker {
	return &PostgresHealthChecker{
		pool: pool,
		role: role,
	}
}

func (c *PostgresHealthChecker) Name() string {
	return "postgres:" + string(c.role)
}

func (c *PostgresHealthChecker) Check(ctx context.Context) error {
	if err := c.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres %s ping failed: %w", c.role, err)
	}
	return nil
}
