//go:generate mockgen -source=$GOFILE -destination=mock_health_checker_test.go -package=usecase
package usecase

import (
	"context"
)

type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}
