package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrHealthCheckFailed はReadinessチェックのいずれかが失敗したことを示すエラー
var ErrHealthCheckFailed = errors.New("health check failed")

// HealthCheckResult は個々のチェッカーの結果
type HealthCheckResult struct {
	Name    string
	Healthy bool
	Error   error
}

// ReadinessUseCase は登録されたチェッカー（ノードツリーの整合性など）を順に実行する
type ReadinessUseCase struct {
	checkers []HealthChecker
}

func NewReadinessUseCase(checkers ...HealthChecker) *ReadinessUseCase {
	return &ReadinessUseCase{
		checkers: checkers,
	}
}

func (uc *ReadinessUseCase) Execute(ctx context.Context) error {
	_, err := uc.ExecuteDetails(ctx)
	return err
}

// ExecuteDetails はすべてのチェッカーの結果を返す。コンテキストが終了している場合、残りのチェッカーは失敗として扱う。
func (uc *ReadinessUseCase) ExecuteDetails(ctx context.Context) ([]HealthCheckResult, error) {
	results := make([]HealthCheckResult, 0, len(uc.checkers))
	var failed []string

	for _, checker := range uc.checkers {
		err := ctx.Err()
		if err == nil {
			err = checker.Check(ctx)
		}
		results = append(results, HealthCheckResult{
			Name:    checker.Name(),
			Healthy: err == nil,
			Error:   err,
		})

		if err != nil {
			slog.WarnContext(ctx, "Readinessチェックに失敗しました", "checker", checker.Name(), "error", err)
			failed = append(failed, fmt.Sprintf("%s: %v", checker.Name(), err))
		}
	}

	if len(failed) > 0 {
		return results, fmt.Errorf("%w: %s", ErrHealthCheckFailed, strings.Join(failed, "; "))
	}
	return results, nil
}
