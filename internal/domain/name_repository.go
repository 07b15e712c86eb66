//go:generate mockgen -source=$GOFILE -destination=../usecase/mock_name_repository_test.go -package=usecase
//go:generate mockgen -source=$GOFILE -destination=../infrastructure/mock_name_repository_test.go -package=infrastructure
package domain

import "context"

// NameRepository は保存した名前の永続化を担う。見つからない場合はErrNotFoundを返す。
type NameRepository interface {
	FindByKey(ctx context.Context, key NameKey) (*NameRecord, error)
	// Save は同じキーのレコードがあれば上書きする
	Save(ctx context.Context, record *NameRecord) error
	Delete(ctx context.Context, key NameKey) error
}
