package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/na2na-p/compoundname/internal/domain"
)

// nameDocument はRedisに保存する名前の表現。名前自体はデータ文字列として保持する。
type nameDocument struct {
	DataString     string    `json:"data_string"`
	Delimiter      string    `json:"delimiter"`
	Representation string    `json:"representation"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NameRepository はRedisを主ストアとして名前を保存する。キーに期限は設けない。
type NameRepository struct {
	client *RedisClient
}

var _ domain.NameRepository = (*NameRepository)(nil)

func NewNameRepository(client *RedisClient) *NameRepository {
	return &NameRepository{
		client: client,
	}
}

func (r *NameRepository) FindByKey(ctx context.Context, key domain.NameKey) (*domain.NameRecord, error) {
	var doc nameDocument
	if err := r.client.GetJSON(ctx, SavedNameKey(key.String()), &doc); err != nil {
		if errors.Is(err, ErrCacheMiss) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return domain.ReconstructNameRecord(key, doc.DataString, doc.Delimiter, doc.Representation, doc.CreatedAt, doc.UpdatedAt)
}

func (r *NameRepository) Save(ctx context.Context, record *domain.NameRecord) error {
	data, err := record.DataString()
	if err != nil {
		return fmt.Errorf("failed to serialize name: %w", err)
	}
	doc := nameDocument{
		DataString:     data,
		Delimiter:      record.Delimiter(),
		Representation: record.Representation(),
		CreatedAt:      record.CreatedAt(),
		UpdatedAt:      record.UpdatedAt(),
	}
	return r.client.SetJSON(ctx, SavedNameKey(record.Key().String()), doc, 0)
}

func (r *NameRepository) Delete(ctx context.Context, key domain.NameKey) error {
	n, err := r.client.delete(ctx, SavedNameKey(key.String()))
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
