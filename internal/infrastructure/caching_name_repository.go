package infrastructure

import (
	"context"
	"log/slog"
	"time"

	"github.com/na2na-p/compoundname/internal/domain"
)

// CacheKeyGenerator は保存キーからキャッシュキーを生成する
type CacheKeyGenerator func(key string) string

// CachingNameRepository は永続ストアの前段に読み取りキャッシュを置く。
// キャッシュの失敗は永続ストアの結果を変えない。
type CachingNameRepository struct {
	repo         domain.NameRepository
	cacheClient  domain.CacheClient
	keyGenerator CacheKeyGenerator
	ttl          time.Duration
}

var _ domain.NameRepository = (*CachingNameRepository)(nil)

func NewCachingNameRepository(
	repo domain.NameRepository,
	cacheClient domain.CacheClient,
	keyGenerator CacheKeyGenerator,
	ttl time.Duration,
) *CachingNameRepository {
	return &CachingNameRepository{
		repo:         repo,
		cacheClient:  cacheClient,
		keyGenerator: keyGenerator,
		ttl:          ttl,
	}
}

func (r *CachingNameRepository) FindByKey(ctx context.Context, key domain.NameKey) (*domain.NameRecord, error) {
	cacheKey := r.keyGenerator(key.String())

	var cached cachedName
	if err := r.cacheClient.GetJSON(ctx, cacheKey, &cached); err == nil {
		record, err := domain.ReconstructNameRecord(key, cached.DataString, cached.Delimiter, cached.Representation, cached.CreatedAt, cached.UpdatedAt)
		if err == nil {
			return record, nil
		}
		slog.WarnContext(ctx, "キャッシュされた名前を復元できません", "key", key.String(), "error", err)
	}

	record, err := r.repo.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	r.cacheRecord(ctx, record)

	return record, nil
}

func (r *CachingNameRepository) Save(ctx context.Context, record *domain.NameRecord) error {
	if err := r.repo.Save(ctx, record); err != nil {
		return err
	}

	r.cacheRecord(ctx, record)

	return nil
}

// Delete は永続ストアの結果にかかわらずキャッシュを無効化する
func (r *CachingNameRepository) Delete(ctx context.Context, key domain.NameKey) error {
	err := r.repo.Delete(ctx, key)
	if cacheErr := r.cacheClient.Delete(ctx, r.keyGenerator(key.String())); cacheErr != nil {
		slog.WarnContext(ctx, "キャッシュの削除に失敗しました", "key", key.String(), "error", cacheErr)
	}
	return err
}

func (r *CachingNameRepository) cacheRecord(ctx context.Context, record *domain.NameRecord) {
	data, err := record.DataString()
	if err != nil {
		return
	}
	cached := cachedName{
		DataString:     data,
		Delimiter:      record.Delimiter(),
		Representation: record.Representation(),
		CreatedAt:      record.CreatedAt(),
		UpdatedAt:      record.UpdatedAt(),
	}
	if err := r.cacheClient.SetJSON(ctx, r.keyGenerator(record.Key().String()), cached, r.ttl); err != nil {
		slog.WarnContext(ctx, "名前のキャッシュに失敗しました", "key", record.Key().String(), "error", err)
	}
}

type cachedName struct {
	DataString     string    `json:"data_string"`
	Delimiter      string    `json:"delimiter"`
	Representation string    `json:"representation"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
