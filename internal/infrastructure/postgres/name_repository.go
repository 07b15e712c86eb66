package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/na2na-p/compoundname/internal/domain"
)

type NameRepositoryImpl struct {
	dao *SavedNameDAO
}

func NewNameRepository(pool PoolInterface) domain.NameRepository {
	return &NameRepositoryImpl{
		dao: NewSavedNameDAO(pool),
	}
}

func (r *NameRepositoryImpl) FindByKey(ctx context.Context, key domain.NameKey) (*domain.NameRecord, error) {
	row, err := r.dao.FindByKey(ctx, key.String())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return domain.ReconstructNameRecord(key, row.DataString, row.Delimiter, row.Representation, row.CreatedAt, row.UpdatedAt)
}

func (r *NameRepositoryImpl) Save(ctx context.Context, record *domain.NameRecord) error {
	data, err := record.DataString()
	if err != nil {
		return fmt.Errorf("failed to serialize name: %w", err)
	}
	return r.dao.Upsert(ctx, &SavedNameRow{
		Key:            record.Key().String(),
		DataString:     data,
		Delimiter:      record.Delimiter(),
		Representation: record.Representation(),
		CreatedAt:      record.CreatedAt(),
		UpdatedAt:      record.UpdatedAt(),
	})
}

func (r *NameRepositoryImpl) Delete(ctx context.Context, key domain.NameKey) error {
	err := r.dao.Delete(ctx, key.String())
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}
