package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type PoolInterface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// createSavedNamesTable は保存した名前のテーブル。名前はデータ文字列で保持する。
const createSavedNamesTable = `
	CREATE TABLE IF NOT EXISTS saved_names (
		name_key       TEXT PRIMARY KEY,
		data_string    TEXT NOT NULL,
		delimiter      TEXT NOT NULL,
		representation TEXT NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL,
		updated_at     TIMESTAMPTZ NOT NULL
	)
`

// EnsureSchema は saved_names テーブルが無ければ作成する
func EnsureSchema(ctx context.Context, pool PoolInterface) error {
	_, err := pool.Exec(ctx, createSavedNamesTable)
	return err
}

type SavedNameDAO struct {
	pool PoolInterface
}

type SavedNameRow struct {
	Key            string
	DataString     string
	Delimiter      string
	Representation string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewSavedNameDAO(pool PoolInterface) *SavedNameDAO {
	return &SavedNameDAO{
		pool: pool,
	}
}

func (dao *SavedNameDAO) FindByKey(ctx context.Context, key string) (*SavedNameRow, error) {
	query := `
		SELECT name_key, data_string, delimiter, representation, created_at, updated_at
		FROM saved_names
		WHERE name_key = $1
	`

	var result SavedNameRow
	err := dao.pool.QueryRow(ctx, query, key).Scan(
		&result.Key,
		&result.DataString,
		&result.Delimiter,
		&result.Representation,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, err
	}

	return &result, nil
}

// Upsert は同じキーの行があれば作成日時以外を更新する
func (dao *SavedNameDAO) Upsert(ctx context.Context, row *SavedNameRow) error {
	query := `
		INSERT INTO saved_names (name_key, data_string, delimiter, representation, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name_key) DO UPDATE
		SET data_string = EXCLUDED.data_string,
		    delimiter = EXCLUDED.delimiter,
		    representation = EXCLUDED.representation,
		    updated_at = EXCLUDED.updated_at
	`

	_, err := dao.pool.Exec(ctx, query,
		row.Key,
		row.DataString,
		row.Delimiter,
		row.Representation,
		row.CreatedAt,
		row.UpdatedAt,
	)
	return err
}

func (dao *SavedNameDAO) Delete(ctx context.Context, key string) error {
	query := `
		DELETE FROM saved_names WHERE name_key = $1
	`

	result, err := dao.pool.Exec(ctx, query, key)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
