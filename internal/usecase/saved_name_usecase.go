package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/na2na-p/compoundname/internal/domain"
)

// SavedName はキーに紐づけて保存された名前の記述
type SavedName struct {
	Key         string
	Description NameDescription
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SavedNameUseCase は名前をデータ文字列として保存し、取り出す
type SavedNameUseCase struct {
	names *NameUseCase
	repo  domain.NameRepository
}

func NewSavedNameUseCase(names *NameUseCase, repo domain.NameRepository) *SavedNameUseCase {
	return &SavedNameUseCase{
		names: names,
		repo:  repo,
	}
}

// Save はinから組み立てた名前をkeyに保存する。既存のレコードがあれば作成日時を保ったまま上書きする。
func (uc *SavedNameUseCase) Save(ctx context.Context, key string, in NameInput) (*SavedName, error) {
	k, err := domain.NewNameKey(key)
	if err != nil {
		return nil, err
	}
	name, _, err := uc.names.build(in)
	if err != nil {
		return nil, err
	}

	record, err := uc.repo.FindByKey(ctx, k)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if record, err = domain.NewNameRecord(ctx, k, name); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("failed to find saved name %q: %w", key, err)
	default:
		if err := record.Replace(ctx, name); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save name %q: %w", key, err)
	}
	slog.InfoContext(ctx, "名前を保存しました", "key", key, "name", name)
	return savedName(record)
}

func (uc *SavedNameUseCase) Get(ctx context.Context, key string) (*SavedName, error) {
	k, err := domain.NewNameKey(key)
	if err != nil {
		return nil, err
	}
	record, err := uc.repo.FindByKey(ctx, k)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNameNotFound, key)
		}
		return nil, fmt.Errorf("failed to find saved name %q: %w", key, err)
	}
	return savedName(record)
}

func (uc *SavedNameUseCase) Delete(ctx context.Context, key string) error {
	k, err := domain.NewNameKey(key)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, k); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrNameNotFound, key)
		}
		return fmt.Errorf("failed to delete saved name %q: %w", key, err)
	}
	slog.InfoContext(ctx, "保存した名前を削除しました", "key", key)
	return nil
}

func savedName(record *domain.NameRecord) (*SavedName, error) {
	name, err := record.Name()
	if err != nil {
		return nil, err
	}
	desc, err := describe(name, record.Representation())
	if err != nil {
		return nil, err
	}
	return &SavedName{
		Key:         record.Key().String(),
		Description: *desc,
		CreatedAt:   record.CreatedAt(),
		UpdatedAt:   record.UpdatedAt(),
	}, nil
}
