package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/na2na-p/compoundname/internal/domain"
)

type entry struct {
	dataString     string
	delimiter      string
	representation string
	createdAt      time.Time
	updatedAt      time.Time
}

// NameRepository はプロセス内に名前を保持する。保存時点の値をシリアライズして持つため呼び出し側の変更は反映されない。
type NameRepository struct {
	mu      sync.RWMutex
	entries map[string]entry
}

var _ domain.NameRepository = (*NameRepository)(nil)

func NewNameRepository() *NameRepository {
	return &NameRepository{entries: make(map[string]entry)}
}

func (r *NameRepository) FindByKey(_ context.Context, key domain.NameKey) (*domain.NameRecord, error) {
	r.mu.RLock()
	e, ok := r.entries[key.String()]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, key.String())
	}
	return domain.ReconstructNameRecord(key, e.dataString, e.delimiter, e.representation, e.createdAt, e.updatedAt)
}

func (r *NameRepository) Save(_ context.Context, record *domain.NameRecord) error {
	data, err := record.DataString()
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[record.Key().String()] = entry{
		dataString:     data,
		delimiter:      record.Delimiter(),
		representation: record.Representation(),
		createdAt:      record.CreatedAt(),
		updatedAt:      record.UpdatedAt(),
	}
	return nil
}

func (r *NameRepository) Delete(_ context.Context, key domain.NameKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[key.String()]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, key.String())
	}
	delete(r.entries, key.String())
	return nil
}
