package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/newmo-oss/ctxtime"

	"github.com/na2na-p/compoundname/internal/contract"
)

const (
	RepresentationArray  = "array"
	RepresentationString = "string"
)

// RepresentationOf はnameの具象型に対応する表現名を返す。未知の実装では空文字列を返す。
func RepresentationOf(name Name) string {
	switch name.(type) {
	case *StringArrayName:
		return RepresentationArray
	case *StringName:
		return RepresentationString
	default:
		return ""
	}
}

// NameRecord はキーに紐づけて保存された名前
//
// 永続化するのはデータ文字列と区切り文字と表現のみで、保持するNameは呼び出し元と共有しない。
type NameRecord struct {
	key       NameKey
	name      Name
	createdAt time.Time
	updatedAt time.Time
}

func NewNameRecord(ctx context.Context, key NameKey, name Name) (*NameRecord, error) {
	if err := contract.Check(
		contract.Require(key.String() != "", "key must not be empty"),
		contract.Require(!isNilName(name), "name must not be nil"),
	); err != nil {
		return nil, err
	}
	if err := contract.Require(RepresentationOf(name) != "", "name representation is unknown"); err != nil {
		return nil, err
	}

	cloned, err := name.Clone()
	if err != nil {
		return nil, err
	}
	now := ctxtime.Now(ctx)
	return &NameRecord{key: key, name: cloned, createdAt: now, updatedAt: now}, nil
}

// ReconstructNameRecord は永続化された値からNameRecordを復元する
func ReconstructNameRecord(key NameKey, dataString, delimiter, representation string, createdAt, updatedAt time.Time) (*NameRecord, error) {
	components := SplitDataString(dataString)

	var name Name
	switch representation {
	case RepresentationArray:
		// 空のコンポーネント1個の配列名は空のデータ文字列になる
		if len(components) == 0 {
			components = []string{""}
		}
		n, err := NewStringArrayNameWithDelimiter(components, delimiter)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		name = n
	case RepresentationString:
		n, err := NewStringNameWithDelimiter("", delimiter)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		for _, c := range components {
			if err := n.Append(c); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
			}
		}
		name = n
	default:
		return nil, fmt.Errorf("%w: unknown representation %q", ErrInvalidDocument, representation)
	}

	return &NameRecord{key: key, name: name, createdAt: createdAt, updatedAt: updatedAt}, nil
}

func (r *NameRecord) Key() NameKey {
	return r.key
}

// Name は保存された名前の複製を返す
func (r *NameRecord) Name() (Name, error) {
	return r.name.Clone()
}

func (r *NameRecord) DataString() (string, error) {
	return r.name.AsDataString()
}

func (r *NameRecord) Delimiter() string {
	return r.name.Delimiter()
}

func (r *NameRecord) Representation() string {
	return RepresentationOf(r.name)
}

func (r *NameRecord) CreatedAt() time.Time {
	return r.createdAt
}

func (r *NameRecord) UpdatedAt() time.Time {
	return r.updatedAt
}

// Replace は保存する名前を差し替える。作成日時は変えない。
func (r *NameRecord) Replace(ctx context.Context, name Name) error {
	if err := contract.Require(!isNilName(name), "name must not be nil"); err != nil {
		return err
	}
	if err := contract.Require(RepresentationOf(name) != "", "name representation is unknown"); err != nil {
		return err
	}
	cloned, err := name.Clone()
	if err != nil {
		return err
	}
	r.name = cloned
	r.updatedAt = ctxtime.Now(ctx)
	return nil
}
