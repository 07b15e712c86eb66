package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/na2na-p/compoundname/internal/domain"
)

const (
	RepresentationArray  = domain.RepresentationArray
	RepresentationString = domain.RepresentationString
)

const (
	OpSet    = "set"
	OpInsert = "insert"
	OpAppend = "append"
	OpRemove = "remove"
	OpConcat = "concat"
)

// NameInput は名前の組み立て方を表す。Sourceが指定されていればComponentsより優先する。
type NameInput struct {
	Components     []string
	Source         *string
	Delimiter      string
	Representation string
}

// Operation は名前に対する1回の編集操作。concatのComponentは正規化されたデータ文字列として解釈する。
type Operation struct {
	Op        string
	Index     int
	Component string
}

type NameDescription struct {
	Components     []string
	String         string
	DataString     string
	HashCode       int32
	Count          int
	Delimiter      string
	Representation string
	Empty          bool
}

type NameComparison struct {
	Equal         bool
	LeftHashCode  int32
	RightHashCode int32
}

type NameUseCase struct {
	defaultRepresentation string
}

func NewNameUseCase(defaultRepresentation string) (*NameUseCase, error) {
	if !isRepresentation(defaultRepresentation) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRepresentation, defaultRepresentation)
	}
	return &NameUseCase{defaultRepresentation: defaultRepresentation}, nil
}

func (uc *NameUseCase) Describe(ctx context.Context, in NameInput) (*NameDescription, error) {
	name, representation, err := uc.build(in)
	if err != nil {
		return nil, err
	}
	return describe(name, representation)
}

// Edit は操作を順に適用する。途中で失敗した場合はそれまでの結果を捨ててエラーを返す。
func (uc *NameUseCase) Edit(ctx context.Context, in NameInput, ops []Operation) (*NameDescription, error) {
	name, representation, err := uc.build(in)
	if err != nil {
		return nil, err
	}

	for i, op := range ops {
		if err := apply(name, op); err != nil {
			return nil, fmt.Errorf("operation %d (%s): %w", i, op.Op, err)
		}
		slog.DebugContext(ctx, "名前を編集しました", "op", op.Op, "index", op.Index, "name", name)
	}
	return describe(name, representation)
}

func (uc *NameUseCase) Compare(ctx context.Context, left, right NameInput) (*NameComparison, error) {
	l, _, err := uc.build(left)
	if err != nil {
		return nil, fmt.Errorf("left: %w", err)
	}
	r, _, err := uc.build(right)
	if err != nil {
		return nil, fmt.Errorf("right: %w", err)
	}

	equal, err := l.IsEqual(r)
	if err != nil {
		return nil, err
	}
	lh, err := l.HashCode()
	if err != nil {
		return nil, err
	}
	rh, err := r.HashCode()
	if err != nil {
		return nil, err
	}
	return &NameComparison{Equal: equal, LeftHashCode: lh, RightHashCode: rh}, nil
}

func (uc *NameUseCase) build(in NameInput) (domain.Name, string, error) {
	representation := in.Representation
	if representation == "" {
		representation = uc.defaultRepresentation
	}
	if !isRepresentation(representation) {
		return nil, "", fmt.Errorf("%w: %q", ErrInvalidRepresentation, representation)
	}
	delimiter := in.Delimiter
	if delimiter == "" {
		delimiter = domain.DefaultDelimiter
	}

	if in.Source != nil {
		parsed, err := domain.NewStringNameWithDelimiter(*in.Source, delimiter)
		if err != nil {
			return nil, "", err
		}
		if representation == RepresentationString {
			return parsed, representation, nil
		}
		components, err := domain.Components(parsed)
		if err != nil {
			return nil, "", err
		}
		name, err := domain.NewStringArrayNameWithDelimiter(components, delimiter)
		if err != nil {
			return nil, "", err
		}
		return name, representation, nil
	}

	if representation == RepresentationArray {
		name, err := domain.NewStringArrayNameWithDelimiter(in.Components, delimiter)
		if err != nil {
			return nil, "", err
		}
		return name, representation, nil
	}

	name, err := domain.NewStringNameWithDelimiter("", delimiter)
	if err != nil {
		return nil, "", err
	}
	for _, c := range in.Components {
		if err := name.Append(c); err != nil {
			return nil, "", err
		}
	}
	return name, representation, nil
}

func apply(name domain.Name, op Operation) error {
	switch op.Op {
	case OpSet:
		return name.SetComponent(op.Index, op.Component)
	case OpInsert:
		return name.Insert(op.Index, op.Component)
	case OpAppend:
		return name.Append(op.Component)
	case OpRemove:
		return name.Remove(op.Index)
	case OpConcat:
		other, err := domain.ParseDataString(op.Component)
		if err != nil {
			return err
		}
		return name.Concat(other)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOperation, op.Op)
	}
}

func describe(name domain.Name, representation string) (*NameDescription, error) {
	components, err := domain.Components(name)
	if err != nil {
		return nil, err
	}
	s, err := name.AsString()
	if err != nil {
		return nil, err
	}
	data, err := name.AsDataString()
	if err != nil {
		return nil, err
	}
	hash, err := name.HashCode()
	if err != nil {
		return nil, err
	}
	empty, err := name.IsEmpty()
	if err != nil {
		return nil, err
	}
	return &NameDescription{
		Components:     components,
		String:         s,
		DataString:     data,
		HashCode:       hash,
		Count:          len(components),
		Delimiter:      name.Delimiter(),
		Representation: representation,
		Empty:          empty,
	}, nil
}

func isRepresentation(s string) bool {
	return s == RepresentationArray || s == RepresentationString
}
