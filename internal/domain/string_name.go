package domain

import (
	"slices"

	"github.com/na2na-p/compoundname/internal/contract"
)

// StringName はコンポーネントを区切り文字で連結した1つの文字列として保持するName
//
// 保持する文字列ではエスケープ文字と区切り文字がエスケープされている。
// 空文字列はコンポーネント0個の名前を表すため、空のコンポーネント1個だけの名前は保持できない。
type StringName struct {
	abstractName
}

var _ Name = (*StringName)(nil)

func NewStringName(source string) (*StringName, error) {
	return NewStringNameWithDelimiter(source, DefaultDelimiter)
}

func NewStringNameWithDelimiter(source string, delimiter string) (*StringName, error) {
	if err := contract.Require(isSingleCharacter(delimiter), "delimiter must be a single character"); err != nil {
		return nil, err
	}

	d := delimiterRune(delimiter)
	store := &stringStore{
		name:         source,
		delimiter:    d,
		noComponents: len(tokenize(source, d)),
	}
	base, err := newAbstractName(delimiter, store)
	if err != nil {
		return nil, err
	}
	n := &StringName{abstractName: base}

	if err := contract.Ensure(store.name == source, "name was not set correctly"); err != nil {
		return nil, err
	}
	if err := n.assertClassInvariants(); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *StringName) Clone() (Name, error) {
	base, err := n.cloneBase()
	if err != nil {
		return nil, err
	}
	result := &StringName{abstractName: base}

	equal, err := result.IsEqual(n)
	if err != nil {
		return nil, err
	}
	if err := contract.Ensure(equal, "clone must be equal to original"); err != nil {
		return nil, err
	}
	return result, nil
}

type stringStore struct {
	name         string
	delimiter    rune
	noComponents int
}

func (s *stringStore) count() int {
	return s.noComponents
}

func (s *stringStore) get(i int) string {
	return tokenize(s.name, s.delimiter)[i]
}

func (s *stringStore) set(i int, c string) error {
	components := tokenize(s.name, s.delimiter)
	components[i] = c
	return s.replace(components)
}

func (s *stringStore) insert(i int, c string) error {
	return s.replace(slices.Insert(tokenize(s.name, s.delimiter), i, c))
}

// append は再結合によって保持文字列を正規化する。空の名前ではcだけの文字列になる。
func (s *stringStore) append(c string) error {
	return s.replace(append(tokenize(s.name, s.delimiter), c))
}

func (s *stringStore) remove(i int) error {
	components := tokenize(s.name, s.delimiter)
	return s.replace(slices.Delete(components, i, i+1))
}

func (s *stringStore) replace(components []string) error {
	if err := contract.Require(len(components) != 1 || components[0] != "", "a string-backed name cannot hold a single empty component"); err != nil {
		return err
	}
	s.name = joinComponents(components, s.delimiter)
	s.noComponents = len(components)
	return nil
}

func (s *stringStore) clone() componentStore {
	c := *s
	return &c
}

func (s *stringStore) invariant() error {
	return contract.Check(
		contract.Invariant(s.noComponents >= 0, "noComponents must be non-negative"),
		contract.Invariant(s.noComponents == len(tokenize(s.name, s.delimiter)), "noComponents must match actual number of components"),
	)
}
