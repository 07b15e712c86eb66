package domain

import (
	"slices"

	"github.com/na2na-p/compoundname/internal/contract"
)

// StringArrayName はコンポーネントをスライスとして保持するName
type StringArrayName struct {
	abstractName
}

var _ Name = (*StringArrayName)(nil)

func NewStringArrayName(source []string) (*StringArrayName, error) {
	return NewStringArrayNameWithDelimiter(source, DefaultDelimiter)
}

func NewStringArrayNameWithDelimiter(source []string, delimiter string) (*StringArrayName, error) {
	if err := contract.Check(
		contract.Require(source != nil, "source must not be nil"),
		contract.Require(len(source) > 0, "source must not be empty"),
	); err != nil {
		return nil, err
	}

	store := &arrayStore{components: slices.Clone(source)}
	base, err := newAbstractName(delimiter, store)
	if err != nil {
		return nil, err
	}
	n := &StringArrayName{abstractName: base}

	if err := contract.Ensure(slices.Equal(store.components, source), "components were not set correctly"); err != nil {
		return nil, err
	}
	if err := n.assertClassInvariants(); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *StringArrayName) Clone() (Name, error) {
	base, err := n.cloneBase()
	if err != nil {
		return nil, err
	}
	result := &StringArrayName{abstractName: base}

	equal, err := result.IsEqual(n)
	if err != nil {
		return nil, err
	}
	if err := contract.Ensure(equal, "clone must be equal to original"); err != nil {
		return nil, err
	}
	return result, nil
}

type arrayStore struct {
	components []string
}

func (s *arrayStore) count() int {
	return len(s.components)
}

func (s *arrayStore) get(i int) string {
	return s.components[i]
}

func (s *arrayStore) set(i int, c string) error {
	s.components[i] = c
	return nil
}

func (s *arrayStore) insert(i int, c string) error {
	s.components = slices.Insert(s.components, i, c)
	return nil
}

func (s *arrayStore) append(c string) error {
	s.components = append(s.components, c)
	return nil
}

func (s *arrayStore) remove(i int) error {
	s.components = slices.Delete(s.components, i, i+1)
	return nil
}

func (s *arrayStore) clone() componentStore {
	return &arrayStore{components: slices.Clone(s.components)}
}

func (s *arrayStore) invariant() error {
	return contract.Check(
		contract.Invariant(s.components != nil, "components must not be nil"),
		contract.Invariant(len(s.components) > 0, "components must have at least one element"),
	)
}
