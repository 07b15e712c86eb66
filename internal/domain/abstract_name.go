package domain

import (
	"log/slog"
	"slices"
	"strings"
	"unicode/utf16"

	"github.com/na2na-p/compoundname/internal/contract"
)

// componentStore は表現ごとに異なる記憶領域の基本操作
//
// 引数の範囲検査はabstractName側で済ませてから呼び出す。
// 変更系の操作が返すエラーはその表現で保持できない状態を拒否するためのもの。
type componentStore interface {
	count() int
	get(i int) string
	set(i int, c string) error
	insert(i int, c string) error
	append(c string) error
	remove(i int) error
	clone() componentStore
	invariant() error
}

// abstractName はすべての表現で共通の契約検査と派生アルゴリズムを実装する
type abstractName struct {
	delimiter string
	store     componentStore
}

func newAbstractName(delimiter string, store componentStore) (abstractName, error) {
	if err := contract.Check(
		contract.Require(isSingleCharacter(delimiter), "delimiter must be a single character"),
		contract.Require(delimiter != EscapeCharacter, "delimiter must not equal escape character"),
	); err != nil {
		return abstractName{}, err
	}
	return abstractName{delimiter: delimiter, store: store}, nil
}

func (n *abstractName) assertClassInvariants() error {
	if err := contract.Check(
		contract.Invariant(isSingleCharacter(n.delimiter), "delimiter must be a single character"),
		contract.Invariant(n.delimiter != EscapeCharacter, "delimiter must not equal escape character"),
		contract.Invariant(n.store != nil, "component store must not be nil"),
	); err != nil {
		return err
	}
	return n.store.invariant()
}

func checkIndex(i, count int) error {
	return contract.Check(
		contract.Require(i >= 0, "index must be non-negative"),
		contract.Require(i < count, "index must be less than number of components"),
	)
}

func checkInsertIndex(i, count int) error {
	return contract.Check(
		contract.Require(i >= 0, "index must be non-negative"),
		contract.Require(i <= count, "index must be less than or equal to number of components"),
	)
}

func (n *abstractName) ComponentCount() (int, error) {
	if err := n.assertClassInvariants(); err != nil {
		return 0, err
	}
	return n.store.count(), nil
}

func (n *abstractName) Component(i int) (string, error) {
	if err := n.assertClassInvariants(); err != nil {
		return "", err
	}
	if err := checkIndex(i, n.store.count()); err != nil {
		return "", err
	}
	return n.store.get(i), nil
}

func (n *abstractName) SetComponent(i int, c string) error {
	if err := n.assertClassInvariants(); err != nil {
		return err
	}
	before := n.store.count()
	if err := checkIndex(i, before); err != nil {
		return err
	}

	if err := n.store.set(i, c); err != nil {
		return err
	}

	if err := contract.Check(
		contract.Ensure(n.store.count() == before, "component count changed"),
		contract.Ensure(n.store.get(i) == c, "component was not set correctly"),
	); err != nil {
		return err
	}
	return n.assertClassInvariants()
}

func (n *abstractName) Insert(i int, c string) error {
	if err := n.assertClassInvariants(); err != nil {
		return err
	}
	before := n.store.count()
	if err := checkInsertIndex(i, before); err != nil {
		return err
	}

	if err := n.store.insert(i, c); err != nil {
		return err
	}

	if err := contract.Ensure(n.store.count() == before+1, "component count did not increase by 1"); err != nil {
		return err
	}
	if err := contract.Ensure(n.store.get(i) == c, "component was not inserted correctly"); err != nil {
		return err
	}
	return n.assertClassInvariants()
}

func (n *abstractName) Append(c string) error {
	if err := n.assertClassInvariants(); err != nil {
		return err
	}
	before := n.store.count()

	if err := n.store.append(c); err != nil {
		return err
	}

	if err := contract.Ensure(n.store.count() == before+1, "component count did not increase by 1"); err != nil {
		return err
	}
	if err := contract.Ensure(n.store.get(before) == c, "component was not appended correctly"); err != nil {
		return err
	}
	return n.assertClassInvariants()
}

func (n *abstractName) Remove(i int) error {
	if err := n.assertClassInvariants(); err != nil {
		return err
	}
	before := n.store.count()
	if err := contract.Check(
		checkIndex(i, before),
		contract.Require(before > 1, "cannot remove from a single-component name"),
	); err != nil {
		return err
	}

	if err := n.store.remove(i); err != nil {
		return err
	}

	if err := contract.Ensure(n.store.count() == before-1, "component count did not decrease by 1"); err != nil {
		return err
	}
	return n.assertClassInvariants()
}

// Concat はotherのコンポーネントを順に末尾へ追加する。otherは変更しない。
func (n *abstractName) Concat(other Name) error {
	if err := n.assertClassInvariants(); err != nil {
		return err
	}
	if err := contract.Require(!isNilName(other), "other must not be nil"); err != nil {
		return err
	}

	components, err := componentsOf(other)
	if err != nil {
		return err
	}
	before := n.store.count()
	for _, c := range components {
		if err := n.Append(c); err != nil {
			return err
		}
	}

	if err := contract.Ensure(n.store.count() == before+len(components), "concat did not add the correct number of components"); err != nil {
		return err
	}
	return n.assertClassInvariants()
}

func (n *abstractName) AsString() (string, error) {
	return n.AsStringWith(n.delimiter)
}

func (n *abstractName) AsStringWith(delimiter string) (string, error) {
	if err := n.assertClassInvariants(); err != nil {
		return "", err
	}
	if err := contract.Require(isSingleCharacter(delimiter), "delimiter must be a single character"); err != nil {
		return "", err
	}
	return strings.Join(n.components(), delimiter), nil
}

func (n *abstractName) AsDataString() (string, error) {
	if err := n.assertClassInvariants(); err != nil {
		return "", err
	}

	components := n.components()
	result := JoinDataString(components)

	roundTrip := slices.Equal(SplitDataString(result), components) ||
		(len(components) == 1 && components[0] == "")
	if err := contract.Ensure(roundTrip, "data string does not parse back to the same components"); err != nil {
		return "", err
	}
	return result, nil
}

// IsEqual はコンポーネント数と各コンポーネントが一致するかを返す。区切り文字は比較しない。
func (n *abstractName) IsEqual(other Name) (bool, error) {
	if err := n.assertClassInvariants(); err != nil {
		return false, err
	}
	if err := contract.Require(!isNilName(other), "other must not be nil"); err != nil {
		return false, err
	}

	otherCount, err := other.ComponentCount()
	if err != nil {
		return false, err
	}
	if otherCount != n.store.count() {
		return false, nil
	}
	for i := 0; i < otherCount; i++ {
		c, err := other.Component(i)
		if err != nil {
			return false, err
		}
		if c != n.store.get(i) {
			return false, nil
		}
	}
	return true, nil
}

func (n *abstractName) HashCode() (int32, error) {
	s, err := n.AsDataString()
	if err != nil {
		return 0, err
	}
	return hashCode(s), nil
}

func (n *abstractName) Delimiter() string {
	return n.delimiter
}

func (n *abstractName) IsEmpty() (bool, error) {
	if err := n.assertClassInvariants(); err != nil {
		return false, err
	}
	return n.store.count() == 0, nil
}

func (n *abstractName) String() string {
	if n.store == nil {
		return ""
	}
	return JoinDataString(n.components())
}

func (n *abstractName) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("data", n.String()),
		slog.String("delimiter", n.delimiter),
	)
}

func (n *abstractName) cloneBase() (abstractName, error) {
	if err := n.assertClassInvariants(); err != nil {
		return abstractName{}, err
	}
	return abstractName{delimiter: n.delimiter, store: n.store.clone()}, nil
}

func (n *abstractName) components() []string {
	count := n.store.count()
	result := make([]string, count)
	for i := 0; i < count; i++ {
		result[i] = n.store.get(i)
	}
	return result
}

func componentsOf(name Name) ([]string, error) {
	count, err := name.ComponentCount()
	if err != nil {
		return nil, err
	}
	result := make([]string, count)
	for i := range result {
		if result[i], err = name.Component(i); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Components はnameの論理値のコンポーネントをスライスとして返す
func Components(name Name) ([]string, error) {
	if err := contract.Require(!isNilName(name), "name must not be nil"); err != nil {
		return nil, err
	}
	return componentsOf(name)
}

// hashCode はUTF-16コード単位ごとに hash*31 + c を32bitで折り返しながら計算する
func hashCode(s string) int32 {
	var hash int32
	for _, u := range utf16.Encode([]rune(s)) {
		hash = hash*31 + int32(u)
	}
	return hash
}
