package tree

import (
	"context"

	"github.com/na2na-p/compoundname/internal/contract"
)

// Link は別のノードを指す。ベース名の取得と変更は対象ノードに委譲する。
type Link struct {
	node
	target Node
}

var _ Node = (*Link)(nil)

// NewLink はtargetを指すリンクを生成する。targetはnilでもよい。
func NewLink(ctx context.Context, bn string, parent *Directory, target Node) (*Link, error) {
	n, err := newNode(ctx, bn, parent)
	if err != nil {
		return nil, err
	}
	l := &Link{node: n}
	if !isNilNode(target) {
		l.target = target
	}
	if err := l.attach(l); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Link) Target() Node {
	return l.target
}

func (l *Link) SetTarget(target Node) error {
	if err := contract.Require(!isNilNode(target), "target must not be nil"); err != nil {
		return err
	}
	if err := contract.Require(!l.reachableFrom(target), "link must not target itself"); err != nil {
		return err
	}

	l.target = target

	return contract.Ensure(l.target == target, "setTarget did not set target correctly")
}

func (l *Link) BaseName() (string, error) {
	target, err := l.ensureTarget()
	if err != nil {
		return "", err
	}
	return target.BaseName()
}

func (l *Link) Rename(ctx context.Context, bn string) error {
	if err := contract.Require(bn != "", "baseName must not be empty"); err != nil {
		return err
	}
	target, err := l.ensureTarget()
	if err != nil {
		return err
	}
	return target.Rename(ctx, bn)
}

func (l *Link) ensureTarget() (Node, error) {
	if err := contract.Invariant(l.target != nil, "target node must be set"); err != nil {
		return nil, err
	}
	return l.target, nil
}

// Dangling は対象を辿った先に対象のないリンクがあるかを返す。
// 対象のないリンクを指すリンクもベース名を解決できないため宙に浮いたものとして扱う。
func (l *Link) Dangling() bool {
	var cur Node = l
	for {
		link, ok := cur.(*Link)
		if !ok {
			return false
		}
		if link.target == nil {
			return true
		}
		cur = link.target
	}
}

// reachableFrom はtargetからリンクを辿ってlに到達するかを返す
func (l *Link) reachableFrom(target Node) bool {
	for cur := target; cur != nil; {
		if cur.ID() == l.id {
			return true
		}
		next, ok := cur.(*Link)
		if !ok {
			return false
		}
		cur = next.target
	}
	return false
}

// ClearTarget は対象を外す。対象が削除されたときに使う。
func (l *Link) ClearTarget() {
	l.target = nil
}
