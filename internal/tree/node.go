package tree

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/newmo-oss/ctxtime"

	"github.com/na2na-p/compoundname/internal/contract"
	"github.com/na2na-p/compoundname/internal/domain"
)

// Node はツリー上の要素。FullNameはルートから自身までのベース名を順にAppendした名前を返す。
type Node interface {
	ID() uuid.UUID
	BaseName() (string, error)
	Rename(ctx context.Context, bn string) error
	Parent() *Directory
	Move(ctx context.Context, to *Directory) error
	FullName() (domain.Name, error)
	CreatedAt() time.Time
	UpdatedAt() time.Time
}

type node struct {
	id        uuid.UUID
	baseName  string
	parent    *Directory
	self      Node
	createdAt time.Time
	updatedAt time.Time
}

func newNode(ctx context.Context, bn string, parent *Directory) (node, error) {
	if err := contract.Check(
		contract.Require(bn != "", "baseName must not be empty"),
		contract.Require(parent != nil, "parentNode must not be nil"),
	); err != nil {
		return node{}, err
	}
	now := ctxtime.Now(ctx)
	return node{
		id:        uuid.New(),
		baseName:  bn,
		parent:    parent,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// attach は埋め込み先の値を自身として親ディレクトリに登録する
func (n *node) attach(self Node) error {
	n.self = self
	if err := n.parent.AddChild(self); err != nil {
		return err
	}
	return n.assertClassInvariants()
}

func (n *node) ID() uuid.UUID {
	return n.id
}

func (n *node) BaseName() (string, error) {
	if err := n.assertClassInvariants(); err != nil {
		return "", err
	}
	return n.baseName, nil
}

func (n *node) Rename(ctx context.Context, bn string) error {
	if err := n.assertClassInvariants(); err != nil {
		return err
	}
	if err := contract.Require(bn != "", "baseName must not be empty"); err != nil {
		return err
	}

	n.baseName = bn
	n.updatedAt = ctxtime.Now(ctx)

	if err := contract.Ensure(n.baseName == bn, "rename did not set baseName correctly"); err != nil {
		return err
	}
	return n.assertClassInvariants()
}

func (n *node) Parent() *Directory {
	return n.parent
}

func (n *node) Move(ctx context.Context, to *Directory) error {
	if err := n.assertClassInvariants(); err != nil {
		return err
	}
	if err := contract.Require(to != nil, "target directory must not be nil"); err != nil {
		return err
	}
	if dir, ok := n.self.(*Directory); ok {
		if err := contract.Require(!to.isWithin(dir), "cannot move a directory into itself or its descendants"); err != nil {
			return err
		}
	}

	if err := n.parent.RemoveChild(n.self); err != nil {
		return err
	}
	if err := to.AddChild(n.self); err != nil {
		return err
	}
	n.parent = to
	n.updatedAt = ctxtime.Now(ctx)

	if err := contract.Ensure(n.parent == to, "move did not set parentNode correctly"); err != nil {
		return err
	}
	return n.assertClassInvariants()
}

func (n *node) FullName() (domain.Name, error) {
	if err := n.assertClassInvariants(); err != nil {
		return nil, err
	}

	result, err := n.parent.FullName()
	if err != nil {
		return nil, err
	}
	bn, err := n.self.BaseName()
	if err != nil {
		return nil, err
	}
	if err := result.Append(bn); err != nil {
		return nil, err
	}
	return result, nil
}

func (n *node) CreatedAt() time.Time {
	return n.createdAt
}

func (n *node) UpdatedAt() time.Time {
	return n.updatedAt
}

func (n *node) assertClassInvariants() error {
	return contract.Check(
		contract.Invariant(n.baseName != "", "baseName must not be empty"),
		contract.Invariant(n.parent != nil, "parentNode must not be nil"),
		contract.Invariant(n.self != nil, "node must be attached"),
	)
}

func isNilNode(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Directory:
		return v == nil
	case *File:
		return v == nil
	case *Link:
		return v == nil
	}
	return false
}
