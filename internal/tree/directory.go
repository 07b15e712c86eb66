package tree

import (
	"context"
	"slices"

	"github.com/google/uuid"
	"github.com/newmo-oss/ctxtime"

	"github.com/na2na-p/compoundname/internal/contract"
	"github.com/na2na-p/compoundname/internal/domain"
)

// DefaultDelimiter はルートの完全名で使う区切り文字
const DefaultDelimiter = "/"

type Directory struct {
	node
	children  []Node
	root      bool
	delimiter string
}

var _ Node = (*Directory)(nil)

// NewRoot は自身を親とするルートディレクトリを生成する。ベース名は空で、完全名はコンポーネント0個。
func NewRoot(ctx context.Context, delimiter string) (*Directory, error) {
	if _, err := domain.NewStringNameWithDelimiter("", delimiter); err != nil {
		return nil, err
	}

	now := ctxtime.Now(ctx)
	d := &Directory{
		children:  []Node{},
		root:      true,
		delimiter: delimiter,
	}
	d.node = node{
		id:        uuid.New(),
		parent:    d,
		self:      d,
		createdAt: now,
		updatedAt: now,
	}
	if err := d.assertRootInvariants(); err != nil {
		return nil, err
	}
	return d, nil
}

func NewDirectory(ctx context.Context, bn string, parent *Directory) (*Directory, error) {
	n, err := newNode(ctx, bn, parent)
	if err != nil {
		return nil, err
	}
	d := &Directory{node: n, children: []Node{}}
	if err := d.attach(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Directory) IsRoot() bool {
	return d.root
}

func (d *Directory) HasChild(cn Node) (bool, error) {
	if err := d.assertDirectoryInvariants(); err != nil {
		return false, err
	}
	if err := contract.Require(!isNilNode(cn), "child node must not be nil"); err != nil {
		return false, err
	}
	return d.indexOf(cn) >= 0, nil
}

func (d *Directory) AddChild(cn Node) error {
	if err := d.assertDirectoryInvariants(); err != nil {
		return err
	}
	if err := contract.Require(!isNilNode(cn), "child node must not be nil"); err != nil {
		return err
	}

	if d.indexOf(cn) < 0 {
		d.children = append(d.children, cn)
	}

	if err := contract.Ensure(d.indexOf(cn) >= 0, "addChild did not add child correctly"); err != nil {
		return err
	}
	return d.assertDirectoryInvariants()
}

func (d *Directory) RemoveChild(cn Node) error {
	if err := d.assertDirectoryInvariants(); err != nil {
		return err
	}
	if err := contract.Require(!isNilNode(cn), "child node must not be nil"); err != nil {
		return err
	}
	i := d.indexOf(cn)
	if err := contract.Require(i >= 0, "node must be a child of this directory"); err != nil {
		return err
	}

	d.children = slices.Delete(d.children, i, i+1)

	if err := contract.Ensure(d.indexOf(cn) < 0, "removeChild did not remove child correctly"); err != nil {
		return err
	}
	return d.assertDirectoryInvariants()
}

// Children は子ノードのコピーを追加順に返す
func (d *Directory) Children() []Node {
	return slices.Clone(d.children)
}

func (d *Directory) BaseName() (string, error) {
	if d.root {
		return "", d.assertRootInvariants()
	}
	return d.node.BaseName()
}

func (d *Directory) Rename(ctx context.Context, bn string) error {
	if d.root {
		return d.assertRootInvariants()
	}
	return d.node.Rename(ctx, bn)
}

func (d *Directory) Move(ctx context.Context, to *Directory) error {
	if d.root {
		return d.assertRootInvariants()
	}
	return d.node.Move(ctx, to)
}

func (d *Directory) FullName() (domain.Name, error) {
	if d.root {
		if err := d.assertRootInvariants(); err != nil {
			return nil, err
		}
		return domain.NewStringNameWithDelimiter("", d.delimiter)
	}
	return d.node.FullName()
}

// Validate はルートから辿れるすべてのノードの不変条件を検査する
func (d *Directory) Validate() error {
	if d.root {
		if err := d.assertRootInvariants(); err != nil {
			return err
		}
	} else if err := d.assertClassInvariants(); err != nil {
		return err
	}

	for _, child := range d.children {
		if err := contract.Invariant(child.Parent() == d, "child must point back to its parent"); err != nil {
			return err
		}
		switch c := child.(type) {
		case *Directory:
			if err := c.Validate(); err != nil {
				return err
			}
		case *File:
			if err := c.assertFileInvariants(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Directory) isWithin(ancestor *Directory) bool {
	for cur := d; ; cur = cur.parent {
		if cur == ancestor {
			return true
		}
		if cur.root {
			return false
		}
	}
}

func (d *Directory) indexOf(cn Node) int {
	return slices.IndexFunc(d.children, func(n Node) bool {
		return n.ID() == cn.ID()
	})
}

func (d *Directory) assertDirectoryInvariants() error {
	return contract.Invariant(d.children != nil, "childNodes must not be nil")
}

func (d *Directory) assertRootInvariants() error {
	return contract.Check(
		contract.Invariant(d.parent == d, "root must be its own parent"),
		contract.Invariant(d.baseName == "", "root baseName must be empty"),
		d.assertDirectoryInvariants(),
	)
}
