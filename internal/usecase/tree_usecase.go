package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/na2na-p/compoundname/internal/contract"
	"github.com/na2na-p/compoundname/internal/tree"
)

const (
	NodeKindDirectory = "directory"
	NodeKindFile      = "file"
	NodeKindLink      = "link"
)

type CreateNodeInput struct {
	Kind     string
	ParentID uuid.UUID
	BaseName string
	TargetID *uuid.UUID
}

// NodeView はノードの表示用スナップショット。対象を辿れないリンクではBaseNameとFullNameが空になる。
type NodeView struct {
	ID         uuid.UUID
	Kind       string
	BaseName   string
	FullName   string
	DataString string
	ParentID   uuid.UUID
	IsRoot     bool
	TargetID   *uuid.UUID
	State      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TreeUseCase はメモリ上のノードツリーを保持する。すべての操作はmuで直列化される。
type TreeUseCase struct {
	mu    sync.RWMutex
	root  *tree.Directory
	nodes map[uuid.UUID]tree.Node
}

func NewTreeUseCase(ctx context.Context, delimiter string) (*TreeUseCase, error) {
	root, err := tree.NewRoot(ctx, delimiter)
	if err != nil {
		return nil, fmt.Errorf("failed to create root directory: %w", err)
	}
	return &TreeUseCase{
		root:  root,
		nodes: map[uuid.UUID]tree.Node{root.ID(): root},
	}, nil
}

func (uc *TreeUseCase) RootID() uuid.UUID {
	return uc.root.ID()
}

func (uc *TreeUseCase) CreateNode(ctx context.Context, in CreateNodeInput) (*NodeView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	parent, err := uc.directory(in.ParentID)
	if err != nil {
		return nil, err
	}

	var created tree.Node
	switch in.Kind {
	case NodeKindDirectory:
		created, err = tree.NewDirectory(ctx, in.BaseName, parent)
	case NodeKindFile:
		created, err = tree.NewFile(ctx, in.BaseName, parent)
	case NodeKindLink:
		var target tree.Node
		if in.TargetID != nil {
			if target, err = uc.lookup(*in.TargetID); err != nil {
				return nil, err
			}
			if target == tree.Node(uc.root) {
				return nil, fmt.Errorf("%w: link must not target the root directory", ErrInvalidNodeKind)
			}
		}
		created, err = tree.NewLink(ctx, in.BaseName, parent, target)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidNodeKind, in.Kind)
	}
	if err != nil {
		return nil, err
	}

	v, err := view(created)
	if err != nil {
		if rmErr := parent.RemoveChild(created); rmErr != nil {
			return nil, errors.Join(err, rmErr)
		}
		return nil, err
	}
	uc.nodes[created.ID()] = created
	slog.InfoContext(ctx, "ノードを作成しました", "id", created.ID(), "kind", in.Kind, "parent_id", parent.ID())
	return v, nil
}

func (uc *TreeUseCase) GetNode(ctx context.Context, id uuid.UUID) (*NodeView, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	n, err := uc.lookup(id)
	if err != nil {
		return nil, err
	}
	return view(n)
}

func (uc *TreeUseCase) Children(ctx context.Context, id uuid.UUID) ([]NodeView, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	dir, err := uc.directory(id)
	if err != nil {
		return nil, err
	}

	children := dir.Children()
	views := make([]NodeView, 0, len(children))
	for _, c := range children {
		v, err := view(c)
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

func (uc *TreeUseCase) RenameNode(ctx context.Context, id uuid.UUID, bn string) (*NodeView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	n, err := uc.lookup(id)
	if err != nil {
		return nil, err
	}
	if l, ok := n.(*tree.Link); ok && l.Dangling() {
		return nil, fmt.Errorf("%w: link %s does not resolve to a node", ErrInvalidOperation, id)
	}
	if err := n.Rename(ctx, bn); err != nil {
		return nil, err
	}
	return view(n)
}

func (uc *TreeUseCase) MoveNode(ctx context.Context, id, parentID uuid.UUID) (*NodeView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	n, err := uc.lookup(id)
	if err != nil {
		return nil, err
	}
	to, err := uc.directory(parentID)
	if err != nil {
		return nil, err
	}
	if err := n.Move(ctx, to); err != nil {
		return nil, err
	}
	return view(n)
}

// SetLinkTarget はリンクの対象を差し替える。自身に戻ってくる対象は拒否される。
func (uc *TreeUseCase) SetLinkTarget(ctx context.Context, id, targetID uuid.UUID) (*NodeView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	n, err := uc.lookup(id)
	if err != nil {
		return nil, err
	}
	l, ok := n.(*tree.Link)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a link", ErrInvalidNodeKind, id)
	}
	target, err := uc.lookup(targetID)
	if err != nil {
		return nil, err
	}
	if target == tree.Node(uc.root) {
		return nil, fmt.Errorf("%w: link must not target the root directory", ErrInvalidNodeKind)
	}
	if err := l.SetTarget(target); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "リンクの対象を変更しました", "id", id, "target_id", targetID)
	return view(l)
}

// ChangeFileState はファイルを開く、または閉じる。削除はDeleteNodeで行う。
func (uc *TreeUseCase) ChangeFileState(ctx context.Context, id uuid.UUID, state string) (*NodeView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	n, err := uc.lookup(id)
	if err != nil {
		return nil, err
	}
	f, ok := n.(*tree.File)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a file", ErrInvalidNodeKind, id)
	}

	switch state {
	case tree.FileStateOpen.String():
		err = f.Open(ctx)
	case tree.FileStateClosed.String():
		err = f.Close(ctx)
	default:
		return nil, fmt.Errorf("%w: unsupported file state %q", ErrInvalidOperation, state)
	}
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "ファイルの状態を変更しました", "id", id, "state", state)
	return view(f)
}

// DeleteNode はノードとその子孫を取り除く。ファイルは削除済み状態に遷移させ、削除されたノードを指すリンクは対象を外す。
func (uc *TreeUseCase) DeleteNode(ctx context.Context, id uuid.UUID) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	n, err := uc.lookup(id)
	if err != nil {
		return err
	}
	if n == tree.Node(uc.root) {
		return fmt.Errorf("%w: root directory cannot be deleted", ErrInvalidOperation)
	}

	removed := collect(n)
	for _, r := range removed {
		if f, ok := r.(*tree.File); ok {
			if err := contract.Require(f.State() != tree.FileStateOpen, "open file cannot be deleted"); err != nil {
				return err
			}
		}
	}
	if err := n.Parent().RemoveChild(n); err != nil {
		return err
	}

	gone := make(map[uuid.UUID]struct{}, len(removed))
	for _, r := range removed {
		if f, ok := r.(*tree.File); ok {
			if err := f.Delete(ctx); err != nil {
				return err
			}
		}
		gone[r.ID()] = struct{}{}
		delete(uc.nodes, r.ID())
	}
	for _, remaining := range uc.nodes {
		l, ok := remaining.(*tree.Link)
		if !ok || l.Target() == nil {
			continue
		}
		if _, ok := gone[l.Target().ID()]; ok {
			l.ClearTarget()
		}
	}
	slog.InfoContext(ctx, "ノードを削除しました", "id", id, "removed", len(removed))
	return nil
}

func (uc *TreeUseCase) Name() string {
	return "tree"
}

// Check はルートから辿れるノードの不変条件と、登録簿との対応を検査する
func (uc *TreeUseCase) Check(ctx context.Context) error {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if err := uc.root.Validate(); err != nil {
		return err
	}
	reachable := collect(uc.root)
	return contract.Invariant(len(reachable) == len(uc.nodes), "registry must hold exactly the reachable nodes")
}

func (uc *TreeUseCase) lookup(id uuid.UUID) (tree.Node, error) {
	n, ok := uc.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	return n, nil
}

func (uc *TreeUseCase) directory(id uuid.UUID) (*tree.Directory, error) {
	n, err := uc.lookup(id)
	if err != nil {
		return nil, err
	}
	dir, ok := n.(*tree.Directory)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidNodeKind, id)
	}
	return dir, nil
}

// collect はnとその子孫を深さ優先で返す
func collect(n tree.Node) []tree.Node {
	result := []tree.Node{n}
	if dir, ok := n.(*tree.Directory); ok {
		for _, c := range dir.Children() {
			result = append(result, collect(c)...)
		}
	}
	return result
}

func view(n tree.Node) (*NodeView, error) {
	v := &NodeView{
		ID:        n.ID(),
		ParentID:  n.Parent().ID(),
		CreatedAt: n.CreatedAt(),
		UpdatedAt: n.UpdatedAt(),
	}

	switch node := n.(type) {
	case *tree.Directory:
		v.Kind = NodeKindDirectory
		v.IsRoot = node.IsRoot()
	case *tree.File:
		v.Kind = NodeKindFile
		v.State = node.State().String()
	case *tree.Link:
		v.Kind = NodeKindLink
		if node.Target() != nil {
			targetID := node.Target().ID()
			v.TargetID = &targetID
		}
		if node.Dangling() {
			return v, nil
		}
	}

	bn, err := n.BaseName()
	if err != nil {
		return nil, err
	}
	full, err := n.FullName()
	if err != nil {
		return nil, err
	}
	s, err := full.AsString()
	if err != nil {
		return nil, err
	}
	data, err := full.AsDataString()
	if err != nil {
		return nil, err
	}
	v.BaseName = bn
	v.FullName = s
	v.DataString = data
	return v, nil
}
