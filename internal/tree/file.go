package tree

import (
	"context"

	"github.com/newmo-oss/ctxtime"

	"github.com/na2na-p/compoundname/internal/contract"
)

type FileState int

const (
	FileStateClosed FileState = iota
	FileStateOpen
	FileStateDeleted
)

func (s FileState) String() string {
	switch s {
	case FileStateClosed:
		return "closed"
	case FileStateOpen:
		return "open"
	case FileStateDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

type File struct {
	node
	state FileState
}

var _ Node = (*File)(nil)

// NewFile は閉じた状態のファイルを生成して親ディレクトリに登録する
func NewFile(ctx context.Context, bn string, parent *Directory) (*File, error) {
	n, err := newNode(ctx, bn, parent)
	if err != nil {
		return nil, err
	}
	f := &File{node: n, state: FileStateClosed}
	if err := f.attach(f); err != nil {
		return nil, err
	}
	if err := f.assertFileInvariants(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) State() FileState {
	return f.state
}

func (f *File) Open(ctx context.Context) error {
	return f.transition(ctx, FileStateClosed, FileStateOpen, "file must be closed to be opened")
}

// Read はnoBytesまで読み込む。内容を持たないため常に空のスライスを返す。
func (f *File) Read(noBytes int) ([]byte, error) {
	if err := f.assertFileInvariants(); err != nil {
		return nil, err
	}
	if err := contract.Check(
		contract.Require(noBytes >= 0, "noBytes must be non-negative"),
		contract.Require(f.state == FileStateOpen, "file must be open to read"),
	); err != nil {
		return nil, err
	}
	return []byte{}, nil
}

func (f *File) Close(ctx context.Context) error {
	return f.transition(ctx, FileStateOpen, FileStateClosed, "file must be open to be closed")
}

// Delete は閉じたファイルを削除済みにする。削除済みのファイルは開けない。
func (f *File) Delete(ctx context.Context) error {
	return f.transition(ctx, FileStateClosed, FileStateDeleted, "file must be closed to be deleted")
}

func (f *File) transition(ctx context.Context, from, to FileState, message string) error {
	if err := f.assertFileInvariants(); err != nil {
		return err
	}
	if err := contract.Require(f.state == from, message); err != nil {
		return err
	}

	f.state = to
	f.updatedAt = ctxtime.Now(ctx)

	if err := contract.Ensure(f.state == to, "file state was not set correctly"); err != nil {
		return err
	}
	return f.assertFileInvariants()
}

func (f *File) assertFileInvariants() error {
	return contract.Check(
		f.assertClassInvariants(),
		contract.Invariant(
			f.state == FileStateOpen || f.state == FileStateClosed || f.state == FileStateDeleted,
			"state must be a valid file state",
		),
	)
}
