package usecase

import "errors"

var (
	// ErrNodeNotFound は指定IDのノードが登録されていない場合のエラー
	ErrNodeNotFound = errors.New("node not found")

	// ErrNameNotFound は指定キーの名前が保存されていない場合のエラー
	ErrNameNotFound = errors.New("saved name not found")

	// ErrInvalidRepresentation は名前の表現が 'array' でも 'string' でもない場合のエラー
	ErrInvalidRepresentation = errors.New("representation must be 'array' or 'string'")

	// ErrInvalidOperation は不正な編集操作、またはルートに対する削除の場合のエラー
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrInvalidNodeKind はノード種別が不正、またはディレクトリが必要な箇所で別の種別が渡された場合のエラー
	ErrInvalidNodeKind = errors.New("invalid node kind")
)
