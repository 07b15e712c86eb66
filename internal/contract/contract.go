package contract

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalArgument は呼び出し側が事前条件に違反したことを示すエラー
	ErrIllegalArgument = errors.New("illegal argument")

	// ErrInvalidState はクラス不変条件が破られたことを示すエラー
	ErrInvalidState = errors.New("invalid state")

	// ErrMethodFailed は事後条件が満たされなかったことを示すエラー
	ErrMethodFailed = errors.New("method failed")
)

// Violation は契約違反の種別とメッセージを保持する
type Violation struct {
	Kind    error
	Message string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Kind, v.Message)
}

func (v *Violation) Unwrap() error {
	return v.Kind
}

func assert(kind error, cond bool, message string) error {
	if cond {
		return nil
	}
	return &Violation{Kind: kind, Message: message}
}

// Require は事前条件を検証する
func Require(cond bool, message string) error {
	return assert(ErrIllegalArgument, cond, message)
}

// Ensure は事後条件を検証する
func Ensure(cond bool, message string) error {
	return assert(ErrMethodFailed, cond, message)
}

// Invariant はクラス不変条件を検証する
func Invariant(cond bool, message string) error {
	return assert(ErrInvalidState, cond, message)
}

// Check は最初に見つかった違反を返す
func Check(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
