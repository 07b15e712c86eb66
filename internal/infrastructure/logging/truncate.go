package logging

import (
	"log/slog"
	"unicode/utf8"
)

// DefaultMaxValueLength を超える文字列属性は切り詰められる
const DefaultMaxValueLength = 256

const truncatedSuffix = "...(truncated)"

type AttrTruncator struct {
	maxLength int
}

func NewAttrTruncator(maxLength int) *AttrTruncator {
	return &AttrTruncator{maxLength: maxLength}
}

// TruncateAttrs はmaxLength文字を超える文字列値を切り詰める。
// グループはハンドラが要素ごとに呼び出すため、そのまま返す。
func (at *AttrTruncator) TruncateAttrs(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() != slog.KindString {
		return a
	}
	s := a.Value.String()
	if utf8.RuneCountInString(s) <= at.maxLength {
		return a
	}

	runes := []rune(s)
	return slog.String(a.Key, string(runes[:at.maxLength])+truncatedSuffix)
}

var defaultTruncator = NewAttrTruncator(DefaultMaxValueLength)

func TruncateLongAttrs(groups []string, a slog.Attr) slog.Attr {
	return defaultTruncator.TruncateAttrs(groups, a)
}
