package domain

import (
	"strings"
	"unicode/utf8"
)

const (
	escapeRune           = '\\'
	defaultDelimiterRune = '.'
)

func delimiterRune(delimiter string) rune {
	r, _ := utf8.DecodeRuneInString(delimiter)
	return r
}

func isSingleCharacter(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && size == len(s) && r != utf8.RuneError
}

// escapeComponent はエスケープ文字と区切り文字の前にエスケープ文字を挿入する
func escapeComponent(component string, delimiter rune) string {
	var b strings.Builder
	b.Grow(len(component))
	for i := 0; i < len(component); {
		r, size := utf8.DecodeRuneInString(component[i:])
		if r == escapeRune || r == delimiter {
			b.WriteRune(escapeRune)
		}
		b.WriteString(component[i : i+size])
		i += size
	}
	return b.String()
}

// tokenize はエスケープを解釈しながら区切り文字で分割し、論理値のコンポーネントを返す。
// 空文字列はコンポーネント0個として扱う。末尾の単独のエスケープ文字はそのまま残す。
func tokenize(source string, delimiter rune) []string {
	components := []string{}
	if source == "" {
		return components
	}

	var current strings.Builder
	for i := 0; i < len(source); {
		r, size := utf8.DecodeRuneInString(source[i:])
		switch {
		case r == escapeRune && i+size < len(source):
			_, next := utf8.DecodeRuneInString(source[i+size:])
			current.WriteString(source[i+size : i+size+next])
			i += size + next
			continue
		case r == delimiter:
			components = append(components, current.String())
			current.Reset()
		default:
			current.WriteString(source[i : i+size])
		}
		i += size
	}
	return append(components, current.String())
}

func joinComponents(components []string, delimiter rune) string {
	escaped := make([]string, len(components))
	for i, c := range components {
		escaped[i] = escapeComponent(c, delimiter)
	}
	return strings.Join(escaped, string(delimiter))
}

// SplitDataString は正規シリアライズ形式を論理値のコンポーネントに分解する
func SplitDataString(s string) []string {
	return tokenize(s, defaultDelimiterRune)
}

// JoinDataString はコンポーネントを正規シリアライズ形式に変換する
func JoinDataString(components []string) string {
	return joinComponents(components, defaultDelimiterRune)
}

// ParseDataString は正規シリアライズ形式から既定の区切り文字を持つStringNameを生成する
func ParseDataString(s string) (*StringName, error) {
	return NewStringName(s)
}
