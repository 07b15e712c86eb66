package logging

import (
	"log/slog"
	"strings"
)

const redacted = "[REDACTED]"

// defaultSensitiveKeys を部分文字列として含むキーは値を伏せる
var defaultSensitiveKeys = []string{
	"password",
	"secret",
	"token",
	"authorization",
	"credential",
}

type SensitiveMasker struct {
	sensitiveKeys []string
}

func NewSensitiveMasker(keys []string) *SensitiveMasker {
	lowered := make([]string, len(keys))
	for i, k := range keys {
		lowered[i] = strings.ToLower(k)
	}
	return &SensitiveMasker{sensitiveKeys: lowered}
}

// MaskAttrs はキーが機微な語を含む属性の値を伏せる。グループの要素はハンドラが個別に渡す。
func (sm *SensitiveMasker) MaskAttrs(_ []string, a slog.Attr) slog.Attr {
	key := strings.ToLower(a.Key)
	for _, sensitiveKey := range sm.sensitiveKeys {
		if strings.Contains(key, sensitiveKey) {
			return slog.String(a.Key, redacted)
		}
	}
	return a
}

var defaultMasker = NewSensitiveMasker(defaultSensitiveKeys)

func MaskSensitiveAttrs(groups []string, a slog.Attr) slog.Attr {
	return defaultMasker.MaskAttrs(groups, a)
}

// replaceAttr は機微な値を伏せてから長い値を切り詰める
func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	return TruncateLongAttrs(groups, MaskSensitiveAttrs(groups, a))
}
