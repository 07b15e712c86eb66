package middleware

import (
	"net/url"
	"slices"
	"strings"
)

// sensitiveParams はリクエストログに値を残さないクエリパラメータ
var sensitiveParams = map[string]struct{}{
	"access_token": {},
	"token":        {},
	"jwt":          {},
}

const maskValue = "***"

// MaskSensitiveParams はURIのクエリのうち機微なパラメータの値を伏せる。キーは名前順に並べ替える。
func MaskSensitiveParams(uri string) string {
	if uri == "" {
		return ""
	}

	parsedURL, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	query := parsedURL.Query()
	if len(query) == 0 {
		return uri
	}

	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, ok := sensitiveParams[strings.ToLower(key)]; ok {
			parts = append(parts, url.QueryEscape(key)+"="+maskValue)
			continue
		}
		for _, v := range query[key] {
			parts = append(parts, url.QueryEscape(key)+"="+url.QueryEscape(v))
		}
	}

	parsedURL.RawQuery = strings.Join(parts, "&")
	return parsedURL.String()
}
