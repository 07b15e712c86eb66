// Package redis は保存した名前のRedisストアと読み取りキャッシュを提供します。
// キーのプレフィックスはこのファイルで一元管理します。
package redis

const (
	// SavedNameKeyPrefix はRedisを主ストアとして使う場合の保存キーのプレフィックス
	// Format: names:saved:{key}
	SavedNameKeyPrefix = "names:saved:"

	// SavedNameCacheKeyPrefix はPostgreSQLの前段キャッシュのキーのプレフィックス
	// Format: names:cache:{key}
	SavedNameCacheKeyPrefix = "names:cache:"
)

func SavedNameKey(key string) string {
	return SavedNameKeyPrefix + key
}

func SavedNameCacheKey(key string) string {
	return SavedNameCacheKeyPrefix + key
}
