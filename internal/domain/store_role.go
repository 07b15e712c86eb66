package domain

// StoreRole は保存先がサービス内で担う役割。Readinessの報告に使う。
type StoreRole string

const (
	// StoreRolePrimary は保存済みの名前の正となる保存先
	StoreRolePrimary StoreRole = "primary"
	// StoreRoleCache は正の保存先の前段に置く読み取りキャッシュ
	StoreRoleCache StoreRole = "cache"
)
