package domain

const (
	// DefaultDelimiter は区切り文字が指定されなかった場合と正規シリアライズ形式で使う区切り文字
	DefaultDelimiter = "."

	// EscapeCharacter は区切り文字とエスケープ文字自身をエスケープする文字
	EscapeCharacter = `\`
)

// Name は区切り文字で連結されたコンポーネントの列からなる複合名
//
// コンポーネントは常にエスケープされていない論理値として扱う。
// エスケープはAsDataStringによるシリアライズ時にのみ適用される。
type Name interface {
	ComponentCount() (int, error)
	Component(i int) (string, error)
	SetComponent(i int, c string) error
	Insert(i int, c string) error
	Append(c string) error
	Remove(i int) error
	Concat(other Name) error

	// AsString はインスタンスの区切り文字で論理値を連結する。エスケープはしない。
	AsString() (string, error)
	AsStringWith(delimiter string) (string, error)

	// AsDataString は既定の区切り文字で連結した正規シリアライズ形式を返す
	AsDataString() (string, error)

	IsEqual(other Name) (bool, error)
	HashCode() (int32, error)
	Clone() (Name, error)
	Delimiter() string
	IsEmpty() (bool, error)
	String() string
}

func isNilName(n Name) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *StringArrayName:
		return v == nil
	case *StringName:
		return v == nil
	}
	return false
}
