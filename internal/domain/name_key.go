package domain

const maxNameKeyLength = 128

// NameKey は保存した名前を識別するキー
type NameKey struct {
	value string
}

func NewNameKey(value string) (NameKey, error) {
	if value == "" || len(value) > maxNameKeyLength {
		return NameKey{}, ErrInvalidNameKey
	}
	for _, r := range value {
		if !isNameKeyRune(r) {
			return NameKey{}, ErrInvalidNameKey
		}
	}
	return NameKey{value: value}, nil
}

func isNameKeyRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '.' || r == '_' || r == '-':
		return true
	}
	return false
}

func (k NameKey) String() string {
	return k.value
}
