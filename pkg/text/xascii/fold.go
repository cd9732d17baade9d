package xascii

// EqualFold 报告 a 与 b 在 ASCII 大小写不敏感意义下是否相等。
// 仅折叠 ASCII 字母；其余字节（含多字节 UTF-8 码元）按原值比较。
func EqualFold[T ~string | ~[]byte](a, b T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if ToLower(a[i]) != ToLower(b[i]) {
			return false
		}
	}
	return true
}

// HasPrefixFold 报告 s 是否以 prefix 开头（ASCII 大小写不敏感）。
func HasPrefixFold[T ~string | ~[]byte](s, prefix T) bool {
	if len(s) < len(prefix) {
		return false
	}
	return EqualFold(s[:len(prefix)], prefix)
}

// HasSuffixFold 报告 s 是否以 suffix 结尾（ASCII 大小写不敏感）。
func HasSuffixFold[T ~string | ~[]byte](s, suffix T) bool {
	if len(s) < len(suffix) {
		return false
	}
	return EqualFold(s[len(s)-len(suffix):], suffix)
}
