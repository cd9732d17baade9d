package xascii

// Trim 去除 s 首尾连续出现的 set 成员字节，内部出现保持不动。
// 返回原输入的切片视图，零拷贝零分配。
func Trim[T ~string | ~[]byte](s T, set Set) T {
	return TrimLeft(TrimRight(s, set), set)
}

// TrimLeft 去除 s 开头连续出现的 set 成员字节。
func TrimLeft[T ~string | ~[]byte](s T, set Set) T {
	i := 0
	for i < len(s) && set.Contains(s[i]) {
		i++
	}
	return s[i:]
}

// TrimRight 去除 s 末尾连续出现的 set 成员字节。
func TrimRight[T ~string | ~[]byte](s T, set Set) T {
	n := len(s)
	for n > 0 && set.Contains(s[n-1]) {
		n--
	}
	return s[:n]
}

// TrimSpace 去除 s 首尾的 ASCII 空白（TAB、LF、CR、SPACE）。
// 直接在码元流上用 [IsWhitespace] 扫描：CR+LF 作为两个独立的
// 空白码元被修剪，而非一个不可分割的簇。
func TrimSpace[T ~string | ~[]byte](s T) T {
	start := 0
	for start < len(s) && IsWhitespace(s[start]) {
		start++
	}
	end := len(s)
	for end > start && IsWhitespace(s[end-1]) {
		end--
	}
	return s[start:end]
}
