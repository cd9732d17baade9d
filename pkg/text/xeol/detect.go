package xeol

// Detect 返回 s 中第一个行终止符的风格。
// 不含终止符时返回 (0, false)。
// 判定优先级 CRLF > CR > LF：CR 后紧跟 LF 判为 CRLF，
// 避免把 CRLF 的前半误判为孤立 CR。
func Detect[T ~string | ~[]byte](s T) (Style, bool) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				return CRLF, true
			}
			return CR, true
		case '\n':
			return LF, true
		}
	}
	return 0, false
}

// Count 单趟统计 s 中三类终止符的出现次数。
// CR 后紧跟 LF 只计作一个 CRLF 并前进两字节；
// 末尾无后续字节的 CR 计作孤立 CR。
func Count[T ~string | ~[]byte](s T) (crlf, cr, lf int) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				crlf++
				i++
			} else {
				cr++
			}
		case '\n':
			lf++
		}
	}
	return crlf, cr, lf
}

// IsMixed 报告 s 是否混用多种行终止符风格。
// 单趟扫描维护三个标志，发现第二种风格即短路返回。
func IsMixed[T ~string | ~[]byte](s T) bool {
	var sawCRLF, sawCR, sawLF bool
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				sawCRLF = true
				i++
			} else {
				sawCR = true
			}
		case '\n':
			sawLF = true
		default:
			continue
		}
		if (sawCRLF && sawCR) || (sawCRLF && sawLF) || (sawCR && sawLF) {
			return true
		}
	}
	return false
}
