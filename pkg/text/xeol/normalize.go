package xeol

// Normalize 将 s 中的每个终止符（CR、LF、CRLF 各作为一个整体）
// 改写为 target 风格，写入新缓冲区。
// 快速路径：s 无需任何改写时原样返回输入，零分配。
// 空输入返回空输入；不含终止符的缓冲区原样通过。
func Normalize(s []byte, target Style) []byte {
	if !needsRewrite(s, target) {
		return s
	}
	return rewrite(s, target)
}

// NormalizeString 是 [Normalize] 的字符串版本。
// 无需改写时原样返回 s，零分配。
func NormalizeString(s string, target Style) string {
	if !needsRewrite(s, target) {
		return s
	}
	return string(rewrite(s, target))
}

// rewrite 单趟改写全部终止符。输出长度由 [Count] 预先精确算出，
// 整个改写只做一次分配。
func rewrite[T ~string | ~[]byte](s T, target Style) []byte {
	crlf, cr, lf := Count(s)
	terms := crlf + cr + lf
	seq := target.Sequence()
	// 去掉原终止符字节，换上 terms 份目标序列
	n := len(s) - (crlf*2 + cr + lf) + terms*len(seq)

	out := make([]byte, 0, n)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			out = append(out, seq...)
		case '\n':
			out = append(out, seq...)
		default:
			out = append(out, s[i])
		}
	}
	return out
}

// needsRewrite 报告 s 是否存在需要改写为 target 的终止符。
func needsRewrite[T ~string | ~[]byte](s T, target Style) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				if target != CRLF {
					return true
				}
				i++
			} else if target != CR {
				return true
			}
		case '\n':
			if target != LF {
				return true
			}
		}
	}
	return false
}
