package xdigit

// Digit 返回十进制数字字符的数值（0-9）。
// 仅对 '0'-'9' 有定义，其余字节返回 (0, false)。
func Digit(b byte) (uint8, bool) {
	if b-'0' < 10 {
		return b - '0', true
	}
	return 0, false
}

// HexDigit 返回十六进制数字字符的数值（0-15），大小写不敏感。
// 覆盖 '0'-'9'、'A'-'F'、'a'-'f'，其余字节返回 (0, false)。
func HexDigit(b byte) (uint8, bool) {
	switch {
	case b-'0' < 10:
		return b - '0', true
	case b-'a' < 6:
		return b - 'a' + 10, true
	case b-'A' < 6:
		return b - 'A' + 10, true
	}
	return 0, false
}

// DigitByte 返回数值 v（0-9）对应的数字字符。
// v > 9 返回 (0, false)。与 [Digit] 精确互逆。
func DigitByte(v uint8) (byte, bool) {
	if v > 9 {
		return 0, false
	}
	return '0' + v, true
}

// HexByteLower 返回数值 v（0-15）对应的小写十六进制字符。
// v > 15 返回 (0, false)。
func HexByteLower(v uint8) (byte, bool) {
	const hexLower = "0123456789abcdef"
	if v > 15 {
		return 0, false
	}
	return hexLower[v], true
}

// HexBytePair 把两个十六进制字符解析为一个字节（hi 为高 4 位）。
// 任一字符不是十六进制数字时返回 (0, false)。
func HexBytePair(hi, lo byte) (byte, bool) {
	h, ok := HexDigit(hi)
	if !ok {
		return 0, false
	}
	l, ok := HexDigit(lo)
	if !ok {
		return 0, false
	}
	return h<<4 | l, true
}
