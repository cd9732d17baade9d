package xascii

// Case 表示大小写转换的方向。
type Case uint8

const (
	// CaseUpper 转换为大写。
	CaseUpper Case = iota
	// CaseLower 转换为小写。
	CaseLower
)

// String 返回方向的名称。
func (c Case) String() string {
	if c == CaseUpper {
		return "upper"
	}
	return "lower"
}

// 大小写字母区在 ASCII 中相距 0x20（仅 bit 5 不同）。
const caseOffset = 0x20

// ToUpper 返回 b 的大写形式；非小写字母原样返回。
// 幂等，且对字母与 [ToLower] 互逆。
func ToUpper(b byte) byte {
	if b-'a' < 26 {
		return b - caseOffset
	}
	return b
}

// ToLower 返回 b 的小写形式；非大写字母原样返回。
// 幂等，且对字母与 [ToUpper] 互逆。
func ToLower(b byte) byte {
	if b-'A' < 26 {
		return b + caseOffset
	}
	return b
}

// Convert 按 c 指定的方向转换 b 的大小写。
func Convert(b byte, c Case) byte {
	if c == CaseUpper {
		return ToUpper(b)
	}
	return ToLower(b)
}

// ToUpperBytes 返回 s 的大写副本。输入不被修改，输出与输入等长。
func ToUpperBytes(s []byte) []byte {
	return ConvertBytes(s, CaseUpper)
}

// ToLowerBytes 返回 s 的小写副本。输入不被修改，输出与输入等长。
func ToLowerBytes(s []byte) []byte {
	return ConvertBytes(s, CaseLower)
}

// ConvertBytes 按 c 指定的方向逐字节转换 s，返回新分配的副本。
func ConvertBytes(s []byte, c Case) []byte {
	out := make([]byte, len(s))
	for i, b := range s {
		out[i] = Convert(b, c)
	}
	return out
}

// ToUpperString 返回 s 的大写形式。
// 按 UTF-8 码元流处理：多字节序列的每个字节高位为 1，
// 不落入任何字母区间，原样通过。
func ToUpperString(s string) string {
	return ConvertString(s, CaseUpper)
}

// ToLowerString 返回 s 的小写形式。多字节 UTF-8 序列原样通过。
func ToLowerString(s string) string {
	return ConvertString(s, CaseLower)
}

// ConvertString 按 c 指定的方向转换 s 的每个 ASCII 字母。
func ConvertString(s string, c Case) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = Convert(s[i], c)
	}
	return string(out)
}
