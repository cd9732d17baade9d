package xascii

// Flags 是 ASCII 字符的分类位标志，可按位组合。
type Flags uint8

const (
	// FlagDigit 十进制数字 '0'-'9'（0x30-0x39）。
	FlagDigit Flags = 1 << iota
	// FlagUpper 大写字母 'A'-'Z'（0x41-0x5A）。
	FlagUpper
	// FlagLower 小写字母 'a'-'z'（0x61-0x7A）。
	FlagLower
	// FlagHexUpper 大写十六进制字母 'A'-'F'，FlagUpper 的子集。
	FlagHexUpper
	// FlagHexLower 小写十六进制字母 'a'-'f'，FlagLower 的子集。
	FlagHexLower
	// FlagWhitespace 空白字符：TAB、LF、CR、SPACE。
	FlagWhitespace
	// FlagControl 控制字符：0x00-0x1F 与 DEL（0x7F）。
	FlagControl
	// FlagPrintable 可打印字符：0x20-0x7E（含 SPACE）。
	FlagPrintable
)

// Has 报告 f 是否包含 mask 中的任意标志位。
func (f Flags) Has(mask Flags) bool {
	return f&mask != 0
}

// classTable 是进程级分类表，包初始化时构建一次，此后只读。
// 仅覆盖 0x00-0x7F；0x80 及以上由 [Classify] 直接返回 0。
var classTable = buildTable()

// buildTable 单趟构建 128 项分类表。构建是确定性的：
// 重复构建得到逐字节相同的表（table_test.go 中验证）。
func buildTable() (t [128]Flags) {
	// 控制字符区间与 DEL
	for b := 0x00; b <= 0x1f; b++ {
		t[b] = FlagControl
	}
	t[0x7f] = FlagControl

	// 空白覆盖在控制字符之上；SPACE 不是控制字符，直接覆写
	t['\t'] |= FlagWhitespace
	t['\n'] |= FlagWhitespace
	t['\r'] |= FlagWhitespace
	t[' '] = FlagWhitespace | FlagPrintable

	// 可见字符（SPACE 已在上面标记为可打印）
	for b := 0x21; b <= 0x7e; b++ {
		t[b] |= FlagPrintable
	}

	for b := '0'; b <= '9'; b++ {
		t[b] |= FlagDigit
	}
	for b := 'A'; b <= 'Z'; b++ {
		t[b] |= FlagUpper
	}
	for b := 'a'; b <= 'z'; b++ {
		t[b] |= FlagLower
	}
	for b := 'A'; b <= 'F'; b++ {
		t[b] |= FlagHexUpper
	}
	for b := 'a'; b <= 'f'; b++ {
		t[b] |= FlagHexLower
	}
	return t
}

// Classify 返回 b 的分类标志。
// b >= 0x80 不是 ASCII 字符，返回 0（所有谓词均为 false），绝不越界。
func Classify(b byte) Flags {
	if b >= 0x80 {
		return 0
	}
	return classTable[b]
}
